// Package state defines the storage backend all machine state is built
// on. A Manager provisions fixed-size Regions of backing storage and the
// machine components view those through typed cells and arrays. Since
// components only ever talk to the Manager interface the same hart can
// execute against live in-process memory or against a journaled store
// used for committing state and replaying execution elsewhere.
package state

import "fmt"

// Manager provisions backing storage for machine state components. A
// single Manager is shared by every component of one machine and owns
// all storage it hands out.
type Manager interface {
	// Allocate returns a new zero filled region of n bytes.
	Allocate(n uint64) Region
}

// Region is a fixed-length span of backend storage addressed by byte
// offset. Multi-byte accesses are little-endian. Offsets outside the
// region are a programming error, not a runtime condition, and panic.
type Region interface {
	// Len returns the region size in bytes.
	Len() uint64
	Read8(off uint64) uint8
	Write8(off uint64, v uint8)
	Read16(off uint64) uint16
	Write16(off uint64, v uint16)
	Read32(off uint64) uint32
	Write32(off uint64, v uint32)
	Read64(off uint64) uint64
	Write64(off uint64, v uint64)
}

// Cell64 views 8 bytes of a Region as a single 64-bit cell.
type Cell64 struct {
	r   Region
	off uint64
}

// NewCell64 creates a cell over the 8 bytes at off in r.
func NewCell64(r Region, off uint64) Cell64 {
	return Cell64{r: r, off: off}
}

// Read returns the cell value.
func (c Cell64) Read() uint64 {
	return c.r.Read64(c.off)
}

// Write overwrites the cell value.
func (c Cell64) Write(v uint64) {
	c.r.Write64(c.off, v)
}

// Array64 views part of a Region as a fixed-length array of 64-bit
// cells.
type Array64 struct {
	r   Region
	off uint64
	n   uint64
}

// NewArray64 creates an array of n 64-bit cells starting at off in r.
func NewArray64(r Region, off, n uint64) Array64 {
	return Array64{r: r, off: off, n: n}
}

// Len returns the number of cells in the array.
func (a Array64) Len() uint64 {
	return a.n
}

// Read returns element i.
func (a Array64) Read(i uint64) uint64 {
	if i >= a.n {
		panic(fmt.Sprintf("state: array read index %d out of range (len %d)", i, a.n))
	}
	return a.r.Read64(a.off + i*8)
}

// Write overwrites element i.
func (a Array64) Write(i, v uint64) {
	if i >= a.n {
		panic(fmt.Sprintf("state: array write index %d out of range (len %d)", i, a.n))
	}
	a.r.Write64(a.off+i*8, v)
}
