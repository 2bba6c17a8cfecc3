// Package devices reserves the low end of the bus address map for
// memory-mapped devices. The interpreter only cares that the region
// answers the addressable contract; slot layout is the business of
// whatever device models eventually mount here, so for now slots are
// plain backend storage.
package devices

import (
	"github.com/jmchacon/riscv64/memory"
	"github.com/jmchacon/riscv64/state"
)

// Length is the size of the devices address space in bytes. The bus
// maps it at [0, Length); main memory starts immediately after.
const Length uint64 = 0x10000

var _ = memory.Addressable(&Devices{})

// Devices is the memory-mapped device region.
type Devices struct {
	r state.Region
}

// New allocates the devices region on the backend.
func New(m state.Manager) *Devices {
	return &Devices{r: m.Allocate(Length)}
}

// inBounds reports whether a transfer of size bytes at addr lies inside
// the region, computed without wraparound.
func (d *Devices) inBounds(addr memory.Address, size uint64) bool {
	return addr < Length && Length-addr >= size
}

// ReadUint8 implements the interface for memory.Addressable.
func (d *Devices) ReadUint8(addr memory.Address) (uint8, error) {
	if !d.inBounds(addr, 1) {
		return 0, memory.OutOfBounds{Addr: addr}
	}
	return d.r.Read8(addr), nil
}

// WriteUint8 implements the interface for memory.Addressable.
func (d *Devices) WriteUint8(addr memory.Address, v uint8) error {
	if !d.inBounds(addr, 1) {
		return memory.OutOfBounds{Addr: addr}
	}
	d.r.Write8(addr, v)
	return nil
}

// ReadUint16 implements the interface for memory.Addressable.
func (d *Devices) ReadUint16(addr memory.Address) (uint16, error) {
	if !d.inBounds(addr, 2) {
		return 0, memory.OutOfBounds{Addr: addr}
	}
	return d.r.Read16(addr), nil
}

// WriteUint16 implements the interface for memory.Addressable.
func (d *Devices) WriteUint16(addr memory.Address, v uint16) error {
	if !d.inBounds(addr, 2) {
		return memory.OutOfBounds{Addr: addr}
	}
	d.r.Write16(addr, v)
	return nil
}

// ReadUint32 implements the interface for memory.Addressable.
func (d *Devices) ReadUint32(addr memory.Address) (uint32, error) {
	if !d.inBounds(addr, 4) {
		return 0, memory.OutOfBounds{Addr: addr}
	}
	return d.r.Read32(addr), nil
}

// WriteUint32 implements the interface for memory.Addressable.
func (d *Devices) WriteUint32(addr memory.Address, v uint32) error {
	if !d.inBounds(addr, 4) {
		return memory.OutOfBounds{Addr: addr}
	}
	d.r.Write32(addr, v)
	return nil
}

// ReadUint64 implements the interface for memory.Addressable.
func (d *Devices) ReadUint64(addr memory.Address) (uint64, error) {
	if !d.inBounds(addr, 8) {
		return 0, memory.OutOfBounds{Addr: addr}
	}
	return d.r.Read64(addr), nil
}

// WriteUint64 implements the interface for memory.Addressable.
func (d *Devices) WriteUint64(addr memory.Address, v uint64) error {
	if !d.inBounds(addr, 8) {
		return memory.OutOfBounds{Addr: addr}
	}
	d.r.Write64(addr, v)
	return nil
}
