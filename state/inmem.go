package state

import "encoding/binary"

var _ = Manager(inMem{})

// inMem provisions regions backed by plain process memory. This is the
// live execution backend.
type inMem struct{}

// NewInMemory returns a Manager whose regions are byte slices in process
// memory.
func NewInMemory() Manager {
	return inMem{}
}

// Allocate implements the interface for Manager.
func (inMem) Allocate(n uint64) Region {
	return sliceRegion{buf: make([]byte, n)}
}

// sliceRegion implements Region over a byte slice. Out of range offsets
// panic via the normal slice bounds checks.
type sliceRegion struct {
	buf []byte
}

func (r sliceRegion) Len() uint64 {
	return uint64(len(r.buf))
}

func (r sliceRegion) Read8(off uint64) uint8 {
	return r.buf[off]
}

func (r sliceRegion) Write8(off uint64, v uint8) {
	r.buf[off] = v
}

func (r sliceRegion) Read16(off uint64) uint16 {
	return binary.LittleEndian.Uint16(r.buf[off : off+2])
}

func (r sliceRegion) Write16(off uint64, v uint16) {
	binary.LittleEndian.PutUint16(r.buf[off:off+2], v)
}

func (r sliceRegion) Read32(off uint64) uint32 {
	return binary.LittleEndian.Uint32(r.buf[off : off+4])
}

func (r sliceRegion) Write32(off uint64, v uint32) {
	binary.LittleEndian.PutUint32(r.buf[off:off+4], v)
}

func (r sliceRegion) Read64(off uint64) uint64 {
	return binary.LittleEndian.Uint64(r.buf[off : off+8])
}

func (r sliceRegion) Write64(off uint64, v uint64) {
	binary.LittleEndian.PutUint64(r.buf[off:off+8], v)
}
