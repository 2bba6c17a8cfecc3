package memory

import "github.com/jmchacon/riscv64/state"

var _ = Addressable(&MainMemory{})

// MainMemory is a contiguous byte-addressable region of backend
// storage. Its length is fixed at construction.
type MainMemory struct {
	r state.Region
}

// New allocates main memory of the given length in bytes on the
// backend.
func New(m state.Manager, length uint64) *MainMemory {
	return &MainMemory{r: m.Allocate(length)}
}

// Len returns the memory length in bytes.
func (m *MainMemory) Len() uint64 {
	return m.r.Len()
}

// inBounds reports whether a transfer of size bytes at addr lies inside
// the region. Computed without wraparound so addresses near 2^64 don't
// alias back into range.
func (m *MainMemory) inBounds(addr Address, size uint64) bool {
	l := m.r.Len()
	return addr < l && l-addr >= size
}

// ReadUint8 implements the interface for Addressable.
func (m *MainMemory) ReadUint8(addr Address) (uint8, error) {
	if !m.inBounds(addr, 1) {
		return 0, OutOfBounds{addr}
	}
	return m.r.Read8(addr), nil
}

// WriteUint8 implements the interface for Addressable.
func (m *MainMemory) WriteUint8(addr Address, v uint8) error {
	if !m.inBounds(addr, 1) {
		return OutOfBounds{addr}
	}
	m.r.Write8(addr, v)
	return nil
}

// ReadUint16 implements the interface for Addressable.
func (m *MainMemory) ReadUint16(addr Address) (uint16, error) {
	if !m.inBounds(addr, 2) {
		return 0, OutOfBounds{addr}
	}
	return m.r.Read16(addr), nil
}

// WriteUint16 implements the interface for Addressable.
func (m *MainMemory) WriteUint16(addr Address, v uint16) error {
	if !m.inBounds(addr, 2) {
		return OutOfBounds{addr}
	}
	m.r.Write16(addr, v)
	return nil
}

// ReadUint32 implements the interface for Addressable.
func (m *MainMemory) ReadUint32(addr Address) (uint32, error) {
	if !m.inBounds(addr, 4) {
		return 0, OutOfBounds{addr}
	}
	return m.r.Read32(addr), nil
}

// WriteUint32 implements the interface for Addressable.
func (m *MainMemory) WriteUint32(addr Address, v uint32) error {
	if !m.inBounds(addr, 4) {
		return OutOfBounds{addr}
	}
	m.r.Write32(addr, v)
	return nil
}

// ReadUint64 implements the interface for Addressable.
func (m *MainMemory) ReadUint64(addr Address) (uint64, error) {
	if !m.inBounds(addr, 8) {
		return 0, OutOfBounds{addr}
	}
	return m.r.Read64(addr), nil
}

// WriteUint64 implements the interface for Addressable.
func (m *MainMemory) WriteUint64(addr Address, v uint64) error {
	if !m.inBounds(addr, 8) {
		return OutOfBounds{addr}
	}
	m.r.Write64(addr, v)
	return nil
}
