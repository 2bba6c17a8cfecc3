// Package memory defines the basic interfaces for working with the
// hart's address space. Every addressable component (main memory, the
// devices region, the bus itself) satisfies the same contract so the
// load/store layer never cares what sits behind an address.
package memory

import (
	"fmt"

	"github.com/jmchacon/riscv64/registers"
)

// Address is a bus-level byte address.
type Address = registers.XValue

// OutOfBounds is returned when an access falls outside the addressed
// region. Addr holds the offending address as seen by the component
// that rejected it: a region reports its local offset, the bus reports
// the original flat address.
type OutOfBounds struct {
	Addr Address
}

// Error implements the interface for error types.
func (e OutOfBounds) Error() string {
	return fmt.Sprintf("address 0x%.16X out of bounds", e.Addr)
}

// Addressable is an address space accepting fixed-width little-endian
// transfers. A transfer either moves a full element or fails with
// OutOfBounds; there are no partial transfers. An address is in bounds
// iff addr + sizeof(element) <= region length.
type Addressable interface {
	ReadUint8(addr Address) (uint8, error)
	WriteUint8(addr Address, v uint8) error
	ReadUint16(addr Address) (uint16, error)
	WriteUint16(addr Address, v uint16) error
	ReadUint32(addr Address) (uint32, error)
	WriteUint32(addr Address, v uint32) error
	ReadUint64(addr Address) (uint64, error)
	WriteUint64(addr Address, v uint64) error
}

// Signed element access is a bit-reinterpretation of the unsigned
// transfer at the same width.

// ReadInt8 reads an 8-bit element as signed.
func ReadInt8(a Addressable, addr Address) (int8, error) {
	v, err := a.ReadUint8(addr)
	return int8(v), err
}

// ReadInt16 reads a 16-bit element as signed.
func ReadInt16(a Addressable, addr Address) (int16, error) {
	v, err := a.ReadUint16(addr)
	return int16(v), err
}

// ReadInt32 reads a 32-bit element as signed.
func ReadInt32(a Addressable, addr Address) (int32, error) {
	v, err := a.ReadUint32(addr)
	return int32(v), err
}

// ReadInt64 reads a 64-bit element as signed.
func ReadInt64(a Addressable, addr Address) (int64, error) {
	v, err := a.ReadUint64(addr)
	return int64(v), err
}

// WriteInt8 writes an 8-bit signed element.
func WriteInt8(a Addressable, addr Address, v int8) error {
	return a.WriteUint8(addr, uint8(v))
}

// WriteInt16 writes a 16-bit signed element.
func WriteInt16(a Addressable, addr Address, v int16) error {
	return a.WriteUint16(addr, uint16(v))
}

// WriteInt32 writes a 32-bit signed element.
func WriteInt32(a Addressable, addr Address, v int32) error {
	return a.WriteUint32(addr, uint32(v))
}

// WriteInt64 writes a 64-bit signed element.
func WriteInt64(a Addressable, addr Address, v int64) error {
	return a.WriteUint64(addr, uint64(v))
}
