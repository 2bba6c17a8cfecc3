// Package bus routes hart addresses to the devices region, main memory,
// or out of bounds. Most of the logic here is simply to pull together
// the address mappings of the regions mounted on it.
package bus

import (
	"github.com/jmchacon/riscv64/devices"
	"github.com/jmchacon/riscv64/memory"
	"github.com/jmchacon/riscv64/state"
)

// Address is a bus-global byte address.
type Address = memory.Address

// region identifies which side of the address map a request lands on.
type region int

const (
	kREGION_DEVICES region = iota
	kREGION_MEMORY
	kREGION_OOB
)

var _ = memory.Addressable(&Bus{})

// Bus connects the hart to the devices region and main memory. The
// address map is [0, devices.Length) for devices, then
// [devices.Length, devices.Length + memLen) for main memory, then out
// of bounds.
type Bus struct {
	devices *devices.Devices
	memory  *memory.MainMemory
}

// New builds a bus on the backend with main memory of the given length
// in bytes.
func New(m state.Manager, memLen uint64) *Bus {
	return &Bus{
		devices: devices.New(m),
		memory:  memory.New(m, memLen),
	}
}

// Devices returns the device region mounted on the bus.
func (b *Bus) Devices() *devices.Devices {
	return b.devices
}

// Memory returns main memory mounted on the bus.
func (b *Bus) Memory() *memory.MainMemory {
	return b.memory
}

// locate determines which region addr belongs to along with its local
// offset. Devices sit at the bottom of the map so that check is one
// compare; the memory check reuses the rebased offset so it is too.
// Out of bounds keeps the original address for diagnostics.
func (b *Bus) locate(addr Address) (region, Address) {
	if addr < devices.Length {
		return kREGION_DEVICES, addr
	}
	memAddr := addr - devices.Length
	if memAddr < b.memory.Len() {
		return kREGION_MEMORY, memAddr
	}
	return kREGION_OOB, addr
}

// ReadUint8 implements the interface for memory.Addressable.
func (b *Bus) ReadUint8(addr Address) (uint8, error) {
	switch r, local := b.locate(addr); r {
	case kREGION_DEVICES:
		return b.devices.ReadUint8(local)
	case kREGION_MEMORY:
		return b.memory.ReadUint8(local)
	}
	return 0, memory.OutOfBounds{Addr: addr}
}

// WriteUint8 implements the interface for memory.Addressable.
func (b *Bus) WriteUint8(addr Address, v uint8) error {
	switch r, local := b.locate(addr); r {
	case kREGION_DEVICES:
		return b.devices.WriteUint8(local, v)
	case kREGION_MEMORY:
		return b.memory.WriteUint8(local, v)
	}
	return memory.OutOfBounds{Addr: addr}
}

// ReadUint16 implements the interface for memory.Addressable.
func (b *Bus) ReadUint16(addr Address) (uint16, error) {
	switch r, local := b.locate(addr); r {
	case kREGION_DEVICES:
		return b.devices.ReadUint16(local)
	case kREGION_MEMORY:
		return b.memory.ReadUint16(local)
	}
	return 0, memory.OutOfBounds{Addr: addr}
}

// WriteUint16 implements the interface for memory.Addressable.
func (b *Bus) WriteUint16(addr Address, v uint16) error {
	switch r, local := b.locate(addr); r {
	case kREGION_DEVICES:
		return b.devices.WriteUint16(local, v)
	case kREGION_MEMORY:
		return b.memory.WriteUint16(local, v)
	}
	return memory.OutOfBounds{Addr: addr}
}

// ReadUint32 implements the interface for memory.Addressable.
func (b *Bus) ReadUint32(addr Address) (uint32, error) {
	switch r, local := b.locate(addr); r {
	case kREGION_DEVICES:
		return b.devices.ReadUint32(local)
	case kREGION_MEMORY:
		return b.memory.ReadUint32(local)
	}
	return 0, memory.OutOfBounds{Addr: addr}
}

// WriteUint32 implements the interface for memory.Addressable.
func (b *Bus) WriteUint32(addr Address, v uint32) error {
	switch r, local := b.locate(addr); r {
	case kREGION_DEVICES:
		return b.devices.WriteUint32(local, v)
	case kREGION_MEMORY:
		return b.memory.WriteUint32(local, v)
	}
	return memory.OutOfBounds{Addr: addr}
}

// ReadUint64 implements the interface for memory.Addressable.
func (b *Bus) ReadUint64(addr Address) (uint64, error) {
	switch r, local := b.locate(addr); r {
	case kREGION_DEVICES:
		return b.devices.ReadUint64(local)
	case kREGION_MEMORY:
		return b.memory.ReadUint64(local)
	}
	return 0, memory.OutOfBounds{Addr: addr}
}

// WriteUint64 implements the interface for memory.Addressable.
func (b *Bus) WriteUint64(addr Address, v uint64) error {
	switch r, local := b.locate(addr); r {
	case kREGION_DEVICES:
		return b.devices.WriteUint64(local, v)
	case kREGION_MEMORY:
		return b.memory.WriteUint64(local, v)
	}
	return memory.OutOfBounds{Addr: addr}
}
