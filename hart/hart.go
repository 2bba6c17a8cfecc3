// Package hart bundles the machine state of a single hardware thread
// and implements the instruction semantics that work over all of it:
// PC-relative computation, jumps and conditional branches, plus the
// decoded-instruction step loop.
package hart

import (
	"github.com/jmchacon/riscv64/bus"
	"github.com/jmchacon/riscv64/devices"
	"github.com/jmchacon/riscv64/registers"
	"github.com/jmchacon/riscv64/state"
)

// Hart is the state of one hardware thread: program counter, integer
// register file and the bus they hang off. Execution is single
// threaded; a Hart must be confined to one goroutine at a time.
type Hart struct {
	// PC holds the address of the current instruction. Only the step
	// loop writes it; control transfer semantics return the next PC
	// to their caller instead.
	PC state.Cell64

	// XRegs is the integer register file.
	XRegs *registers.XRegisters

	// Bus routes addresses to the devices region and main memory.
	Bus *bus.Bus
}

// New builds a hart on the given backend with main memory of memLen
// bytes. PC resets to the first byte of main memory, which is where a
// loader places the program image.
func New(m state.Manager, memLen uint64) *Hart {
	h := &Hart{
		PC:    state.NewCell64(m.Allocate(8), 0),
		XRegs: registers.New(m),
		Bus:   bus.New(m, memLen),
	}
	h.PC.Write(devices.Length)
	return h
}
