// Package registers defines the integer register file of a 64-bit hart
// and the instruction semantics that only touch it.
package registers

import "github.com/jmchacon/riscv64/state"

// XValue is the native register width.
type XValue = uint64

// XRegister selects one of the integer registers. Valid values are
// X0 through X31; the decoder is responsible for never producing
// anything else.
type XRegister uint8

// NumRegisters is the size of the integer register file.
const NumRegisters = 32

const (
	X0 XRegister = iota
	X1
	X2
	X3
	X4
	X5
	X6
	X7
	X8
	X9
	X10
	X11
	X12
	X13
	X14
	X15
	X16
	X17
	X18
	X19
	X20
	X21
	X22
	X23
	X24
	X25
	X26
	X27
	X28
	X29
	X30
	X31
)

// ABI names per the RISC-V calling convention.
const (
	Zero = X0
	RA   = X1
	SP   = X2
	GP   = X3
	TP   = X4
	T0   = X5
	T1   = X6
	T2   = X7
	S0   = X8
	FP   = X8
	S1   = X9
	A0   = X10
	A1   = X11
	A2   = X12
	A3   = X13
	A4   = X14
	A5   = X15
	A6   = X16
	A7   = X17
	S2   = X18
	S3   = X19
	S4   = X20
	S5   = X21
	S6   = X22
	S7   = X23
	S8   = X24
	S9   = X25
	S10  = X26
	S11  = X27
	T3   = X28
	T4   = X29
	T5   = X30
	T6   = X31
)

// abiNames maps a register index to its ABI name.
var abiNames = [NumRegisters]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// String returns the ABI name of the register.
func (r XRegister) String() string {
	return abiNames[r]
}

// XRegisters is the integer register file: 32 64-bit cells on the
// backend.
//
// NOTE: writes to X0 are stored like any other register. The ISA
// convention that x0 reads as zero is upheld by the decoder/assembler
// side of the boundary, not enforced here.
type XRegisters struct {
	regs state.Array64
}

// New allocates a register file on the given backend. All registers
// start at zero.
func New(m state.Manager) *XRegisters {
	return &XRegisters{
		regs: state.NewArray64(m.Allocate(NumRegisters*8), 0, NumRegisters),
	}
}

// Read returns the value of register r.
func (x *XRegisters) Read(r XRegister) XValue {
	return x.regs.Read(uint64(r))
}

// Write overwrites register r with v.
func (x *XRegisters) Write(r XRegister, v XValue) {
	x.regs.Write(uint64(r), v)
}
