package hart

import (
	"fmt"

	"github.com/jmchacon/riscv64/registers"
)

// Op is an enumeration of the decoded instructions the step loop can
// dispatch.
type Op int

const (
	OP_UNIMPLEMENTED Op = iota // Zero value; not a dispatchable op.
	OP_ADDI
	OP_ANDI
	OP_ORI
	OP_XORI
	OP_LUI
	OP_AUIPC
	OP_JAL
	OP_JALR
	OP_BEQ
	OP_BNE
	OP_BLT
	OP_BGE
	OP_BLTU
	OP_BGEU
	OP_MAX // End of op enumerations.
)

var opNames = map[Op]string{
	OP_ADDI:  "addi",
	OP_ANDI:  "andi",
	OP_ORI:   "ori",
	OP_XORI:  "xori",
	OP_LUI:   "lui",
	OP_AUIPC: "auipc",
	OP_JAL:   "jal",
	OP_JALR:  "jalr",
	OP_BEQ:   "beq",
	OP_BNE:   "bne",
	OP_BLT:   "blt",
	OP_BGE:   "bge",
	OP_BLTU:  "bltu",
	OP_BGEU:  "bgeu",
}

// String returns the assembler mnemonic for the op.
func (o Op) String() string {
	if n, ok := opNames[o]; ok {
		return n
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Instr is one already-decoded instruction. The decoder delivers
// register indices in range and the immediate sign-extended to 64 bits
// per its encoding (I/U/J/B type); Step trusts both.
type Instr struct {
	Op  Op
	Rd  registers.XRegister
	Rs1 registers.XRegister
	Rs2 registers.XRegister
	Imm int64
}

// String renders the instruction in assembler syntax for traces.
func (i Instr) String() string {
	switch i.Op {
	case OP_ADDI, OP_ANDI, OP_ORI, OP_XORI:
		return fmt.Sprintf("%s %s,%s,%d", i.Op, i.Rd, i.Rs1, i.Imm)
	case OP_LUI, OP_AUIPC:
		// Assembler convention shows the raw upper 20 bits.
		return fmt.Sprintf("%s %s,0x%x", i.Op, i.Rd, uint32(i.Imm)>>12)
	case OP_JAL:
		return fmt.Sprintf("%s %s,%d", i.Op, i.Rd, i.Imm)
	case OP_JALR:
		return fmt.Sprintf("%s %s,%d(%s)", i.Op, i.Rd, i.Imm, i.Rs1)
	case OP_BEQ, OP_BNE, OP_BLT, OP_BGE, OP_BLTU, OP_BGEU:
		return fmt.Sprintf("%s %s,%s,%d", i.Op, i.Rs1, i.Rs2, i.Imm)
	}
	return i.Op.String()
}

// UnknownOp represents an opcode the step loop cannot dispatch.
type UnknownOp struct {
	Op Op
}

// Error implements the interface for error types.
func (e UnknownOp) Error() string {
	return fmt.Sprintf("unknown opcode %s", e.Op)
}

// Step executes one decoded instruction: it invokes the semantic, then
// stores the next PC. Control transfers store the target they return;
// everything else reads PC after the semantic has run and falls through
// by the instruction width.
func (h *Hart) Step(ins Instr) error {
	switch ins.Op {
	case OP_ADDI:
		h.XRegs.RunAddi(ins.Imm, ins.Rs1, ins.Rd)
	case OP_ANDI:
		h.XRegs.RunAndi(ins.Imm, ins.Rs1, ins.Rd)
	case OP_ORI:
		h.XRegs.RunOri(ins.Imm, ins.Rs1, ins.Rd)
	case OP_XORI:
		h.XRegs.RunXori(ins.Imm, ins.Rs1, ins.Rd)
	case OP_LUI:
		h.XRegs.RunLui(ins.Imm, ins.Rd)
	case OP_AUIPC:
		h.RunAuipc(ins.Imm, ins.Rd)
	case OP_JAL:
		h.PC.Write(h.RunJal(ins.Imm, ins.Rd))
		return nil
	case OP_JALR:
		h.PC.Write(h.RunJalr(ins.Imm, ins.Rs1, ins.Rd))
		return nil
	case OP_BEQ:
		h.PC.Write(h.RunBeq(ins.Imm, ins.Rs1, ins.Rs2))
		return nil
	case OP_BNE:
		h.PC.Write(h.RunBne(ins.Imm, ins.Rs1, ins.Rs2))
		return nil
	case OP_BLT:
		h.PC.Write(h.RunBlt(ins.Imm, ins.Rs1, ins.Rs2))
		return nil
	case OP_BGE:
		h.PC.Write(h.RunBge(ins.Imm, ins.Rs1, ins.Rs2))
		return nil
	case OP_BLTU:
		h.PC.Write(h.RunBltu(ins.Imm, ins.Rs1, ins.Rs2))
		return nil
	case OP_BGEU:
		h.PC.Write(h.RunBgeu(ins.Imm, ins.Rs1, ins.Rs2))
		return nil
	default:
		return UnknownOp{ins.Op}
	}
	h.PC.Write(h.PC.Read() + InstrWidth)
	return nil
}
