package hart

import (
	"github.com/jmchacon/riscv64/memory"
	"github.com/jmchacon/riscv64/registers"
)

// InstrWidth is the byte width of an uncompressed instruction. The
// exported Run entry points all use it; the width-parameterized
// implementations exist so a compressed extension can reuse them with
// width 2.
const InstrWidth = 4

// Misaligned jump and branch targets are never faulted here: the
// compressed extension is assumed to coexist, which legalizes 2-byte
// alignment. A configuration without it needs an alignment check in a
// sibling layer.

// RunAuipc executes AUIPC: rd = PC + imm. PC itself is left untouched.
// The U-type immediate arrives with bits [31:12] set and the lower 12
// bits zeroed.
func (h *Hart) RunAuipc(imm int64, rd registers.XRegister) {
	h.XRegs.Write(rd, h.PC.Read()+uint64(imm))
}

// jal is JAL at an explicit instruction width.
func (h *Hart) jal(imm int64, rd registers.XRegister, width uint64) memory.Address {
	pc := h.PC.Read()
	// The address after the jump instruction is saved in rd.
	h.XRegs.Write(rd, pc+width)
	return pc + uint64(imm)
}

// RunJal executes JAL and returns the target address PC + imm. The
// return address PC + 4 is written to rd.
func (h *Hart) RunJal(imm int64, rd registers.XRegister) memory.Address {
	return h.jal(imm, rd, InstrWidth)
}

// jalr is JALR at an explicit instruction width.
func (h *Hart) jalr(imm int64, rs1, rd registers.XRegister, width uint64) memory.Address {
	// The target is rs1 + imm with the least significant bit cleared.
	// rs1 is read before rd is written so rs1 == rd resolves against
	// the pre-link value.
	target := (h.XRegs.Read(rs1) + uint64(imm)) &^ 1
	h.XRegs.Write(rd, h.PC.Read()+width)
	return target
}

// RunJalr executes JALR and returns the target address
// (rs1 + imm) &^ 1. The return address PC + 4 is written to rd.
func (h *Hart) RunJalr(imm int64, rs1, rd registers.XRegister) memory.Address {
	return h.jalr(imm, rs1, rd, InstrWidth)
}

// branch returns PC + imm when taken, the fallthrough address
// otherwise. All six conditional branches funnel through here so the
// not-taken path honors the instruction width uniformly (the original
// design hard-coded +4 on four of them).
func (h *Hart) branch(taken bool, imm int64, width uint64) memory.Address {
	pc := h.PC.Read()
	if taken {
		return pc + uint64(imm)
	}
	return pc + width
}

// RunBeq executes BEQ: branch if rs1 == rs2.
func (h *Hart) RunBeq(imm int64, rs1, rs2 registers.XRegister) memory.Address {
	return h.branch(h.XRegs.Read(rs1) == h.XRegs.Read(rs2), imm, InstrWidth)
}

// RunBne executes BNE: branch if rs1 != rs2.
func (h *Hart) RunBne(imm int64, rs1, rs2 registers.XRegister) memory.Address {
	return h.branch(h.XRegs.Read(rs1) != h.XRegs.Read(rs2), imm, InstrWidth)
}

// RunBlt executes BLT: branch if rs1 < rs2, signed.
func (h *Hart) RunBlt(imm int64, rs1, rs2 registers.XRegister) memory.Address {
	return h.branch(int64(h.XRegs.Read(rs1)) < int64(h.XRegs.Read(rs2)), imm, InstrWidth)
}

// RunBge executes BGE: branch if rs1 >= rs2, signed.
func (h *Hart) RunBge(imm int64, rs1, rs2 registers.XRegister) memory.Address {
	return h.branch(int64(h.XRegs.Read(rs1)) >= int64(h.XRegs.Read(rs2)), imm, InstrWidth)
}

// RunBltu executes BLTU: branch if rs1 < rs2, unsigned.
func (h *Hart) RunBltu(imm int64, rs1, rs2 registers.XRegister) memory.Address {
	return h.branch(h.XRegs.Read(rs1) < h.XRegs.Read(rs2), imm, InstrWidth)
}

// RunBgeu executes BGEU: branch if rs1 >= rs2, unsigned.
func (h *Hart) RunBgeu(imm int64, rs1, rs2 registers.XRegister) memory.Address {
	return h.branch(h.XRegs.Read(rs1) >= h.XRegs.Read(rs2), imm, InstrWidth)
}
