package registers

// Register-immediate instructions of the integer base. The decoder
// delivers every immediate already sign-extended to 64 bits per its
// encoding; the semantics here reinterpret it as unsigned where needed.
// rd may alias rs1: the source is read before the destination is
// written.

// RunAddi executes ADDI: rd = rs1 + imm.
func (x *XRegisters) RunAddi(imm int64, rs1, rd XRegister) {
	// Addition is modulo 2^64 irrespective of sign, so the immediate
	// can be added as its unsigned reinterpretation.
	x.Write(rd, x.Read(rs1)+uint64(imm))
}

// RunAndi executes ANDI: rd = rs1 & imm.
func (x *XRegisters) RunAndi(imm int64, rs1, rd XRegister) {
	x.Write(rd, x.Read(rs1)&uint64(imm))
}

// RunOri executes ORI: rd = rs1 | imm.
func (x *XRegisters) RunOri(imm int64, rs1, rd XRegister) {
	x.Write(rd, x.Read(rs1)|uint64(imm))
}

// RunXori executes XORI: rd = rs1 ^ imm.
func (x *XRegisters) RunXori(imm int64, rs1, rd XRegister) {
	x.Write(rd, x.Read(rs1)^uint64(imm))
}

// RunLui executes LUI: rd = imm. Being U-type, the immediate arrives
// with its lower 12 bits cleared and sign-extended from bit 31.
func (x *XRegisters) RunLui(imm int64, rd XRegister) {
	x.Write(rd, uint64(imm))
}
