package hart

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/jmchacon/riscv64/devices"
	"github.com/jmchacon/riscv64/registers"
	"github.com/jmchacon/riscv64/state"
)

func TestStepAdvancesPC(t *testing.T) {
	tests := []struct {
		name string
		ins  Instr
	}{
		{"addi", Instr{Op: OP_ADDI, Rd: registers.A0, Rs1: registers.A1, Imm: 5}},
		{"andi", Instr{Op: OP_ANDI, Rd: registers.A0, Rs1: registers.A1, Imm: 0xFF}},
		{"ori", Instr{Op: OP_ORI, Rd: registers.A0, Rs1: registers.A1, Imm: 1}},
		{"xori", Instr{Op: OP_XORI, Rd: registers.A0, Rs1: registers.A1, Imm: -1}},
		{"lui", Instr{Op: OP_LUI, Rd: registers.A0, Imm: 0x12345000}},
		{"auipc", Instr{Op: OP_AUIPC, Rd: registers.A0, Imm: 0x1000}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := newHart(state.NewInMemory)
			start := h.PC.Read()
			if err := h.Step(test.ins); err != nil {
				t.Fatalf("step: %v", err)
			}
			if got, want := h.PC.Read(), start+InstrWidth; got != want {
				t.Errorf("PC after non-control step: got %.16X want %.16X", got, want)
			}
		})
	}
}

func TestStepControlTransfer(t *testing.T) {
	h := newHart(state.NewInMemory)
	start := h.PC.Read()

	if err := h.Step(Instr{Op: OP_JAL, Rd: registers.RA, Imm: 0x40}); err != nil {
		t.Fatalf("step: %v", err)
	}
	if got, want := h.PC.Read(), start+0x40; got != want {
		t.Errorf("PC after JAL: got %.16X want %.16X", got, want)
	}
	if got, want := h.XRegs.Read(registers.RA), start+4; got != want {
		t.Errorf("RA after JAL: got %.16X want %.16X", got, want)
	}

	// A not-taken branch falls through.
	h.XRegs.Write(registers.T1, 1)
	h.XRegs.Write(registers.T2, 2)
	pc := h.PC.Read()
	if err := h.Step(Instr{Op: OP_BEQ, Rs1: registers.T1, Rs2: registers.T2, Imm: 0x100}); err != nil {
		t.Fatalf("step: %v", err)
	}
	if got, want := h.PC.Read(), pc+4; got != want {
		t.Errorf("PC after not-taken BEQ: got %.16X want %.16X", got, want)
	}
}

func TestStepUnknownOp(t *testing.T) {
	h := newHart(state.NewInMemory)
	start := h.PC.Read()

	for _, op := range []Op{OP_UNIMPLEMENTED, OP_MAX, Op(999)} {
		err := h.Step(Instr{Op: op})
		if err == nil {
			t.Fatalf("step with op %d succeeded", op)
		}
		if _, ok := err.(UnknownOp); !ok {
			t.Errorf("error is not UnknownOp: %v", err)
		}
		if got := h.PC.Read(); got != start {
			t.Errorf("failed step moved PC: got %.16X want %.16X", got, start)
		}
	}
}

// TestProgram runs a pre-decoded countdown loop end to end. The
// program never relies on x0 staying zero after writes since the
// register file doesn't enforce that; it only ever reads it.
func TestProgram(t *testing.T) {
	base := devices.Length
	prog := []Instr{
		{Op: OP_ADDI, Rd: registers.T0, Rs1: registers.Zero, Imm: 10}, // base+0
		{Op: OP_ADDI, Rd: registers.A0, Rs1: registers.Zero, Imm: 0},  // base+4
		{Op: OP_BEQ, Rs1: registers.T0, Rs2: registers.Zero, Imm: 16}, // base+8: done?
		{Op: OP_ADDI, Rd: registers.T0, Rs1: registers.T0, Imm: -1},   // base+12
		{Op: OP_ADDI, Rd: registers.A0, Rs1: registers.A0, Imm: 1},    // base+16
		{Op: OP_JAL, Rd: registers.T2, Imm: -12},                      // base+20: loop
	}
	end := base + uint64(len(prog))*InstrWidth

	for _, b := range managers() {
		t.Run(b.name, func(t *testing.T) {
			h := New(b.mgr(), testMemLen)

			steps := 0
			for h.PC.Read() != end {
				if steps++; steps > 1000 {
					t.Fatalf("program did not terminate\nstate: %s", spew.Sdump(h.PC.Read()))
				}
				idx := (h.PC.Read() - base) / InstrWidth
				if err := h.Step(prog[idx]); err != nil {
					t.Fatalf("step %d: %v", steps, err)
				}
			}

			if got, want := steps, 43; got != want {
				t.Errorf("step count: got %d want %d", got, want)
			}

			want := map[registers.XRegister]uint64{
				registers.T0: 0,
				registers.A0: 10,
				registers.T2: base + 24,
			}
			got := map[registers.XRegister]uint64{}
			for r := range want {
				got[r] = h.XRegs.Read(r)
			}
			if diff := deep.Equal(got, want); diff != nil {
				t.Errorf("final registers mismatch: %v", diff)
			}
		})
	}
}

// One journaled step produces exactly the accesses a replaying
// verifier needs: the operand read, the result write and the PC update.
func TestStepJournal(t *testing.T) {
	j := state.NewJournaling(state.NewInMemory())
	h := New(j, testMemLen)
	h.XRegs.Write(registers.A1, 40)
	pc := h.PC.Read()
	j.Reset()
	if err := h.Step(Instr{Op: OP_ADDI, Rd: registers.A0, Rs1: registers.A1, Imm: 2}); err != nil {
		t.Fatalf("step: %v", err)
	}

	// Allocation order in New: PC region 0, registers region 1, then
	// the bus regions.
	const a0Off = uint64(registers.A0) * 8
	const a1Off = uint64(registers.A1) * 8
	want := []state.Access{
		{Kind: state.AccessRead, Region: 1, Offset: a1Off, Width: 8, Value: 40},
		{Kind: state.AccessWrite, Region: 1, Offset: a0Off, Width: 8, Value: 42},
		{Kind: state.AccessRead, Region: 0, Offset: 0, Width: 8, Value: pc},
		{Kind: state.AccessWrite, Region: 0, Offset: 0, Width: 8, Value: pc + 4},
	}
	if diff := deep.Equal(j.Journal(), want); diff != nil {
		t.Errorf("journal mismatch: %v\njournal: %s", diff, spew.Sdump(j.Journal()))
	}
}

func TestInstrString(t *testing.T) {
	tests := []struct {
		ins  Instr
		want string
	}{
		{Instr{Op: OP_ADDI, Rd: registers.A0, Rs1: registers.Zero, Imm: -1}, "addi a0,zero,-1"},
		{Instr{Op: OP_XORI, Rd: registers.T1, Rs1: registers.T1, Imm: 255}, "xori t1,t1,255"},
		{Instr{Op: OP_LUI, Rd: registers.A0, Imm: 0x12345000}, "lui a0,0x12345"},
		{Instr{Op: OP_AUIPC, Rd: registers.S1, Imm: 0x1000}, "auipc s1,0x1"},
		{Instr{Op: OP_JAL, Rd: registers.RA, Imm: -100}, "jal ra,-100"},
		{Instr{Op: OP_JALR, Rd: registers.RA, Rs1: registers.A2, Imm: 8}, "jalr ra,8(a2)"},
		{Instr{Op: OP_BEQ, Rs1: registers.T1, Rs2: registers.T2, Imm: 16}, "beq t1,t2,16"},
		{Instr{Op: OP_BGEU, Rs1: registers.A0, Rs2: registers.A1, Imm: -8}, "bgeu a0,a1,-8"},
	}
	for _, test := range tests {
		if got := test.ins.String(); got != test.want {
			t.Errorf("String: got %q want %q", got, test.want)
		}
	}
}
