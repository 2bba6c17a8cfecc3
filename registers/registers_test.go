package registers

import (
	"testing"

	"github.com/jmchacon/riscv64/state"
)

func managers() []struct {
	name string
	mgr  func() state.Manager
} {
	return []struct {
		name string
		mgr  func() state.Manager
	}{
		{"InMemory", state.NewInMemory},
		{"Journaling", func() state.Manager { return state.NewJournaling(state.NewInMemory()) }},
	}
}

func TestReadWrite(t *testing.T) {
	for _, b := range managers() {
		t.Run(b.name, func(t *testing.T) {
			x := New(b.mgr())
			for r := X0; r < NumRegisters; r++ {
				if got := x.Read(r); got != 0 {
					t.Errorf("%s not zero at reset: got %.16X", r, got)
				}
			}
			for r := X0; r < NumRegisters; r++ {
				x.Write(r, 0x100+uint64(r))
			}
			for r := X0; r < NumRegisters; r++ {
				if got, want := x.Read(r), 0x100+uint64(r); got != want {
					t.Errorf("%s: got %.16X want %.16X", r, got, want)
				}
			}
		})
	}
}

// The register file deliberately does not special-case x0. The decoder
// upholds the ISA convention; storage treats index 0 like any other.
func TestX0NotHardwired(t *testing.T) {
	x := New(state.NewInMemory())
	x.Write(X0, 0xFFFF)
	if got, want := x.Read(X0), uint64(0xFFFF); got != want {
		t.Errorf("x0: got %.16X want %.16X", got, want)
	}
}

func TestABINames(t *testing.T) {
	tests := []struct {
		reg  XRegister
		want string
	}{
		{X0, "zero"},
		{RA, "ra"},
		{SP, "sp"},
		{A0, "a0"},
		{A7, "a7"},
		{S11, "s11"},
		{T6, "t6"},
	}
	for _, test := range tests {
		if got := test.reg.String(); got != test.want {
			t.Errorf("register %d: got %q want %q", test.reg, got, test.want)
		}
	}
}
