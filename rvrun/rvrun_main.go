// rvrun demonstrates the hart step loop: it builds a machine, executes
// a canned pre-decoded program and traces machine state while doing so.
// Fetching and decoding real instruction words sits outside this
// module, so the program below is supplied already decoded the same way
// a decoder would deliver it.
package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jmchacon/riscv64/devices"
	"github.com/jmchacon/riscv64/hart"
	"github.com/jmchacon/riscv64/registers"
	"github.com/jmchacon/riscv64/state"
)

// config mirrors the optional machine file.
type config struct {
	// MemLen is the main memory length in bytes.
	MemLen uint64 `toml:"mem_len"`
	// ResetPC overrides the reset program counter. Zero means the
	// default (start of main memory).
	ResetPC uint64 `toml:"reset_pc"`
	// MaxSteps bounds execution.
	MaxSteps int `toml:"max_steps"`
	// Journal selects the journaling backend and logs the number of
	// recorded accesses at exit.
	Journal bool `toml:"journal"`
}

func defaultConfig() config {
	return config{
		MemLen:   1 << 20,
		MaxSteps: 1000,
	}
}

// program is a countdown loop leaving the iteration count in a0. It
// never writes x0: the register file doesn't hard-wire it, the
// decoder convention does, and this host honors that convention.
func program() []hart.Instr {
	return []hart.Instr{
		{Op: hart.OP_ADDI, Rd: registers.T0, Rs1: registers.Zero, Imm: 10},
		{Op: hart.OP_ADDI, Rd: registers.A0, Rs1: registers.Zero, Imm: 0},
		{Op: hart.OP_BEQ, Rs1: registers.T0, Rs2: registers.Zero, Imm: 16},
		{Op: hart.OP_ADDI, Rd: registers.T0, Rs1: registers.T0, Imm: -1},
		{Op: hart.OP_ADDI, Rd: registers.A0, Rs1: registers.A0, Imm: 1},
		{Op: hart.OP_JAL, Rd: registers.T2, Imm: -12},
	}
}

func run(cfg config, verbose bool) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "rvrun",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	mgr := state.NewInMemory()
	var journal *state.Journaling
	if cfg.Journal {
		journal = state.NewJournaling(mgr)
		mgr = journal
	}

	h := hart.New(mgr, cfg.MemLen)
	if cfg.ResetPC != 0 {
		h.PC.Write(cfg.ResetPC)
	}

	prog := program()
	base := h.PC.Read()
	end := base + uint64(len(prog))*hart.InstrWidth
	logger.Info("machine up", "mem_len", cfg.MemLen, "devices_len", devices.Length, "pc", fmt.Sprintf("%#x", base))

	steps := 0
	for h.PC.Read() != end {
		if steps >= cfg.MaxSteps {
			return fmt.Errorf("step limit %d reached at PC %#x", cfg.MaxSteps, h.PC.Read())
		}
		pc := h.PC.Read()
		idx := (pc - base) / hart.InstrWidth
		if idx >= uint64(len(prog)) {
			return fmt.Errorf("PC %#x left the program image", pc)
		}
		ins := prog[idx]
		logger.Debug("step", "pc", fmt.Sprintf("%#x", pc), "instr", ins.String())
		if err := h.Step(ins); err != nil {
			return fmt.Errorf("step at PC %#x: %w", pc, err)
		}
		steps++
	}

	logger.Info("halted", "steps", steps, "pc", fmt.Sprintf("%#x", h.PC.Read()))
	for _, r := range []registers.XRegister{registers.T0, registers.T2, registers.A0} {
		logger.Info("register", "name", r.String(), "value", h.XRegs.Read(r))
	}
	if journal != nil {
		logger.Info("journal", "accesses", len(journal.Journal()))
	}
	return nil
}

func main() {
	var (
		configPath string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:   "rvrun",
		Short: "Run a canned program on the RV64 hart interpreter",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultConfig()
			if configPath != "" {
				if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
					return fmt.Errorf("loading %s: %w", configPath, err)
				}
			}
			return run(cfg, verbose)
		},
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a TOML machine config")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Trace every step")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
