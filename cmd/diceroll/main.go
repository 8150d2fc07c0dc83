package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/diceroll/dice"
	"github.com/lox/diceroll/internal/randutil"
	"github.com/lox/diceroll/internal/rolltable"
)

type CLI struct {
	Notation []string `arg:"" help:"Dice to roll in NdM notation (e.g. 3d6), or @name presets" required:"true"`
	Complex  bool     `short:"c" help:"Print every rolled face instead of only the total"`
	Seed     *int64   `env:"DICEROLL_SEED" help:"Random seed for reproducible rolls"`
	Table    string   `short:"t" help:"HCL file with named roll presets" type:"path"`
	Debug    bool     `help:"Enable debug logging"`
}

var (
	// Style definitions
	notationStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	facesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("diceroll"),
		kong.Description("Roll dice written in standard notation, like 3d6."),
		kong.UsageOnError(),
	)

	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	level := log.WarnLevel
	if cli.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	src := newSource(cli.Seed, logger)

	args := cli.Notation
	if cli.Table != "" {
		table, err := rolltable.Load(cli.Table)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading preset table: %v\n", err)
			ctx.Exit(1)
		}
		if err := table.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error in preset table: %v\n", err)
			ctx.Exit(1)
		}
		logger.Debug("loaded preset table", "file", cli.Table, "presets", len(table.Rolls))

		args, err = table.Expand(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			ctx.Exit(1)
		}
	}

	// Parse every argument before rolling anything, reporting all failures.
	collections := make([]*dice.Dice[uint32], 0, len(args))
	failed := false
	for _, arg := range args {
		if strings.HasPrefix(arg, rolltable.Prefix) {
			fmt.Fprintf(os.Stderr, "Error: preset %s requires --table\n", arg)
			failed = true
			continue
		}
		d, err := dice.Parse[uint32](arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing dice: %v\n", err)
			failed = true
			continue
		}
		collections = append(collections, d)
	}
	if failed {
		ctx.Exit(1)
	}

	var combined *dice.Dice[uint32]
	for _, d := range collections {
		d.RollAll(src)
		logger.Debug("rolled", "notation", d.Notation(), "faces", d.Verbose(), "total", d.String())

		result := totalStyle.Render(d.String())
		if cli.Complex {
			result = facesStyle.Render(d.Verbose())
		}
		fmt.Printf("%s: %s\n", notationStyle.Render(d.Notation()), result)

		if combined == nil {
			combined = d
		} else {
			// Combine copies the rolled faces, so the grand total below is
			// the sum of the lines already printed.
			combined = combined.Combine(d)
		}
	}

	if len(collections) > 1 {
		fmt.Printf("%s: %s\n", notationStyle.Render(combined.Notation()), totalStyle.Render(combined.String()))
	}
}

// newSource picks the draw source: a deterministic generator when a seed was
// given, the operating system's entropy pool otherwise.
func newSource(seed *int64, logger *log.Logger) dice.Source {
	if seed != nil {
		logger.Debug("using seeded generator", "seed", *seed)
		return randutil.New(*seed)
	}
	return randutil.Crypto()
}
