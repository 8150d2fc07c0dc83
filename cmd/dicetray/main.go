package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/diceroll/dice"
	"github.com/lox/diceroll/internal/randutil"
	"github.com/lox/diceroll/internal/rolltable"
	"github.com/lox/diceroll/internal/tui"
)

type CLI struct {
	Seed    *int64 `env:"DICEROLL_SEED" help:"Random seed for reproducible rolls"`
	Table   string `short:"t" help:"HCL file with named roll presets" type:"path"`
	LogFile string `help:"Write debug logs to this file (the terminal belongs to the tray)"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dicetray"),
		kong.Description("An interactive dice tray for the terminal."),
		kong.UsageOnError(),
	)

	logger := log.New(io.Discard)
	if cli.LogFile != "" {
		logFile, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			ctx.Exit(1)
		}
		defer func() { _ = logFile.Close() }()

		logger = log.NewWithOptions(logFile, log.Options{
			Level:           log.DebugLevel,
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Prefix:          "MAIN",
		})
	}

	var src dice.Source
	if cli.Seed != nil {
		logger.Info("using seeded generator", "seed", *cli.Seed)
		src = randutil.New(*cli.Seed)
	} else {
		src = randutil.Crypto()
	}

	var table *rolltable.Table
	if cli.Table != "" {
		var err error
		table, err = rolltable.Load(cli.Table)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading preset table: %v\n", err)
			ctx.Exit(1)
		}
		if err := table.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error in preset table: %v\n", err)
			ctx.Exit(1)
		}
		logger.Info("loaded preset table", "file", cli.Table, "presets", len(table.Rolls))
	}

	model := tui.New(src, table, quartz.NewReal(), logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running tray: %v\n", err)
		ctx.Exit(1)
	}
}
