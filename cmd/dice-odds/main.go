package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/diceroll/dice"
	"github.com/lox/diceroll/internal/simulate"
	"github.com/lox/diceroll/internal/stats"
)

type CLI struct {
	Notation   []string `arg:"" help:"Dice expressions to estimate (e.g. 3d6 2d10)" required:"true"`
	Iterations int      `short:"i" help:"Number of Monte Carlo iterations per expression" default:"100000"`
	Workers    int      `short:"w" help:"Worker goroutines (0 = one per CPU)"`
	Seed       *int64   `env:"DICEROLL_SEED" help:"Random seed for reproducible results"`
	Debug      bool     `help:"Enable debug logging"`
}

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	notationStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

const (
	histogramBuckets  = 16
	histogramMaxWidth = 40
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dice-odds"),
		kong.Description("Estimate the outcome distribution of dice expressions by Monte Carlo simulation."),
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

	if cli.Iterations < 1 {
		fmt.Fprintf(os.Stderr, "Iterations must be at least 1\n")
		ctx.Exit(1)
	}

	// Parse every expression before simulating anything, reporting all failures.
	exprs := make([]string, 0, len(cli.Notation))
	failed := false
	for _, arg := range cli.Notation {
		d, err := dice.Parse[uint64](arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing dice: %v\n", err)
			failed = true
			continue
		}
		exprs = append(exprs, d.Notation())
	}
	if failed {
		ctx.Exit(1)
	}

	var seed int64
	if cli.Seed != nil {
		seed = *cli.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	logger.Debug("simulating",
		"expressions", len(exprs),
		"iterations", cli.Iterations,
		"workers", cli.Workers,
		"seed", seed)

	startTime := time.Now()
	totalTrials := 0
	for i, notation := range exprs {
		acc, err := simulate.Run(simulate.Config{
			Notation:   notation,
			Iterations: cli.Iterations,
			Workers:    cli.Workers,
			Seed:       seed + int64(i),
			Logger:     logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			ctx.Exit(1)
		}

		if i > 0 {
			fmt.Printf("\n")
		}
		displayResults(notation, acc)
		totalTrials += acc.Trials
	}
	duration := time.Since(startTime)

	fmt.Printf("\n%d iterations in %v\n", totalTrials, duration.Truncate(time.Millisecond))
}

func displayResults(notation string, acc *stats.Accumulator) {
	fmt.Printf("%s\n", notationStyle.Render(notation))

	low, high := acc.ConfidenceInterval95()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("min"), statStyle.Render(strconv.FormatUint(acc.MinTotal, 10)))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("max"), statStyle.Render(strconv.FormatUint(acc.MaxTotal, 10)))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("mean"), statStyle.Render(fmt.Sprintf("%.3f", acc.Mean())))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("median"), statStyle.Render(fmt.Sprintf("%.1f", acc.Median())))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("std dev"), statStyle.Render(fmt.Sprintf("%.3f", acc.StdDev())))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("95% CI"), statStyle.Render(fmt.Sprintf("[%.3f, %.3f]", low, high)))
	w.Flush()

	fmt.Printf("\n")
	displayHistogram(acc)
}

type histogramBucket struct {
	label string
	count int
}

// buildBuckets shapes an accumulator's counts into histogram rows: one bar
// per distinct total when the spread is narrow, otherwise at most
// histogramBuckets fixed-width ranges.
func buildBuckets(acc *stats.Accumulator) []histogramBucket {
	if acc.Trials == 0 {
		return nil
	}

	var buckets []histogramBucket
	span := acc.MaxTotal - acc.MinTotal + 1
	if span <= 2*histogramBuckets {
		// Narrow spread: one bar per total, gaps included.
		for t := acc.MinTotal; ; t++ {
			buckets = append(buckets, histogramBucket{
				label: strconv.FormatUint(t, 10),
				count: acc.Counts[t],
			})
			if t == acc.MaxTotal {
				break
			}
		}
		return buckets
	}

	// Ceiling division, written so spans near the top of uint64 can't
	// overflow into a zero width.
	width := span / histogramBuckets
	if span%histogramBuckets != 0 {
		width++
	}
	counts := make([]int, histogramBuckets)
	for t, n := range acc.Counts {
		counts[(t-acc.MinTotal)/width] += n
	}
	for i, n := range counts {
		lo := acc.MinTotal + uint64(i)*width
		if lo < acc.MinTotal || lo > acc.MaxTotal {
			// Past the last observed total, or wrapped around uint64.
			break
		}
		hi := lo + width - 1
		if hi < lo || hi > acc.MaxTotal {
			hi = acc.MaxTotal
		}
		buckets = append(buckets, histogramBucket{
			label: fmt.Sprintf("%d-%d", lo, hi),
			count: n,
		})
	}
	return buckets
}

func displayHistogram(acc *stats.Accumulator) {
	buckets := buildBuckets(acc)

	maxCount := 0
	for _, b := range buckets {
		if b.count > maxCount {
			maxCount = b.count
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, b := range buckets {
		barWidth := 0
		if maxCount > 0 {
			barWidth = b.count * histogramMaxWidth / maxCount
		}
		if b.count > 0 && barWidth == 0 {
			barWidth = 1
		}
		pct := float64(b.count) / float64(acc.Trials) * 100

		fmt.Fprintf(w, "%s\t%s\t%s\n",
			categoryStyle.Render(b.label),
			barStyle.Render(strings.Repeat("█", barWidth)),
			percentStyle.Render(fmt.Sprintf("%.1f%%", pct)))
	}
	w.Flush()
}
