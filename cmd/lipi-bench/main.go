// Command lipi-bench measures round-trip fidelity, coverage and throughput
// of the transliteration tables over a corpus directory.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	lipi "github.com/jamesainslie/go-lipi"
	"github.com/jamesainslie/go-lipi/internal/bench"
	"github.com/jamesainslie/go-lipi/tables"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	corpus    string
	tables    []string
	workers   int
	graphemes bool
	verbose   bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "lipi-bench",
		Short:        "Benchmark transliteration tables against a corpus",
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.corpus, "corpus", "c", "testdata/corpus", "directory containing .txt corpus files")
	flags.StringSliceVarP(&opts.tables, "tables", "t", nil, "tables to run (default: all built-in tables)")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "parallel workers per table (default: number of CPUs)")
	flags.BoolVar(&opts.graphemes, "graphemes", false, "tokenize by grapheme cluster")
	flags.BoolVar(&opts.verbose, "verbose", false, "log debug output to stderr")

	return cmd
}

func run(ctx context.Context, out, errOut io.Writer, opts *options) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	ids := tables.IDs()
	if len(opts.tables) > 0 {
		ids = ids[:0]
		for _, name := range opts.tables {
			id, err := tables.ParseID(name)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
	}

	docs, err := bench.LoadCorpus(opts.corpus)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}
	totalLines := lo.SumBy(docs, func(d *bench.Document) int { return len(d.Lines) })
	fmt.Fprintf(out, "Loaded %d documents (%d lines) from %s\n\n", len(docs), totalLines, opts.corpus)

	lipiOpts := []lipi.Option{lipi.WithLogger(logger), lipi.WithWorkers(opts.workers)}
	if opts.graphemes {
		lipiOpts = append(lipiOpts, lipi.WithGraphemes())
	}

	results, err := bench.Sweep(ctx, docs, ids, lipiOpts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, renderResults(results))
	if len(results) > 0 {
		best := results[0]
		fmt.Fprintf(out, "Most faithful: %s (%.1f%% of lines round-trip)\n",
			best.Table, 100*best.Metrics.LineFidelity())
	}
	return nil
}

func renderResults(results []bench.SweepResult) string {
	rows := lo.Map(results, func(r bench.SweepResult, _ int) []string {
		m := r.Metrics
		return []string{
			r.Table,
			strconv.FormatBool(r.Lossy),
			percent(m.LineFidelity()),
			percent(m.TokenFidelity()),
			percent(m.Coverage()),
			strconv.Itoa(m.Tokens),
			fmt.Sprintf("%.1f", m.Throughput()/1e6),
			m.Duration.Round(time.Microsecond).String(),
		}
	})

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	numeric := cell.Align(lipgloss.Right)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col >= 2:
				return numeric
			}
			return cell
		}).
		Headers("Table", "Lossy", "Lines", "Tokens", "Coverage", "Count", "MB/s", "Time").
		Rows(rows...).
		Render()
}

func percent(f float64) string {
	return fmt.Sprintf("%.1f%%", 100*f)
}
