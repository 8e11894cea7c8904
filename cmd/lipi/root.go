package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/unicode/norm"

	lipi "github.com/jamesainslie/go-lipi"
	"github.com/jamesainslie/go-lipi/tables"
)

type rootOptions struct {
	table     string
	file      string
	graphemes bool
	nfc       bool
	workers   int
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "lipi [TEXT...]",
		Short: "Transliterate Malayalam text between substitution scripts",
		Long: `lipi rewrites text through one of the built-in substitution tables
(brahmi, keelakam, moolabhadri, moolabhadri-legacy, navashashti) or a table file.
Text comes from the arguments, or from stdin one line at a time.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransliterate(cmd, opts, args)
		},
	}

	opts.bind(cmd.PersistentFlags())

	cmd.AddCommand(
		newTablesCmd(),
		newTokenizeCmd(opts),
		newAuditCmd(opts),
		newCompileCmd(),
		newExportCmd(opts),
		newBase62Cmd(),
		newBase95Cmd(),
		newGzipCmd(),
		newIDCmd(),
		newReverseCmd(),
	)

	return cmd
}

func (o *rootOptions) bind(flags *pflag.FlagSet) {
	flags.StringVarP(&o.table, "table", "t", tables.Brahmi.String(), "built-in table name")
	flags.StringVarP(&o.file, "file", "f", "", "table file (.yaml, .yml or binary); overrides --table")
	flags.BoolVar(&o.graphemes, "graphemes", false, "tokenize by grapheme cluster instead of codepoint")
	flags.BoolVar(&o.nfc, "nfc", false, "apply Unicode NFC before the table's own normalization")
	flags.IntVarP(&o.workers, "workers", "w", 0, "parallel workers for stdin input (default: number of CPUs)")
	flags.BoolVar(&o.verbose, "verbose", false, "log debug output to stderr")
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// transliterator builds the Transliterator selected by the flags.
func (o *rootOptions) transliterator(cmd *cobra.Command) (*lipi.Transliterator, error) {
	opts := []lipi.Option{
		lipi.WithLogger(o.logger(cmd.ErrOrStderr())),
		lipi.WithWorkers(o.workers),
	}
	if o.graphemes {
		opts = append(opts, lipi.WithGraphemes())
	}
	if o.nfc {
		opts = append(opts, lipi.WithUnicodeForm(norm.NFC))
	}

	if o.file != "" {
		return lipi.NewFromFile(o.file, opts...)
	}

	id, err := tables.ParseID(o.table)
	if err != nil {
		return nil, err
	}
	return lipi.New(id, opts...)
}

func runTransliterate(cmd *cobra.Command, opts *rootOptions, args []string) error {
	tr, err := opts.transliterator(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) > 0 {
		_, err := fmt.Fprintln(out, tr.Transliterate(strings.Join(args, " ")))
		return err
	}

	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	results, err := tr.TransliterateAll(cmd.Context(), lines)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(out)
	for _, r := range results {
		_, _ = w.WriteString(r)
		_ = w.WriteByte('\n')
	}
	return w.Flush()
}
