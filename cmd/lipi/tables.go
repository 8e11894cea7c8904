package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-lipi/grapheme"
	"github.com/jamesainslie/go-lipi/tables"
)

func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the built-in tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var rows [][]string
			for _, id := range tables.IDs() {
				t, err := tables.Get(id)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					t.Name(),
					strconv.Itoa(t.Len()),
					strconv.Itoa(len(t.Conjuncts())),
					strconv.FormatBool(t.Lossy()),
					strconv.FormatBool(t.Involutive()),
				})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(),
				renderTable([]string{"Table", "Entries", "Conjuncts", "Lossy", "Involutive"}, rows))
			return err
		},
	}
}

func newTokenizeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize TEXT...",
		Short: "Show the tokens a table splits text into",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := opts.transliterator(cmd)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			tokens := tr.Tokenize(text)

			var rows [][]string
			for i, tok := range tokens {
				out, ok := tr.Table().Lookup(tok.Text)
				if !ok {
					out = tok.Text
				}
				rows = append(rows, []string{
					strconv.Itoa(i),
					tok.Text,
					fmt.Sprintf("%+q", tok.Text),
					fmt.Sprintf("%d-%d", tok.Start, tok.End),
					out,
				})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%d tokens, %d grapheme clusters\n",
				renderTable([]string{"#", "Token", "Codepoints", "Bytes", "Output"}, rows),
				len(tokens), grapheme.Count(tr.Table().Normalize(text)))
			return err
		},
	}
}

func newAuditCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "List entries that do not map back to themselves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr, err := opts.transliterator(cmd)
			if err != nil {
				return err
			}

			t := tr.Table()
			out := cmd.OutOrStdout()
			lossy := t.Audit()
			if len(lossy) == 0 {
				_, err := fmt.Fprintf(out, "%s: every entry round-trips\n", t.Name())
				return err
			}

			rows := make([][]string, 0, len(lossy))
			for _, p := range lossy {
				back, ok := t.Lookup(p.To())
				if !ok {
					back = "(unmapped)"
				}
				rows = append(rows, []string{p.From(), p.To(), back})
			}
			_, err = fmt.Fprintf(out, "%s: %d of %d entries do not round-trip\n%s\n",
				t.Name(), len(lossy), t.Len(),
				renderTable([]string{"From", "To", "To maps to"}, rows))
			return err
		},
	}
}
