package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-lipi/codec/base62"
	"github.com/jamesainslie/go-lipi/codec/base95"
	"github.com/jamesainslie/go-lipi/grapheme"
	"github.com/jamesainslie/go-lipi/randid"
	"github.com/jamesainslie/go-lipi/textgz"
)

// codecCmd builds a command with encode and decode subcommands that map
// each argument to one output line.
func codecCmd(use, short string, encode, decode func(string) (string, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}
	for _, sub := range []struct {
		name string
		fn   func(string) (string, error)
	}{
		{"encode", encode},
		{"decode", decode},
	} {
		cmd.AddCommand(&cobra.Command{
			Use:  sub.name + " VALUE...",
			Args: cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, arg := range args {
					out, err := sub.fn(arg)
					if err != nil {
						return err
					}
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
						return err
					}
				}
				return nil
			},
		})
	}
	return cmd
}

func newBase62Cmd() *cobra.Command {
	return codecCmd("base62", "Convert decimal integers to and from base 62",
		func(s string) (string, error) {
			v, ok := new(big.Int).SetString(s, 10)
			if !ok {
				return "", fmt.Errorf("not a decimal integer: %q", s)
			}
			return base62.EncodeBig(v), nil
		},
		func(s string) (string, error) {
			v, err := base62.DecodeBig(s)
			if err != nil {
				return "", err
			}
			return v.String(), nil
		},
	)
}

func newBase95Cmd() *cobra.Command {
	return codecCmd("base95", "Convert hex bytes to and from base 95",
		func(s string) (string, error) {
			data, err := hex.DecodeString(s)
			if err != nil {
				return "", fmt.Errorf("decoding hex: %w", err)
			}
			return base95.Encode(data)
		},
		func(s string) (string, error) {
			data, err := base95.Decode(s)
			if err != nil {
				return "", err
			}
			return hex.EncodeToString(data), nil
		},
	)
}

func newGzipCmd() *cobra.Command {
	return codecCmd("gz", "Pack text as gzip + base64, or unpack it", textgz.Encode, textgz.Decode)
}

func newIDCmd() *cobra.Command {
	var (
		steps  int
		useID  bool
		amount int
	)
	cmd := &cobra.Command{
		Use:   "id",
		Short: "Print random base-62 identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for range amount {
				var (
					id  string
					err error
				)
				if useID {
					id, err = randid.UUID()
				} else {
					id, err = randid.String(steps)
				}
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "s", randid.DefaultSteps, "53-bit random steps; the id has 8 characters per step")
	cmd.Flags().BoolVar(&useID, "uuid", false, "encode a random UUID instead")
	cmd.Flags().IntVarP(&amount, "count", "n", 1, "number of ids")
	return cmd
}

func newReverseCmd() *cobra.Command {
	var segments bool
	cmd := &cobra.Command{
		Use:   "reverse TEXT...",
		Short: "Reverse text by grapheme cluster",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				if segments {
					clusters := grapheme.Segment(arg)
					if _, err := fmt.Fprintf(out, "%d: %s\n", len(clusters), strings.Join(clusters, " | ")); err != nil {
						return err
					}
				}
				if _, err := fmt.Fprintln(out, grapheme.Reverse(arg)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&segments, "segments", false, "also print the clusters and their count")
	return cmd
}
