package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-lipi/tables"
	"github.com/jamesainslie/go-lipi/translit"
)

func newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile IN OUT",
		Short: "Validate a table file and convert it between YAML and binary",
		Long: `compile loads IN, checks that it compiles, and writes it to OUT.
The format of each file follows its extension: .yaml or .yml for YAML,
anything else for the binary format.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := translit.LoadDefinition(args[0])
			if err != nil {
				return err
			}
			t, err := translit.Compile(def)
			if err != nil {
				return err
			}
			if err := translit.SaveDefinition(args[1], def); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries, %d conjuncts -> %s\n",
				t.Name(), t.Len(), len(t.Conjuncts()), args[1])
			return err
		},
	}
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export OUT",
		Short: "Write a built-in table to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := tables.ParseID(opts.table)
			if err != nil {
				return err
			}
			def, _ := tables.Definition(id)
			if err := translit.SaveDefinition(args[0], def); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", def.Name, args[0])
			return err
		},
	}
}
