package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emolina/lewisnote/molparser"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <molecule.lew>",
	Short: "Reprint a notation file in canonical form",
	Long:  "Parse and validate a notation file, then print it in canonical form: one statement per line, single spaces after commas.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("compact", false, "Print on a single semicolon-separated line")

	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	compact, _ := cmd.Flags().GetBool("compact")

	mol, err := loadMolecule(args[0])
	if err != nil {
		return err
	}

	if compact {
		fmt.Fprintln(os.Stdout, molparser.WriteCompact(mol))
	} else {
		fmt.Fprintln(os.Stdout, molparser.Write(mol))
	}
	return nil
}
