package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/emolina/lewisnote/molgraph"
	"github.com/emolina/lewisnote/molparser"
)

var checkCmd = &cobra.Command{
	Use:   "check <molecule.lew>",
	Short: "Parse and validate a notation file",
	Long:  "Parse a notation file, run every consistency check, and report all findings at once.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("quiet", false, "Print findings only, no summary")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	file := args[0]
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose := viper.GetBool("verbose")

	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading notation file: %w", err)
	}

	specs, parseErrs := molparser.Parse(src)
	for _, e := range parseErrs {
		fmt.Fprintf(os.Stderr, "[parse] %v\n", e)
	}

	mol, diags, _ := molparser.Build(specs)
	if mol != nil {
		diags = append(diags, molgraph.Diagnostics(mol)...)
	}

	problems := len(parseErrs)
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%s\n", d)
		if d.Severity == molparser.Error {
			problems++
		}
	}

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found in %s", problems, file)
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "[check] %s: OK (%d atoms, %d bonds, %d lone pairs)\n",
			file, len(mol.Atoms), len(mol.Bonds), mol.LonePairCount())
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "[check] formula %s, net charge %+d\n", mol.Formula(), mol.NetCharge())
	}
	return nil
}
