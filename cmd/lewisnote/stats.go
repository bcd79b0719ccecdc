package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emolina/lewisnote/molgraph"
	"github.com/emolina/lewisnote/molparser"
)

var statsCmd = &cobra.Command{
	Use:   "stats <molecule.lew>",
	Short: "Print summary statistics for a molecule",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	mol, err := loadMolecule(args[0])
	if err != nil {
		return err
	}

	bondCounts := make(map[molparser.BondType]int)
	for _, b := range mol.Bonds {
		bondCounts[b.Type]++
	}

	fmt.Fprintf(os.Stdout, "Formula:    %s\n", mol.Formula())
	fmt.Fprintf(os.Stdout, "Net charge: %+d\n", mol.NetCharge())
	fmt.Fprintf(os.Stdout, "Atoms:      %d\n", len(mol.Atoms))
	fmt.Fprintf(os.Stdout, "Bonds:      %d (%d single, %d double, %d triple)\n",
		len(mol.Bonds), bondCounts[molparser.BondSingle], bondCounts[molparser.BondDouble], bondCounts[molparser.BondTriple])
	fmt.Fprintf(os.Stdout, "Lone pairs: %d\n", mol.LonePairCount())

	frags := molgraph.Fragments(mol)
	fmt.Fprintf(os.Stdout, "Fragments:  %d\n", len(frags))
	if len(frags) > 1 {
		for i, frag := range frags {
			fmt.Fprintf(os.Stdout, "  %d: %s\n", i+1, strings.Join(frag, ", "))
		}
	}
	return nil
}
