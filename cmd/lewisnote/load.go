package main

import (
	"fmt"
	"os"

	"github.com/emolina/lewisnote/molparser"
)

// loadMolecule reads, parses, and builds a notation file, printing
// every parse error and validation finding to stderr. It returns an
// error when anything blocks the build.
func loadMolecule(path string) (*molparser.Molecule, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading notation file: %w", err)
	}

	specs, parseErrs := molparser.Parse(src)
	for _, e := range parseErrs {
		fmt.Fprintf(os.Stderr, "[parse] %v\n", e)
	}

	mol, diags, buildErr := molparser.Build(specs)
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%s\n", d)
	}

	if len(parseErrs) > 0 {
		return nil, fmt.Errorf("%s: %d statement(s) failed to parse", path, len(parseErrs))
	}
	if buildErr != nil {
		// The individual diagnostics are already on stderr.
		return nil, fmt.Errorf("%s: molecule has blocking errors", path)
	}
	return mol, nil
}
