// Package molparser implements the Lewis structure notation: a textual
// format for organic molecules that records every atom (hydrogens and
// lone pairs included), bond order, 2D relative placement, and formal
// charge.
//
// Each statement describes one atom: a label, an optional formal
// charge, and up to four connection clauses, one per compass direction:
//
//	N1[left:-:C1, right:-:C2, below:-:H1, above::]
//
// Statements are separated by whitespace, semicolons, or newlines,
// interchangeably. Bonds are declared from both endpoints and must
// agree on bond order; lone pairs ('direction::') are unilateral.
//
// The package is structured as a hand-rolled recursive-descent parser
// with three layers:
//
//   - Lexer: converts raw bytes into a token stream.
//   - Parser: consumes tokens per the statement grammar and produces
//     AtomSpec records, recovering at statement boundaries on error.
//   - Builder/validator: resolves label references, enforces the
//     notation's consistency rules (label uniqueness, slot uniqueness,
//     reference closure, bond symmetry), and assembles the immutable
//     Molecule graph or a complete diagnostic set.
//
// Usage:
//
//	specs, perrs := molparser.Parse(src)
//	mol, diags, err := molparser.Build(specs)
//	if err != nil {
//	    // no molecule; diags holds every finding, not just the first
//	}
//	fmt.Println(mol.Formula(), mol.NetCharge())
package molparser
