package molparser

import (
	"fmt"
	"strings"
)

// Write renders a molecule back to canonical notation text, one
// statement per line. The output parses back to a structurally equal
// molecule.
func Write(m *Molecule) string {
	return write(m, "\n")
}

// WriteCompact renders a molecule on a single line with semicolon
// separators.
func WriteCompact(m *Molecule) string {
	return write(m, "; ")
}

func write(m *Molecule, sep string) string {
	stmts := make([]string, 0, len(m.Atoms))
	for _, a := range m.Atoms {
		stmts = append(stmts, formatAtom(a))
	}
	return strings.Join(stmts, sep)
}

func formatAtom(a *Atom) string {
	var sb strings.Builder
	sb.WriteString(a.Label)
	if a.Charge != 0 {
		fmt.Fprintf(&sb, "{%+d}", a.Charge)
	}
	sb.WriteByte('[')
	for i, c := range a.Conns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatConn(c))
	}
	sb.WriteByte(']')
	return sb.String()
}

func formatConn(c Connection) string {
	if c.Kind == ConnLonePair {
		return string(c.Dir) + "::"
	}
	return string(c.Dir) + ":" + c.Bond.Glyph() + ":" + c.Target
}
