package molparser

import (
	"sort"
	"strconv"
	"strings"
)

// BondEnd is one endpoint of a merged bond: the atom it sits on and the
// direction slot it occupies there.
type BondEnd struct {
	Label string
	Dir   Direction
}

// Bond is one physical bond, merged from its two complementary
// one-sided declarations. A is the endpoint declared earlier in the
// document.
type Bond struct {
	A, B BondEnd
	Type BondType
}

// Other returns the endpoint opposite the given label. For a bond from
// an atom to itself it returns B.
func (b *Bond) Other(label string) BondEnd {
	if b.A.Label == label {
		return b.B
	}
	return b.A
}

// Atom is one validated node of a molecule graph.
type Atom struct {
	Label   string
	Element string
	Charge  int
	Conns   []Connection // declared slot entries, in statement order
	Pos     Position
}

// LonePairs returns the direction slots occupied by lone pairs.
func (a *Atom) LonePairs() []Direction {
	var out []Direction
	for _, c := range a.Conns {
		if c.Kind == ConnLonePair {
			out = append(out, c.Dir)
		}
	}
	return out
}

// Slots returns all occupied direction slots in declaration order.
func (a *Atom) Slots() []Direction {
	out := make([]Direction, 0, len(a.Conns))
	for _, c := range a.Conns {
		out = append(out, c.Dir)
	}
	return out
}

// Molecule is a validated molecular graph: atoms in declaration order
// and deduplicated bond edges. A Molecule is immutable once built;
// re-parsing produces a fresh one.
type Molecule struct {
	Atoms []*Atom
	Bonds []*Bond

	index map[string]*Atom
}

// AtomByLabel returns the atom with the given label, or nil.
func (m *Molecule) AtomByLabel(label string) *Atom {
	return m.index[label]
}

// BondsOf returns all bonds with an endpoint on the given atom.
func (m *Molecule) BondsOf(label string) []*Bond {
	var out []*Bond
	for _, b := range m.Bonds {
		if b.A.Label == label || b.B.Label == label {
			out = append(out, b)
		}
	}
	return out
}

// LonePairsOf returns the lone pair slots of the given atom, or nil if
// the atom does not exist.
func (m *Molecule) LonePairsOf(label string) []Direction {
	a := m.index[label]
	if a == nil {
		return nil
	}
	return a.LonePairs()
}

// LonePairCount returns the total number of lone pairs in the molecule.
func (m *Molecule) LonePairCount() int {
	n := 0
	for _, a := range m.Atoms {
		n += len(a.LonePairs())
	}
	return n
}

// NetCharge returns the sum of all formal charges.
func (m *Molecule) NetCharge() int {
	n := 0
	for _, a := range m.Atoms {
		n += a.Charge
	}
	return n
}

// Formula returns the molecular formula in Hill order: carbon first,
// hydrogen second, remaining elements alphabetically.
func (m *Molecule) Formula() string {
	counts := make(map[string]int)
	for _, a := range m.Atoms {
		counts[a.Element]++
	}

	var rest []string
	for el := range counts {
		if el != "C" && el != "H" {
			rest = append(rest, el)
		}
	}
	sort.Strings(rest)

	var order []string
	if counts["C"] > 0 {
		order = append(order, "C")
	}
	if counts["H"] > 0 {
		order = append(order, "H")
	}
	order = append(order, rest...)

	var sb strings.Builder
	for _, el := range order {
		sb.WriteString(el)
		if counts[el] > 1 {
			sb.WriteString(strconv.Itoa(counts[el]))
		}
	}
	return sb.String()
}

// oneSided is a bond declaration seen from one of its endpoints.
type oneSided struct {
	spec    *AtomSpec
	conn    Connection
	specIdx int
	connIdx int
}

// bondPair is two complementary one-sided declarations of one physical
// bond. a is the side declared earlier in the document.
type bondPair struct {
	a, b oneSided
}

// pairBonds matches one-sided bond declarations into physical bonds.
// Declarations are scanned in document order; each pairs with the first
// unconsumed reciprocal on its target atom that carries the same bond
// type. Declarations with no such reciprocal come back in unmatched.
// Declarations whose target atom does not exist are skipped entirely;
// the unknown_reference rule owns those.
func pairBonds(d *Document) (pairs []bondPair, unmatched []oneSided) {
	consumed := make(map[[2]int]bool)

	for si, spec := range d.Specs {
		for ci, conn := range spec.Conns {
			if conn.Kind != ConnBond {
				continue
			}
			key := [2]int{si, ci}
			if consumed[key] {
				continue
			}

			ti := d.atomIndex(conn.Target)
			if ti < 0 {
				continue
			}
			target := d.Specs[ti]

			matched := false
			for cj, rc := range target.Conns {
				if rc.Kind != ConnBond || rc.Target != spec.Label || rc.Bond != conn.Bond {
					continue
				}
				rkey := [2]int{ti, cj}
				if consumed[rkey] || rkey == key {
					continue
				}
				consumed[key] = true
				consumed[rkey] = true
				pairs = append(pairs, bondPair{
					a: oneSided{spec: spec, conn: conn, specIdx: si, connIdx: ci},
					b: oneSided{spec: target, conn: rc, specIdx: ti, connIdx: cj},
				})
				matched = true
				break
			}
			if !matched {
				unmatched = append(unmatched, oneSided{spec: spec, conn: conn, specIdx: si, connIdx: ci})
			}
		}
	}
	return pairs, unmatched
}

// newMolecule assembles the immutable graph from a validated document
// and its matched bond pairs. Each physical bond appears exactly once.
func newMolecule(d *Document, pairs []bondPair) *Molecule {
	m := &Molecule{index: make(map[string]*Atom, len(d.Specs))}

	for _, s := range d.Specs {
		conns := make([]Connection, len(s.Conns))
		copy(conns, s.Conns)
		a := &Atom{
			Label:   s.Label,
			Element: s.Element,
			Charge:  s.Charge,
			Conns:   conns,
			Pos:     s.Pos,
		}
		m.Atoms = append(m.Atoms, a)
		m.index[s.Label] = a
	}

	for _, pr := range pairs {
		m.Bonds = append(m.Bonds, &Bond{
			A:    BondEnd{Label: pr.a.spec.Label, Dir: pr.a.conn.Dir},
			B:    BondEnd{Label: pr.b.spec.Label, Dir: pr.b.conn.Dir},
			Type: pr.a.conn.Bond,
		})
	}

	return m
}
