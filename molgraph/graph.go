// Package molgraph exposes a validated molecule as a gonum undirected
// graph, with atoms as nodes and merged bonds as edges. It backs the
// connectivity checks that the notation itself does not require but
// that hand-written documents tend to get wrong, most often a hydrogen
// left floating after a renumbering.
package molgraph

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/emolina/lewisnote/molparser"
)

// Node wraps one atom as a gonum graph node. IDs are assigned in
// declaration order, so node ID order matches statement order.
type Node struct {
	*molparser.Atom
	id int64
}

func (n Node) ID() int64 { return n.id }

// Graph is an undirected view of a molecule's bond connectivity.
type Graph struct {
	g     *simple.UndirectedGraph
	nodes []Node
	ids   map[string]int64
}

// New builds the connectivity graph for a validated molecule. Parallel
// bonds between the same atom pair collapse to one edge; a bond from an
// atom to itself contributes no connectivity.
func New(m *molparser.Molecule) *Graph {
	g := &Graph{
		g:   simple.NewUndirectedGraph(),
		ids: make(map[string]int64, len(m.Atoms)),
	}
	for i, a := range m.Atoms {
		n := Node{Atom: a, id: int64(i)}
		g.nodes = append(g.nodes, n)
		g.ids[a.Label] = n.id
		g.g.AddNode(n)
	}
	for _, b := range m.Bonds {
		ua, ub := g.ids[b.A.Label], g.ids[b.B.Label]
		if ua == ub {
			continue
		}
		if g.g.HasEdgeBetween(ua, ub) {
			continue
		}
		g.g.SetEdge(g.g.NewEdge(g.nodes[ua], g.nodes[ub]))
	}
	return g
}

// Undirected returns the underlying gonum graph.
func (g *Graph) Undirected() graph.Undirected { return g.g }

// Label returns the atom label for a node ID.
func (g *Graph) Label(id int64) string {
	return g.nodes[id].Atom.Label
}

// Fragments returns the bond-connected components of the molecule as
// lists of atom labels. Labels within a fragment follow declaration
// order, and fragments are ordered by their first-declared atom. A
// fully connected molecule yields a single fragment.
func Fragments(m *molparser.Molecule) [][]string {
	if len(m.Atoms) == 0 {
		return nil
	}
	g := New(m)

	comps := topo.ConnectedComponents(g.g)
	for _, comp := range comps {
		sort.Slice(comp, func(i, j int) bool { return comp[i].ID() < comp[j].ID() })
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i][0].ID() < comps[j][0].ID() })

	out := make([][]string, 0, len(comps))
	for _, comp := range comps {
		labels := make([]string, 0, len(comp))
		for _, n := range comp {
			labels = append(labels, g.Label(n.ID()))
		}
		out = append(out, labels)
	}
	return out
}

// Diagnostics reports disconnected fragments as warning-severity
// findings, one per fragment beyond the first. The notation does not
// forbid fragments, so these never block a build.
func Diagnostics(m *molparser.Molecule) []molparser.Diagnostic {
	frags := Fragments(m)
	if len(frags) <= 1 {
		return nil
	}

	var diags []molparser.Diagnostic
	for _, frag := range frags[1:] {
		diags = append(diags, molparser.Diagnostic{
			Rule:     "disconnected_fragment",
			Severity: molparser.Warning,
			Message:  fmt.Sprintf("atoms %s share no bond path with %q", strings.Join(frag, ", "), frags[0][0]),
			Label:    frag[0],
			Pos:      m.AtomByLabel(frag[0]).Pos,
			Fix:      "bond the fragment to the rest of the molecule, or split the document",
		})
	}
	return diags
}
