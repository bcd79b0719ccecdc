package molparser

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a validation diagnostic.
type Severity int

const (
	// Error means no molecule can be built from the document.
	Error Severity = iota
	// Warning means the molecule builds but is probably not what the
	// author intended.
	Warning
	// Info is an informational note.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Rule     string   // rule identifier (e.g., "asymmetric_bond")
	Severity Severity // ERROR, WARNING, or INFO
	Message  string   // human-readable description
	Label    string   // related atom label (optional)
	Bond     *BondRef // related bond as (from, to) (optional)
	Pos      Position // source position of the offending statement or clause
	Fix      string   // suggested fix (optional)
}

// BondRef identifies a bond by its endpoint labels.
type BondRef struct {
	From string
	To   string
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if d.Label != "" {
		fmt.Fprintf(&b, " (atom: %s)", d.Label)
	}
	if d.Bond != nil {
		fmt.Fprintf(&b, " (bond: %s ~ %s)", d.Bond.From, d.Bond.To)
	}
	if d.Pos.Line > 0 {
		fmt.Fprintf(&b, " at line %d, col %d", d.Pos.Line, d.Pos.Column)
	}
	if d.Fix != "" {
		fmt.Fprintf(&b, " -- fix: %s", d.Fix)
	}
	return b.String()
}

// Rule is the interface for a single validation rule.
type Rule interface {
	Name() string
	Apply(d *Document) []Diagnostic
}

// ValidationError is returned by Build when error-severity diagnostics
// exist. A failed build yields no molecule, only diagnostics.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	var msgs []string
	for _, d := range e.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return fmt.Sprintf("validation failed with %d error(s):\n  %s", len(e.Diagnostics), strings.Join(msgs, "\n  "))
}

// Validate runs all built-in rules (and any extra rules) against the
// document. It accumulates every independent finding rather than
// stopping at the first, so a hand-written document's problems all
// surface in one pass.
func Validate(specs []*AtomSpec, extraRules ...Rule) []Diagnostic {
	doc := NewDocument(specs)
	rules := builtInRules()
	rules = append(rules, extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(doc)...)
	}
	return diagnostics
}

// Build validates the atom specifications and, when no error-severity
// diagnostics exist, assembles the immutable molecule graph. On failure
// it returns a nil molecule, the full diagnostic set, and a
// *ValidationError wrapping the error-severity subset. Building is a
// pure function of its input: equal inputs yield structurally equal
// molecules.
func Build(specs []*AtomSpec, extraRules ...Rule) (*Molecule, []Diagnostic, error) {
	diagnostics := Validate(specs, extraRules...)

	var errors []Diagnostic
	for _, d := range diagnostics {
		if d.Severity == Error {
			errors = append(errors, d)
		}
	}
	if len(errors) > 0 {
		return nil, diagnostics, &ValidationError{Diagnostics: errors}
	}

	doc := NewDocument(specs)
	pairs, _ := pairBonds(doc)
	return newMolecule(doc, pairs), diagnostics, nil
}

// builtInRules returns the standard set of consistency rules.
func builtInRules() []Rule {
	return []Rule{
		duplicateLabelRule{},
		slotCollisionRule{},
		unknownReferenceRule{},
		asymmetricBondRule{},
	}
}

// --- Rule implementations ---

// duplicate_label: no two statements in one document may share a label.
type duplicateLabelRule struct{}

func (duplicateLabelRule) Name() string { return "duplicate_label" }

func (duplicateLabelRule) Apply(d *Document) []Diagnostic {
	first := make(map[string]*AtomSpec, len(d.Specs))
	var diags []Diagnostic
	for _, s := range d.Specs {
		prev, seen := first[s.Label]
		if !seen {
			first[s.Label] = s
			continue
		}
		diags = append(diags, Diagnostic{
			Rule:     "duplicate_label",
			Severity: Error,
			Message:  fmt.Sprintf("atom label %q is declared more than once (first declared at line %d)", s.Label, prev.Pos.Line),
			Label:    s.Label,
			Pos:      s.Pos,
			Fix:      "give each atom a distinct numeric suffix",
		})
	}
	return diags
}

// slot_collision: within one atom, each direction appears at most once.
// The four-direction enum already caps occupied slots at four.
type slotCollisionRule struct{}

func (slotCollisionRule) Name() string { return "slot_collision" }

func (slotCollisionRule) Apply(d *Document) []Diagnostic {
	var diags []Diagnostic
	for _, s := range d.Specs {
		seen := make(map[Direction]bool, len(s.Conns))
		for _, c := range s.Conns {
			if seen[c.Dir] {
				diags = append(diags, Diagnostic{
					Rule:     "slot_collision",
					Severity: Error,
					Message:  fmt.Sprintf("direction %q is occupied more than once on atom %q", c.Dir, s.Label),
					Label:    s.Label,
					Pos:      c.Pos,
					Fix:      "move one of the connections to a free direction",
				})
				continue
			}
			seen[c.Dir] = true
		}
	}
	return diags
}

// unknown_reference: every bond target must be declared somewhere in
// the document.
type unknownReferenceRule struct{}

func (unknownReferenceRule) Name() string { return "unknown_reference" }

func (unknownReferenceRule) Apply(d *Document) []Diagnostic {
	var diags []Diagnostic
	for _, s := range d.Specs {
		for _, c := range s.Conns {
			if c.Kind != ConnBond {
				continue
			}
			if d.Atom(c.Target) == nil {
				diags = append(diags, Diagnostic{
					Rule:     "unknown_reference",
					Severity: Error,
					Message:  fmt.Sprintf("bond from %q references undeclared atom %q", s.Label, c.Target),
					Label:    s.Label,
					Bond:     &BondRef{From: s.Label, To: c.Target},
					Pos:      c.Pos,
					Fix:      fmt.Sprintf("declare atom %q or fix the target label", c.Target),
				})
			}
		}
	}
	return diags
}

// asymmetric_bond: every bond declaration needs a reciprocal on the
// target atom with identical bond type. The reciprocal's direction is
// unconstrained; only the type must agree.
type asymmetricBondRule struct{}

func (asymmetricBondRule) Name() string { return "asymmetric_bond" }

func (asymmetricBondRule) Apply(d *Document) []Diagnostic {
	_, unmatched := pairBonds(d)

	var diags []Diagnostic
	for _, u := range unmatched {
		target := d.Atom(u.conn.Target)
		msg := fmt.Sprintf("%s bond from %q to %q has no reciprocal declaration on %q",
			u.conn.Bond, u.spec.Label, u.conn.Target, u.conn.Target)
		if target != nil {
			for _, back := range target.BondsTo(u.spec.Label) {
				if back.Bond != u.conn.Bond {
					msg = fmt.Sprintf("%s bond from %q to %q does not match the %s bond declared back from %q",
						u.conn.Bond, u.spec.Label, u.conn.Target, back.Bond, u.conn.Target)
					break
				}
			}
		}
		diags = append(diags, Diagnostic{
			Rule:     "asymmetric_bond",
			Severity: Error,
			Message:  msg,
			Label:    u.spec.Label,
			Bond:     &BondRef{From: u.spec.Label, To: u.conn.Target},
			Pos:      u.conn.Pos,
			Fix:      fmt.Sprintf("declare a %s bond from %q back to %q", u.conn.Bond, u.conn.Target, u.spec.Label),
		})
	}
	return diags
}
