package molparser

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// Direction is one of the four compass slots around an atom.
type Direction string

const (
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirAbove Direction = "above"
	DirBelow Direction = "below"
)

// Directions lists all compass slots in canonical order.
var Directions = []Direction{DirLeft, DirRight, DirAbove, DirBelow}

// BondType is the order of a bond: single, double, or triple.
type BondType int

const (
	BondSingle BondType = iota + 1
	BondDouble
	BondTriple
)

func (b BondType) String() string {
	switch b {
	case BondSingle:
		return "single"
	case BondDouble:
		return "double"
	case BondTriple:
		return "triple"
	default:
		return "unknown"
	}
}

// Glyph returns the notation symbol for the bond type.
func (b BondType) Glyph() string {
	switch b {
	case BondSingle:
		return "-"
	case BondDouble:
		return "="
	case BondTriple:
		return "≡"
	default:
		return "?"
	}
}

// ConnKind discriminates the Connection tagged union.
type ConnKind string

const (
	ConnBond     ConnKind = "bond"
	ConnLonePair ConnKind = "lone_pair"
)

// Connection is a single directional slot entry on an atom: either a
// bond to another atom or a non-bonding lone pair. Kind determines
// which fields are populated.
type Connection struct {
	Dir    Direction
	Kind   ConnKind
	Bond   BondType // populated when Kind == ConnBond
	Target string   // target atom label, populated when Kind == ConnBond
	Pos    Position
}

// AtomSpec is one parsed atom statement: label, optional formal charge,
// and the ordered list of connection clauses. AtomSpecs are produced
// once per parse and never mutated.
type AtomSpec struct {
	Label   string // full label, e.g. "C2"
	Element string // element symbol portion, e.g. "C"
	Charge  int    // formal charge; 0 when the charge clause is absent
	Conns   []Connection
	Pos     Position
	Index   int // statement index within the document, for diagnostics
}

// Conn looks up the connection occupying the given direction slot.
// Returns the first match and true if the slot is occupied.
func (a *AtomSpec) Conn(dir Direction) (Connection, bool) {
	for _, c := range a.Conns {
		if c.Dir == dir {
			return c, true
		}
	}
	return Connection{}, false
}

// BondsTo returns all bond connections from this atom to the given label.
func (a *AtomSpec) BondsTo(label string) []Connection {
	var out []Connection
	for _, c := range a.Conns {
		if c.Kind == ConnBond && c.Target == label {
			out = append(out, c)
		}
	}
	return out
}

// Document is the complete set of atom statements of one molecule,
// indexed by label. The first declaration wins when a label repeats;
// repeats are reported by the duplicate_label rule.
type Document struct {
	Specs []*AtomSpec

	byLabel map[string]int // label -> index of first declaration in Specs
}

// NewDocument builds the label index over the given specs.
func NewDocument(specs []*AtomSpec) *Document {
	d := &Document{
		Specs:   specs,
		byLabel: make(map[string]int, len(specs)),
	}
	for i, s := range specs {
		if _, ok := d.byLabel[s.Label]; !ok {
			d.byLabel[s.Label] = i
		}
	}
	return d
}

// Atom returns the spec declared under the given label, or nil.
func (d *Document) Atom(label string) *AtomSpec {
	if i, ok := d.byLabel[label]; ok {
		return d.Specs[i]
	}
	return nil
}

// atomIndex returns the position in Specs of the first declaration of
// label, or -1.
func (d *Document) atomIndex(label string) int {
	if i, ok := d.byLabel[label]; ok {
		return i
	}
	return -1
}
