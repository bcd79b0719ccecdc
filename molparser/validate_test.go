package molparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diethylamine is the full worked example from the notation's
// documentation: sixteen atoms, fifteen single bonds, one lone pair.
const diethylamine = "N1[left:-:C1, right:-:C2, below:-:H1, above::];" +
	"C1[right:-:N1, left:-:C3, above:-:H2, below:-:H3];" +
	"C2[left:-:N1, right:-:C4, above:-:H7, below:-:H8];" +
	"C3[right:-:C1, left:-:H4, above:-:H5, below:-:H6];" +
	"C4[left:-:C2, right:-:H9, above:-:H10, below:-:H11];" +
	"H1[above:-:N1];H2[below:-:C1];H3[above:-:C1];H4[right:-:C3];" +
	"H5[below:-:C3];H6[above:-:C3];H7[below:-:C2];H8[above:-:C2];" +
	"H9[left:-:C4];H10[below:-:C4];H11[above:-:C4]"

// --- helpers ---

func mustBuild(t *testing.T, src string) *Molecule {
	t.Helper()
	mol, diags, err := Build(mustParse(t, src))
	require.NoError(t, err)
	for _, d := range diags {
		assert.NotEqual(t, Error, d.Severity, "unexpected error: %s", d)
	}
	require.NotNil(t, mol)
	return mol
}

func diagsByRule(diags []Diagnostic, rule string) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Rule == rule {
			out = append(out, d)
		}
	}
	return out
}

func hasRule(diags []Diagnostic, rule string) bool {
	return len(diagsByRule(diags, rule)) > 0
}

// --- clean builds ---

func TestBuildAmmonia(t *testing.T) {
	mol := mustBuild(t, ammonia)

	require.Len(t, mol.Atoms, 4)
	require.Len(t, mol.Bonds, 3)
	for _, b := range mol.Bonds {
		assert.Equal(t, BondSingle, b.Type)
	}

	n := mol.AtomByLabel("N1")
	require.NotNil(t, n)
	assert.Equal(t, []Direction{DirBelow}, n.LonePairs())
	assert.Equal(t, 1, mol.LonePairCount())
	assert.Equal(t, 0, mol.NetCharge())
	assert.Equal(t, "H3N", mol.Formula())

	assert.Len(t, mol.BondsOf("N1"), 3)
	assert.Len(t, mol.BondsOf("H2"), 1)
}

func TestBuildDiethylamine(t *testing.T) {
	mol := mustBuild(t, diethylamine)

	assert.Len(t, mol.Atoms, 16)
	assert.Len(t, mol.Bonds, 15)
	assert.Equal(t, "C4H11N", mol.Formula())
	assert.Equal(t, 0, mol.NetCharge())
	assert.Equal(t, 1, mol.LonePairCount())
}

func TestBuildDeduplicatesBondSides(t *testing.T) {
	// H2: both sides declare the bond, exactly one edge comes out.
	mol := mustBuild(t, "H1[right:-:H2];H2[left:-:H1]")
	require.Len(t, mol.Bonds, 1)

	b := mol.Bonds[0]
	assert.Equal(t, "H1", b.A.Label)
	assert.Equal(t, DirRight, b.A.Dir)
	assert.Equal(t, "H2", b.B.Label)
	assert.Equal(t, DirLeft, b.B.Dir)
	assert.Equal(t, "H2", b.Other("H1").Label)
}

func TestBuildDoubleBond(t *testing.T) {
	// Formaldehyde-ish fragment with a double bond.
	mol := mustBuild(t, "C1[above:=:O1];O1[below:=:C1, left::, right::]")
	require.Len(t, mol.Bonds, 1)
	assert.Equal(t, BondDouble, mol.Bonds[0].Type)
	assert.Len(t, mol.LonePairsOf("O1"), 2)
}

func TestBuildChargedAtom(t *testing.T) {
	// Ammonium: four bonds, no lone pair, +1 on nitrogen.
	mol := mustBuild(t, "N1{+1}[left:-:H1, right:-:H2, above:-:H3, below:-:H4];"+
		"H1[right:-:N1];H2[left:-:N1];H3[below:-:N1];H4[above:-:N1]")
	assert.Equal(t, 1, mol.AtomByLabel("N1").Charge)
	assert.Equal(t, 1, mol.NetCharge())
	assert.Empty(t, mol.LonePairsOf("N1"))
}

func TestBuildReciprocalDirectionNeedNotBeOpposite(t *testing.T) {
	// The notation never requires compass-opposite reciprocals; only the
	// bond type must agree.
	mol := mustBuild(t, "C1[right:-:H1];H1[above:-:C1]")
	require.Len(t, mol.Bonds, 1)
	assert.Equal(t, DirRight, mol.Bonds[0].A.Dir)
	assert.Equal(t, DirAbove, mol.Bonds[0].B.Dir)
}

func TestBuildIdempotence(t *testing.T) {
	specs := mustParse(t, diethylamine)

	m1, _, err := Build(specs)
	require.NoError(t, err)
	m2, _, err := Build(specs)
	require.NoError(t, err)

	assert.Equal(t, m1, m2)
}

// --- rule violations ---

func TestAsymmetricBondMissingReciprocal(t *testing.T) {
	specs := mustParse(t, "C1[right:-:H1];H1[below::]")
	mol, diags, err := Build(specs)

	assert.Nil(t, mol)
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	found := diagsByRule(diags, "asymmetric_bond")
	require.Len(t, found, 1)
	assert.Equal(t, &BondRef{From: "C1", To: "H1"}, found[0].Bond)
	assert.Contains(t, found[0].Message, "no reciprocal")
}

func TestAsymmetricBondTypeMismatch(t *testing.T) {
	specs := mustParse(t, "C1[right:=:C2];C2[left:-:C1]")
	mol, diags, err := Build(specs)

	assert.Nil(t, mol)
	require.Error(t, err)

	found := diagsByRule(diags, "asymmetric_bond")
	require.NotEmpty(t, found)
	assert.Contains(t, found[0].Message, "does not match")
}

func TestSlotCollision(t *testing.T) {
	specs := mustParse(t, "C1[above:-:H1, above:-:H2];H1[below:-:C1];H2[below:-:C1]")
	mol, diags, err := Build(specs)

	assert.Nil(t, mol)
	require.Error(t, err)

	found := diagsByRule(diags, "slot_collision")
	require.Len(t, found, 1)
	assert.Equal(t, "C1", found[0].Label)
	assert.Contains(t, found[0].Message, `"above"`)
}

func TestLonePairAndBondCollideOnOneSlot(t *testing.T) {
	specs := mustParse(t, "O1[above:-:H1, above::];H1[below:-:O1]")
	_, diags, err := Build(specs)
	require.Error(t, err)
	assert.True(t, hasRule(diags, "slot_collision"))
}

func TestUnknownReference(t *testing.T) {
	specs := mustParse(t, "C1[right:-:H1];H1[left:-:C1];H2[left:-:C9]")
	mol, diags, err := Build(specs)

	assert.Nil(t, mol)
	require.Error(t, err)

	// Reported even though C1 and H1 validate cleanly.
	found := diagsByRule(diags, "unknown_reference")
	require.Len(t, found, 1)
	assert.Equal(t, &BondRef{From: "H2", To: "C9"}, found[0].Bond)

	// The unknown target does not double-report as an asymmetric bond.
	assert.False(t, hasRule(diags, "asymmetric_bond"))
}

func TestDuplicateLabel(t *testing.T) {
	specs := mustParse(t, "O1[above::];O1[below::]")
	mol, diags, err := Build(specs)

	assert.Nil(t, mol)
	require.Error(t, err)

	found := diagsByRule(diags, "duplicate_label")
	require.Len(t, found, 1)
	assert.Equal(t, "O1", found[0].Label)
}

func TestValidateAccumulatesAllFindings(t *testing.T) {
	// One document, three independent problems: a slot collision, an
	// unknown reference, and an asymmetric bond.
	src := "C1[above:-:H1, above:-:H2, left:-:C9, right:=:N1];" +
		"H1[below:-:C1];H2[below:-:C1];N1[left:-:C1]"
	diags := Validate(mustParse(t, src))

	assert.True(t, hasRule(diags, "slot_collision"))
	assert.True(t, hasRule(diags, "unknown_reference"))
	assert.True(t, hasRule(diags, "asymmetric_bond"))
}

func TestValidateCleanDocument(t *testing.T) {
	diags := Validate(mustParse(t, diethylamine))
	assert.Empty(t, diags)
}

func TestValidationErrorMessage(t *testing.T) {
	_, _, err := Build(mustParse(t, "C1[right:-:H9]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed with 1 error(s)")
	assert.Contains(t, err.Error(), "unknown_reference")
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Rule:     "asymmetric_bond",
		Severity: Error,
		Message:  "bond has no reciprocal",
		Label:    "C1",
		Bond:     &BondRef{From: "C1", To: "H1"},
		Pos:      Position{Line: 3, Column: 7},
		Fix:      "declare the bond from both atoms",
	}
	s := d.String()
	assert.Contains(t, s, "[ERROR] asymmetric_bond")
	assert.Contains(t, s, "(atom: C1)")
	assert.Contains(t, s, "(bond: C1 ~ H1)")
	assert.Contains(t, s, "line 3, col 7")
	assert.Contains(t, s, "fix:")
}

func TestValidateWithCustomRule(t *testing.T) {
	custom := ruleFunc{
		name: "custom_check",
		fn: func(d *Document) []Diagnostic {
			return []Diagnostic{{Rule: "custom_check", Severity: Info, Message: "noted"}}
		},
	}
	diags := Validate(mustParse(t, ammonia), custom)
	assert.True(t, hasRule(diags, "custom_check"))
}

type ruleFunc struct {
	name string
	fn   func(*Document) []Diagnostic
}

func (r ruleFunc) Name() string { return r.name }

func (r ruleFunc) Apply(d *Document) []Diagnostic { return r.fn(d) }
