package molparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reparse runs written text back through the full pipeline.
func reparse(t *testing.T, src string) *Molecule {
	t.Helper()
	return mustBuild(t, src)
}

func TestWriteAmmonia(t *testing.T) {
	mol := mustBuild(t, ammonia)
	out := Write(mol)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "N1[left:-:H1, right:-:H2, above:-:H3, below::]", lines[0])
	assert.Equal(t, "H1[right:-:N1]", lines[1])
}

func TestWriteCharge(t *testing.T) {
	mol := mustBuild(t, "N1{+1}[above:-:H1];H1[below:-:N1];O1{-2}[left::, right::]")
	out := Write(mol)
	assert.Contains(t, out, "N1{+1}[")
	assert.Contains(t, out, "O1{-2}[")
}

func TestWriteBondGlyphs(t *testing.T) {
	mol := mustBuild(t, "C1[right:=:O1, left:≡:N1];O1[left:=:C1];N1[right:≡:C1]")
	out := Write(mol)
	assert.Contains(t, out, "right:=:O1")
	assert.Contains(t, out, "left:≡:N1")
}

func TestWriteRoundTrip(t *testing.T) {
	for _, src := range []string{ammonia, diethylamine} {
		m1 := mustBuild(t, src)
		out := Write(m1)
		m2 := reparse(t, out)
		assert.Equal(t, out, Write(m2), "round trip changed the canonical text")
		assert.Equal(t, len(m1.Bonds), len(m2.Bonds))
		assert.Equal(t, m1.Formula(), m2.Formula())
		assert.Equal(t, m1.NetCharge(), m2.NetCharge())
	}
}

func TestWriteCompactParsesEqual(t *testing.T) {
	mol := mustBuild(t, diethylamine)
	compact := WriteCompact(mol)

	assert.NotContains(t, compact, "\n")
	m2 := reparse(t, compact)
	assert.Equal(t, Write(mol), Write(m2))
}
