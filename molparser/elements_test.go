package molparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsElement(t *testing.T) {
	for _, sym := range []string{"H", "C", "N", "O", "Cl", "Na", "Fe", "Og"} {
		assert.True(t, IsElement(sym), "symbol: %s", sym)
	}
	for _, sym := range []string{"", "Xx", "c", "CL", "Hh"} {
		assert.False(t, IsElement(sym), "symbol: %s", sym)
	}
}

func TestSplitLabel(t *testing.T) {
	tests := []struct {
		label   string
		element string
		suffix  string
		ok      bool
	}{
		{"C", "C", "", true},
		{"C2", "C", "2", true},
		{"Cl", "Cl", "", true},
		{"Cl3", "Cl", "3", true},
		{"H11", "H", "11", true},
		{"", "", "", false},
		{"c1", "", "", false},
		{"1C", "", "", false},
		{"C2a", "", "", false},
		{"CLa", "", "", false},
	}
	for _, tt := range tests {
		element, suffix, ok := SplitLabel(tt.label)
		assert.Equal(t, tt.ok, ok, "label: %q", tt.label)
		if tt.ok {
			assert.Equal(t, tt.element, element, "label: %q", tt.label)
			assert.Equal(t, tt.suffix, suffix, "label: %q", tt.label)
		}
	}
}
