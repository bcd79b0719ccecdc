package molparser

// elementSymbols is the set of recognized element symbols. The notation
// takes the label's leading letters as the element; anything not listed
// here is rejected at parse time.
var elementSymbols = map[string]bool{
	// period 1
	"H": true, "He": true,
	// period 2
	"Li": true, "Be": true, "B": true, "C": true, "N": true, "O": true,
	"F": true, "Ne": true,
	// period 3
	"Na": true, "Mg": true, "Al": true, "Si": true, "P": true, "S": true,
	"Cl": true, "Ar": true,
	// period 4
	"K": true, "Ca": true, "Sc": true, "Ti": true, "V": true, "Cr": true,
	"Mn": true, "Fe": true, "Co": true, "Ni": true, "Cu": true, "Zn": true,
	"Ga": true, "Ge": true, "As": true, "Se": true, "Br": true, "Kr": true,
	// period 5
	"Rb": true, "Sr": true, "Y": true, "Zr": true, "Nb": true, "Mo": true,
	"Tc": true, "Ru": true, "Rh": true, "Pd": true, "Ag": true, "Cd": true,
	"In": true, "Sn": true, "Sb": true, "Te": true, "I": true, "Xe": true,
	// period 6
	"Cs": true, "Ba": true, "La": true, "Ce": true, "Pr": true, "Nd": true,
	"Pm": true, "Sm": true, "Eu": true, "Gd": true, "Tb": true, "Dy": true,
	"Ho": true, "Er": true, "Tm": true, "Yb": true, "Lu": true, "Hf": true,
	"Ta": true, "W": true, "Re": true, "Os": true, "Ir": true, "Pt": true,
	"Au": true, "Hg": true, "Tl": true, "Pb": true, "Bi": true, "Po": true,
	"At": true, "Rn": true,
	// period 7
	"Fr": true, "Ra": true, "Ac": true, "Th": true, "Pa": true, "U": true,
	"Np": true, "Pu": true, "Am": true, "Cm": true, "Bk": true, "Cf": true,
	"Es": true, "Fm": true, "Md": true, "No": true, "Lr": true, "Rf": true,
	"Db": true, "Sg": true, "Bh": true, "Hs": true, "Mt": true, "Ds": true,
	"Rg": true, "Cn": true, "Nh": true, "Fl": true, "Mc": true, "Lv": true,
	"Ts": true, "Og": true,
}

// IsElement reports whether sym is a recognized element symbol.
func IsElement(sym string) bool {
	return elementSymbols[sym]
}

// SplitLabel splits an atom label into its element symbol and numeric
// suffix, validating the label shape [A-Z][a-z]?[0-9]*. The suffix is
// returned as text; an empty suffix means the label has no number.
func SplitLabel(label string) (element, suffix string, ok bool) {
	if label == "" {
		return "", "", false
	}
	if label[0] < 'A' || label[0] > 'Z' {
		return "", "", false
	}
	i := 1
	if i < len(label) && label[i] >= 'a' && label[i] <= 'z' {
		i++
	}
	for j := i; j < len(label); j++ {
		if !isDigit(label[j]) {
			return "", "", false
		}
	}
	return label[:i], label[i:], true
}
