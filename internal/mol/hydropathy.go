package mol

import "strings"

// residueCodes maps the 20 standard amino acids from their 3-letter
// PDB residue names to 1-letter codes.
var residueCodes = map[string]byte{
	"ALA": 'A',
	"ARG": 'R',
	"ASN": 'N',
	"ASP": 'D',
	"CYS": 'C',
	"GLU": 'E',
	"GLN": 'Q',
	"GLY": 'G',
	"HIS": 'H',
	"ILE": 'I',
	"LEU": 'L',
	"LYS": 'K',
	"MET": 'M',
	"PHE": 'F',
	"PRO": 'P',
	"SER": 'S',
	"THR": 'T',
	"TRP": 'W',
	"TYR": 'Y',
	"VAL": 'V',
}

// kyteDoolittle is the Kyte–Doolittle hydropathy index per 1-letter
// amino acid code. Positive values are hydrophobic.
var kyteDoolittle = map[byte]float64{
	'A': 1.8,
	'R': -4.5,
	'N': -3.5,
	'D': -3.5,
	'C': 2.5,
	'E': -3.5,
	'Q': -3.5,
	'G': -0.4,
	'H': -3.2,
	'I': 4.5,
	'L': 3.8,
	'K': -3.9,
	'M': 1.9,
	'F': 2.8,
	'P': -1.6,
	'S': -0.8,
	'T': -0.7,
	'W': -0.9,
	'Y': -1.3,
	'V': 4.2,
}

// OneLetter converts a 3-letter residue name to its 1-letter code.
// Non-standard residues (waters, ligands, UNK) return ok=false.
func OneLetter(resName string) (byte, bool) {
	c, ok := residueCodes[strings.ToUpper(resName)]
	return c, ok
}

// Hydropathy returns the Kyte–Doolittle value for a 3-letter residue
// name, or ok=false when the residue has no entry on the scale.
func Hydropathy(resName string) (float64, bool) {
	c, ok := OneLetter(resName)
	if !ok {
		return 0, false
	}
	v, ok := kyteDoolittle[c]
	return v, ok
}
