// Package mol holds the molecular data model: immutable atom records,
// residue identity, and the hydropathy lookup tables used by the
// pocket scoring stage.
package mol

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Atom is a single atom from a structural model. Fields mirror the
// boundary input format and never change after load.
type Atom struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	Chain   string  `json:"chain"`
	ResSeq  int     `json:"resseq"`
	ResName string  `json:"resname"`
}

// Coords returns the atom position as a fixed-size array.
func (a Atom) Coords() [3]float64 {
	return [3]float64{a.X, a.Y, a.Z}
}

// ResidueKey identifies a residue once regardless of how many of its
// atoms appear in the model.
type ResidueKey struct {
	Chain string
	Seq   int
	Name  string
}

// Key returns the residue identity of the atom.
func (a Atom) Key() ResidueKey {
	return ResidueKey{Chain: a.Chain, Seq: a.ResSeq, Name: a.ResName}
}

// Label renders the key in RESNAME:CHAIN+SEQ form, e.g. "LEU:A42".
func (k ResidueKey) Label() string {
	return fmt.Sprintf("%s:%s%d", k.Name, k.Chain, k.Seq)
}

// atomList accepts either a bare JSON array of atoms or an object with
// an "atoms" field, which is what the upstream loaders emit.
type atomList struct {
	Atoms []Atom `json:"atoms"`
}

// ParseAtoms decodes an atom list from r. Missing chain and resname
// fields get the loader defaults "_" and "UNK"; residue names are
// uppercased so table lookups are case-insensitive.
func ParseAtoms(r io.Reader) ([]Atom, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read atoms: %w", err)
	}

	var atoms []Atom
	if err := json.Unmarshal(raw, &atoms); err != nil {
		var wrapped atomList
		if err2 := json.Unmarshal(raw, &wrapped); err2 != nil {
			return nil, fmt.Errorf("decode atoms: %w", err)
		}
		atoms = wrapped.Atoms
	}

	for i := range atoms {
		if atoms[i].Chain == "" {
			atoms[i].Chain = "_"
		}
		if atoms[i].ResName == "" {
			atoms[i].ResName = "UNK"
		}
		atoms[i].ResName = strings.ToUpper(atoms[i].ResName)
	}
	return atoms, nil
}

// Bounds returns the axis-aligned bounding box of the atom set.
// Zero-length input yields a degenerate box at the origin.
func Bounds(atoms []Atom) (min, max [3]float64) {
	if len(atoms) == 0 {
		return
	}
	min = atoms[0].Coords()
	max = min
	for _, a := range atoms[1:] {
		c := a.Coords()
		for i := 0; i < 3; i++ {
			if c[i] < min[i] {
				min[i] = c[i]
			}
			if c[i] > max[i] {
				max[i] = c[i]
			}
		}
	}
	return
}
