package mol

import (
	"strings"
	"testing"
)

func TestParseAtoms_BareArray(t *testing.T) {
	in := `[{"x":1,"y":2,"z":3,"chain":"A","resseq":5,"resname":"ala"}]`
	atoms, err := ParseAtoms(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseAtoms: %v", err)
	}
	if len(atoms) != 1 {
		t.Fatalf("len = %d, want 1", len(atoms))
	}
	a := atoms[0]
	if a.X != 1 || a.Y != 2 || a.Z != 3 {
		t.Errorf("coords = %v %v %v, want 1 2 3", a.X, a.Y, a.Z)
	}
	if a.ResName != "ALA" {
		t.Errorf("ResName = %q, want ALA (uppercased)", a.ResName)
	}
}

func TestParseAtoms_WrappedObject(t *testing.T) {
	in := `{"atoms":[{"x":0,"y":0,"z":0,"chain":"B","resseq":1,"resname":"GLY"}]}`
	atoms, err := ParseAtoms(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseAtoms: %v", err)
	}
	if len(atoms) != 1 || atoms[0].Chain != "B" {
		t.Errorf("atoms = %+v, want one atom on chain B", atoms)
	}
}

func TestParseAtoms_Defaults(t *testing.T) {
	in := `[{"x":0,"y":0,"z":0,"resseq":1}]`
	atoms, err := ParseAtoms(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseAtoms: %v", err)
	}
	if atoms[0].Chain != "_" {
		t.Errorf("Chain = %q, want _", atoms[0].Chain)
	}
	if atoms[0].ResName != "UNK" {
		t.Errorf("ResName = %q, want UNK", atoms[0].ResName)
	}
}

func TestParseAtoms_Garbage(t *testing.T) {
	if _, err := ParseAtoms(strings.NewReader("not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestResidueKeyLabel(t *testing.T) {
	k := ResidueKey{Chain: "A", Seq: 42, Name: "LEU"}
	if got := k.Label(); got != "LEU:A42" {
		t.Errorf("Label = %q, want LEU:A42", got)
	}
}

func TestAtomKey_Dedup(t *testing.T) {
	a1 := Atom{X: 0, Chain: "A", ResSeq: 7, ResName: "SER"}
	a2 := Atom{X: 5, Chain: "A", ResSeq: 7, ResName: "SER"}
	if a1.Key() != a2.Key() {
		t.Error("atoms of the same residue should share a key")
	}
}

func TestBounds(t *testing.T) {
	atoms := []Atom{
		{X: -1, Y: 2, Z: 3},
		{X: 4, Y: -5, Z: 6},
		{X: 0, Y: 0, Z: -9},
	}
	min, max := Bounds(atoms)
	if min != [3]float64{-1, -5, -9} {
		t.Errorf("min = %v, want [-1 -5 -9]", min)
	}
	if max != [3]float64{4, 2, 6} {
		t.Errorf("max = %v, want [4 2 6]", max)
	}
}

func TestBounds_Empty(t *testing.T) {
	min, max := Bounds(nil)
	if min != [3]float64{} || max != [3]float64{} {
		t.Errorf("empty bounds = %v %v, want zeros", min, max)
	}
}
