package engine

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"pocketscan/internal/mol"
)

// tetraAtoms returns four atoms at the vertices of a regular
// tetrahedron with edge 3.0, whose circumsphere radius is
// 3·√6/4 ≈ 1.837.
func tetraAtoms() []mol.Atom {
	s := 3.0 / (2 * math.Sqrt2)
	return []mol.Atom{
		{X: s, Y: s, Z: s, Chain: "A", ResSeq: 1, ResName: "ALA"},
		{X: s, Y: -s, Z: -s, Chain: "A", ResSeq: 2, ResName: "GLY"},
		{X: -s, Y: s, Z: -s, Chain: "A", ResSeq: 3, ResName: "LEU"},
		{X: -s, Y: -s, Z: s, Chain: "A", ResSeq: 4, ResName: "VAL"},
	}
}

// randomAtoms returns a reproducible cloud of n atoms inside a cubic
// box, with residue names cycling through a few known amino acids.
func randomAtoms(seed int64, n int, box float64) []mol.Atom {
	names := []string{"ALA", "LEU", "SER", "VAL", "ASP", "PHE"}
	rng := rand.New(rand.NewSource(seed))
	atoms := make([]mol.Atom, n)
	for i := range atoms {
		atoms[i] = mol.Atom{
			X:       rng.Float64() * box,
			Y:       rng.Float64() * box,
			Z:       rng.Float64() * box,
			Chain:   "A",
			ResSeq:  i/3 + 1,
			ResName: names[i%len(names)],
		}
	}
	return atoms
}

func TestDetectPockets_TooFewAtoms(t *testing.T) {
	d, err := NewDetector(DefaultParams())
	if err != nil {
		t.Fatalf("NewDetector: %v", err)
	}

	_, err = d.DetectPockets(tetraAtoms()[:3])
	if err == nil {
		t.Fatal("expected error for 3 atoms")
	}
	if err.Error() != "Too few atoms" {
		t.Errorf("error = %q, want %q", err.Error(), "Too few atoms")
	}
	if _, ok := err.(*InputError); !ok {
		t.Errorf("error type = %T, want *InputError", err)
	}
}

func TestDetectPockets_CoplanarAtoms(t *testing.T) {
	d, _ := NewDetector(DefaultParams())
	atoms := []mol.Atom{
		{X: 0, Y: 0, Z: 0},
		{X: 5, Y: 0, Z: 0},
		{X: 0, Y: 5, Z: 0},
		{X: 5, Y: 5, Z: 0},
		{X: 2.5, Y: 2.5, Z: 0},
	}

	_, err := d.DetectPockets(atoms)
	if err == nil {
		t.Fatal("expected error for coplanar atoms")
	}
	if err.Error() != "Delaunay triangulation failed" {
		t.Errorf("error = %q, want %q", err.Error(), "Delaunay triangulation failed")
	}
	if _, ok := err.(*GeometryError); !ok {
		t.Errorf("error type = %T, want *GeometryError", err)
	}
}

func TestDetectPockets_SingleTetrahedron(t *testing.T) {
	d, _ := NewDetector(DefaultParams())

	det, err := d.DetectPockets(tetraAtoms())
	if err != nil {
		t.Fatalf("DetectPockets: %v", err)
	}
	res := det.(*Result)

	// One alpha-sphere (radius ≈ 1.837 is inside [1.8, 6.0]), but a
	// single sphere can never reach min_samples, so it stays noise.
	if res.Meta.AlphaSpheres != 1 {
		t.Errorf("alpha_spheres = %d, want 1", res.Meta.AlphaSpheres)
	}
	if res.Meta.Clusters != 0 {
		t.Errorf("clusters = %d, want 0", res.Meta.Clusters)
	}
	if len(res.Pockets) != 0 {
		t.Errorf("pockets = %d, want 0", len(res.Pockets))
	}
}

func TestDetectPockets_NoSurvivingSpheres(t *testing.T) {
	params := DefaultParams()
	params.MinRadius = 2.0 // excludes the ≈1.837 circumsphere
	d, err := NewDetector(params)
	if err != nil {
		t.Fatalf("NewDetector: %v", err)
	}

	det, err := d.DetectPockets(tetraAtoms())
	if err != nil {
		t.Fatalf("DetectPockets: %v", err)
	}
	res := det.(*Result)
	if res.Meta.AlphaSpheres != 0 || res.Meta.Clusters != 0 || len(res.Pockets) != 0 {
		t.Errorf("result = %+v, want empty with alpha_spheres = 0", res)
	}
}

func TestDetectPockets_Properties(t *testing.T) {
	d, _ := NewDetector(DefaultParams())
	atoms := randomAtoms(11, 60, 14)

	det, err := d.DetectPockets(atoms)
	if err != nil {
		t.Fatalf("DetectPockets: %v", err)
	}
	res := det.(*Result)

	if res.Meta.AlphaSpheres == 0 {
		t.Fatal("expected alpha-spheres from a dense random cloud")
	}
	if len(res.Pockets) != res.Meta.Clusters {
		t.Errorf("pockets = %d, clusters = %d, want equal", len(res.Pockets), res.Meta.Clusters)
	}

	for i, p := range res.Pockets {
		if p.Druggability < 0 || p.Druggability > 1 {
			t.Errorf("pocket %d druggability = %v outside [0,1]", i, p.Druggability)
		}
		if p.PolarFrac < 0 || p.PolarFrac > 1 {
			t.Errorf("pocket %d polar_frac = %v outside [0,1]", i, p.PolarFrac)
		}
		if p.NSpheres < 1 {
			t.Errorf("pocket %d has no member spheres", i)
		}
		if p.Volume < 0 {
			t.Errorf("pocket %d volume = %v negative", i, p.Volume)
		}
		if i > 0 && res.Pockets[i-1].Druggability < p.Druggability {
			t.Errorf("pockets not sorted by druggability descending at %d", i)
		}
	}
}

func TestDetectPockets_Idempotent(t *testing.T) {
	d, _ := NewDetector(DefaultParams())
	atoms := randomAtoms(23, 50, 12)

	first, err := d.DetectPockets(atoms)
	if err != nil {
		t.Fatalf("DetectPockets: %v", err)
	}
	second, err := d.DetectPockets(atoms)
	if err != nil {
		t.Fatalf("DetectPockets (repeat): %v", err)
	}

	j1, _ := json.Marshal(first)
	j2, _ := json.Marshal(second)
	if string(j1) != string(j2) {
		t.Error("identical input produced different results")
	}
}

func TestNewDetector_RejectsBadParams(t *testing.T) {
	params := DefaultParams()
	params.MinRadius = 7.0 // above MaxRadius
	if _, err := NewDetector(params); err == nil {
		t.Error("expected error for min_radius > max_radius")
	}
}
