// Package engine implements the pocket-detection pipeline: alpha-sphere
// construction over a Delaunay tetrahedralization, density clustering
// of sphere centers, per-cluster scoring, and druggability ranking,
// plus the grid-scan fallback strategy.
package engine

import (
	"log"

	"pocketscan/internal/geometry"
	"pocketscan/internal/mol"
	"pocketscan/internal/spatial"
)

// Detector is the scientific pocket-detection strategy. It is
// stateless across calls; a single Detector may serve independent
// molecules from independent goroutines.
type Detector struct {
	params Params
}

// NewDetector validates params and returns a Detector.
func NewDetector(params Params) (*Detector, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Detector{params: params}, nil
}

// DetectPockets runs the full pipeline on one molecule. The returned
// value is always well-shaped: either a complete *Result or a typed
// error, never a half-populated result.
func (d *Detector) DetectPockets(atoms []mol.Atom) (Detection, error) {
	if len(atoms) < 4 {
		return nil, ErrTooFewAtoms
	}

	coords := make([]geometry.Vec3, len(atoms))
	for i, a := range atoms {
		coords[i] = a.Coords()
	}

	// Length is checked above, so the only failure mode left is a
	// fully degenerate point cloud.
	cells, err := geometry.Tetrahedralize(coords)
	if err != nil {
		return nil, ErrTriangulation
	}

	spheres := geometry.AlphaSpheres(coords, cells, d.params.MinRadius, d.params.MaxRadius)
	if len(spheres) == 0 {
		return &Result{Pockets: []Pocket{}, Meta: Meta{AlphaSpheres: 0, Clusters: 0}}, nil
	}

	centers := make([]geometry.Vec3, len(spheres))
	for i, sp := range spheres {
		centers[i] = sp.Center
	}

	// Both indexes are built once and only read afterwards.
	atomIdx := spatial.NewIndex(coords)
	sphereIdx := spatial.NewIndex(centers)

	labels, clusters := clusterSpheres(sphereIdx, centers, d.params.Eps, d.params.MinSamples)
	log.Printf("[DEBUG] detect: atoms=%d cells=%d spheres=%d clusters=%d",
		len(atoms), len(cells), len(spheres), clusters)

	members := make([][]int, clusters)
	for i, l := range labels {
		if l == noiseLabel {
			continue
		}
		members[l] = append(members[l], i)
	}

	sc := &scorer{
		params:    d.params,
		atoms:     atoms,
		atomIdx:   atomIdx,
		spheres:   spheres,
		sphereIdx: sphereIdx,
		labels:    labels,
	}

	pockets := make([]Pocket, 0, clusters)
	for id := 0; id < clusters; id++ {
		pockets = append(pockets, sc.scorePocket(id, members[id]))
	}

	return rankPockets(pockets, Meta{AlphaSpheres: len(spheres), Clusters: clusters}), nil
}
