package engine

import "pocketscan/internal/mol"

// Pocket is a scored binding-pocket candidate from the scientific
// pipeline. Populated by the scorer, immutable thereafter.
type Pocket struct {
	ID                int        `json:"id"`
	Center            [3]float64 `json:"center"`
	NSpheres          int        `json:"n_spheres"`
	AvgSphereRadius   float64    `json:"avg_sphere_radius"`
	Volume            float64    `json:"volume"`
	Residues          []string   `json:"residues"`
	AvgHydrophobicity float64    `json:"avg_hydrophobicity"`
	PolarFrac         float64    `json:"polar_frac"`
	SolventExposure   float64    `json:"solvent_exposure"`
	Druggability      float64    `json:"druggability"`
}

// Meta summarizes a pipeline run.
type Meta struct {
	AlphaSpheres int `json:"alpha_spheres"`
	Clusters     int `json:"clusters"`
}

// Result is the full output of the scientific pipeline, ranked by
// druggability descending.
type Result struct {
	Pockets []Pocket `json:"pockets"`
	Meta    Meta     `json:"meta"`
}

// PocketCount implements Detection.
func (r *Result) PocketCount() int { return len(r.Pockets) }

// GridPocket is a candidate pocket center from the grid-scan fallback.
// Score is a raw atom occupancy count: lower means emptier space and a
// better candidate, the inverse of the scientific pipeline's ordering.
type GridPocket struct {
	Center [3]float64 `json:"center"`
	Score  int        `json:"score"`
}

// GridResult is the output of the grid-scan fallback.
type GridResult struct {
	Pockets []GridPocket `json:"pockets"`
}

// PocketCount implements Detection.
func (r *GridResult) PocketCount() int { return len(r.Pockets) }

// Detection is the common output of a pocket-detection strategy. The
// concrete types stay separate because the two strategies score in
// opposite directions and must never be merged.
type Detection interface {
	PocketCount() int
}

// Strategy is the pocket-detection capability. Detector implements the
// scientific alpha-sphere pipeline; GridScanner is the cruder
// occupancy fallback for environments lacking the geometry stack.
type Strategy interface {
	DetectPockets(atoms []mol.Atom) (Detection, error)
}
