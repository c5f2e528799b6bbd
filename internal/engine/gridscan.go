package engine

import (
	"sort"

	"pocketscan/internal/mol"
)

// GridParams holds the tunables of the grid-scan fallback.
type GridParams struct {
	Spacing    float64 `json:"spacing"`     // grid step over the atom bounding box, Å
	Radius     float64 `json:"radius"`      // atom-count radius per grid point, Å
	Threshold  int     `json:"threshold"`   // max atom count for a candidate center
	MaxResults int     `json:"max_results"` // candidates returned, lowest counts first
}

// DefaultGridParams returns the canonical fallback parameters.
func DefaultGridParams() GridParams {
	return GridParams{
		Spacing:    3.0,
		Radius:     4.0,
		Threshold:  6,
		MaxResults: 10,
	}
}

// Validate rejects unusable fallback parameters.
func (p GridParams) Validate() error {
	if p.Spacing <= 0 {
		return &ConfigError{Msg: "spacing must be positive"}
	}
	if p.Radius <= 0 {
		return &ConfigError{Msg: "radius must be positive"}
	}
	if p.Threshold < 0 {
		return &ConfigError{Msg: "threshold must be non-negative"}
	}
	if p.MaxResults <= 0 {
		return &ConfigError{Msg: "max_results must be positive"}
	}
	return nil
}

// GridScanner is the brute-force fallback strategy: scan a regular
// grid over the atom bounding box and keep sparsely occupied grid
// points as candidate pocket centers. Scores are raw occupancy counts
// where lower is better; they are not comparable with druggability and
// the two strategies are never merged.
type GridScanner struct {
	params GridParams
}

// NewGridScanner validates params and returns a GridScanner.
func NewGridScanner(params GridParams) (*GridScanner, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &GridScanner{params: params}, nil
}

// DetectPockets scans the bounding box and returns the MaxResults
// lowest-count grid points, sorted ascending by count with scan order
// breaking ties. Atom counting is deliberately brute force: the
// fallback exists for environments without the geometry stack.
func (g *GridScanner) DetectPockets(atoms []mol.Atom) (Detection, error) {
	if len(atoms) == 0 {
		return nil, ErrTooFewAtoms
	}

	min, max := mol.Bounds(atoms)
	r2 := g.params.Radius * g.params.Radius

	var pockets []GridPocket
	for x := min[0]; x <= max[0]; x += g.params.Spacing {
		for y := min[1]; y <= max[1]; y += g.params.Spacing {
			for z := min[2]; z <= max[2]; z += g.params.Spacing {
				count := 0
				for _, a := range atoms {
					dx := a.X - x
					dy := a.Y - y
					dz := a.Z - z
					if dx*dx+dy*dy+dz*dz <= r2 {
						count++
					}
				}
				if count <= g.params.Threshold {
					pockets = append(pockets, GridPocket{
						Center: [3]float64{x, y, z},
						Score:  count,
					})
				}
			}
		}
	}

	sort.SliceStable(pockets, func(i, j int) bool {
		return pockets[i].Score < pockets[j].Score
	})
	if len(pockets) > g.params.MaxResults {
		pockets = pockets[:g.params.MaxResults]
	}
	if pockets == nil {
		pockets = []GridPocket{}
	}
	return &GridResult{Pockets: pockets}, nil
}
