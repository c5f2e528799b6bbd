package engine

import (
	"math"

	"pocketscan/internal/mol"
)

// bondFeasibleDist is the distance under which two atoms are close
// enough to plausibly form a bond, Å.
const bondFeasibleDist = 1.9

// PairEnergyResult is a rough Lennard-Jones estimate for one atom
// pair.
type PairEnergyResult struct {
	Distance        float64 `json:"distance"`
	EstimatedEnergy float64 `json:"estimated_energy"`
	Feasible        bool    `json:"feasible"`
}

// PairEnergy estimates the interaction energy of an atom pair with a
// reduced-unit 12-6 Lennard-Jones potential. The distance is floored
// at 1e-6 to keep coincident atoms finite. Distance and energy are
// rounded to 4 and 6 decimals, matching the boundary output format.
func PairEnergy(a, b mol.Atom) PairEnergyResult {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	r := math.Sqrt(dx*dx + dy*dy + dz*dz)

	inv := 1 / math.Max(r, 1e-6)
	lj := 4 * (math.Pow(inv, 12) - math.Pow(inv, 6))

	return PairEnergyResult{
		Distance:        math.Round(r*1e4) / 1e4,
		EstimatedEnergy: math.Round(lj*1e6) / 1e6,
		Feasible:        r < bondFeasibleDist,
	}
}
