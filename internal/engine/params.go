package engine

import "fmt"

// Params holds the tunables of the scientific pocket pipeline. All
// values have physically meaningful defaults; zero-value fields are
// not usable, start from DefaultParams.
type Params struct {
	MinRadius       float64 `json:"min_radius"`       // smallest alpha-sphere radius kept, Å
	MaxRadius       float64 `json:"max_radius"`       // largest alpha-sphere radius kept, Å
	Eps             float64 `json:"eps"`              // DBSCAN neighborhood radius over sphere centers, Å
	MinSamples      int     `json:"min_samples"`      // DBSCAN core-point neighbor threshold
	VoxelResolution float64 `json:"voxel_resolution"` // cubic voxel edge length for volume integration, Å
	ResidueRadius   float64 `json:"residue_radius"`   // atom-to-sphere-center cutoff for residue membership, Å
	ExposureRadius  float64 `json:"exposure_radius"`  // atom-count radius for solvent exposure, Å
}

// DefaultParams returns the canonical pipeline parameters.
func DefaultParams() Params {
	return Params{
		MinRadius:       1.8,
		MaxRadius:       6.0,
		Eps:             4.0,
		MinSamples:      6,
		VoxelResolution: 0.75,
		ResidueRadius:   4.5,
		ExposureRadius:  8.0,
	}
}

// Validate rejects parameter combinations the pipeline cannot run
// with. It is called before any geometry work.
func (p Params) Validate() error {
	if p.MinRadius <= 0 || p.MaxRadius <= 0 {
		return &ConfigError{Msg: "alpha-sphere radius bounds must be positive"}
	}
	if p.MinRadius > p.MaxRadius {
		return &ConfigError{Msg: fmt.Sprintf("min_radius %.3f exceeds max_radius %.3f", p.MinRadius, p.MaxRadius)}
	}
	if p.Eps <= 0 {
		return &ConfigError{Msg: "eps must be positive"}
	}
	if p.MinSamples <= 0 {
		return &ConfigError{Msg: "min_samples must be positive"}
	}
	if p.VoxelResolution <= 0 {
		return &ConfigError{Msg: "voxel_resolution must be positive"}
	}
	if p.ResidueRadius <= 0 {
		return &ConfigError{Msg: "residue_radius must be positive"}
	}
	if p.ExposureRadius <= 0 {
		return &ConfigError{Msg: "exposure_radius must be positive"}
	}
	return nil
}
