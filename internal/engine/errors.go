package engine

// InputError reports malformed or insufficient atom data. Fatal to the
// call; the boundary surfaces it as a structured error value.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

// GeometryError reports a whole-input triangulation failure (fully
// degenerate point cloud). Fatal to the call.
type GeometryError struct {
	Msg string
}

func (e *GeometryError) Error() string { return e.Msg }

// ConfigError reports an invalid parameter combination, detected
// before any geometry work begins.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// Boundary error values. The messages are part of the caller contract
// and must not change.
var (
	ErrTooFewAtoms   = &InputError{Msg: "Too few atoms"}
	ErrTriangulation = &GeometryError{Msg: "Delaunay triangulation failed"}
)
