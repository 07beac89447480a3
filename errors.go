package geodome

import "errors"

var (
	// ErrInvalidParameter is returned for a non-positive radius or frequency,
	// or a weld precision the welder cannot represent.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDegenerateWelding reports a mesh whose welding merged distinct
	// vertices or left seam vertices unmerged.
	ErrDegenerateWelding = errors.New("degenerate welding")
)
