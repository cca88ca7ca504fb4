package attractor

import "errors"

// Sentinel errors returned by the renderer.
var (
	// ErrUnknownFormula is returned when a request names a formula the
	// registry does not hold. It wraps formula.ErrNotFound.
	ErrUnknownFormula = errors.New("attractor: unknown formula")

	// ErrInvalidCanvas is returned for a non-positive canvas size.
	ErrInvalidCanvas = errors.New("attractor: invalid canvas")

	// ErrUnknownScaleMode is returned by ParseScaleMode.
	ErrUnknownScaleMode = errors.New("attractor: unknown scale mode")
)
