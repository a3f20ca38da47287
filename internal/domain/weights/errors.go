package weights

import "errors"

// Sentinel kinds for weighting errors.
var (
	ErrInvalidConfig  = errors.New("invalid weight configuration")
	ErrUnknownProfile = errors.New("unknown weight profile")
)
