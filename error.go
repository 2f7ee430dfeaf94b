package distrib

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid arguments: expected no args, (n) or (min, max)")
	ErrEmptyOptions    = errors.New("options must not be empty")
	ErrEmptyWeights    = errors.New("weights must not be empty")
	ErrLengthMismatch  = errors.New("options and weights must have the same length")
)
