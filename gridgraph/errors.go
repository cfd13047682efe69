package gridgraph

import "errors"

var (
	// ErrOutOfBounds indicates a coordinate outside [0,N)×[0,N).
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrInvalidStatus indicates a Status value outside the declared set.
	ErrInvalidStatus = errors.New("gridgraph: invalid cell status")
)
