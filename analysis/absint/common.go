package absint

import (
	"errors"
	"fmt"
)

var (
	// ErrFixpointDiverged is reported when a fixpoint computation
	// exceeds the configured iteration bound.
	ErrFixpointDiverged = errors.New("fixpoint computation exceeded the iteration bound")

	errPatternMatch = func(v interface{}) error {
		return fmt.Errorf("invalid pattern match: %v %T", v, v)
	}
)
