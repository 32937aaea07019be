package raycast

import "errors"

// ErrConfiguration is wrapped by every constructor-time validation failure:
// bad cell size, empty or ragged grids, degenerate viewport geometry.
// Rendering must never start from an invalid configuration.
var ErrConfiguration = errors.New("invalid configuration")
