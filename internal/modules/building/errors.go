package building

import "errors"

var ErrNotFound = errors.New("building not found")
