package part

import "errors"

var ErrNotFound = errors.New("part not found")
