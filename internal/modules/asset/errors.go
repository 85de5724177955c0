package asset

import "errors"

var (
	ErrNotFound  = errors.New("asset not found")
	ErrForbidden = errors.New("not authorized to access this asset")
)
