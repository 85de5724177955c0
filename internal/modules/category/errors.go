package category

import "errors"

var (
	ErrNotFound  = errors.New("category not found")
	ErrNameTaken = errors.New("category with this name already exists")
)
