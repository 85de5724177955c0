package user

import "errors"

var (
	ErrNotFound   = errors.New("user not found")
	ErrForbidden  = errors.New("not authorized to access this user")
	ErrEmailTaken = errors.New("user with this email already exists")
)
