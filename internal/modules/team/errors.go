package team

import "errors"

var (
	ErrNotFound       = errors.New("team not found")
	ErrForbidden      = errors.New("not authorized to access this team")
	ErrUnknownMembers = errors.New("one or more team members do not exist")
	ErrNonTechnician  = errors.New("only technicians can be added to teams")
)
