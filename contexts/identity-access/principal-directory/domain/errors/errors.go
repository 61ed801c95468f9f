package errors

import "errors"

var (
	ErrInvalidPrincipal   = errors.New("invalid principal request")
	ErrPrincipalNotFound  = errors.New("principal not found")
	ErrDuplicatePrincipal = errors.New("principal already exists")
	ErrUnknownRole        = errors.New("unknown role")
	ErrUnknownTier        = errors.New("unknown tier")
	ErrPrincipalInactive  = errors.New("principal inactive")
	ErrCreationNotAllowed = errors.New("principal may not create listings")
)
