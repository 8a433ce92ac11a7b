package domain

import "errors"

// Sentinel errors shared by repositories, services and controllers.
var (
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrInvalidID     = errors.New("invalid id")
	ErrDuplicateJoin = errors.New("user already joined this event")
)
