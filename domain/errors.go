package domain

import "errors"

var (
	// ErrInternalServerError is returned when an unexpected fault occurs
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound is returned when a referenced entity is absent
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict is returned when a uniqueness constraint is violated
	ErrConflict = errors.New("your item already exists")
	// ErrForbidden is returned when the actor lacks ownership of the target
	ErrForbidden = errors.New("you are not allowed to do this")
	// ErrUnauthenticated is returned when no identity is present for an
	// action that requires one
	ErrUnauthenticated = errors.New("authentication required")
	// ErrInvalidOperation is returned for operations that are never valid,
	// such as following yourself
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrBadParamInput is returned when the given request parameter is not valid
	ErrBadParamInput = errors.New("given param is not valid")

	// ErrCacheMiss is used between the cache and repository layers only,
	// it must never reach the REST boundary
	ErrCacheMiss = errors.New("cache miss")
)
