package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the requester is not allowed to perform the requested action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates a missing or invalid identity.
var ErrUnauthorized = errors.New("unauthorized")
