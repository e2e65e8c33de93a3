package staff

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeAccountNotFound   = "ACCOUNT_NOT_FOUND"
	textCodePasswordMismatch  = "PASSWORD_MISMATCH"
	textCodeAccountLocked     = "ACCOUNT_LOCKED"
	textCodeDuplicateUsername = "DUPLICATE_USERNAME"
	textCodeEmployeeNotFound  = "EMPLOYEE_NOT_FOUND"
	textCodeInvalidStatus     = "INVALID_EMPLOYEE_STATUS"
	textCodeMissingActor      = "MISSING_ACTOR"
	textCodeEmptyPassword     = "EMPTY_PASSWORD"
)

// ErrAccountNotFound is returned by Authenticate when no account exists for
// the submitted username.
var ErrAccountNotFound = goerrors.New("account not found", goerrors.CategoryAuth).
	WithTextCode(textCodeAccountNotFound).
	WithCode(goerrors.CodeUnauthorized)

// ErrPasswordMismatch is returned when the submitted password does not match
// the stored hash.
var ErrPasswordMismatch = goerrors.New("password mismatch", goerrors.CategoryAuth).
	WithTextCode(textCodePasswordMismatch).
	WithCode(goerrors.CodeUnauthorized)

// ErrAccountLocked is returned when credentials matched but the account
// status is disabled.
var ErrAccountLocked = goerrors.New("account locked", goerrors.CategoryAuth).
	WithTextCode(textCodeAccountLocked).
	WithCode(goerrors.CodeForbidden)

// ErrDuplicateUsername is returned when provisioning hits the unique
// username constraint.
var ErrDuplicateUsername = goerrors.New("username already exists", goerrors.CategoryConflict).
	WithTextCode(textCodeDuplicateUsername).
	WithCode(goerrors.CodeConflict)

// ErrEmployeeNotFound is returned when a lookup by id misses.
var ErrEmployeeNotFound = goerrors.New("employee not found", goerrors.CategoryNotFound).
	WithTextCode(textCodeEmployeeNotFound).
	WithCode(goerrors.CodeNotFound)

// ErrInvalidStatus is returned when a status toggle names a status outside
// the enabled/disabled pair.
var ErrInvalidStatus = goerrors.New("invalid employee status", goerrors.CategoryValidation).
	WithTextCode(textCodeInvalidStatus).
	WithCode(goerrors.CodeBadRequest)

// ErrMissingActor is returned when a mutating operation runs without an
// acting principal in the context.
var ErrMissingActor = goerrors.New("no acting principal in context", goerrors.CategoryBadInput).
	WithTextCode(textCodeMissingActor).
	WithCode(goerrors.CodeBadRequest)

// ErrNoEmptyString rejects empty plaintext passwords at the hasher
var ErrNoEmptyString = goerrors.New("password must not be empty", goerrors.CategoryValidation).
	WithTextCode(textCodeEmptyPassword).
	WithCode(goerrors.CodeBadRequest)
