package staff

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
)

// Auther verifies login attempts against the account store. It performs a
// single read and has no other side effects: no lockout counters, no token
// issuance.
type Auther struct {
	store  EmployeeFinder
	hasher PasswordHasher
	logger Logger
}

// NewAuthenticator returns a new Authenticator backed by the given store
func NewAuthenticator(store EmployeeFinder) *Auther {
	return &Auther{
		store:  store,
		hasher: &BcryptHasher{},
		logger: defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	return s
}

// WithHasher sets the hasher used to compare submitted passwords. It must
// match the hasher used at provisioning.
func (s *Auther) WithHasher(hasher PasswordHasher) *Auther {
	s.hasher = hasher
	return s
}

// Authenticate validates a login attempt. The checks run strictly in the
// order: account existence, credential match, lock status. The lock check
// runs only after the credential is proven correct, so each failure variant
// reveals no more than its own condition.
func (s *Auther) Authenticate(ctx context.Context, username, password string) (*Employee, error) {
	employee, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if repository.IsRecordNotFound(err) || goerrors.IsNotFound(err) {
			return nil, ErrAccountNotFound
		}
		s.logger.Error("Authenticate lookup error", "error", err)
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve account during verification")
	}

	if err := s.hasher.Compare(password, employee.PasswordHash); err != nil {
		if errors.Is(err, ErrPasswordMismatch) {
			return nil, ErrPasswordMismatch
		}
		s.logger.Error("Authenticate compare error", "error", err)
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to compare password hash")
	}

	employee.EnsureStatus()
	if employee.Status == EmployeeStatusDisabled {
		s.logger.Warn("Authenticate blocked, account disabled", "username", username)
		return nil, ErrAccountLocked
	}

	return employee, nil
}

var _ Authenticator = (*Auther)(nil)
