package staff

import (
	"context"
	"errors"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CreateEmployeeMessage carries the caller supplied profile fields for a new
// staff account. Status and password are deliberately absent: provisioning
// forces both, whatever the request body claimed.
type CreateEmployeeMessage struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Sex      string `json:"sex"`
	IDNumber string `json:"id_number"`

	OnResponse func(*CreateEmployeeResponse)
}

func (e CreateEmployeeMessage) Type() string { return "employee.create" }

// CreateEmployeeResponse reports the store assigned identifier
type CreateEmployeeResponse struct {
	ID uuid.UUID `json:"id"`
}

// CreateEmployeeHandler provisions new accounts: enabled, default password
// hash, audit stamps from the acting principal in the context.
type CreateEmployeeHandler struct {
	repo            RepositoryManager
	hasher          PasswordHasher
	defaultPassword string
	now             func() time.Time
}

type CreateEmployeeOption func(*CreateEmployeeHandler)

// WithHasher sets the hasher used for the default password digest
func WithHasher(h PasswordHasher) CreateEmployeeOption {
	return func(c *CreateEmployeeHandler) {
		if h != nil {
			c.hasher = h
		}
	}
}

// WithDefaultPassword overrides the system-wide default plaintext assigned
// to new accounts.
func WithDefaultPassword(password string) CreateEmployeeOption {
	return func(c *CreateEmployeeHandler) {
		if password != "" {
			c.defaultPassword = password
		}
	}
}

// WithClock injects a custom clock (useful for tests).
func WithClock(clock func() time.Time) CreateEmployeeOption {
	return func(c *CreateEmployeeHandler) {
		if clock != nil {
			c.now = clock
		}
	}
}

func NewCreateEmployeeHandler(repo RepositoryManager, opts ...CreateEmployeeOption) *CreateEmployeeHandler {
	h := &CreateEmployeeHandler{
		repo:            repo,
		hasher:          &BcryptHasher{},
		defaultPassword: DefaultPassword,
		now:             time.Now,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}

	return h
}

func (h *CreateEmployeeHandler) Execute(ctx context.Context, event CreateEmployeeMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during employee provisioning",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *CreateEmployeeHandler) execute(ctx context.Context, event CreateEmployeeMessage) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return err
	}

	employee := &Employee{}
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err = h.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		hash, err := h.hasher.Hash(h.defaultPassword)
		if err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash default password")
		}

		now := h.now()

		employee.Username = event.Username
		employee.Name = event.Name
		employee.Phone = event.Phone
		employee.Sex = event.Sex
		employee.IDNumber = event.IDNumber
		employee.PasswordHash = hash
		employee.Status = EmployeeStatusEnabled
		employee.CreatedAt = &now
		employee.UpdatedAt = &now
		employee.CreatedBy = actor.ID
		employee.UpdatedBy = actor.ID

		if employee, err = h.repo.Employees().CreateTx(ctx, tx, employee); err != nil {
			if errors.Is(err, ErrDuplicateUsername) {
				return err
			}
			return goerrors.Wrap(err, goerrors.CategoryConflict, "could not create employee")
		}

		return nil
	})

	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			return richErr
		}

		return goerrors.Wrap(err, goerrors.CategoryInternal, "employee provisioning transaction failed")
	}

	if event.OnResponse != nil {
		event.OnResponse(&CreateEmployeeResponse{ID: employee.ID})
	}

	return nil
}
