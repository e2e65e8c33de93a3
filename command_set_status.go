package staff

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
)

// SetEmployeeStatusMessage requests a status toggle for one account
type SetEmployeeStatusMessage struct {
	ID     uuid.UUID      `json:"id"`
	Status EmployeeStatus `json:"status"`
}

func (e SetEmployeeStatusMessage) Type() string { return "employee.set_status" }

// SetEmployeeStatusHandler applies enable/disable toggles as a partial
// update: id, status, updated_at, updated_by. Applying the same status twice
// yields the same observable state, with only updated_at bumped again.
type SetEmployeeStatusHandler struct {
	repo RepositoryManager
	now  func() time.Time
}

type SetEmployeeStatusOption func(*SetEmployeeStatusHandler)

// WithStatusClock injects a custom clock (useful for tests).
func WithStatusClock(clock func() time.Time) SetEmployeeStatusOption {
	return func(h *SetEmployeeStatusHandler) {
		if clock != nil {
			h.now = clock
		}
	}
}

func NewSetEmployeeStatusHandler(repo RepositoryManager, opts ...SetEmployeeStatusOption) *SetEmployeeStatusHandler {
	h := &SetEmployeeStatusHandler{
		repo: repo,
		now:  time.Now,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}

	return h
}

func (h *SetEmployeeStatusHandler) Execute(ctx context.Context, event SetEmployeeStatusMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during status update",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *SetEmployeeStatusHandler) execute(ctx context.Context, event SetEmployeeStatusMessage) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return err
	}

	if !IsValidStatus(event.Status) {
		return ErrInvalidStatus
	}

	_, err = h.repo.Employees().UpdateStatus(ctx, event.ID, event.Status,
		WithUpdatedBy(actor.ID),
		WithUpdatedAt(h.now()),
	)

	if err != nil {
		if repository.IsRecordNotFound(err) || goerrors.IsNotFound(err) {
			return ErrEmployeeNotFound
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "could not update employee status")
	}

	return nil
}
