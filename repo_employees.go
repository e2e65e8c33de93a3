package staff

import (
	"context"
	"strings"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Employees is the account store: lookups, insert, partial status update,
// and the paginated query. Username uniqueness is enforced by the store's
// unique constraint, not by in-core locking.
type Employees interface {
	repository.Repository[*Employee]

	GetByUsername(ctx context.Context, username string) (*Employee, error)
	GetByUsernameTx(ctx context.Context, tx bun.IDB, username string) (*Employee, error)
	Create(ctx context.Context, record *Employee, criteria ...repository.InsertCriteria) (*Employee, error)
	CreateTx(ctx context.Context, tx bun.IDB, record *Employee, criteria ...repository.InsertCriteria) (*Employee, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status EmployeeStatus, opts ...StatusUpdateOption) (*Employee, error)
	UpdateStatusTx(ctx context.Context, tx bun.IDB, id uuid.UUID, status EmployeeStatus, opts ...StatusUpdateOption) (*Employee, error)
	Search(ctx context.Context, query EmployeePageQuery) (*PageResult, error)
	SearchTx(ctx context.Context, tx bun.IDB, query EmployeePageQuery) (*PageResult, error)
}

type employees struct {
	repository.Repository[*Employee]
	db *bun.DB
}

var (
	_ Employees                        = (*employees)(nil)
	_ repository.Repository[*Employee] = (*employees)(nil)
)

func NewEmployeesRepository(db *bun.DB) Employees {
	repo := repository.NewRepository[*Employee](db, repository.ModelHandlers[*Employee]{
		NewRecord: func() *Employee { return &Employee{} },
		GetID: func(e *Employee) uuid.UUID {
			if e == nil {
				return uuid.Nil
			}
			return e.ID
		},
		SetID: func(e *Employee, id uuid.UUID) {
			if e != nil {
				e.ID = id
			}
		},
		GetIdentifier: func() string {
			return "username"
		},
	})

	return &employees{
		Repository: repo,
		db:         db,
	}
}

func (a *employees) GetByUsername(ctx context.Context, username string) (*Employee, error) {
	return a.GetByUsernameTx(ctx, a.db, username)
}

func (a *employees) GetByUsernameTx(ctx context.Context, tx bun.IDB, username string) (*Employee, error) {
	record := &Employee{}
	err := tx.NewSelect().
		Model(record).
		Where("?TableAlias.username = ?", strings.TrimSpace(username)).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"username": username,
				})
		}
		return nil, err
	}

	return record, nil
}

func (a *employees) Create(ctx context.Context, record *Employee, criteria ...repository.InsertCriteria) (*Employee, error) {
	return a.CreateTx(ctx, a.db, record, criteria...)
}

func (a *employees) CreateTx(ctx context.Context, tx bun.IDB, record *Employee, criteria ...repository.InsertCriteria) (*Employee, error) {
	prepareEmployeeDefaults(record)

	created, err := a.Repository.CreateTx(ctx, tx, record, criteria...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	return created, nil
}

func (a *employees) UpdateStatus(ctx context.Context, id uuid.UUID, status EmployeeStatus, opts ...StatusUpdateOption) (*Employee, error) {
	return a.UpdateStatusTx(ctx, a.db, id, status, opts...)
}

// UpdateStatusTx writes only id, status, and whatever the options stamp.
// Username, password hash, and creation columns are untouched.
func (a *employees) UpdateStatusTx(ctx context.Context, tx bun.IDB, id uuid.UUID, status EmployeeStatus, opts ...StatusUpdateOption) (*Employee, error) {
	record := &Employee{
		ID:     id,
		Status: status,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(record)
		}
	}

	return a.Repository.UpdateTx(ctx, tx, record,
		repository.UpdateByID(id.String()),
		repository.UpdateSkipZeroValues(),
	)
}

func (a *employees) Search(ctx context.Context, query EmployeePageQuery) (*PageResult, error) {
	return a.SearchTx(ctx, a.db, query)
}

// SearchTx resolves count and page in a single store round trip so the total
// cannot drift from the slice under concurrent writes.
func (a *employees) SearchTx(ctx context.Context, tx bun.IDB, query EmployeePageQuery) (*PageResult, error) {
	q := query.Normalize()

	records := []*Employee{}
	sel := tx.NewSelect().Model(&records)

	if q.Name != "" {
		sel = sel.Where("?TableAlias.name LIKE ?", "%"+q.Name+"%")
	}

	total, err := sel.
		Order("created_at ASC", "id ASC").
		Limit(q.PageSize).
		Offset(q.Offset()).
		ScanAndCount(ctx)

	if err != nil {
		return nil, err
	}

	return &PageResult{
		Total:   total,
		Records: records,
	}, nil
}

// StatusUpdateOption allows callers to stamp audit fields on the partial
// status update before it is persisted.
type StatusUpdateOption func(*Employee)

// WithUpdatedBy stamps the acting principal on the status update.
func WithUpdatedBy(id uuid.UUID) StatusUpdateOption {
	return func(e *Employee) {
		e.UpdatedBy = id
	}
}

// WithUpdatedAt stamps the update instant on the status update.
func WithUpdatedAt(at time.Time) StatusUpdateOption {
	return func(e *Employee) {
		e.UpdatedAt = &at
	}
}

func prepareEmployeeDefaults(record *Employee) {
	if record == nil {
		return
	}

	record.EnsureStatus()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
