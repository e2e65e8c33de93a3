package staff

import (
	"context"
	"database/sql"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// stubEmployees overrides only the store methods a test cares about. Calls
// to anything else hit the nil embedded interface and panic loudly.
type stubEmployees struct {
	Employees

	createTx     func(ctx context.Context, tx bun.IDB, record *Employee, criteria ...repository.InsertCriteria) (*Employee, error)
	getByID      func(ctx context.Context, id string, criteria ...repository.SelectCriteria) (*Employee, error)
	getByUser    func(ctx context.Context, username string) (*Employee, error)
	search       func(ctx context.Context, query EmployeePageQuery) (*PageResult, error)
	updateStatus func(ctx context.Context, id uuid.UUID, status EmployeeStatus, opts ...StatusUpdateOption) (*Employee, error)
}

func (s *stubEmployees) CreateTx(ctx context.Context, tx bun.IDB, record *Employee, criteria ...repository.InsertCriteria) (*Employee, error) {
	return s.createTx(ctx, tx, record, criteria...)
}

func (s *stubEmployees) GetByID(ctx context.Context, id string, criteria ...repository.SelectCriteria) (*Employee, error) {
	return s.getByID(ctx, id, criteria...)
}

func (s *stubEmployees) GetByUsername(ctx context.Context, username string) (*Employee, error) {
	return s.getByUser(ctx, username)
}

func (s *stubEmployees) Search(ctx context.Context, query EmployeePageQuery) (*PageResult, error) {
	return s.search(ctx, query)
}

func (s *stubEmployees) UpdateStatus(ctx context.Context, id uuid.UUID, status EmployeeStatus, opts ...StatusUpdateOption) (*Employee, error) {
	return s.updateStatus(ctx, id, status, opts...)
}

// stubRepoManager hands command handlers a transaction without a database.
type stubRepoManager struct {
	employees Employees
}

func (s *stubRepoManager) Validate() error { return nil }

func (s *stubRepoManager) MustValidate() {}

func (s *stubRepoManager) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	var tx bun.Tx
	return f(ctx, tx)
}

func (s *stubRepoManager) Employees() Employees { return s.employees }

type stubFinder struct {
	record *Employee
	err    error
}

func (s *stubFinder) GetByUsername(ctx context.Context, username string) (*Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.record, nil
}

type stubAuthenticator struct {
	employee *Employee
	err      error
}

func (s *stubAuthenticator) Authenticate(ctx context.Context, username, password string) (*Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.employee, nil
}

type testLogger struct{}

func (testLogger) Debug(format string, args ...any) {}
func (testLogger) Info(format string, args ...any)  {}
func (testLogger) Warn(format string, args ...any)  {}
func (testLogger) Error(format string, args ...any) {}
