package staff

import (
	"context"
	"testing"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateEmployeeProvisionsAccount(t *testing.T) {
	actor := ActorRef{ID: uuid.New(), Type: "employee"}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var created *Employee
	store := &stubEmployees{
		createTx: func(ctx context.Context, tx bun.IDB, record *Employee, criteria ...repository.InsertCriteria) (*Employee, error) {
			record.ID = uuid.New()
			created = record
			return record, nil
		},
	}

	var res *CreateEmployeeResponse
	handler := NewCreateEmployeeHandler(&stubRepoManager{employees: store},
		WithHasher(&BcryptHasher{Cost: bcrypt.MinCost}),
		WithClock(func() time.Time { return now }),
	)

	err := handler.Execute(WithActor(context.Background(), actor), CreateEmployeeMessage{
		Username: "amartinez",
		Name:     "Ana Martinez",
		Phone:    "13812341234",
		Sex:      "1",
		IDNumber: "110101199003070000",
		OnResponse: func(resp *CreateEmployeeResponse) {
			res = resp
		},
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "amartinez", created.Username)
	assert.Equal(t, "Ana Martinez", created.Name)
	assert.Equal(t, "13812341234", created.Phone)
	assert.Equal(t, "1", created.Sex)
	assert.Equal(t, "110101199003070000", created.IDNumber)

	// provisioning forces the status, whatever the request claimed
	assert.Equal(t, EmployeeStatusEnabled, created.Status)

	// the stored hash must verify against the stock default password
	hasher := &BcryptHasher{Cost: bcrypt.MinCost}
	assert.NoError(t, hasher.Compare(DefaultPassword, created.PasswordHash))

	// audit stamps come from the acting principal in the context
	assert.Equal(t, actor.ID, created.CreatedBy)
	assert.Equal(t, actor.ID, created.UpdatedBy)
	require.NotNil(t, created.CreatedAt)
	require.NotNil(t, created.UpdatedAt)
	assert.Equal(t, now, *created.CreatedAt)
	assert.Equal(t, now, *created.UpdatedAt)

	require.NotNil(t, res)
	assert.Equal(t, created.ID, res.ID)
}

func TestCreateEmployeeCustomDefaultPassword(t *testing.T) {
	actor := ActorRef{ID: uuid.New()}

	var created *Employee
	store := &stubEmployees{
		createTx: func(ctx context.Context, tx bun.IDB, record *Employee, criteria ...repository.InsertCriteria) (*Employee, error) {
			created = record
			return record, nil
		},
	}

	handler := NewCreateEmployeeHandler(&stubRepoManager{employees: store},
		WithHasher(&BcryptHasher{Cost: bcrypt.MinCost}),
		WithDefaultPassword("changeme-now"),
	)

	err := handler.Execute(WithActor(context.Background(), actor), CreateEmployeeMessage{
		Username: "jchen",
		Name:     "Jun Chen",
	})
	require.NoError(t, err)

	hasher := &BcryptHasher{Cost: bcrypt.MinCost}
	assert.NoError(t, hasher.Compare("changeme-now", created.PasswordHash))
	assert.ErrorIs(t, hasher.Compare(DefaultPassword, created.PasswordHash), ErrPasswordMismatch)
}

func TestCreateEmployeeRequiresActor(t *testing.T) {
	called := false
	store := &stubEmployees{
		createTx: func(ctx context.Context, tx bun.IDB, record *Employee, criteria ...repository.InsertCriteria) (*Employee, error) {
			called = true
			return record, nil
		},
	}

	handler := NewCreateEmployeeHandler(&stubRepoManager{employees: store},
		WithHasher(&BcryptHasher{Cost: bcrypt.MinCost}),
	)

	err := handler.Execute(context.Background(), CreateEmployeeMessage{
		Username: "amartinez",
		Name:     "Ana Martinez",
	})
	assert.ErrorIs(t, err, ErrMissingActor)
	assert.False(t, called)
}

func TestCreateEmployeeDuplicateUsername(t *testing.T) {
	store := &stubEmployees{
		createTx: func(ctx context.Context, tx bun.IDB, record *Employee, criteria ...repository.InsertCriteria) (*Employee, error) {
			return nil, ErrDuplicateUsername
		},
	}

	responded := false
	handler := NewCreateEmployeeHandler(&stubRepoManager{employees: store},
		WithHasher(&BcryptHasher{Cost: bcrypt.MinCost}),
	)

	err := handler.Execute(WithActor(context.Background(), ActorRef{ID: uuid.New()}), CreateEmployeeMessage{
		Username: "amartinez",
		Name:     "Ana Martinez",
		OnResponse: func(resp *CreateEmployeeResponse) {
			responded = true
		},
	})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.False(t, responded)
}

func TestCreateEmployeeCancelledContext(t *testing.T) {
	handler := NewCreateEmployeeHandler(&stubRepoManager{employees: &stubEmployees{}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.Execute(ctx, CreateEmployeeMessage{Username: "amartinez"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
