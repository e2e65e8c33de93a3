package staff

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// EmployeeStatus is the lifecycle status of a staff account
type EmployeeStatus = string

const (
	// EmployeeStatusEnabled accounts can authenticate
	EmployeeStatusEnabled EmployeeStatus = "enabled"
	// EmployeeStatusDisabled accounts are locked out but kept on record
	EmployeeStatusDisabled EmployeeStatus = "disabled"
)

// Employee is the staff account model
type Employee struct {
	bun.BaseModel `bun:"table:employees,alias:emp"`
	ID            uuid.UUID      `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Username      string         `bun:"username,notnull,unique" json:"username,omitempty"`
	Name          string         `bun:"name,notnull" json:"name,omitempty"`
	Phone         string         `bun:"phone_number" json:"phone_number,omitempty"`
	Sex           string         `bun:"sex" json:"sex,omitempty"`
	IDNumber      string         `bun:"id_number" json:"id_number,omitempty"`
	PasswordHash  string         `bun:"password_hash" json:"password_hash,omitempty"`
	Status        EmployeeStatus `bun:"status,notnull" json:"status,omitempty"`
	CreatedBy     uuid.UUID      `bun:"created_by,nullzero,type:uuid" json:"created_by,omitempty"`
	UpdatedBy     uuid.UUID      `bun:"updated_by,nullzero,type:uuid" json:"updated_by,omitempty"`
	CreatedAt     *time.Time     `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time     `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
	DeletedAt     *time.Time     `bun:"deleted_at,soft_delete,nullzero" json:"deleted_at,omitempty"`
}

// EnsureStatus defaults a zero status to enabled
func (e *Employee) EnsureStatus() {
	if e.Status == "" {
		e.Status = EmployeeStatusEnabled
	}
}

// Enabled reports whether the account may authenticate
func (e *Employee) Enabled() bool {
	return e.Status != EmployeeStatusDisabled
}

// IsValidStatus checks if the status is one of the two predefined values
func IsValidStatus(status EmployeeStatus) bool {
	switch status {
	case EmployeeStatusEnabled, EmployeeStatusDisabled:
		return true
	default:
		return false
	}
}

// ParseStatus safely parses a string into an EmployeeStatus
func ParseStatus(status string) (EmployeeStatus, bool) {
	s := EmployeeStatus(status)
	return s, IsValidStatus(s)
}
