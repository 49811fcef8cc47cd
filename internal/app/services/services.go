package services

import (
	"context"

	"github.com/owlconnect/owlconnect/internal/app/models"
	"github.com/owlconnect/owlconnect/internal/app/models/dto"
	"github.com/owlconnect/owlconnect/internal/app/repositories"
	"github.com/owlconnect/owlconnect/internal/db"
)

// AttendeeService defines attendee operations
type AttendeeService interface {
	ListAttendees(ctx context.Context) ([]*models.Attendee, dto.GridMeta, error)
	GetAttendeeByID(ctx context.Context, id int64) (*models.Attendee, error)
	CreateAttendee(ctx context.Context, attendee *models.Attendee) error
	UpdateAttendee(ctx context.Context, attendee *models.Attendee) (int64, error)
	DeleteAttendee(ctx context.Context, id int64) (int64, error)
}

// DepartmentService defines department operations
type DepartmentService interface {
	ListDepartments(ctx context.Context) ([]*models.Department, error)
	GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error)
	CreateDepartment(ctx context.Context, department *models.Department) error
	UpdateDepartment(ctx context.Context, department *models.Department) (int64, error)
	DeleteDepartment(ctx context.Context, id int64) (int64, error)
}

// AuthService defines the admin secret exchange
type AuthService interface {
	Login(password string) (token string, expiresIn int, err error)
}

// AttendeeStore is the attendee persistence surface the services consume,
// satisfied by *repositories.AttendeeRepository.
type AttendeeStore interface {
	GetAll(ctx context.Context) ([]*models.Attendee, error)
	GetByID(ctx context.Context, id int64) (*models.Attendee, error)
	Create(ctx context.Context, q repositories.Querier, attendee *models.Attendee) error
	Update(ctx context.Context, q repositories.Querier, attendee *models.Attendee) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// DepartmentStore is the department persistence surface the services consume,
// satisfied by *repositories.DepartmentRepository.
type DepartmentStore interface {
	GetAll(ctx context.Context) ([]*models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	Create(ctx context.Context, department *models.Department) error
	Update(ctx context.Context, department *models.Department) (int64, error)
	GetOrCreateByName(ctx context.Context, q repositories.Querier, name string) (int64, error)
	CountAttendees(ctx context.Context, q repositories.Querier, id int64) (int64, error)
	Delete(ctx context.Context, q repositories.Querier, id int64) (int64, error)
}

// TxRunner runs a function inside a database transaction, satisfied by
// *db.PostgresDB.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}
