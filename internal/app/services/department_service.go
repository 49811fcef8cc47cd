package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/owlconnect/owlconnect/internal/app/models"
	"github.com/owlconnect/owlconnect/internal/pkg/apperrors"
)

// departmentService implements DepartmentService
type departmentService struct {
	database       TxRunner
	departmentRepo DepartmentStore
}

// NewDepartmentService creates a new department service
func NewDepartmentService(database TxRunner, departmentRepo DepartmentStore) DepartmentService {
	return &departmentService{
		database:       database,
		departmentRepo: departmentRepo,
	}
}

func validateDepartment(department *models.Department) error {
	if department == nil {
		return fmt.Errorf("%w: department is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(department.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// ListDepartments retrieves all departments, alphabetically ordered
func (s *departmentService) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}

	return departments, nil
}

// GetDepartmentByID retrieves a department by ID
func (s *departmentService) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	if id <= 0 {
		return nil, apperrors.NewBadRequestError("department identifier must be positive")
	}

	return s.departmentRepo.GetByID(ctx, id)
}

// CreateDepartment creates a new department
func (s *departmentService) CreateDepartment(ctx context.Context, department *models.Department) error {
	if err := validateDepartment(department); err != nil {
		return err
	}

	department.Name = strings.TrimSpace(department.Name)

	return s.departmentRepo.Create(ctx, department)
}

// UpdateDepartment updates an existing department by identifier
func (s *departmentService) UpdateDepartment(ctx context.Context, department *models.Department) (int64, error) {
	if err := validateDepartment(department); err != nil {
		return 0, err
	}

	if department.ID <= 0 {
		return 0, apperrors.NewBadRequestError("department identifier must be positive")
	}

	department.Name = strings.TrimSpace(department.Name)

	return s.departmentRepo.Update(ctx, department)
}

// DeleteDepartment removes a department unless any attendee still references
// it. The zero-count check and the delete run in one transaction, closing the
// race window a check-then-delete over separate statements would leave open.
func (s *departmentService) DeleteDepartment(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, apperrors.NewBadRequestError("department identifier must be positive")
	}

	var affected int64
	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		count, err := s.departmentRepo.CountAttendees(ctx, tx, id)
		if err != nil {
			return err
		}

		if count > 0 {
			return fmt.Errorf("%w: %d attendee(s) still assigned", apperrors.ErrDepartmentInUse, count)
		}

		affected, err = s.departmentRepo.Delete(ctx, tx, id)
		return err
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}
