package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/owlconnect/owlconnect/internal/app/models"
	"github.com/owlconnect/owlconnect/internal/pkg/apperrors"
	"github.com/owlconnect/owlconnect/internal/pkg/dberrors"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (name, description)
		VALUES ($1, NULLIF($2, ''))
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, department.Name, department.Description).Scan(&department.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetOrCreateByName resolves a department name to its identifier, creating
// the row when absent. The upsert is a single atomic statement, so two
// concurrent callers with the same name converge on one row instead of
// racing a lookup against an insert.
func (r *DepartmentRepository) GetOrCreateByName(ctx context.Context, q Querier, name string) (int64, error) {
	query := `
		INSERT INTO departments (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	var id int64
	if err := q.QueryRow(ctx, query, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("error resolving department %q: %w", name, err)
	}

	return id, nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT id, name, COALESCE(description, '')
		FROM departments
		WHERE id = $1
	`

	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&department.ID,
		&department.Name,
		&department.Description,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewCustomError(apperrors.ErrDepartmentNotFound,
				fmt.Sprintf("department %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// GetAll retrieves all departments, alphabetically ordered by name
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT id, name, COALESCE(description, '')
		FROM departments
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(
			&department.ID,
			&department.Name,
			&department.Description,
		); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// Update updates an existing department by identifier and returns the
// affected-row count
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) (int64, error) {
	query := `
		UPDATE departments
		SET name = $1, description = NULLIF($2, '')
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, department.Name, department.Description, department.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrDepartmentAlreadyExists
		}
		return 0, fmt.Errorf("error updating department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return 0, apperrors.NewCustomError(apperrors.ErrDepartmentNotFound,
			fmt.Sprintf("department %d not found", department.ID))
	}

	return cmdTag.RowsAffected(), nil
}

// CountAttendees returns the number of attendees referencing a department
func (r *DepartmentRepository) CountAttendees(ctx context.Context, q Querier, id int64) (int64, error) {
	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM people WHERE department_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting referencing attendees: %w", err)
	}
	return count, nil
}

// Delete removes a department row and returns the affected-row count. The
// caller is responsible for the in-use check; run both inside a transaction.
func (r *DepartmentRepository) Delete(ctx context.Context, q Querier, id int64) (int64, error) {
	cmdTag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrDepartmentInUse
		}
		return 0, fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return 0, apperrors.NewCustomError(apperrors.ErrDepartmentNotFound,
			fmt.Sprintf("department %d not found", id))
	}

	return cmdTag.RowsAffected(), nil
}
