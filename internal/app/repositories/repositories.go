package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx operations shared by *pgxpool.Pool and
// pgx.Tx, so repository methods can run either standalone or inside a
// transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories is a container for all repositories
type Repositories struct {
	DepartmentRepository *DepartmentRepository
	AttendeeRepository   *AttendeeRepository
}

// NewRepositories creates all repositories over a shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		DepartmentRepository: NewDepartmentRepository(db),
		AttendeeRepository:   NewAttendeeRepository(db),
	}
}
