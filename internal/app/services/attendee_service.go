package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/owlconnect/owlconnect/internal/app/models"
	"github.com/owlconnect/owlconnect/internal/app/models/dto"
	"github.com/owlconnect/owlconnect/internal/pkg/apperrors"
	"github.com/owlconnect/owlconnect/internal/pkg/grid"
)

// attendeeService implements AttendeeService
type attendeeService struct {
	database       TxRunner
	attendeeRepo   AttendeeStore
	departmentRepo DepartmentStore
	pager          grid.Pager
	logger         zerolog.Logger
}

// NewAttendeeService creates a new attendee service
func NewAttendeeService(
	database TxRunner,
	attendeeRepo AttendeeStore,
	departmentRepo DepartmentStore,
	pager grid.Pager,
	logger zerolog.Logger,
) AttendeeService {
	return &attendeeService{
		database:       database,
		attendeeRepo:   attendeeRepo,
		departmentRepo: departmentRepo,
		pager:          pager,
		logger:         logger,
	}
}

// validateAttendee checks the invariants the schema cannot express
func validateAttendee(attendee *models.Attendee) error {
	if attendee == nil {
		return fmt.Errorf("%w: attendee is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(attendee.FullName) == "" {
		return fmt.Errorf("%w: full name cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(attendee.Department) == "" {
		return fmt.Errorf("%w: department cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// ListAttendees returns the complete collection in a fresh uniform random
// order, together with the page arithmetic for the grid. One fetch per page
// load; the browser slices pages out of this single response.
func (s *attendeeService) ListAttendees(ctx context.Context) ([]*models.Attendee, dto.GridMeta, error) {
	attendees, err := s.attendeeRepo.GetAll(ctx)
	if err != nil {
		return nil, dto.GridMeta{}, fmt.Errorf("error retrieving attendees: %w", err)
	}

	shuffled := grid.Shuffle(attendees)

	meta := dto.GridMeta{
		Count:      len(shuffled),
		PageSize:   s.pager.PageSize,
		TotalPages: s.pager.TotalPages(len(shuffled)),
	}

	return shuffled, meta, nil
}

// GetAttendeeByID retrieves a single attendee
func (s *attendeeService) GetAttendeeByID(ctx context.Context, id int64) (*models.Attendee, error) {
	if id <= 0 {
		return nil, apperrors.NewBadRequestError("attendee identifier must be positive")
	}

	return s.attendeeRepo.GetByID(ctx, id)
}

// CreateAttendee resolves the department name (creating the row when absent)
// and writes the attendee, both inside one transaction so the referential
// invariant holds against concurrent writers.
func (s *attendeeService) CreateAttendee(ctx context.Context, attendee *models.Attendee) error {
	if err := validateAttendee(attendee); err != nil {
		return err
	}

	attendee.Department = strings.TrimSpace(attendee.Department)

	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		departmentID, err := s.departmentRepo.GetOrCreateByName(ctx, tx, attendee.Department)
		if err != nil {
			return err
		}

		attendee.DepartmentID = departmentID
		return s.attendeeRepo.Create(ctx, tx, attendee)
	})
	if err != nil {
		return err
	}

	s.logger.Info().
		Int64("id", attendee.ID).
		Str("department", attendee.Department).
		Msg("Attendee created")

	return nil
}

// UpdateAttendee rewrites the full field set of an existing attendee,
// resolving the department name the same way as creation
func (s *attendeeService) UpdateAttendee(ctx context.Context, attendee *models.Attendee) (int64, error) {
	if err := validateAttendee(attendee); err != nil {
		return 0, err
	}

	if attendee.ID <= 0 {
		return 0, apperrors.NewBadRequestError("attendee identifier must be positive")
	}

	attendee.Department = strings.TrimSpace(attendee.Department)

	var affected int64
	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		departmentID, err := s.departmentRepo.GetOrCreateByName(ctx, tx, attendee.Department)
		if err != nil {
			return err
		}

		attendee.DepartmentID = departmentID
		affected, err = s.attendeeRepo.Update(ctx, tx, attendee)
		return err
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

// DeleteAttendee removes an attendee by identifier
func (s *attendeeService) DeleteAttendee(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, apperrors.NewBadRequestError("attendee identifier must be positive")
	}

	return s.attendeeRepo.Delete(ctx, id)
}
