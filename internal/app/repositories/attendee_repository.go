package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/owlconnect/owlconnect/internal/app/models"
	"github.com/owlconnect/owlconnect/internal/pkg/apperrors"
)

// AttendeeRepository handles database operations for attendees
type AttendeeRepository struct {
	db *pgxpool.Pool
}

// NewAttendeeRepository creates a new attendee repository
func NewAttendeeRepository(db *pgxpool.Pool) *AttendeeRepository {
	return &AttendeeRepository{
		db: db,
	}
}

const attendeeColumns = `
	p.id, p.full_name, COALESCE(p.company, ''), p.department_id, d.name,
	COALESCE(p.linkedin, ''), p.social_links, p.year_graduated,
	COALESCE(p.description, ''), COALESCE(p.photo_url, '')
`

func scanAttendee(row pgx.Row) (*models.Attendee, error) {
	var attendee models.Attendee
	var socialLinks []byte

	err := row.Scan(
		&attendee.ID,
		&attendee.FullName,
		&attendee.Company,
		&attendee.DepartmentID,
		&attendee.Department,
		&attendee.LinkedIn,
		&socialLinks,
		&attendee.YearGraduated,
		&attendee.Description,
		&attendee.Photo,
	)
	if err != nil {
		return nil, err
	}

	if len(socialLinks) > 0 {
		if err := json.Unmarshal(socialLinks, &attendee.SocialLinks); err != nil {
			return nil, fmt.Errorf("error decoding social links for attendee %d: %w", attendee.ID, err)
		}
	}

	return &attendee, nil
}

// marshalSocialLinks serializes the social link list for storage; an empty
// list is stored as NULL.
func marshalSocialLinks(links []string) ([]byte, error) {
	if len(links) == 0 {
		return nil, nil
	}
	return json.Marshal(links)
}

// GetAll retrieves the complete attendee collection joined with department
// names. Pagination is a presentation concern; this always returns every row.
func (r *AttendeeRepository) GetAll(ctx context.Context) ([]*models.Attendee, error) {
	query := `
		SELECT ` + attendeeColumns + `
		FROM people p
		JOIN departments d ON d.id = p.department_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attendees []*models.Attendee
	for rows.Next() {
		attendee, err := scanAttendee(rows)
		if err != nil {
			return nil, err
		}
		attendees = append(attendees, attendee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return attendees, nil
}

// GetByID retrieves a single attendee by ID
func (r *AttendeeRepository) GetByID(ctx context.Context, id int64) (*models.Attendee, error) {
	query := `
		SELECT ` + attendeeColumns + `
		FROM people p
		JOIN departments d ON d.id = p.department_id
		WHERE p.id = $1
	`

	attendee, err := scanAttendee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewCustomError(apperrors.ErrAttendeeNotFound,
				fmt.Sprintf("attendee %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving attendee: %w", err)
	}

	return attendee, nil
}

// Create writes a new attendee row. DepartmentID must already be resolved;
// run this inside the same transaction as the department upsert.
func (r *AttendeeRepository) Create(ctx context.Context, q Querier, attendee *models.Attendee) error {
	links, err := marshalSocialLinks(attendee.SocialLinks)
	if err != nil {
		return fmt.Errorf("error encoding social links: %w", err)
	}

	query := `
		INSERT INTO people
			(full_name, company, department_id, linkedin, social_links,
			 year_graduated, description, photo_url)
		VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), $5, $6, NULLIF($7, ''), NULLIF($8, ''))
		RETURNING id
	`

	err = q.QueryRow(ctx, query,
		attendee.FullName,
		attendee.Company,
		attendee.DepartmentID,
		attendee.LinkedIn,
		links,
		attendee.YearGraduated,
		attendee.Description,
		attendee.Photo,
	).Scan(&attendee.ID)
	if err != nil {
		return fmt.Errorf("error creating attendee: %w", err)
	}

	return nil
}

// Update rewrites the full attendee field set by identifier and returns the
// affected-row count
func (r *AttendeeRepository) Update(ctx context.Context, q Querier, attendee *models.Attendee) (int64, error) {
	links, err := marshalSocialLinks(attendee.SocialLinks)
	if err != nil {
		return 0, fmt.Errorf("error encoding social links: %w", err)
	}

	query := `
		UPDATE people
		SET full_name = $1, company = NULLIF($2, ''), department_id = $3,
		    linkedin = NULLIF($4, ''), social_links = $5, year_graduated = $6,
		    description = NULLIF($7, ''), photo_url = NULLIF($8, '')
		WHERE id = $9
	`

	cmdTag, err := q.Exec(ctx, query,
		attendee.FullName,
		attendee.Company,
		attendee.DepartmentID,
		attendee.LinkedIn,
		links,
		attendee.YearGraduated,
		attendee.Description,
		attendee.Photo,
		attendee.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("error updating attendee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return 0, apperrors.NewCustomError(apperrors.ErrAttendeeNotFound,
			fmt.Sprintf("attendee %d not found", attendee.ID))
	}

	return cmdTag.RowsAffected(), nil
}

// Delete removes an attendee row by identifier and returns the affected-row
// count. There are no cascading side effects.
func (r *AttendeeRepository) Delete(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM people WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting attendee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return 0, apperrors.NewCustomError(apperrors.ErrAttendeeNotFound,
			fmt.Sprintf("attendee %d not found", id))
	}

	return cmdTag.RowsAffected(), nil
}
