// Package seed installs demo data for local development so the grid has
// something to show before any real import runs.
package seed

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/owlconnect/owlconnect/internal/app/models"
	"github.com/owlconnect/owlconnect/internal/app/repositories"
	"github.com/owlconnect/owlconnect/internal/db"
)

func intPtr(v int) *int { return &v }

var demoAttendees = []*models.Attendee{
	{
		FullName:      "Jane Doe",
		Company:       "Acme Labs",
		Department:    "Physics",
		LinkedIn:      "https://linkedin.com/in/janedoe",
		SocialLinks:   []string{"https://github.com/janedoe"},
		YearGraduated: intPtr(2019),
		Description:   "Works on particle detectors.",
	},
	{
		FullName:      "John Smith",
		Company:       "Smith Consulting",
		Department:    "History",
		YearGraduated: intPtr(2012),
	},
	{
		FullName:    "Ada Park",
		Company:     "Northwind",
		Department:  "Computer Science",
		SocialLinks: []string{"https://github.com/adapark", "https://x.com/adapark"},
	},
}

// CreateDemoData inserts the demo attendees, resolving departments through
// the same atomic lookup-or-create the API uses. It is a no-op when the
// attendee table already has rows, so repeated startups don't duplicate data.
func CreateDemoData(ctx context.Context, database *db.PostgresDB, repos *repositories.Repositories, lgr zerolog.Logger) error {
	existing, err := repos.AttendeeRepository.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		lgr.Debug().Int("count", len(existing)).Msg("Attendees already present, skipping demo data")
		return nil
	}

	lgr.Info().Msg("Seeding demo attendees...")

	for _, attendee := range demoAttendees {
		attendee := attendee
		err := database.WithTransaction(ctx, func(txCtx context.Context, tx pgx.Tx) error {
			departmentID, err := repos.DepartmentRepository.GetOrCreateByName(txCtx, tx, attendee.Department)
			if err != nil {
				return err
			}
			attendee.DepartmentID = departmentID
			return repos.AttendeeRepository.Create(txCtx, tx, attendee)
		})
		if err != nil {
			return err
		}
	}

	lgr.Info().Int("count", len(demoAttendees)).Msg("Demo attendees seeded")
	return nil
}
