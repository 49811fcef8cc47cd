// Package importer loads attendee records into the database from the JSON
// and Excel exports produced by the event registration tooling.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/owlconnect/owlconnect/internal/app/models"
	"github.com/owlconnect/owlconnect/internal/app/services"
)

// Record is one attendee row parsed from a source file. Field names follow
// the attendee JSON shape; Department is the department name.
type Record struct {
	FullName      string   `json:"fullName"`
	Company       string   `json:"company"`
	Department    string   `json:"department"`
	LinkedIn      string   `json:"linkedin"`
	SocialLinks   []string `json:"socialLinks"`
	YearGraduated *int     `json:"yearGraduated"`
	Description   string   `json:"description"`
	Photo         string   `json:"photo"`
}

type attendeesFile struct {
	Attendees []Record `json:"attendees"`
}

// LoadJSON reads records from a JSON export of the shape {"attendees": [...]}.
func LoadJSON(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file attendeesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return file.Attendees, nil
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// SanitizeColumnName normalizes a spreadsheet column header to a stable key:
// lowercase, non-alphanumerics collapsed to underscores, trimmed, and
// prefixed when it would otherwise start with a digit.
func SanitizeColumnName(name string) string {
	name = strings.ToLower(name)
	name = nonAlnum.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		name = "col_" + name
	}
	return name
}

// recordFromRow maps a sanitized-header row onto a Record. Unknown columns
// are ignored so export format drift doesn't break imports.
func recordFromRow(row map[string]string) Record {
	record := Record{
		FullName:    row["full_name"],
		Company:     row["company"],
		Department:  row["department"],
		LinkedIn:    row["linkedin"],
		Description: row["description"],
		Photo:       row["photo_url"],
	}

	if record.FullName == "" {
		record.FullName = row["name"]
	}
	if record.Photo == "" {
		record.Photo = row["photo"]
	}

	if links := row["social_links"]; links != "" {
		for _, link := range strings.FieldsFunc(links, func(r rune) bool { return r == ',' || r == ';' || r == ' ' || r == '\n' }) {
			record.SocialLinks = append(record.SocialLinks, strings.TrimSpace(link))
		}
	}

	if yearStr := row["year_graduated"]; yearStr != "" {
		if year, err := strconv.Atoi(strings.TrimSpace(yearStr)); err == nil {
			record.YearGraduated = &year
		}
	}

	return record
}

// ToModel converts a record to an attendee model
func (r Record) ToModel() *models.Attendee {
	return &models.Attendee{
		FullName:      r.FullName,
		Company:       r.Company,
		Department:    r.Department,
		LinkedIn:      r.LinkedIn,
		SocialLinks:   r.SocialLinks,
		YearGraduated: r.YearGraduated,
		Description:   r.Description,
		Photo:         r.Photo,
	}
}

// Importer writes parsed records through the attendee service so every
// import resolves departments the same way the API does.
type Importer struct {
	attendeeService services.AttendeeService
	logger          zerolog.Logger
}

// NewImporter creates a new importer
func NewImporter(attendeeService services.AttendeeService, logger zerolog.Logger) *Importer {
	return &Importer{
		attendeeService: attendeeService,
		logger:          logger,
	}
}

// Run imports all records, skipping invalid ones with a warning. It returns
// the number of attendees written.
func (i *Importer) Run(ctx context.Context, records []Record) (int, error) {
	imported := 0

	for idx, record := range records {
		if strings.TrimSpace(record.FullName) == "" || strings.TrimSpace(record.Department) == "" {
			i.logger.Warn().Int("row", idx+1).Msg("Skipping record without full name or department")
			continue
		}

		if err := i.attendeeService.CreateAttendee(ctx, record.ToModel()); err != nil {
			return imported, fmt.Errorf("failed to import record %d (%s): %w", idx+1, record.FullName, err)
		}
		imported++
	}

	return imported, nil
}
