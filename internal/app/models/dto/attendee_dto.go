package dto

import "github.com/owlconnect/owlconnect/internal/app/models"

// AttendeeRequest represents attendee create/update data. Department is the
// department name; the server resolves it to a row, creating one when absent.
type AttendeeRequest struct {
	FullName      string   `json:"fullName" binding:"required"`
	Company       string   `json:"company"`
	Department    string   `json:"department" binding:"required"`
	LinkedIn      string   `json:"linkedin" binding:"omitempty,url"`
	SocialLinks   []string `json:"socialLinks" binding:"omitempty,dive,url"`
	YearGraduated *int     `json:"yearGraduated" binding:"omitempty,gte=1900,lte=2100"`
	Description   string   `json:"description"`
	Photo         string   `json:"photo" binding:"omitempty,url"`
}

// ToModel converts the request to an attendee model without resolving the
// department reference.
func (r *AttendeeRequest) ToModel() *models.Attendee {
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

// GridMeta carries the page arithmetic for the full collection so the
// browser can size its pagination controls without recomputing.
type GridMeta struct {
	Count      int `json:"count"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// AttendeeListResponse represents the complete attendee collection
type AttendeeListResponse struct {
	Attendees []*models.Attendee `json:"attendees"`
	Meta      GridMeta           `json:"meta"`
}

// CreatedResponse carries the identifier of a newly created row
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// MutationResponse carries the affected-row count of an update or delete
type MutationResponse struct {
	Affected int64 `json:"affected"`
}
