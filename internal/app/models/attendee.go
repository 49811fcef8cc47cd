package models

// Attendee represents a profile card on the grid. Department carries the
// department name resolved through the join; DepartmentID is the stored
// foreign key.
type Attendee struct {
	ID            int64    `json:"id"`
	FullName      string   `json:"fullName"`
	Company       string   `json:"company,omitempty"`
	DepartmentID  int64    `json:"-"`
	Department    string   `json:"department"`
	LinkedIn      string   `json:"linkedin,omitempty"`
	SocialLinks   []string `json:"socialLinks,omitempty"`
	YearGraduated *int     `json:"yearGraduated,omitempty"`
	Description   string   `json:"description,omitempty"`
	Photo         string   `json:"photo,omitempty"`
}
