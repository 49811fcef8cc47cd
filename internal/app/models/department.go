package models

// Department represents a named grouping entity referenced by attendees
type Department struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
