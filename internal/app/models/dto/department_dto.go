package dto

import "github.com/owlconnect/owlconnect/internal/app/models"

// DepartmentRequest represents department create/update data
type DepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// DepartmentListResponse represents all departments, alphabetically ordered
type DepartmentListResponse struct {
	Departments []*models.Department `json:"departments"`
}
