package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/owlconnect/owlconnect/internal/app/models"
	"github.com/owlconnect/owlconnect/internal/app/models/dto"
	"github.com/owlconnect/owlconnect/internal/app/services"
	"github.com/owlconnect/owlconnect/internal/middleware"
)

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// ListDepartments retrieves all departments, alphabetically ordered by name
// @Summary List all departments
// @Tags departments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentListResponse}
// @Failure 500 {object} dto.APIResponse
// @Router /departments [get]
func (c *DepartmentController) ListDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.ListDepartments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if departments == nil {
		departments = []*models.Department{}
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.DepartmentListResponse{
		Departments: departments,
	}))
}

// GetDepartmentByID retrieves a department by ID
// @Summary Get department by ID
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 404 {object} dto.APIResponse
// @Router /departments/{id} [get]
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	department, err := c.departmentService.GetDepartmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(department))
}

// CreateDepartment creates a new department
// @Summary Create a new department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DepartmentRequest true "Department information"
// @Success 201 {object} dto.APIResponse{data=dto.CreatedResponse}
// @Failure 409 {object} dto.APIResponse
// @Router /departments [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.DepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	department := &models.Department{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := c.departmentService.CreateDepartment(ctx, department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.CreatedResponse{ID: department.ID}))
}

// UpdateDepartment updates an existing department
// @Summary Update a department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param request body dto.DepartmentRequest true "Updated department information"
// @Success 200 {object} dto.APIResponse{data=dto.MutationResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /departments/{id} [put]
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.DepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	department := &models.Department{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}

	affected, err := c.departmentService.UpdateDepartment(ctx, department)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MutationResponse{Affected: affected}))
}

// DeleteDepartment removes a department; refused with a 400 and a
// descriptive reason while any attendee still references it
// @Summary Delete a department
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=dto.MutationResponse}
// @Failure 400 {object} dto.APIResponse "Department is still referenced"
// @Failure 404 {object} dto.APIResponse
// @Router /departments/{id} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	affected, err := c.departmentService.DeleteDepartment(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MutationResponse{Affected: affected}))
}
