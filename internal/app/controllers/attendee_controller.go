package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/owlconnect/owlconnect/internal/app/models"
	"github.com/owlconnect/owlconnect/internal/app/models/dto"
	"github.com/owlconnect/owlconnect/internal/app/services"
	"github.com/owlconnect/owlconnect/internal/middleware"
)

// AttendeeController handles attendee-related operations
type AttendeeController struct {
	attendeeService services.AttendeeService
}

// NewAttendeeController creates a new AttendeeController
func NewAttendeeController(attendeeService services.AttendeeService) *AttendeeController {
	return &AttendeeController{
		attendeeService: attendeeService,
	}
}

// parseIDParam reads the :id path parameter as a positive integer
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid identifier")
		errorDetail = errorDetail.WithDetails("Identifier must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// ListAttendees returns the complete attendee collection, shuffled, plus the
// grid page arithmetic
// @Summary List all attendees
// @Description Returns the full attendee collection in random order with page metadata
// @Tags attendees
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AttendeeListResponse}
// @Failure 500 {object} dto.APIResponse
// @Router /attendees [get]
func (c *AttendeeController) ListAttendees(ctx *gin.Context) {
	attendees, meta, err := c.attendeeService.ListAttendees(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if attendees == nil {
		attendees = []*models.Attendee{}
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.AttendeeListResponse{
		Attendees: attendees,
		Meta:      meta,
	}))
}

// GetAttendeeByID retrieves a single attendee
// @Summary Get attendee by ID
// @Tags attendees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendee ID"
// @Success 200 {object} dto.APIResponse{data=models.Attendee}
// @Failure 404 {object} dto.APIResponse
// @Router /attendees/{id} [get]
func (c *AttendeeController) GetAttendeeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	attendee, err := c.attendeeService.GetAttendeeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(attendee))
}

// CreateAttendee creates a new attendee, resolving the department name to a
// row and creating the department when it does not exist yet
// @Summary Create a new attendee
// @Tags attendees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AttendeeRequest true "Attendee fields"
// @Success 201 {object} dto.APIResponse{data=dto.CreatedResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /attendees [post]
func (c *AttendeeController) CreateAttendee(ctx *gin.Context) {
	var req dto.AttendeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendee data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	attendee := req.ToModel()
	if err := c.attendeeService.CreateAttendee(ctx, attendee); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.CreatedResponse{ID: attendee.ID}))
}

// UpdateAttendee rewrites the full attendee field set by identifier
// @Summary Update an attendee
// @Tags attendees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendee ID"
// @Param request body dto.AttendeeRequest true "Attendee fields"
// @Success 200 {object} dto.APIResponse{data=dto.MutationResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /attendees/{id} [put]
func (c *AttendeeController) UpdateAttendee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.AttendeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendee data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	attendee := req.ToModel()
	attendee.ID = id

	affected, err := c.attendeeService.UpdateAttendee(ctx, attendee)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MutationResponse{Affected: affected}))
}

// DeleteAttendee removes an attendee by identifier
// @Summary Delete an attendee
// @Tags attendees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendee ID"
// @Success 200 {object} dto.APIResponse{data=dto.MutationResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /attendees/{id} [delete]
func (c *AttendeeController) DeleteAttendee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	affected, err := c.attendeeService.DeleteAttendee(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MutationResponse{Affected: affected}))
}
