package controllers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owlconnect/owlconnect/internal/app/models"
	"github.com/owlconnect/owlconnect/internal/app/models/dto"
	"github.com/owlconnect/owlconnect/internal/pkg/apperrors"
)

type stubDepartmentService struct {
	departments []*models.Department
	department  *models.Department
	affected    int64
	err         error
	created     *models.Department
}

func (s *stubDepartmentService) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departments, s.err
}

func (s *stubDepartmentService) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.department, s.err
}

func (s *stubDepartmentService) CreateDepartment(ctx context.Context, department *models.Department) error {
	if s.err != nil {
		return s.err
	}
	department.ID = 3
	s.created = department
	return nil
}

func (s *stubDepartmentService) UpdateDepartment(ctx context.Context, department *models.Department) (int64, error) {
	return s.affected, s.err
}

func (s *stubDepartmentService) DeleteDepartment(ctx context.Context, id int64) (int64, error) {
	return s.affected, s.err
}

func setupDepartmentRouter(service *stubDepartmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewDepartmentController(service)

	router := gin.New()
	router.GET("/api/departments", controller.ListDepartments)
	router.GET("/api/departments/:id", controller.GetDepartmentByID)
	router.POST("/api/departments", controller.CreateDepartment)
	router.PUT("/api/departments/:id", controller.UpdateDepartment)
	router.DELETE("/api/departments/:id", controller.DeleteDepartment)
	return router
}

func TestListDepartments(t *testing.T) {
	service := &stubDepartmentService{
		departments: []*models.Department{
			{ID: 1, Name: "History"},
			{ID: 2, Name: "Physics"},
		},
	}
	router := setupDepartmentRouter(service)

	w := performJSON(router, http.MethodGet, "/api/departments", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "History")
	assert.Contains(t, w.Body.String(), "Physics")
}

func TestCreateDepartment(t *testing.T) {
	service := &stubDepartmentService{}
	router := setupDepartmentRouter(service)

	w := performJSON(router, http.MethodPost, "/api/departments", dto.DepartmentRequest{
		Name:        "Physics",
		Description: "Natural sciences",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":3`)
	require.NotNil(t, service.created)
	assert.Equal(t, "Physics", service.created.Name)
}

func TestCreateDepartmentMissingName(t *testing.T) {
	service := &stubDepartmentService{}
	router := setupDepartmentRouter(service)

	w := performJSON(router, http.MethodPost, "/api/departments", map[string]string{
		"description": "no name given",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, service.created)
}

func TestCreateDepartmentDuplicateName(t *testing.T) {
	service := &stubDepartmentService{err: apperrors.ErrDepartmentAlreadyExists}
	router := setupDepartmentRouter(service)

	w := performJSON(router, http.MethodPost, "/api/departments", dto.DepartmentRequest{Name: "Physics"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteDepartmentInUse(t *testing.T) {
	service := &stubDepartmentService{
		err: fmt.Errorf("%w: 4 attendee(s) still assigned", apperrors.ErrDepartmentInUse),
	}
	router := setupDepartmentRouter(service)

	w := performJSON(router, http.MethodDelete, "/api/departments/1", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "still assigned")
}

func TestDeleteDepartmentNotFound(t *testing.T) {
	service := &stubDepartmentService{err: apperrors.ErrDepartmentNotFound}
	router := setupDepartmentRouter(service)

	w := performJSON(router, http.MethodDelete, "/api/departments/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteDepartmentUnreferenced(t *testing.T) {
	service := &stubDepartmentService{affected: 1}
	router := setupDepartmentRouter(service)

	w := performJSON(router, http.MethodDelete, "/api/departments/1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"affected":1`)
}
