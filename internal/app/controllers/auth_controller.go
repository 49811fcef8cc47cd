package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/owlconnect/owlconnect/internal/app/models/dto"
	"github.com/owlconnect/owlconnect/internal/app/services"
	"github.com/owlconnect/owlconnect/internal/middleware"
)

// AuthController handles the admin login endpoint
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login exchanges the shared admin secret for a signed, time-limited token
// @Summary Admin login
// @Description Exchanges the admin secret for a signed token with a 2 hour validity window
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Admin secret"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.APIResponse "Invalid password"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	token, expiresIn, err := c.authService.Login(req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	}))
}
