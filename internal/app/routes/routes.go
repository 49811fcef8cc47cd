package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/owlconnect/owlconnect/internal/app/controllers"
	"github.com/owlconnect/owlconnect/internal/app/models/dto"
	"github.com/owlconnect/owlconnect/internal/middleware"
	"github.com/owlconnect/owlconnect/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	attendeeController *controllers.AttendeeController,
	departmentController *controllers.DepartmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public routes ---
	// The grid page fetches the full collection without credentials;
	// departments are public so the grid can label cards.
	api.GET("/attendees", attendeeController.ListAttendees)
	api.GET("/departments", departmentController.ListDepartments)
	api.POST("/login", authController.Login)

	// --- Admin routes ---
	// Every mutating endpoint requires a valid admin token; failures are
	// rejected before any data access.
	admin := api.Group("")
	admin.Use(authMiddleware.JWTAuth())
	admin.Use(authMiddleware.RoleRequired(auth.RoleAdmin))
	{
		attendees := admin.Group("/attendees")
		{
			attendees.GET("/:id", attendeeController.GetAttendeeByID)
			attendees.POST("", attendeeController.CreateAttendee)
			attendees.PUT("/:id", attendeeController.UpdateAttendee)
			attendees.DELETE("/:id", attendeeController.DeleteAttendee)
		}

		departments := admin.Group("/departments")
		{
			departments.GET("/:id", departmentController.GetDepartmentByID)
			departments.POST("", departmentController.CreateDepartment)
			departments.PUT("/:id", departmentController.UpdateDepartment)
			departments.DELETE("/:id", departmentController.DeleteDepartment)
		}
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewDataResponse(gin.H{"status": "ok"}))
	})
}
