package routes

import (
	"beacon-care-server/internal/config"
	"beacon-care-server/internal/dispatch"
	"beacon-care-server/internal/handlers"
	"beacon-care-server/internal/middleware"
	"beacon-care-server/internal/models"
	"beacon-care-server/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, s *store.Store, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(s, cfg)
	assistantHandler := handlers.NewAssistantHandler(s, dispatch.New(s))
	patientHandler := handlers.NewPatientHandler(s)
	appointmentHandler := handlers.NewAppointmentHandler(s)
	transportHandler := handlers.NewTransportHandler(s)
	taskHandler := handlers.NewTaskHandler(s)
	messageHandler := handlers.NewMessageHandler(s)
	notificationHandler := handlers.NewNotificationHandler(s)
	systemHandler := handlers.NewSystemHandler(s)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.GET("/profiles", authHandler.GetProfiles)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
		}

		// The assistant intent channel. Drivers act through their ride
		// endpoints, not the intent layer.
		private.POST("/assistant/command",
			middleware.RoleAuthMiddleware(models.RolePatient, models.RoleNurse, models.RoleDoctor),
			assistantHandler.Command)

		// Shared snapshot the dashboards render from
		private.GET("/state", systemHandler.GetState)

		patientRoutes := private.Group("/patients")
		{
			patientRoutes.GET("", middleware.RoleAuthMiddleware(models.RoleNurse, models.RoleDoctor), patientHandler.GetPatients)
			patientRoutes.GET("/:id", patientHandler.GetPatientByID) // Self-or-staff check in handler
		}

		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.POST("", middleware.RoleAuthMiddleware(models.RolePatient, models.RoleNurse, models.RoleDoctor), appointmentHandler.ScheduleAppointment)
			appointmentRoutes.POST("/cancel-all", middleware.RoleAuthMiddleware(models.RoleNurse, models.RoleDoctor), appointmentHandler.CancelAllForPatient)
			appointmentRoutes.PATCH("/:id/confirm", appointmentHandler.ConfirmAppointment) // Ownership check in handler
			appointmentRoutes.PATCH("/:id/complete", middleware.RoleAuthMiddleware(models.RoleNurse, models.RoleDoctor), appointmentHandler.CompleteAppointment)
			appointmentRoutes.PATCH("/:id/cancel", middleware.RoleAuthMiddleware(models.RoleNurse, models.RoleDoctor), appointmentHandler.CancelAppointment)
			appointmentRoutes.PATCH("/:id/reschedule", middleware.RoleAuthMiddleware(models.RoleNurse, models.RoleDoctor), appointmentHandler.RescheduleAppointment)
			appointmentRoutes.PATCH("/:id/reschedule-week", middleware.RoleAuthMiddleware(models.RoleNurse, models.RoleDoctor), appointmentHandler.RescheduleOneWeek)
		}

		transportRoutes := private.Group("/transport")
		{
			transportRoutes.GET("", middleware.RoleAuthMiddleware(models.RoleNurse, models.RoleDoctor, models.RoleDriver), transportHandler.GetRides)
			transportRoutes.POST("/requests", middleware.RoleAuthMiddleware(models.RolePatient, models.RoleNurse, models.RoleDoctor), transportHandler.RequestRide)
			transportRoutes.POST("/:id/claim", middleware.RoleAuthMiddleware(models.RoleDriver), transportHandler.ClaimRide)
			transportRoutes.PATCH("/:id/status", middleware.RoleAuthMiddleware(models.RoleDriver), transportHandler.UpdateRideStatus)
			transportRoutes.POST("/:id/fail", middleware.RoleAuthMiddleware(models.RoleDriver), transportHandler.FailRide)
			transportRoutes.POST("/:id/call", middleware.RoleAuthMiddleware(models.RolePatient, models.RoleNurse, models.RoleDoctor), transportHandler.CallDriver)
			transportRoutes.POST("/emergency", middleware.RoleAuthMiddleware(models.RolePatient, models.RoleNurse), transportHandler.RequestEmergency)
			transportRoutes.POST("/emergency/resolve", middleware.RoleAuthMiddleware(models.RolePatient, models.RoleNurse), transportHandler.ResolveEmergency)
		}

		taskRoutes := private.Group("/tasks")
		taskRoutes.Use(middleware.RoleAuthMiddleware(models.RoleNurse, models.RoleDoctor))
		{
			taskRoutes.GET("", taskHandler.GetTasks)
			taskRoutes.POST("/:id/resolve", taskHandler.ResolveTask)
		}

		messageRoutes := private.Group("/messages")
		{
			messageRoutes.POST("", messageHandler.SendMessage)
			messageRoutes.GET("", messageHandler.GetMessages)
		}

		notificationRoutes := private.Group("/notifications")
		{
			notificationRoutes.GET("", notificationHandler.GetNotifications)
			notificationRoutes.PATCH("/:id/read", notificationHandler.MarkRead)
		}

		systemRoutes := private.Group("/system")
		{
			systemRoutes.GET("/config", systemHandler.GetConfig)
			systemRoutes.POST("/virtual-doctor", systemHandler.ToggleVirtualDoctor)
			systemRoutes.POST("/senior-mode", systemHandler.ToggleSeniorMode)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
