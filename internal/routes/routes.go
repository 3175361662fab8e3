package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/baymax-health/internal/audit"
	"github.com/BruksfildServices01/baymax-health/internal/config"
	"github.com/BruksfildServices01/baymax-health/internal/domain/reminder"
	"github.com/BruksfildServices01/baymax-health/internal/handlers"
	infraRepo "github.com/BruksfildServices01/baymax-health/internal/infra/repository"
	"github.com/BruksfildServices01/baymax-health/internal/middleware"
	"github.com/BruksfildServices01/baymax-health/internal/models"
	"github.com/BruksfildServices01/baymax-health/internal/storage"
	ucAppointment "github.com/BruksfildServices01/baymax-health/internal/usecase/appointment"
)

// Deps are the singletons built by main. PrefsCache and Avatars may be nil.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Audit    *audit.Dispatcher
	Location *time.Location

	PrefsCache reminder.PreferenceCache
	Mailer     handlers.TestEmailSender
	Avatars    storage.AvatarStore
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(d.Config.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	authLimiter := middleware.NewRateLimiter(d.Config.AuthRateLimitRPS, d.Config.AuthRateLimitBurst)

	// ======================================================
	// 🧠 USE CASES (APPOINTMENTS)
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		d.Audit,
		d.Location,
	)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		appointmentRepo,
		d.Audit,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Config)
	meHandler := handlers.NewMeHandler(d.DB)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateStatusUC,
		listAppointmentsUC,
	)

	medicationHandler := handlers.NewMedicationHandler(d.DB)
	emailHandler := handlers.NewEmailHandler(d.DB, d.PrefsCache, d.Mailer)
	notificationHandler := handlers.NewNotificationHandler(d.DB)
	sensorHandler := handlers.NewSensorHandler(d.DB)
	profileHandler := handlers.NewProfileHandler(d.DB, d.Avatars)
	doctorHandler := handlers.NewDoctorHandler(d.DB)
	healthLogHandler := handlers.NewHealthLogHandler(d.DB)

	adminHandler := handlers.NewAdminHandler(d.DB)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimit(authLimiter))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PUT(
				"/appointments/:id/status",
				middleware.RequireRole(models.RoleAdmin),
				appointmentHandler.UpdateStatus,
			)

			secured.GET("/medications", medicationHandler.List)
			secured.POST("/medications", medicationHandler.Create)
			secured.PUT("/medications/:id", medicationHandler.Update)
			secured.DELETE("/medications/:id", medicationHandler.Delete)

			secured.GET("/email/preferences", emailHandler.GetPreferences)
			secured.POST("/email/preferences", emailHandler.UpdatePreferences)
			secured.POST("/email/unsubscribe", emailHandler.Unsubscribe)
			secured.POST("/email/test", emailHandler.SendTest)

			secured.GET("/notifications", notificationHandler.List)
			secured.PUT("/notifications/:id/read", notificationHandler.MarkRead)
			secured.DELETE("/notifications/:id", notificationHandler.Delete)

			secured.GET("/sensor-readings", sensorHandler.List)
			secured.POST("/sensor-readings", sensorHandler.Create)

			secured.GET("/profile", profileHandler.Get)
			secured.PUT("/profile", profileHandler.Update)
			secured.POST("/profile/avatar", profileHandler.UploadAvatar)

			secured.GET("/doctors", doctorHandler.List)
			secured.POST(
				"/doctors",
				middleware.RequireRole(models.RoleAdmin),
				doctorHandler.Create,
			)
			secured.DELETE(
				"/doctors/:id",
				middleware.RequireRole(models.RoleAdmin),
				doctorHandler.Delete,
			)

			secured.GET("/health-logs", healthLogHandler.List)
			secured.POST("/health-logs", healthLogHandler.Save)
			secured.DELETE("/health-logs/:id", healthLogHandler.Delete)
		}

		// ------------------------------
		// 🛡️ ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(d.Config), middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/stats", adminHandler.Stats)
			admin.GET("/users", adminHandler.Users)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
