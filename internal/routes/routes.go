package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/medpoint/hospital-scheduler/internal/audit"
	"github.com/medpoint/hospital-scheduler/internal/cache"
	"github.com/medpoint/hospital-scheduler/internal/config"
	"github.com/medpoint/hospital-scheduler/internal/handlers"
	infraRepo "github.com/medpoint/hospital-scheduler/internal/infra/repository"
	"github.com/medpoint/hospital-scheduler/internal/metrics"
	"github.com/medpoint/hospital-scheduler/internal/middleware"
	ucBooking "github.com/medpoint/hospital-scheduler/internal/usecase/booking"
)

type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Log     *zap.Logger
	Metrics *metrics.Collector
	Redis   *redis.Client
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(d.DB)

	auditLogger := audit.New(d.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, d.Log, d.Metrics)

	doctorDirectory := cache.NewDoctorDirectory(d.Redis, d.Log)

	// ======================================================
	// USE CASES — SCHEDULING CORE
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		scheduleRepo,
		auditDispatcher,
	)

	changeStatusUC := ucBooking.NewChangeStatus(
		scheduleRepo,
		auditDispatcher,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		scheduleRepo,
	)

	deleteDoctorUC := ucBooking.NewDeleteDoctor(
		scheduleRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Config)
	doctorHandler := handlers.NewDoctorHandler(d.DB, doctorDirectory, availabilityUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		d.DB,
		createBookingUC,
		changeStatusUC,
		d.Metrics,
	)

	adminHandler := handlers.NewAdminHandler(
		d.DB,
		auditDispatcher,
		doctorDirectory,
		changeStatusUC,
		deleteDoctorUC,
	)

	authLimiter := middleware.NewRateLimiter(d.Config.RateLimitRPS, d.Config.RateLimitBurst)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		authAPI.Use(middleware.RateLimit(authLimiter))
		{
			authAPI.POST("/signup", authHandler.Signup)
			authAPI.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/doctors", doctorHandler.List)
			secured.GET("/doctors/:id/availability", doctorHandler.Availability)

			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListMine)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(d.Config), middleware.RequireAdmin())
		{
			admin.GET("/stats", adminHandler.Stats)
			admin.GET("/users", adminHandler.ListUsers)

			admin.GET("/appointments", adminHandler.ListAppointments)
			admin.PATCH("/appointments/:id/status", adminHandler.UpdateAppointmentStatus)
			admin.DELETE("/appointments/:id", adminHandler.DeleteAppointment)

			admin.GET("/doctors", adminHandler.ListDoctors)
			admin.POST("/doctors", adminHandler.CreateDoctor)
			admin.PUT("/doctors/:id", adminHandler.UpdateDoctor)
			admin.DELETE("/doctors/:id", adminHandler.DeleteDoctor)
		}
	}
}
