package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/audit"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/config"
	domain "github.com/Ayush2004sharma/MedSync-Backend/internal/domain/appointment"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/domain/schedule"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/handlers"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/httperr"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/middleware"
	ucAppointment "github.com/Ayush2004sharma/MedSync-Backend/internal/usecase/appointment"
	ucSchedule "github.com/Ayush2004sharma/MedSync-Backend/internal/usecase/schedule"
)

// Dependencies are the singletons built by the serve command.
type Dependencies struct {
	Config    *config.Config
	Log       *zap.Logger
	Ledger    domain.Repository
	Schedules schedule.Store
	Audit     *audit.Dispatcher
	// Limiter guards booking requests. Nil disables rate limiting.
	Limiter middleware.Limiter
	Ping    handlers.PingFunc
	Loc     *time.Location
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.CORSMiddleware(deps.Config.Server.AllowOrigins),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(deps.Ledger, deps.Schedules, deps.Loc)
	requestUC := ucAppointment.NewRequestBooking(deps.Ledger, deps.Audit, deps.Loc)
	decideUC := ucAppointment.NewDecideAppointment(deps.Ledger, deps.Audit, deps.Loc)
	cancelUC := ucAppointment.NewCancelAppointment(deps.Ledger, deps.Audit, deps.Loc)
	listPatientUC := ucAppointment.NewListPatientAppointments(deps.Ledger)
	listDoctorUC := ucAppointment.NewListDoctorAppointments(deps.Ledger)
	deleteUC := ucAppointment.NewDeleteAppointment(deps.Ledger, deps.Audit)

	getScheduleUC := ucSchedule.NewGetWeeklySchedule(deps.Schedules)
	updateScheduleUC := ucSchedule.NewUpdateWeeklySchedule(deps.Schedules, deps.Audit, deps.Loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		requestUC,
		decideUC,
		cancelUC,
		listPatientUC,
		listDoctorUC,
		deleteUC,
		log,
	)
	scheduleHandler := handlers.NewScheduleHandler(getScheduleUC, updateScheduleUC, log)
	healthHandler := handlers.NewHealthHandler(deps.Ping, log)

	auth := middleware.AuthMiddleware(deps.Config.Auth.JWTSecret)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", healthHandler.Check)

	api := r.Group("/api")

	// ======================================================
	// APPOINTMENTS
	// ======================================================
	appointments := api.Group("/appointments", auth)
	{
		appointments.GET("/user", middleware.RequireRole(middleware.RolePatient), appointmentHandler.ListForPatient)
		appointments.GET("/doctor", middleware.RequireRole(middleware.RoleDoctor), appointmentHandler.ListForDoctor)

		appointments.GET("/:doctorId/slots", appointmentHandler.Slots)
		appointments.POST("/:doctorId",
			middleware.RequireRole(middleware.RolePatient),
			middleware.RateLimit(deps.Limiter, log),
			appointmentHandler.Request,
		)

		appointments.PATCH("/:id/approve", middleware.RequireRole(middleware.RoleDoctor), appointmentHandler.Decide)
		appointments.PATCH("/:id/cancel", appointmentHandler.Cancel)
		appointments.DELETE("/:id/delete", appointmentHandler.Delete)
	}

	// ======================================================
	// DOCTORS
	// ======================================================
	doctors := api.Group("/doctors")
	{
		doctors.GET("/:doctorId/schedule", scheduleHandler.Get)
		doctors.PUT("/me/schedule", auth, middleware.RequireRole(middleware.RoleDoctor), scheduleHandler.Update)
	}

	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "route_not_found", "Route not found")
	})
}
