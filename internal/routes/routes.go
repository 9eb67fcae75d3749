package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/haircut-scheduler/internal/audit"
	"github.com/BruksfildServices01/haircut-scheduler/internal/config"
	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/haircut-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/haircut-scheduler/internal/handlers"
	"github.com/BruksfildServices01/haircut-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/haircut-scheduler/internal/usecase/appointment"
)

// Deps are the singletons built once in main.
type Deps struct {
	Config  *config.Config
	Log     *zap.Logger
	Repo    domain.Repository
	Catalog domain.Catalog
	Audit   *audit.Dispatcher
	Grid    schedule.Grid

	AuditLogs handlers.AuditLogLister
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(d.Log),
		middleware.CORSMiddleware(d.Config),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(d.Repo, d.Catalog, d.Grid)
	createUC := ucAppointment.NewCreateAppointment(d.Repo, d.Catalog, d.Grid, d.Audit)
	getUC := ucAppointment.NewGetAppointment(d.Repo)
	listUC := ucAppointment.NewListAppointments(d.Repo, d.Catalog)
	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(d.Repo, d.Audit)
	listAllUC := ucAppointment.NewListAllAppointments(d.Repo)
	deleteUC := ucAppointment.NewDeleteAppointment(d.Repo, d.Audit)
	statsUC := ucAppointment.NewGetStats(d.Repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(availabilityUC, d.Log)
	appointmentHandler := handlers.NewAppointmentHandler(createUC, getUC, listUC, updateStatusUC, d.Log)
	adminHandler := handlers.NewAdminHandler(listAllUC, deleteUC, statsUC, d.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs, d.Log)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", handlers.Health)

	api := r.Group("/api")

	api.GET(
		"/appointments/slots",
		middleware.RateLimitMiddleware(d.Config.RateLimit.PerMinute, d.Log),
		publicHandler.Slots,
	)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware(d.Config))
	{
		auth.POST("/appointments", appointmentHandler.Create)
		auth.GET("/appointments", appointmentHandler.List)
		auth.GET("/appointments/:id", appointmentHandler.Get)
		auth.PUT("/appointments/:id/status", appointmentHandler.UpdateStatus)
	}

	// ======================================================
	// ADMIN
	// ======================================================
	admin := api.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(d.Config),
		middleware.RequireRole(domain.RoleAdmin),
	)
	{
		admin.GET("/appointments", adminHandler.ListAppointments)
		admin.PUT("/appointments/:id/status", appointmentHandler.UpdateStatus)
		admin.DELETE("/appointments/:id", adminHandler.DeleteAppointment)
		admin.GET("/stats", adminHandler.Stats)
		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}
