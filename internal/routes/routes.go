package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbercloud/agenda-api/internal/audit"
	"github.com/barbercloud/agenda-api/internal/cache"
	"github.com/barbercloud/agenda-api/internal/config"
	"github.com/barbercloud/agenda-api/internal/handlers"
	infraRepo "github.com/barbercloud/agenda-api/internal/infra/repository"
	"github.com/barbercloud/agenda-api/internal/media"
	"github.com/barbercloud/agenda-api/internal/metrics"
	ucAppointment "github.com/barbercloud/agenda-api/internal/usecase/appointment"
	ucReport "github.com/barbercloud/agenda-api/internal/usecase/report"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	slotCache := cache.New(cfg.RedisAddr)
	storage := media.New(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(bookingRepo, slotCache)
	finalizeUC := ucAppointment.NewFinalizeAppointment(bookingRepo, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(bookingRepo, auditDispatcher, slotCache)
	updateUC := ucAppointment.NewUpdateAppointment(bookingRepo)
	listUC := ucAppointment.NewListAppointments(bookingRepo)
	availabilityUC := ucAppointment.NewGetAvailability(bookingRepo, slotCache)
	removeBarberUC := ucAppointment.NewRemoveBarber(bookingRepo)
	statsUC := ucReport.NewStats(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		finalizeUC,
		cancelUC,
		updateUC,
		listUC,
		bookingRepo,
	)

	shopHandler := handlers.NewShopHandler(db, storage)
	scheduleHandler := handlers.NewScheduleHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)
	barberHandler := handlers.NewBarberHandler(db, removeBarberUC)
	clientHandler := handlers.NewClientHandler(db)
	logsHandler := handlers.NewLogsHandler(db)
	statsHandler := handlers.NewStatsHandler(statsUC)

	// ======================================================
	// ROUTES
	// ======================================================

	r.GET("/metrics", metrics.Handler())

	// ------------------------------
	// APPOINTMENTS
	// ------------------------------
	r.POST("/appointments", appointmentHandler.Create)
	r.GET("/appointments", appointmentHandler.List)
	r.GET("/appointments/:id", appointmentHandler.Get)
	r.PUT("/appointments/:id", appointmentHandler.Update)
	r.DELETE("/appointments/:id", appointmentHandler.Delete)
	r.PATCH("/appointments/:id/finalize", appointmentHandler.Finalize)
	r.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

	// ------------------------------
	// SHOPS
	// ------------------------------
	r.POST("/shops", shopHandler.Create)
	r.GET("/shops", shopHandler.List)
	r.GET("/shops/:id", shopHandler.Get)
	r.PUT("/shops/:id", shopHandler.Update)
	r.DELETE("/shops/:id", shopHandler.Delete)
	r.POST("/shops/:id/logo", shopHandler.UploadLogo)

	r.GET("/shops/:id/schedule", scheduleHandler.Get)
	r.PUT("/shops/:id/schedule", scheduleHandler.Publish)
	r.GET("/shops/:id/availability", availabilityHandler.Get)

	// ------------------------------
	// BARBERS
	// ------------------------------
	r.POST("/barbers", barberHandler.Create)
	r.GET("/barbers", barberHandler.List)
	r.GET("/barbers/:id", barberHandler.Get)
	r.PUT("/barbers/:id", barberHandler.Update)
	r.DELETE("/barbers/:id", barberHandler.Delete)
	r.POST("/barbers/login", barberHandler.Login)

	// ------------------------------
	// CLIENTS
	// ------------------------------
	r.POST("/clients", clientHandler.Create)
	r.GET("/clients", clientHandler.List)
	r.GET("/clients/:id", clientHandler.Get)
	r.PUT("/clients/:id", clientHandler.Update)
	r.DELETE("/clients/:id", clientHandler.Delete)
	r.POST("/clients/login", clientHandler.Login)

	// ------------------------------
	// LOGS + STATS
	// ------------------------------
	r.GET("/logs/:shop_id", logsHandler.List)
	r.GET("/stats/:shop_id", statsHandler.Get)
	r.GET("/stats/:shop_id/top-services", statsHandler.TopServices)
}
