package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barber-booking/internal/audit"
	"barber-booking/internal/config"
	"barber-booking/internal/handlers"
	infraRepo "barber-booking/internal/infra/repository"
	"barber-booking/internal/middleware"
	"barber-booking/internal/storage"
	"barber-booking/internal/tokens"
	ucBooking "barber-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	denylist tokens.Denylist,
	uploader storage.Uploader,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	bookSlotUC := ucBooking.NewBookSlot(bookingRepo, auditDispatcher)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher)
	completeBookingUC := ucBooking.NewCompleteBooking(bookingRepo, auditDispatcher)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, denylist)
	profileHandler := handlers.NewProfileHandler(db, uploader)
	barberHandler := handlers.NewBarberHandler(db, auditDispatcher)
	slotHandler := handlers.NewSlotHandler(db)
	bookingHandler := handlers.NewBookingHandler(
		bookSlotUC,
		cancelBookingUC,
		completeBookingUC,
		deleteBookingUC,
	)
	reviewHandler := handlers.NewReviewHandler(db)
	paymentHandler := handlers.NewPaymentHandler(db)
	reportHandler := handlers.NewReportHandler(db)
	userAdminHandler := handlers.NewUserAdminHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// ------------------------------
		// PUBLIC SLOTS
		// ------------------------------
		api.GET("/barber/slots", slotHandler.List)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, denylist))
		{
			secured.POST("/logout", authHandler.Logout)
			secured.POST("/profile", profileHandler.Profile)
			secured.POST("/me/avatar", profileHandler.UploadAvatar)

			secured.POST("/barber/signup", barberHandler.Signup)

			// ------------------------------
			// BOOKING STATE MACHINE
			// ------------------------------
			secured.POST("/barber/slots/book/:slot_id", bookingHandler.Book)
			secured.PUT("/barber/slots/cancel/:slot_id", bookingHandler.Cancel)
			secured.PUT("/barber/slots/complete/:slot_id", bookingHandler.Complete)
			secured.DELETE("/barber/slots/delete/:slot_id", bookingHandler.Delete)

			secured.POST("/barber/write-review/:slot_id", reviewHandler.Create)
			secured.POST("/barber/pay/:slot_id", paymentHandler.Pay)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/barber/slots/all-cancelled", reportHandler.AllCancelled)
				admin.POST("/barber/slots/cancelled", reportHandler.CancelledInRange)

				admin.GET("/users", userAdminHandler.List)
				admin.GET("/users/:id", userAdminHandler.Get)
				admin.PUT("/users/:id", userAdminHandler.Update)
				admin.DELETE("/users/:id", userAdminHandler.Delete)

				admin.GET("/barbers", barberHandler.List)
				admin.GET("/barbers/:id", barberHandler.Get)
				admin.DELETE("/barbers/:id", barberHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
