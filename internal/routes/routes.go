package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"womencare-server/internal/config"
	"womencare-server/internal/handlers"
	"womencare-server/internal/mailer"
	"womencare-server/internal/middleware"
	"womencare-server/internal/models"
	"womencare-server/internal/services"
	"womencare-server/internal/store"
)

// SetupRoutes wires stores, services and handlers onto the router.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {
	stores := store.NewGormStores(db)

	authService := services.NewAuthService(stores.Users, stores.Sessions,
		time.Duration(cfg.SessionTTLHours)*time.Hour, log)
	intakeService := services.NewIntakeService(stores.Personals, log)
	bookingService := services.NewBookingService(stores.Labs, stores.Bookings, stores.Users,
		models.DefaultDoctors(), mailer.New(cfg.SMTP), log)

	pageHandler := handlers.NewPageHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg, log)
	precautionsHandler := handlers.NewPrecautionsHandler(intakeService, log)
	labHandler := handlers.NewLabHandler(bookingService, log)
	adminHandler := handlers.NewAdminHandler(bookingService, log)

	// Every route sees the session when one is present; only the admin
	// group requires it.
	router.Use(middleware.SessionMiddleware(stores.Sessions, cfg.SessionSecret, log))

	router.GET("/", pageHandler.Home)

	router.GET("/signup", pageHandler.SignupPage)
	router.POST("/signup", authHandler.Signup)
	router.GET("/login", pageHandler.LoginPage)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	router.GET("/precautions", pageHandler.Precautions)
	router.GET("/personalPrecautions", pageHandler.PrecautionsForm)
	router.POST("/personalPrecautions", precautionsHandler.Submit)
	router.GET("/suggestions", pageHandler.Suggestions)

	router.GET("/doctor", labHandler.Directory)
	router.GET("/book-slot/:id", labHandler.BookingForm)
	router.POST("/book-slot", labHandler.SubmitBooking)

	admin := router.Group("/admin")
	admin.Use(middleware.RequireSession())
	{
		admin.GET("/bookings", adminHandler.ListBookings)
		admin.GET("/bookings/delete/:id", adminHandler.DeleteBooking)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
