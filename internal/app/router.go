package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"busriya/internal/domain"
	"busriya/internal/handler"
	"busriya/internal/middleware"
	"busriya/internal/service"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler        *handler.AuthHandler
	ReservationHandler *handler.ReservationHandler
	BookingHandler     *handler.BookingHandler
	TripHandler        *handler.TripHandler
	MasterDataHandler  *handler.MasterDataHandler
	AuthService        *service.AuthService
	RedisClient        *redis.Client
	NewRelicApp        *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.Idempotency(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Authentication.
		v1.POST("/login", deps.AuthHandler.Login)
		v1.POST("/logout", middleware.RequireSession(deps.AuthService), deps.AuthHandler.Logout)

		// Commuter routes: no session required.
		v1.GET("/stations", deps.MasterDataHandler.ListStations)

		trips := v1.Group("/trips")
		{
			trips.GET("", deps.TripHandler.Search)
			trips.GET("/:id", deps.TripHandler.Get)
		}

		reservations := v1.Group("/reservations")
		{
			reservations.POST("", deps.ReservationHandler.Start)
			reservations.GET("/:id", deps.ReservationHandler.Get)
			reservations.POST("/:id/commuter", deps.ReservationHandler.SubmitCommuter)
			reservations.POST("/:id/seat", deps.ReservationHandler.SelectSeat)
			reservations.POST("/:id/otp", deps.ReservationHandler.SubmitOTP)
			reservations.POST("/:id/payment", deps.ReservationHandler.InitiatePayment)
			reservations.DELETE("/:id", deps.ReservationHandler.Abandon)
		}

		eticket := v1.Group("/eticket")
		{
			eticket.POST("/view", deps.BookingHandler.StartView)
			eticket.POST("/view/:id/otp", deps.BookingHandler.ViewOTP)
			eticket.POST("/cancel", deps.BookingHandler.StartCancel)
			eticket.POST("/cancel/:id/otp", deps.BookingHandler.CancelOTP)
			eticket.POST("/cancel/:id/confirm", deps.BookingHandler.ConfirmCancel)
		}

		v1.POST("/lost-parcels", deps.BookingHandler.ReportLostParcel)

		// Operator routes: elevated session required.
		operator := v1.Group("/operator")
		operator.Use(middleware.RequireSession(deps.AuthService), middleware.RequireRole(domain.RoleNTCUser))
		{
			operator.POST("/tickets/scan", deps.BookingHandler.ScanTicket)
		}

		// NTC administration routes: elevated session required.
		ntc := v1.Group("/ntc")
		ntc.Use(middleware.RequireSession(deps.AuthService), middleware.RequireRole(domain.RoleNTCUser))
		{
			deps.MasterDataHandler.Register(ntc)

			ntc.GET("/trips", deps.TripHandler.List)
			ntc.POST("/trips", deps.TripHandler.Create)
			ntc.PATCH("/trips/:id/trip-status", deps.TripHandler.UpdateTripStatus)
			ntc.PATCH("/trips/:id/booking-status", deps.TripHandler.UpdateBookingStatus)

			ntc.GET("/bookings", deps.BookingHandler.ListBookings)
			ntc.PATCH("/bookings/:id/booking-status", deps.BookingHandler.UpdateBookingStatus)

			ntc.GET("/lost-parcels", deps.BookingHandler.ListLostParcels)
			ntc.PATCH("/lost-parcels/:id", deps.BookingHandler.UpdateLostParcel)
		}
	}

	return router
}
