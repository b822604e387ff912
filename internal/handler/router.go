package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-admin/internal/handler/api"
	"hotel-admin/internal/handler/middleware"
	"hotel-admin/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Booking *api.BookingHandler
	Guest   *api.GuestHandler
	Room    *api.RoomHandler
	Payment *api.PaymentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: handlers.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: handlers.Auth.Me},
			})
		}

		// The webhook authenticates by signature, not by session.
		apiGroup.POST("/webhooks/stripe", handlers.Payment.HandleStripeWebhook)

		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rooms, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Room.CreateRoom},
				{Method: http.MethodGet, Path: "", Handler: handlers.Room.ListRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Room.GetRoom},
				{Method: http.MethodPut, Path: "/:id", Handler: handlers.Room.UpdateRoom},
				{Method: http.MethodDelete, Path: "/:id", Handler: handlers.Room.DeleteRoom},
			})
		}

		guests := apiGroup.Group("/guests")
		guests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(guests, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Guest.CreateGuest},
				{Method: http.MethodGet, Path: "", Handler: handlers.Guest.ListGuests},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Guest.GetGuest},
				{Method: http.MethodPut, Path: "/:id", Handler: handlers.Guest.UpdateGuest},
				{Method: http.MethodDelete, Path: "/:id", Handler: handlers.Guest.DeleteGuest},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: handlers.Booking.ListBookings},
				{Method: http.MethodGet, Path: "/summary", Handler: handlers.Booking.GetSummary},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Booking.GetBooking},
				{Method: http.MethodPut, Path: "/:id", Handler: handlers.Booking.UpdateBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: handlers.Booking.CancelBooking},
				{Method: http.MethodDelete, Path: "/:id", Handler: handlers.Booking.DeleteBooking},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/confirm", Handler: handlers.Payment.ConfirmPayment},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
