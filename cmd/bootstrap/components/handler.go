package components

import (
	"hotel-admin/internal/handler"
	"hotel-admin/internal/handler/api"
	"hotel-admin/internal/handler/middleware"
	"hotel-admin/internal/infra/payment"
	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/pkg/jwt"
	"hotel-admin/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewBookingHandler,
		api.NewGuestHandler,
		api.NewRoomHandler,
		NewWebhookVerifier,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(authUseCase usecase.AuthUseCase, jwtService *jwt.Service, cfg config.Config) *api.AuthHandler {
	return api.NewAuthHandler(authUseCase, jwtService, cfg.Cookie)
}

func NewWebhookVerifier(cfg config.Config) api.WebhookVerifier {
	return payment.NewWebhookVerifier(cfg.Stripe)
}

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	guest *api.GuestHandler,
	room *api.RoomHandler,
	pay *api.PaymentHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Booking: booking,
		Guest:   guest,
		Room:    room,
		Payment: pay,
	}
}
