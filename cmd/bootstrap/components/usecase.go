package components

import (
	"hotel-admin/internal/pkg/clock"
	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAvailabilityChecker,
		usecase.NewBookingUseCase,
		NewPaymentUseCase,
		usecase.NewGuestUseCase,
		usecase.NewRoomUseCase,
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)

func NewPaymentUseCase(
	bookingRepo usecase.BookingRepository,
	gateway usecase.PaymentGateway,
	notifier usecase.Notifier,
	pool *pgxpool.Pool,
	cfg config.Config,
) usecase.PaymentUseCase {
	return usecase.NewPaymentUseCase(bookingRepo, gateway, notifier, pool, cfg.Stripe.VerifyTimeout)
}
