package components

import (
	"hotel-admin/internal/infra/mail"
	"hotel-admin/internal/infra/payment"
	"hotel-admin/internal/infra/repository"
	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repository.NewGuestRepository,
			fx.As(new(usecase.GuestRepository)),
		),
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(usecase.RoomRepository)),
		),
		fx.Annotate(
			repository.NewStaffRepository,
			fx.As(new(usecase.StaffRepository)),
		),
		fx.Annotate(
			NewStripeGateway,
			fx.As(new(usecase.PaymentGateway)),
		),
		fx.Annotate(
			NewMailNotifier,
			fx.As(new(usecase.Notifier)),
		),
	),
)

func NewStripeGateway(cfg config.Config) *payment.StripeGateway {
	return payment.NewStripeGateway(cfg.Stripe)
}

func NewMailNotifier(cfg config.Config) *mail.Notifier {
	return mail.NewNotifier(cfg.SMTP, cfg.Hotel)
}
