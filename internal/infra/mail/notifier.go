// Package mail sends guest-facing notification emails over SMTP. Sends are
// best-effort from the caller's point of view; this package just reports
// failures honestly.
package mail

import (
	"context"
	"fmt"

	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/pkg/i18n"
	"hotel-admin/internal/usecase"

	gomail "github.com/wneessen/go-mail"
)

const dateLayout = "2006-01-02"

type Notifier struct {
	smtp  config.SMTPConfig
	hotel config.HotelConfig
}

func NewNotifier(smtp config.SMTPConfig, hotel config.HotelConfig) *Notifier {
	return &Notifier{smtp: smtp, hotel: hotel}
}

func (n *Notifier) SendBookingConfirmation(ctx context.Context, notif usecase.BookingNotification) error {
	locale := n.locale(notif.Locale)
	subject := i18n.Translate(locale, "mail.booking_confirmed.subject")
	body := fmt.Sprintf(i18n.Translate(locale, "mail.booking_confirmed.body"),
		notif.GuestName,
		n.hotel.Name,
		notif.RoomNumber,
		notif.CheckIn.Format(dateLayout),
		notif.CheckOut.Format(dateLayout),
		formatCents(notif.TotalCents),
	)

	return n.send(ctx, notif.GuestEmail, subject, body)
}

func (n *Notifier) SendPaymentConfirmation(ctx context.Context, notif usecase.PaymentNotification) error {
	locale := n.locale(notif.Locale)
	subject := i18n.Translate(locale, "mail.payment_received.subject")
	body := fmt.Sprintf(i18n.Translate(locale, "mail.payment_received.body"),
		notif.GuestName,
		formatCents(notif.AmountCents),
		n.hotel.Name,
		notif.RoomNumber,
		notif.CheckIn.Format(dateLayout),
	)

	return n.send(ctx, notif.GuestEmail, subject, body)
}

func (n *Notifier) send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(n.smtp.From); err != nil {
		return errs.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return errs.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	opts := []gomail.Option{
		gomail.WithPort(n.smtp.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if n.smtp.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(n.smtp.User),
			gomail.WithPassword(n.smtp.Password),
		)
	}

	c, err := gomail.NewClient(n.smtp.Host, opts...)
	if err != nil {
		return errs.Wrap(err, "failed to create mail client")
	}

	if err := c.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to send mail")
	}
	return nil
}

func (n *Notifier) locale(locale string) string {
	if locale == "" {
		return n.hotel.DefaultLocale
	}
	return locale
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
