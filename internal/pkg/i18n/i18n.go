// Package i18n provides message lookups for guest-facing text. Only the mail
// notifier and error surfacing consume it; domain logic stays locale-free.
package i18n

const DefaultLocale = "en"

var messages = map[string]map[string]string{
	"en": {
		"mail.booking_confirmed.subject": "Your reservation is confirmed",
		"mail.booking_confirmed.body":    "Dear %s,\n\nyour reservation at %s is confirmed.\n\nRoom: %s\nCheck-in: %s\nCheck-out: %s\nTotal: %s\n\nWe are looking forward to your stay.",
		"mail.payment_received.subject":  "Payment received",
		"mail.payment_received.body":     "Dear %s,\n\nwe have received your payment of %s for your reservation at %s (room %s, check-in %s).\n\nThank you.",
		"error.room_unavailable":         "The room is not available for the selected period",
		"error.duplicate_email":          "A guest with this email address already exists",
	},
	"de": {
		"mail.booking_confirmed.subject": "Ihre Reservierung ist bestätigt",
		"mail.booking_confirmed.body":    "Sehr geehrte/r %s,\n\nIhre Reservierung im %s ist bestätigt.\n\nZimmer: %s\nAnreise: %s\nAbreise: %s\nGesamtpreis: %s\n\nWir freuen uns auf Ihren Aufenthalt.",
		"mail.payment_received.subject":  "Zahlung erhalten",
		"mail.payment_received.body":     "Sehr geehrte/r %s,\n\nwir haben Ihre Zahlung über %s für Ihre Reservierung im %s (Zimmer %s, Anreise %s) erhalten.\n\nVielen Dank.",
		"error.room_unavailable":         "Das Zimmer ist im gewählten Zeitraum nicht verfügbar",
		"error.duplicate_email":          "Ein Gast mit dieser E-Mail-Adresse existiert bereits",
	},
}

// Translate resolves a message key for the given locale. Unknown locales fall
// back to English; unknown keys return the key itself so a missing entry is
// visible instead of silent.
func Translate(locale, key string) string {
	table, ok := messages[locale]
	if !ok {
		table = messages[DefaultLocale]
	}
	if msg, ok := table[key]; ok {
		return msg
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

func SupportedLocales() []string {
	locales := make([]string, 0, len(messages))
	for l := range messages {
		locales = append(locales, l)
	}
	return locales
}
