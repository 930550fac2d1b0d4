package contact

import (
	platformi18n "github.com/likhastudio/site/internal/platform/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys shared with the web layer.
const (
	KeySent            = "contact.result.sent"
	KeyMissingFields   = "contact.error.missing_fields"
	KeyInvalidEmail    = "contact.error.invalid_email"
	KeyDeliveryFailed  = "contact.error.delivery"
	KeyInvalidRequest  = "contact.error.invalid_request"
	KeyNetworkFailure  = "contact.error.network"
	keyNotifySubject   = "contact.notify.subject"
	keyNotifyHeading   = "contact.notify.heading"
	keyNotifyName      = "contact.notify.name"
	keyNotifyEmail     = "contact.notify.email"
	keyNotifyMessage   = "contact.notify.message"
	keyNotifySentAt    = "contact.notify.sent_at"
	keyConfirmSubject  = "contact.confirm.subject"
	keyConfirmHeading  = "contact.confirm.heading"
	keyConfirmGreeting = "contact.confirm.greeting"
	keyConfirmBody     = "contact.confirm.body"
	keyConfirmQuote    = "contact.confirm.quote_label"
)

var (
	tagIT = language.MustParse("it-IT")
	tagEN = language.MustParse("en-US")
)

func init() {
	set := func(tag language.Tag, entries map[string]string) {
		for key, value := range entries {
			_ = message.SetString(tag, key, value)
		}
	}

	set(tagIT, map[string]string{
		KeySent:            "Email inviata con successo!",
		KeyMissingFields:   "Tutti i campi sono obbligatori",
		KeyInvalidEmail:    "Email non valida",
		KeyDeliveryFailed:  "Errore nell'invio dell'email. Riprova più tardi.",
		KeyInvalidRequest:  "Richiesta non valida",
		KeyNetworkFailure:  "Impossibile contattare il server. Controlla la connessione e riprova.",
		keyNotifySubject:   "Nuovo Contatto - %s",
		keyNotifyHeading:   "Nuovo Messaggio di Contatto",
		keyNotifyName:      "Nome:",
		keyNotifyEmail:     "Email:",
		keyNotifyMessage:   "Messaggio:",
		keyNotifySentAt:    "Inviato il: %s",
		keyConfirmSubject:  "Conferma - Ho ricevuto il tuo messaggio",
		keyConfirmHeading:  "Grazie per il contatto! 🎉",
		keyConfirmGreeting: "Ciao %s,",
		keyConfirmBody:     "Ho ricevuto il tuo messaggio e ti contatterò al più presto.",
		keyConfirmQuote:    "Il tuo messaggio:",
	})

	set(tagEN, map[string]string{
		KeySent:            "Email sent successfully!",
		KeyMissingFields:   "All fields are required",
		KeyInvalidEmail:    "Invalid email address",
		KeyDeliveryFailed:  "We could not send your message. Please try again later.",
		KeyInvalidRequest:  "Invalid request",
		KeyNetworkFailure:  "Could not reach the server. Check your connection and try again.",
		keyNotifySubject:   "New Contact - %s",
		keyNotifyHeading:   "New Contact Message",
		keyNotifyName:      "Name:",
		keyNotifyEmail:     "Email:",
		keyNotifyMessage:   "Message:",
		keyNotifySentAt:    "Sent on: %s",
		keyConfirmSubject:  "Confirmation - I received your message",
		keyConfirmHeading:  "Thanks for getting in touch! 🎉",
		keyConfirmGreeting: "Hi %s,",
		keyConfirmBody:     "I received your message and will get back to you as soon as possible.",
		keyConfirmQuote:    "Your message:",
	})
}

// Printer returns a localizer for tag, falling back to the site default for
// unsupported languages.
func Printer(tag language.Tag) *message.Printer {
	if resolved, ok := platformi18n.ParseTag(tag.String()); ok {
		return message.NewPrinter(resolved)
	}
	return message.NewPrinter(platformi18n.DefaultTag())
}

// Text returns the localized copy for key in tag.
func Text(tag language.Tag, key string) string {
	return Printer(tag).Sprintf(key)
}

// ErrorKey maps a pipeline error to the message key shown to visitors.
func ErrorKey(err error) string {
	switch {
	case err == nil:
		return ""
	case IsValidationReason(err, ReasonMissingFields):
		return KeyMissingFields
	case IsValidationReason(err, ReasonInvalidEmail):
		return KeyInvalidEmail
	default:
		return KeyDeliveryFailed
	}
}
