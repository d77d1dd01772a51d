package sms

//go:generate go run go.uber.org/mock/mockgen -source=./sms.go -destination=./mocks/sms_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"medibook/config"
	"medibook/external/notification"
)

// Sender delivers a rendered message to a phone number. The provider sits
// behind this seam; swapping it in means implementing Send against the
// provider API.
type Sender interface {
	Send(ctx context.Context, phone, message string) error
}

type logSender struct {
	senderID string
}

// NewLogSender returns a Sender that writes messages to the log instead of a
// provider. Used in development and as the default until a provider account
// is configured.
func NewLogSender(cfg *config.Config) Sender {
	return &logSender{senderID: cfg.External.SMS.SenderID}
}

func (s *logSender) Send(_ context.Context, phone, message string) error {
	log.Info().
		Str("sender_id", s.senderID).
		Str("phone", phone).
		Str("message", message).
		Msg("sms delivered to log sink")

	return nil
}

// Render builds the patient-facing text for a notification event.
func Render(event notification.Event) string {
	switch event.Type {
	case notification.EventOtpRequested:
		return fmt.Sprintf("Your verification code is %s. It expires shortly; do not share it.", event.OtpCode)
	case notification.EventBookingCreated:
		return fmt.Sprintf("Appointment requested with %s on %s at %s. Your token is %s.",
			event.DoctorName, event.AppointmentDate, event.Slot, event.Token)
	case notification.EventBookingConfirmed:
		return fmt.Sprintf("Appointment confirmed with %s on %s at %s. Token %s.",
			event.DoctorName, event.AppointmentDate, event.Slot, event.Token)
	case notification.EventBookingCancelled:
		if event.Reason != "" {
			return fmt.Sprintf("Your appointment with %s on %s was cancelled: %s.",
				event.DoctorName, event.AppointmentDate, event.Reason)
		}

		return fmt.Sprintf("Your appointment with %s on %s was cancelled.", event.DoctorName, event.AppointmentDate)
	case notification.EventBookingRescheduled:
		return fmt.Sprintf("Your appointment with %s was moved to %s at %s. Token %s stays valid.",
			event.DoctorName, event.AppointmentDate, event.Slot, event.Token)
	case notification.EventBookingCompleted:
		return fmt.Sprintf("Thank you for visiting %s. Your appointment on %s is complete.",
			event.DoctorName, event.AppointmentDate)
	default:
		return fmt.Sprintf("Update for your appointment on %s at %s.", event.AppointmentDate, event.Slot)
	}
}
