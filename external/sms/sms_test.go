package sms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medibook/external/notification"
	"medibook/external/sms"
)

func TestRender(t *testing.T) {
	base := notification.Event{
		DoctorName:      "Dr. Smith",
		AppointmentDate: "2026-09-15",
		Slot:            "10:00",
		Token:           "421",
	}

	t.Run("otp message carries the code", func(t *testing.T) {
		event := notification.Event{Type: notification.EventOtpRequested, OtpCode: "123456"}

		msg := sms.Render(event)

		assert.Contains(t, msg, "123456")
	})

	t.Run("booking created carries token and slot", func(t *testing.T) {
		event := base
		event.Type = notification.EventBookingCreated

		msg := sms.Render(event)

		assert.Contains(t, msg, "421")
		assert.Contains(t, msg, "10:00")
		assert.Contains(t, msg, "Dr. Smith")
	})

	t.Run("cancellation includes the reason when given", func(t *testing.T) {
		event := base
		event.Type = notification.EventBookingCancelled
		event.Reason = "doctor unavailable"

		msg := sms.Render(event)

		assert.Contains(t, msg, "doctor unavailable")
	})

	t.Run("cancellation without reason still renders", func(t *testing.T) {
		event := base
		event.Type = notification.EventBookingCancelled

		msg := sms.Render(event)

		assert.Contains(t, msg, "cancelled")
	})

	t.Run("unknown event gets a generic message", func(t *testing.T) {
		event := base
		event.Type = notification.EventType("booking.unknown")

		msg := sms.Render(event)

		assert.NotEmpty(t, msg)
	})
}
