package notification

//go:generate go run go.uber.org/mock/mockgen -source=./notification.go -destination=./mocks/notification_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"medibook/infras/kafka"
	"medibook/shared/constant"
	"medibook/shared/timezone"
)

type EventType string

const (
	EventBookingCreated     EventType = "booking.created"
	EventBookingConfirmed   EventType = "booking.confirmed"
	EventBookingCancelled   EventType = "booking.cancelled"
	EventBookingRescheduled EventType = "booking.rescheduled"
	EventBookingCompleted   EventType = "booking.completed"
	EventOtpRequested       EventType = "otp.requested"
)

// Event is the notification payload published for consumers (SMS and email
// workers). OtpCode is only set for otp.requested events and never stored.
type Event struct {
	Type            EventType `json:"type"`
	BookingID       string    `json:"booking_id,omitempty"`
	DoctorID        string    `json:"doctor_id,omitempty"`
	DoctorName      string    `json:"doctor_name,omitempty"`
	PatientName     string    `json:"patient_name,omitempty"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email,omitempty"`
	AppointmentDate string    `json:"appointment_date,omitempty"`
	Slot            string    `json:"slot,omitempty"`
	Token           string    `json:"token,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	OtpCode         string    `json:"otp_code,omitempty"`
	SentAt          string    `json:"sent_at"`
}

type Dispatcher interface {
	Dispatch(ctx context.Context, event Event) error
}

type kafkaDispatcher struct {
	client kafka.Client
}

func NewKafkaDispatcher(client kafka.Client) Dispatcher {
	return &kafkaDispatcher{client: client}
}

// Dispatch publishes the event to the notifications topic keyed by phone so
// events for one recipient stay ordered within a partition.
func (d *kafkaDispatcher) Dispatch(ctx context.Context, event Event) error {
	if event.SentAt == "" {
		event.SentAt = timezone.Format(timezone.Now(), constant.DateFormat)
	}

	err := d.client.SendMessages(ctx, constant.KafkaTopicNotifications, kafka.Message{
		Key:   event.Phone,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("type", string(event.Type)).Msg("failed to dispatch notification event")

		return fmt.Errorf("failed to dispatch notification event: %w", err)
	}

	return nil
}
