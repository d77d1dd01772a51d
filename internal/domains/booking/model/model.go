package model

import (
	"time"

	"medibook/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldDoctorID           = "doctor_id"
	FieldDoctorName         = "doctor_name"
	FieldBookingType        = "booking_type"
	FieldUserID             = "user_id"
	FieldPatientName        = "patient_name"
	FieldPatientPhone       = "patient_phone"
	FieldPatientEmail       = "patient_email"
	FieldAppointmentDate    = "appointment_date"
	FieldSlot               = "slot"
	FieldStatus             = "status"
	FieldToken              = "token"
	FieldPrice              = "price"
	FieldPaymentStatus      = "payment_status"
	FieldPaymentOrderID     = "payment_order_id"
	FieldPaymentRef         = "payment_ref"
	FieldNotes              = "notes"
	FieldCancellationReason = "cancellation_reason"
	FieldCancelledAt        = "cancelled_at"
	FieldCheckedAt          = "checked_at"
)

// Constraint names enforced by migrations. The repository matches them on
// unique violations to tell a lost slot race from a token collision.
const (
	ConstraintActiveSlot = "uq_bookings_active_slot"
	ConstraintToken      = "uq_bookings_token"
)

const (
	TypeAuthenticated = "authenticated"
	TypeGuest         = "guest"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// Booking is the reservation of a (doctor, date, slot) triple by a patient.
// Rows are never deleted; cancellation and completion are status changes so
// the audit history survives.
type Booking struct {
	ID                 string     `db:"id"`
	DoctorID           string     `db:"doctor_id"`
	DoctorName         string     `db:"doctor_name"`
	BookingType        string     `db:"booking_type"`
	UserID             string     `db:"user_id"`
	PatientName        string     `db:"patient_name"`
	PatientPhone       string     `db:"patient_phone"`
	PatientEmail       string     `db:"patient_email"`
	AppointmentDate    time.Time  `db:"appointment_date"`
	Slot               string     `db:"slot"`
	Status             Status     `db:"status"`
	Token              string     `db:"token"`
	Price              float64    `db:"price"`
	PaymentStatus      string     `db:"payment_status"`
	PaymentOrderID     string     `db:"payment_order_id"`
	PaymentRef         string     `db:"payment_ref"`
	Notes              string     `db:"notes"`
	CancellationReason string     `db:"cancellation_reason"`
	CancelledAt        *time.Time `db:"cancelled_at"`
	CheckedAt          *time.Time `db:"checked_at"`
	model.Metadata
}

// IsOwnedByUser reports whether the booking belongs to the given
// authenticated user.
func (b *Booking) IsOwnedByUser(userID string) bool {
	return b.BookingType == TypeAuthenticated && userID != "" && b.UserID == userID
}

// IsOwnedByGuestPhone reports whether the booking is a guest booking made
// with the given phone number.
func (b *Booking) IsOwnedByGuestPhone(phone string) bool {
	return b.BookingType == TypeGuest && phone != "" && b.PatientPhone == phone
}

// NormalizeAppointmentDate truncates a timestamp to its UTC calendar day, so
// equal dates with differing time-of-day components compare equal in the
// slot-availability index.
func NormalizeAppointmentDate(t time.Time) time.Time {
	utc := t.UTC()

	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
