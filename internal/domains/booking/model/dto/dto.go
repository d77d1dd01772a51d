package dto

import (
	"time"

	"github.com/google/uuid"
	"medibook/internal/domains/booking/model"
	"medibook/shared"
	"medibook/shared/constant"
	gDto "medibook/shared/dto"
	gModel "medibook/shared/model"
	"medibook/shared/timezone"
)

type CreateBookingRequest struct {
	DoctorID        string  `json:"doctor_id"        validate:"required"`
	PatientName     string  `json:"patient_name"     validate:"required,max=100"`
	PatientPhone    string  `json:"patient_phone"    validate:"required,phone"`
	PatientEmail    string  `json:"patient_email"    validate:"omitempty,email,max=100"`
	AppointmentDate string  `json:"appointment_date" validate:"required,dateonly"`
	Slot            string  `json:"slot"             validate:"required,max=20"`
	Price           float64 `json:"price"            validate:"omitempty,gte=0"`
	Notes           string  `json:"notes"            validate:"omitempty,max=500"`
}

// ToModel builds a pending booking. userID is empty for guest bookings; the
// token is left blank and assigned by the service during reservation.
func (c *CreateBookingRequest) ToModel(userID string) (model.Booking, error) {
	appointmentDate, err := time.Parse(constant.AppointmentDateInput, c.AppointmentDate)
	if err != nil {
		return model.Booking{}, err
	}

	bookingType := model.TypeAuthenticated
	actor := userID
	if userID == "" {
		bookingType = model.TypeGuest
		actor = c.PatientPhone
	}

	return model.Booking{
		ID:              uuid.NewString(),
		DoctorID:        c.DoctorID,
		BookingType:     bookingType,
		UserID:          userID,
		PatientName:     c.PatientName,
		PatientPhone:    c.PatientPhone,
		PatientEmail:    c.PatientEmail,
		AppointmentDate: model.NormalizeAppointmentDate(appointmentDate),
		Slot:            c.Slot,
		Status:          model.StatusPending,
		Price:           c.Price,
		PaymentStatus:   model.PaymentPending,
		Notes:           c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}, nil
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type RescheduleBookingRequest struct {
	AppointmentDate string `json:"appointment_date" validate:"required,dateonly"`
	Slot            string `json:"slot"             validate:"required,max=20"`
}

func (r *RescheduleBookingRequest) Date() (time.Time, error) {
	appointmentDate, err := time.Parse(constant.AppointmentDateInput, r.AppointmentDate)
	if err != nil {
		return time.Time{}, err
	}

	return model.NormalizeAppointmentDate(appointmentDate), nil
}

type BookingResponse struct {
	ID              string  `json:"id"`
	DoctorID        string  `json:"doctor_id"`
	DoctorName      string  `json:"doctor_name"`
	BookingType     string  `json:"booking_type"`
	UserID          string  `json:"user_id,omitempty"`
	PatientName     string  `json:"patient_name"`
	PatientPhone    string  `json:"patient_phone"`
	PatientEmail    string  `json:"patient_email,omitempty"`
	AppointmentDate string  `json:"appointment_date"`
	Slot            string  `json:"slot"`
	Status          string  `json:"status"`
	Token           string  `json:"token"`
	Price           float64 `json:"price"`
	PaymentStatus   string  `json:"payment_status"`
	PaymentOrderID  string  `json:"payment_order_id,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	CancelReason    string  `json:"cancellation_reason,omitempty"`
	CancelledAt     string  `json:"cancelled_at,omitempty"`
	CheckedAt       string  `json:"checked_at,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.DoctorID = model.DoctorID
	r.DoctorName = model.DoctorName
	r.BookingType = model.BookingType
	r.UserID = model.UserID
	r.PatientName = model.PatientName
	r.PatientPhone = model.PatientPhone
	r.PatientEmail = model.PatientEmail
	r.AppointmentDate = model.AppointmentDate.Format(constant.AppointmentDateInput)
	r.Slot = model.Slot
	r.Status = string(model.Status)
	r.Token = model.Token
	r.Price = model.Price
	r.PaymentStatus = model.PaymentStatus
	r.PaymentOrderID = model.PaymentOrderID
	r.Notes = model.Notes
	r.CancelReason = model.CancellationReason
	if model.CancelledAt != nil {
		r.CancelledAt = timezone.Format(*model.CancelledAt, constant.DateFormat)
	}
	if model.CheckedAt != nil {
		r.CheckedAt = timezone.Format(*model.CheckedAt, constant.DateFormat)
	}
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type AvailabilityResponse struct {
	DoctorID        string `json:"doctor_id"`
	AppointmentDate string `json:"appointment_date"`
	Slot            string `json:"slot"`
	Available       bool   `json:"available"`
}
