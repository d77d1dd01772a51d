package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"medibook/internal/domains/booking/model"
	"medibook/internal/domains/booking/model/dto"
	gModel "medibook/shared/model"
	"medibook/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_ToModel_Authenticated(t *testing.T) {
	req := dto.CreateBookingRequest{
		DoctorID:        "doctor-1",
		PatientName:     "Jane Doe",
		PatientPhone:    "+6281234567890",
		PatientEmail:    "jane@example.com",
		AppointmentDate: "2026-09-15",
		Slot:            "10:00",
		Price:           500,
		Notes:           "first visit",
	}

	userID := "test-user-id"
	booking, err := req.ToModel(userID)
	assert.NoError(t, err)

	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, model.TypeAuthenticated, booking.BookingType)
	assert.Equal(t, userID, booking.UserID)
	assert.Equal(t, req.DoctorID, booking.DoctorID)
	assert.Equal(t, req.PatientName, booking.PatientName)
	assert.Equal(t, req.PatientPhone, booking.PatientPhone)
	assert.Equal(t, req.Slot, booking.Slot)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, model.PaymentPending, booking.PaymentStatus)
	assert.Empty(t, booking.Token, "token is assigned during reservation")
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), booking.AppointmentDate)
	assert.Equal(t, userID, booking.CreatedBy)
	assert.Equal(t, userID, booking.ModifiedBy)
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateBookingRequest_PaymentStateNotClientSettable(t *testing.T) {
	body := `{
		"doctor_id": "doctor-1",
		"patient_name": "Jane Doe",
		"patient_phone": "+6281234567890",
		"appointment_date": "2026-09-15",
		"slot": "10:00",
		"payment_status": "completed"
	}`

	var req dto.CreateBookingRequest
	assert.NoError(t, json.Unmarshal([]byte(body), &req))

	booking, err := req.ToModel("test-user-id")
	assert.NoError(t, err)
	assert.Equal(t, model.PaymentPending, booking.PaymentStatus)
}

func TestCreateBookingRequest_ToModel_Guest(t *testing.T) {
	req := dto.CreateBookingRequest{
		DoctorID:        "doctor-1",
		PatientName:     "John Doe",
		PatientPhone:    "+6281234567891",
		AppointmentDate: "2026-09-15",
		Slot:            "10:30",
	}

	booking, err := req.ToModel("")
	assert.NoError(t, err)

	assert.Equal(t, model.TypeGuest, booking.BookingType)
	assert.Empty(t, booking.UserID)
	assert.Equal(t, req.PatientPhone, booking.CreatedBy)
}

func TestCreateBookingRequest_ToModel_InvalidDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		DoctorID:        "doctor-1",
		PatientName:     "Jane Doe",
		PatientPhone:    "+6281234567890",
		AppointmentDate: "15-09-2026",
		Slot:            "10:00",
	}

	_, err := req.ToModel("test-user-id")
	assert.Error(t, err)
}

func TestRescheduleBookingRequest_Date(t *testing.T) {
	req := dto.RescheduleBookingRequest{
		AppointmentDate: "2026-10-01",
		Slot:            "11:00",
	}

	date, err := req.Date()
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), date)

	req.AppointmentDate = "not-a-date"
	_, err = req.Date()
	assert.Error(t, err)
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	cancelled := timezone.Now()
	bookingModel := model.Booking{
		ID:                 "test-id",
		DoctorID:           "doctor-1",
		DoctorName:         "Dr. Smith",
		BookingType:        model.TypeAuthenticated,
		UserID:             "test-user",
		PatientName:        "Jane Doe",
		PatientPhone:       "+6281234567890",
		AppointmentDate:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Slot:               "10:00",
		Status:             model.StatusCancelled,
		Token:              "242",
		Price:              500,
		PaymentStatus:      model.PaymentRefunded,
		CancellationReason: "patient request",
		CancelledAt:        &cancelled,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, bookingModel.ID, response.ID)
	assert.Equal(t, bookingModel.DoctorName, response.DoctorName)
	assert.Equal(t, "2026-09-15", response.AppointmentDate)
	assert.Equal(t, "cancelled", response.Status)
	assert.Equal(t, bookingModel.Token, response.Token)
	assert.Equal(t, bookingModel.CancellationReason, response.CancelReason)
	assert.NotEmpty(t, response.CancelledAt)
	assert.Empty(t, response.CheckedAt)
	assert.Equal(t, bookingModel.CreatedBy, response.CreatedBy)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	bookings := []model.Booking{
		{
			ID:              "test-id-1",
			DoctorID:        "doctor-1",
			PatientName:     "Jane Doe",
			AppointmentDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			Slot:            "10:00",
			Status:          model.StatusPending,
			Metadata:        gModel.Metadata{CreatedAt: now, ModifiedAt: now},
		},
		{
			ID:              "test-id-2",
			DoctorID:        "doctor-1",
			PatientName:     "John Doe",
			AppointmentDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			Slot:            "10:30",
			Status:          model.StatusConfirmed,
			Metadata:        gModel.Metadata{CreatedAt: now, ModifiedAt: now},
		},
	}

	totalData := 15
	limit := 10

	var response dto.GetBookingsResponse
	response.FromModels(bookings, totalData, limit)

	assert.Equal(t, totalData, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Bookings, len(bookings))

	for i, booking := range response.Bookings {
		assert.Equal(t, bookings[i].ID, booking.ID)
		assert.Equal(t, bookings[i].Slot, booking.Slot)
	}
}
