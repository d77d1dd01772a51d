package service_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"medibook/config"
	notificationMocks "medibook/external/notification/mocks"
	"medibook/infras/otel/mocks"
	bookingMocks "medibook/internal/domains/booking/mocks"
	"medibook/internal/domains/booking/model"
	"medibook/internal/domains/booking/model/dto"
	"medibook/internal/domains/booking/repository"
	"medibook/internal/domains/booking/service"
	doctorMocks "medibook/internal/domains/doctor/mocks"
	doctorModel "medibook/internal/domains/doctor/model"
	verificationMocks "medibook/internal/domains/verification/service/mocks"
	cacheMocks "medibook/shared/cache/mocks"
	"medibook/shared/constant"
	"medibook/shared/failure"
	gModel "medibook/shared/model"
	"medibook/shared/timezone"
)

type serviceMocks struct {
	repo         *bookingMocks.MockBooking
	doctorRepo   *doctorMocks.MockDoctor
	verification *verificationMocks.MockVerification
	dispatcher   *notificationMocks.MockDispatcher
	cache        *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.Booking, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:         bookingMocks.NewMockBooking(ctrl),
		doctorRepo:   doctorMocks.NewMockDoctor(ctrl),
		verification: verificationMocks.NewMockVerification(ctrl),
		dispatcher:   notificationMocks.NewMockDispatcher(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	// Notification dispatch and cache invalidation run on detached
	// goroutines, so they may or may not land before the test finishes.
	m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.Token.Min = 100
	cfg.Booking.Token.Max = 999
	cfg.Booking.Token.MaxAttempts = 25

	svc := service.New(m.repo, m.doctorRepo, m.verification, m.dispatcher, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func testDoctor() doctorModel.Doctor {
	return doctorModel.Doctor{
		ID:     "doctor-1",
		Name:   "Dr. Smith",
		Fee:    500,
		Slots:  pq.StringArray{"10:00", "10:30", "11:00"},
		Active: true,
	}
}

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		DoctorID:        "doctor-1",
		PatientName:     "Jane Doe",
		PatientPhone:    "+6281234567890",
		AppointmentDate: "2026-09-15",
		Slot:            "10:00",
	}
}

func userContext(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func adminContext(userID string) context.Context {
	return context.WithValue(userContext(userID), constant.ContextKeyUserRole, constant.RoleAdmin)
}

func doctorContext(userID, email string) context.Context {
	ctx := context.WithValue(userContext(userID), constant.ContextKeyUserRole, constant.RoleDoctor)

	return context.WithValue(ctx, constant.ContextKeyUserEmail, email)
}

func TestBookingService_Create(t *testing.T) {
	t.Run("successful creation assigns a token in range", func(t *testing.T) {
		svc, m := newService(t)

		var reserved model.Booking

		m.doctorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testDoctor(), nil)
		m.repo.EXPECT().IsSlotFree(gomock.Any(), "doctor-1", gomock.Any(), "10:00", "").Return(true, nil)
		m.repo.EXPECT().
			Reserve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b model.Booking) error {
				reserved = b
				return nil
			})

		res, err := svc.Create(userContext("user-1"), createRequest())
		assert.NoError(t, err)

		assert.Equal(t, string(model.StatusPending), res.Status)
		assert.Equal(t, "Dr. Smith", res.DoctorName)
		assert.Equal(t, float64(500), res.Price, "doctor fee applies when the request carries no price")
		assert.Equal(t, model.TypeAuthenticated, reserved.BookingType)

		token, convErr := strconv.Atoi(res.Token)
		assert.NoError(t, convErr)
		assert.GreaterOrEqual(t, token, 100)
		assert.LessOrEqual(t, token, 999)
	})

	t.Run("slot already taken before insert", func(t *testing.T) {
		svc, m := newService(t)

		m.doctorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testDoctor(), nil)
		m.repo.EXPECT().IsSlotFree(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Create(userContext("user-1"), createRequest())
		assert.True(t, failure.IsKind(err, failure.KindSlotUnavailable))
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("slot lost at insert to a concurrent winner", func(t *testing.T) {
		svc, m := newService(t)

		m.doctorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testDoctor(), nil)
		m.repo.EXPECT().IsSlotFree(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(failure.SlotUnavailable())

		_, err := svc.Create(userContext("user-1"), createRequest())
		assert.True(t, failure.IsKind(err, failure.KindSlotUnavailable))
	})

	t.Run("token collision retries with a fresh token", func(t *testing.T) {
		svc, m := newService(t)

		var mu sync.Mutex
		tokens := []string{}

		m.doctorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testDoctor(), nil)
		m.repo.EXPECT().IsSlotFree(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

		calls := 0
		m.repo.EXPECT().
			Reserve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b model.Booking) error {
				mu.Lock()
				defer mu.Unlock()

				tokens = append(tokens, b.Token)
				calls++
				if calls < 3 {
					return repository.ErrTokenTaken
				}
				return nil
			}).
			Times(3)

		res, err := svc.Create(userContext("user-1"), createRequest())
		assert.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Len(t, tokens, 3)
	})

	t.Run("token space exhausted after max attempts", func(t *testing.T) {
		svc, m := newService(t)

		m.doctorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testDoctor(), nil)
		m.repo.EXPECT().IsSlotFree(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(repository.ErrTokenTaken).Times(25)

		_, err := svc.Create(userContext("user-1"), createRequest())
		assert.True(t, failure.IsKind(err, failure.KindTokenSpaceExhausted))
	})

	t.Run("guest with unverified phone is rejected", func(t *testing.T) {
		svc, m := newService(t)

		m.doctorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testDoctor(), nil)
		m.verification.EXPECT().IsVerified(gomock.Any(), "+6281234567890").Return(false, nil)

		_, err := svc.Create(context.Background(), createRequest())
		assert.True(t, failure.IsKind(err, failure.KindUnauthorized))
	})

	t.Run("guest with verified phone books successfully", func(t *testing.T) {
		svc, m := newService(t)

		m.doctorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testDoctor(), nil)
		m.verification.EXPECT().IsVerified(gomock.Any(), "+6281234567890").Return(true, nil)
		m.repo.EXPECT().IsSlotFree(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().
			Reserve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b model.Booking) error {
				assert.Equal(t, model.TypeGuest, b.BookingType)
				return nil
			})

		res, err := svc.Create(context.Background(), createRequest())
		assert.NoError(t, err)
		assert.Equal(t, model.TypeGuest, res.BookingType)
	})

	t.Run("unknown doctor is rejected", func(t *testing.T) {
		svc, m := newService(t)

		m.doctorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(doctorModel.Doctor{}, nil)

		_, err := svc.Create(userContext("user-1"), createRequest())
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("slot outside the doctor catalog is rejected", func(t *testing.T) {
		svc, m := newService(t)

		m.doctorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testDoctor(), nil)

		req := createRequest()
		req.Slot = "23:00"

		_, err := svc.Create(userContext("user-1"), req)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		svc, _ := newService(t)

		req := createRequest()
		req.AppointmentDate = "15/09/2026"

		_, err := svc.Create(userContext("user-1"), req)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func ownedBooking(status model.Status) model.Booking {
	return model.Booking{
		ID:              "booking-1",
		DoctorID:        "doctor-1",
		DoctorName:      "Dr. Smith",
		BookingType:     model.TypeAuthenticated,
		UserID:          "user-1",
		PatientName:     "Jane Doe",
		PatientPhone:    "+6281234567890",
		AppointmentDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Slot:            "10:00",
		Status:          status,
		Token:           "242",
		Metadata:        gModel.Metadata{CreatedAt: timezone.Now(), ModifiedAt: timezone.Now()},
	}
}

func TestBookingService_Cancel(t *testing.T) {
	t.Run("owner cancels a pending booking", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusPending), nil)
		m.repo.EXPECT().
			UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod map[string]any, _ interface{}) (int64, error) {
				assert.Equal(t, string(model.StatusCancelled), mod[model.FieldStatus])
				assert.Equal(t, "schedule conflict", mod[model.FieldCancellationReason])
				return 1, nil
			})

		res, err := svc.Cancel(userContext("user-1"), "booking-1", dto.CancelBookingRequest{Reason: "schedule conflict"})
		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
		assert.Equal(t, "cancelled", res.Status)
		assert.Equal(t, "schedule conflict", res.CancelReason)
		assert.NotEmpty(t, res.CancelledAt)
	})

	t.Run("cancelling a completed booking is an invalid transition", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusCompleted), nil)

		_, err := svc.Cancel(userContext("user-1"), "booking-1", dto.CancelBookingRequest{})
		assert.True(t, failure.IsKind(err, failure.KindInvalidStateTransition))
	})

	t.Run("lost race surfaces as invalid transition", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusPending), nil)
		m.repo.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		_, err := svc.Cancel(userContext("user-1"), "booking-1", dto.CancelBookingRequest{})
		assert.True(t, failure.IsKind(err, failure.KindInvalidStateTransition))
	})

	t.Run("verified guest cancels own booking", func(t *testing.T) {
		svc, m := newService(t)

		guest := ownedBooking(model.StatusPending)
		guest.BookingType = model.TypeGuest
		guest.UserID = ""

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guest, nil)
		m.verification.EXPECT().IsVerified(gomock.Any(), "+6281234567890").Return(true, nil)
		m.repo.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyGuestPhone, "+6281234567890")

		_, err := svc.Cancel(ctx, "booking-1", dto.CancelBookingRequest{})
		assert.NoError(t, err)
	})

	t.Run("another user is forbidden", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusPending), nil)

		_, err := svc.Cancel(userContext("user-2"), "booking-1", dto.CancelBookingRequest{})
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("doctor role gets no blanket pass", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusPending), nil)

		_, err := svc.Cancel(doctorContext("doc-user-1", "smith@clinic.test"), "booking-1", dto.CancelBookingRequest{})
		assert.ErrorIs(t, err, failure.ResourceRestrictedError)
	})

	t.Run("missing booking", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Cancel(userContext("user-1"), "missing", dto.CancelBookingRequest{})
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Reschedule(t *testing.T) {
	req := dto.RescheduleBookingRequest{AppointmentDate: "2026-09-16", Slot: "11:00"}

	t.Run("successful reschedule", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusConfirmed), nil)
		m.doctorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testDoctor(), nil)
		m.repo.EXPECT().
			UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod map[string]any, _ interface{}) (int64, error) {
				assert.Equal(t, "11:00", mod[model.FieldSlot])
				assert.Equal(t, time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC), mod[model.FieldAppointmentDate])
				return 1, nil
			})

		res, err := svc.Reschedule(userContext("user-1"), "booking-1", req)
		assert.NoError(t, err)
		assert.Equal(t, "2026-09-16", res.AppointmentDate)
		assert.Equal(t, "11:00", res.Slot)
		assert.Equal(t, "242", res.Token, "token survives a reschedule")
	})

	t.Run("target slot taken", func(t *testing.T) {
		svc, m := newService(t)

		conflict := &pq.Error{Code: "23505", Constraint: model.ConstraintActiveSlot}

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusConfirmed), nil)
		m.doctorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testDoctor(), nil)
		m.repo.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), conflict)

		_, err := svc.Reschedule(userContext("user-1"), "booking-1", req)
		assert.True(t, failure.IsKind(err, failure.KindSlotUnavailable))
	})

	t.Run("cancelled booking cannot be rescheduled", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusCancelled), nil)

		_, err := svc.Reschedule(userContext("user-1"), "booking-1", req)
		assert.True(t, failure.IsKind(err, failure.KindInvalidStateTransition))
		assert.ErrorContains(t, err, "booking is no longer active")
	})

	t.Run("slot outside the doctor catalog", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusConfirmed), nil)
		m.doctorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testDoctor(), nil)

		_, err := svc.Reschedule(userContext("user-1"), "booking-1", dto.RescheduleBookingRequest{
			AppointmentDate: "2026-09-16",
			Slot:            "23:00",
		})
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_ConfirmPayment(t *testing.T) {
	t.Run("pending booking confirms", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusPending), nil)
		m.repo.EXPECT().
			UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod map[string]any, _ interface{}) (int64, error) {
				assert.Equal(t, string(model.StatusConfirmed), mod[model.FieldStatus])
				assert.Equal(t, model.PaymentCompleted, mod[model.FieldPaymentStatus])
				assert.Equal(t, "pay_abc123", mod[model.FieldPaymentRef])
				return 1, nil
			})

		err := svc.ConfirmPayment(context.Background(), "booking-1", "pay_abc123")
		assert.NoError(t, err)
	})

	t.Run("double confirmation is rejected", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusConfirmed), nil)

		err := svc.ConfirmPayment(context.Background(), "booking-1", "pay_abc123")
		assert.True(t, failure.IsKind(err, failure.KindInvalidStateTransition))
	})
}

func TestBookingService_CheckInAndComplete(t *testing.T) {
	t.Run("confirmed booking checks in", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusConfirmed), nil)
		m.repo.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

		assert.NoError(t, svc.CheckIn(adminContext("admin-1"), "booking-1"))
	})

	t.Run("pending booking cannot check in", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusPending), nil)

		err := svc.CheckIn(adminContext("admin-1"), "booking-1")
		assert.True(t, failure.IsKind(err, failure.KindInvalidStateTransition))
	})

	t.Run("checked booking completes", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusChecked), nil)
		m.repo.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

		assert.NoError(t, svc.Complete(adminContext("admin-1"), "booking-1"))
	})

	t.Run("cancelled booking cannot complete", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusCancelled), nil)

		err := svc.Complete(adminContext("admin-1"), "booking-1")
		assert.True(t, failure.IsKind(err, failure.KindInvalidStateTransition))
	})

	t.Run("doctor checks in own patient", func(t *testing.T) {
		svc, m := newService(t)

		own := testDoctor()
		own.Email = "smith@clinic.test"

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusConfirmed), nil)
		m.doctorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(own, nil)
		m.repo.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

		assert.NoError(t, svc.CheckIn(doctorContext("doc-user-1", "smith@clinic.test"), "booking-1"))
	})

	t.Run("doctor cannot check in another doctor's patient", func(t *testing.T) {
		svc, m := newService(t)

		other := testDoctor()
		other.ID = "doctor-2"
		other.Email = "jones@clinic.test"

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusConfirmed), nil)
		m.doctorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(other, nil)

		err := svc.CheckIn(doctorContext("doc-user-2", "jones@clinic.test"), "booking-1")
		assert.ErrorIs(t, err, failure.ResourceRestrictedError)
	})

	t.Run("doctor cannot complete another doctor's patient", func(t *testing.T) {
		svc, m := newService(t)

		other := testDoctor()
		other.ID = "doctor-2"
		other.Email = "jones@clinic.test"

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusChecked), nil)
		m.doctorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(other, nil)

		err := svc.Complete(doctorContext("doc-user-2", "jones@clinic.test"), "booking-1")
		assert.ErrorIs(t, err, failure.ResourceRestrictedError)
	})
}

func TestBookingService_CheckAvailability(t *testing.T) {
	t.Run("free slot", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().IsSlotFree(gomock.Any(), "doctor-1", gomock.Any(), "10:00", "").Return(true, nil)

		res, err := svc.CheckAvailability(context.Background(), "doctor-1", "2026-09-15", "10:00")
		assert.NoError(t, err)
		assert.True(t, res.Available)
		assert.Equal(t, "2026-09-15", res.AppointmentDate)
	})

	t.Run("taken slot", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().IsSlotFree(gomock.Any(), "doctor-1", gomock.Any(), "10:00", "").Return(false, nil)

		res, err := svc.CheckAvailability(context.Background(), "doctor-1", "2026-09-15", "10:00")
		assert.NoError(t, err)
		assert.False(t, res.Available)
	})

	t.Run("bad date", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.CheckAvailability(context.Background(), "doctor-1", "soon", "10:00")
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Run("owner reads own booking", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusConfirmed), nil)

		res, err := svc.Get(userContext("user-1"), "booking-1")
		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
	})

	t.Run("admin reads any booking", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusConfirmed), nil)

		_, err := svc.Get(adminContext("admin-1"), "booking-1")
		assert.NoError(t, err)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(model.StatusConfirmed), nil)

		_, err := svc.Get(userContext("user-9"), "booking-1")
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, errors.New("database error"))

		_, err := svc.Get(userContext("user-1"), "booking-1")
		assert.Error(t, err)
	})
}
