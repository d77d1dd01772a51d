package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"medibook/config"
	"medibook/infras/otel/mocks"
	bookingMocks "medibook/internal/domains/booking/mocks"
	bookingModel "medibook/internal/domains/booking/model"
	doctorMocks "medibook/internal/domains/doctor/mocks"
	"medibook/internal/domains/doctor/model"
	"medibook/internal/domains/doctor/model/dto"
	"medibook/internal/domains/doctor/service"
	cacheMocks "medibook/shared/cache/mocks"
	"medibook/shared/constant"
	gDto "medibook/shared/dto"
	"medibook/shared/failure"
)

type serviceMocks struct {
	repo        *doctorMocks.MockDoctor
	bookingRepo *bookingMocks.MockBooking
	cache       *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.Doctor, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:        doctorMocks.NewMockDoctor(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.bookingRepo, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func testDoctor() model.Doctor {
	return model.Doctor{
		ID:     "doctor-1",
		Name:   "Dr. Smith",
		Fee:    500,
		Slots:  pq.StringArray{"10:00", "10:30", "11:00"},
		Active: true,
	}
}

func TestDoctorService_Create(t *testing.T) {
	svc, m := newService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			setupMock: func() {
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Create(ctx, dto.CreateDoctorRequest{
				Name:      "Dr. Smith",
				Specialty: "Cardiology",
				Fee:       500,
				Slots:     []string{"10:00", "10:30"},
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDoctorService_GetAvailability(t *testing.T) {
	t.Run("marks booked slots as taken", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testDoctor(), nil)
		m.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{
				{
					Slot:            "10:30",
					Status:          bookingModel.StatusConfirmed,
					AppointmentDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
				},
			}, nil)

		res, err := svc.GetAvailability(context.Background(), "doctor-1", "2026-09-15")
		assert.NoError(t, err)
		assert.Equal(t, "2026-09-15", res.AppointmentDate)
		assert.Len(t, res.Slots, 3)

		bySlot := map[string]bool{}
		for _, s := range res.Slots {
			bySlot[s.Slot] = s.Available
		}

		assert.True(t, bySlot["10:00"])
		assert.False(t, bySlot["10:30"])
		assert.True(t, bySlot["11:00"])
	})

	t.Run("unknown doctor", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Doctor{}, nil)

		_, err := svc.GetAvailability(context.Background(), "missing", "2026-09-15")
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("bad date", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.GetAvailability(context.Background(), "doctor-1", "tomorrow")
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestDoctorService_GetPatients(t *testing.T) {
	t.Run("lists checked and completed bookings", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		m.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]bookingModel.Booking, error) {
				where, _ := filter.GetWhereClause()
				assert.Contains(t, where, bookingModel.FieldStatus)
				return []bookingModel.Booking{
					{ID: "booking-1", Status: bookingModel.StatusChecked},
					{ID: "booking-2", Status: bookingModel.StatusCompleted},
				}, nil
			})

		res, err := svc.GetPatients(context.Background(), "doctor-1", gDto.QueryParams{Limit: 10, Page: 1})
		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Len(t, res.Bookings, 2)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.GetPatients(context.Background(), "missing", gDto.QueryParams{})
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("doctor lists own patients", func(t *testing.T) {
		svc, m := newService(t)

		own := testDoctor()
		own.Email = "smith@clinic.test"

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(own, nil)
		m.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
		m.bookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := svc.GetPatients(doctorContext("smith@clinic.test"), "doctor-1", gDto.QueryParams{Limit: 10, Page: 1})
		assert.NoError(t, err)
	})

	t.Run("doctor cannot list another doctor's patients", func(t *testing.T) {
		svc, m := newService(t)

		other := testDoctor()
		other.ID = "doctor-2"
		other.Email = "jones@clinic.test"

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(other, nil)

		_, err := svc.GetPatients(doctorContext("jones@clinic.test"), "doctor-1", gDto.QueryParams{})
		assert.ErrorIs(t, err, failure.ResourceRestrictedError)
	})
}

func doctorContext(email string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserRole, constant.RoleDoctor)

	return context.WithValue(ctx, constant.ContextKeyUserEmail, email)
}

func TestDoctorService_Get(t *testing.T) {
	t.Run("cache miss reads the database", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testDoctor(), nil)

		res, err := svc.Get(context.Background(), "doctor-1")
		assert.NoError(t, err)
		assert.Equal(t, "doctor-1", res.ID)
		assert.Equal(t, []string{"10:00", "10:30", "11:00"}, res.Slots)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Doctor{}, nil)

		_, err := svc.Get(context.Background(), "missing")
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestDoctorService_Update(t *testing.T) {
	t.Run("empty request is rejected", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.Update(context.Background(), dto.UpdateDoctorRequest{}, "doctor-1")
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown doctor", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateDoctorRequest{Name: "Dr. Jones"}, "missing")
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("successful update", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Update(context.Background(), dto.UpdateDoctorRequest{Name: "Dr. Jones"}, "doctor-1")
		assert.NoError(t, err)
	})
}
