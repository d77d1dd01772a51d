package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"medibook/config"
	"medibook/external/razorpay"
	razorpayMocks "medibook/external/razorpay/mocks"
	"medibook/infras/otel/mocks"
	bookingRepoMocks "medibook/internal/domains/booking/mocks"
	bookingModel "medibook/internal/domains/booking/model"
	bookingDto "medibook/internal/domains/booking/model/dto"
	bookingMocks "medibook/internal/domains/booking/service/mocks"
	"medibook/internal/domains/payment/model/dto"
	"medibook/internal/domains/payment/service"
	"medibook/shared/failure"
)

type serviceMocks struct {
	booking *bookingMocks.MockBooking
	repo    *bookingRepoMocks.MockBooking
	gateway *razorpayMocks.MockClient
}

func newService(t *testing.T) (service.Payment, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		booking: bookingMocks.NewMockBooking(ctrl),
		repo:    bookingRepoMocks.NewMockBooking(ctrl),
		gateway: razorpayMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.External.Razorpay.KeyID = "rzp_test_key"

	svc := service.New(m.booking, m.repo, m.gateway, cfg, mocks.NewOtel())

	return svc, m
}

func pendingBooking() bookingDto.BookingResponse {
	return bookingDto.BookingResponse{
		ID:            "booking-1",
		DoctorID:      "doctor-1",
		PatientPhone:  "+6281234567890",
		Status:        string(bookingModel.StatusPending),
		Price:         500,
		PaymentStatus: bookingModel.PaymentPending,
	}
}

func TestPaymentService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("creates gateway order and stores order id", func(t *testing.T) {
		svc, m := newService(t)

		m.booking.EXPECT().Get(ctx, "booking-1").Return(pendingBooking(), nil)
		m.gateway.EXPECT().CreateOrder(gomock.Any(), int64(50000), "INR", "booking-1").
			Return(razorpay.Order{ID: "order_1", Amount: 50000, Currency: "INR"}, nil)
		m.repo.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ any) (int64, error) {
				assert.Equal(t, "order_1", req[bookingModel.FieldPaymentOrderID])

				return 1, nil
			})

		res, err := svc.CreateOrder(ctx, dto.CreateOrderRequest{BookingID: "booking-1"})

		assert.NoError(t, err)
		assert.Equal(t, "order_1", res.OrderID)
		assert.Equal(t, int64(50000), res.Amount)
		assert.Equal(t, "rzp_test_key", res.KeyID)
	})

	t.Run("rejects a booking that is not awaiting payment", func(t *testing.T) {
		svc, m := newService(t)

		paid := pendingBooking()
		paid.Status = string(bookingModel.StatusConfirmed)
		paid.PaymentStatus = bookingModel.PaymentCompleted
		m.booking.EXPECT().Get(ctx, "booking-1").Return(paid, nil)

		_, err := svc.CreateOrder(ctx, dto.CreateOrderRequest{BookingID: "booking-1"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("propagates ownership failure", func(t *testing.T) {
		svc, m := newService(t)

		m.booking.EXPECT().Get(ctx, "booking-1").
			Return(bookingDto.BookingResponse{}, failure.ResourceRestrictedError)

		_, err := svc.CreateOrder(ctx, dto.CreateOrderRequest{BookingID: "booking-1"})

		assert.ErrorIs(t, err, failure.ResourceRestrictedError)
	})

	t.Run("propagates gateway failure", func(t *testing.T) {
		svc, m := newService(t)

		m.booking.EXPECT().Get(ctx, "booking-1").Return(pendingBooking(), nil)
		m.gateway.EXPECT().CreateOrder(gomock.Any(), int64(50000), "INR", "booking-1").
			Return(razorpay.Order{}, failure.ExternalService("payment gateway unreachable"))

		_, err := svc.CreateOrder(ctx, dto.CreateOrderRequest{BookingID: "booking-1"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	})
}

func TestPaymentService_VerifyPayment(t *testing.T) {
	ctx := context.Background()

	verifyRequest := dto.VerifyPaymentRequest{
		BookingID: "booking-1",
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "sig",
	}

	withOrder := func() bookingDto.BookingResponse {
		b := pendingBooking()
		b.PaymentOrderID = "order_1"

		return b
	}

	t.Run("confirms booking on valid signature", func(t *testing.T) {
		svc, m := newService(t)

		m.booking.EXPECT().Get(ctx, "booking-1").Return(withOrder(), nil)
		m.gateway.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(nil)
		m.booking.EXPECT().ConfirmPayment(gomock.Any(), "booking-1", "pay_1").Return(nil)

		res, err := svc.VerifyPayment(ctx, verifyRequest)

		assert.NoError(t, err)
		assert.True(t, res.Verified)
		assert.Equal(t, string(bookingModel.StatusConfirmed), res.Status)
	})

	t.Run("marks payment failed on bad signature", func(t *testing.T) {
		svc, m := newService(t)

		m.booking.EXPECT().Get(ctx, "booking-1").Return(withOrder(), nil)
		m.gateway.EXPECT().VerifySignature("order_1", "pay_1", "sig").
			Return(failure.Unauthorized("payment signature mismatch"))
		m.repo.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ any) (int64, error) {
				assert.Equal(t, bookingModel.PaymentFailed, req[bookingModel.FieldPaymentStatus])

				return 1, nil
			})

		_, err := svc.VerifyPayment(ctx, verifyRequest)

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("rejects order id that does not match the booking", func(t *testing.T) {
		svc, m := newService(t)

		other := withOrder()
		other.PaymentOrderID = "order_2"
		m.booking.EXPECT().Get(ctx, "booking-1").Return(other, nil)

		_, err := svc.VerifyPayment(ctx, verifyRequest)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("rejects booking without an order", func(t *testing.T) {
		svc, m := newService(t)

		m.booking.EXPECT().Get(ctx, "booking-1").Return(pendingBooking(), nil)

		_, err := svc.VerifyPayment(ctx, verifyRequest)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("surfaces lost confirmation race", func(t *testing.T) {
		svc, m := newService(t)

		m.booking.EXPECT().Get(ctx, "booking-1").Return(withOrder(), nil)
		m.gateway.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(nil)
		m.booking.EXPECT().ConfirmPayment(gomock.Any(), "booking-1", "pay_1").
			Return(failure.InvalidTransition(string(bookingModel.StatusCancelled), string(bookingModel.StatusConfirmed)))

		_, err := svc.VerifyPayment(ctx, verifyRequest)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("storage error storing order id", func(t *testing.T) {
		svc, m := newService(t)

		m.booking.EXPECT().Get(ctx, "booking-1").Return(pendingBooking(), nil)
		m.gateway.EXPECT().CreateOrder(gomock.Any(), int64(50000), "INR", "booking-1").
			Return(razorpay.Order{ID: "order_1", Amount: 50000, Currency: "INR"}, nil)
		m.repo.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("connection reset"))

		_, err := svc.CreateOrder(ctx, dto.CreateOrderRequest{BookingID: "booking-1"})

		assert.Error(t, err)
	})
}
