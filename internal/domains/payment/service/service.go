package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"medibook/config"
	"medibook/external/razorpay"
	"medibook/infras/otel"
	bookingModel "medibook/internal/domains/booking/model"
	bookingRepo "medibook/internal/domains/booking/repository"
	bookingService "medibook/internal/domains/booking/service"
	"medibook/internal/domains/payment/model/dto"
	"medibook/shared"
	"medibook/shared/constant"
	"medibook/shared/failure"
	"medibook/shared/timezone"
)

// Prices are stored in rupees; the gateway wants paise.
const (
	currency       = "INR"
	subunitsPerInr = 100
)

type Payment interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (dto.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, req dto.VerifyPaymentRequest) (dto.VerifyPaymentResponse, error)
}

type serviceImpl struct {
	booking bookingService.Booking
	repo    bookingRepo.Booking
	gateway razorpay.Client
	cfg     *config.Config
	otel    otel.Otel
}

func New(booking bookingService.Booking, repo bookingRepo.Booking, gateway razorpay.Client, cfg *config.Config, otel otel.Otel) Payment {
	return &serviceImpl{
		booking: booking,
		repo:    repo,
		gateway: gateway,
		cfg:     cfg,
		otel:    otel,
	}
}

// CreateOrder registers a gateway order for a pending booking and records the
// order id on the booking so the later callback can be matched to it.
func (s *serviceImpl) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (res dto.CreateOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.CreateOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.booking.Get(ctx, req.BookingID)
	if err != nil {
		return res, err
	}

	if booking.Status != string(bookingModel.StatusPending) || booking.PaymentStatus != bookingModel.PaymentPending {
		return res, failure.BadRequestFromString("booking is not awaiting payment") // nolint:wrapcheck
	}

	amount := int64(math.Round(booking.Price * subunitsPerInr))

	order, err := s.gateway.CreateOrder(ctx, amount, currency, booking.ID)
	if err != nil {
		return res, err
	}

	affected, err := s.repo.UpdateCount(ctx, map[string]any{
		bookingModel.FieldPaymentOrderID: order.ID,
		constant.FieldModifiedAt:         timezone.Now(),
	}, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to store payment order id")

		return res, fmt.Errorf("failed to store payment order id: %w", err)
	}

	if affected == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res = dto.CreateOrderResponse{
		BookingID: booking.ID,
		OrderID:   order.ID,
		Amount:    order.Amount,
		Currency:  order.Currency,
		KeyID:     s.cfg.External.Razorpay.KeyID,
	}

	return res, nil
}

// VerifyPayment validates the checkout callback signature and, on success,
// confirms the booking. A bad signature marks the payment failed and the
// booking stays pending so the patient can retry.
func (s *serviceImpl) VerifyPayment(ctx context.Context, req dto.VerifyPaymentRequest) (res dto.VerifyPaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.VerifyPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.booking.Get(ctx, req.BookingID)
	if err != nil {
		return res, err
	}

	if booking.PaymentOrderID == constant.Empty || booking.PaymentOrderID != req.OrderID {
		return res, failure.BadRequestFromString("payment order does not match this booking") // nolint:wrapcheck
	}

	if err = s.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature); err != nil {
		s.markFailed(ctx, req.BookingID)

		return res, err
	}

	if err = s.booking.ConfirmPayment(ctx, req.BookingID, req.PaymentID); err != nil {
		return res, err
	}

	res = dto.VerifyPaymentResponse{
		BookingID: req.BookingID,
		Verified:  true,
		Status:    string(bookingModel.StatusConfirmed),
	}

	return res, nil
}

func (s *serviceImpl) markFailed(ctx context.Context, bookingID string) {
	_, err := s.repo.UpdateCount(ctx, map[string]any{
		bookingModel.FieldPaymentStatus: bookingModel.PaymentFailed,
		constant.FieldModifiedAt:        timezone.Now(),
	}, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to mark payment failed")
	}
}
