package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"medibook/config"
	"medibook/external/notification"
	"medibook/infras/otel"
	"medibook/internal/domains/booking/model"
	"medibook/internal/domains/booking/model/dto"
	"medibook/internal/domains/booking/repository"
	doctorModel "medibook/internal/domains/doctor/model"
	doctorRepo "medibook/internal/domains/doctor/repository"
	verificationService "medibook/internal/domains/verification/service"
	"medibook/shared"
	"medibook/shared/cache"
	"medibook/shared/constant"
	gDto "medibook/shared/dto"
	"medibook/shared/failure"
	"medibook/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckAvailability(ctx context.Context, doctorID, date, slot string) (dto.AvailabilityResponse, error)
	Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (dto.BookingResponse, error)
	Reschedule(ctx context.Context, id string, req dto.RescheduleBookingRequest) (dto.BookingResponse, error)
	ConfirmPayment(ctx context.Context, id, paymentRef string) error
	CheckIn(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Booking
	doctorRepo   doctorRepo.Doctor
	verification verificationService.Verification
	dispatcher   notification.Dispatcher
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	doctorRepo doctorRepo.Doctor,
	verification verificationService.Verification,
	dispatcher notification.Dispatcher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		doctorRepo:   doctorRepo,
		verification: verification,
		dispatcher:   dispatcher,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create reserves a slot and allocates a daily queue token in one insert. The
// bookings table carries the uniqueness rules, so two concurrent requests for
// the same slot cannot both succeed regardless of how many instances run.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	doctor, err := s.doctorRepo.Get(ctx, shared.FilterByID(req.DoctorID, doctorModel.FieldID, doctorModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get doctor")

		return res, fmt.Errorf("failed to get doctor: %w", err)
	}

	if doctor.ID == constant.Empty || !doctor.Active {
		return res, failure.BadRequestFromString("doctor does not exist or is inactive") // nolint:wrapcheck
	}

	if !doctor.OffersSlot(req.Slot) {
		return res, failure.BadRequestFromString("slot is not offered by this doctor") // nolint:wrapcheck
	}

	booking.DoctorName = doctor.Name
	if booking.Price == 0 {
		booking.Price = doctor.Fee
	}

	if booking.BookingType == model.TypeGuest {
		verified, err := s.verification.IsVerified(ctx, booking.PatientPhone)
		if err != nil {
			log.Error().Err(err).Msg("failed to check phone verification")

			return res, fmt.Errorf("failed to check phone verification: %w", err)
		}

		if !verified {
			return res, failure.Unauthorized("phone number is not verified") // nolint:wrapcheck
		}
	}

	// Cheap rejection before burning tokens. The insert constraint remains
	// the authority when two requests race past this check.
	free, err := s.repo.IsSlotFree(ctx, booking.DoctorID, booking.AppointmentDate, booking.Slot, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot availability")

		return res, fmt.Errorf("failed to check slot availability: %w", err)
	}

	if !free {
		return res, failure.SlotUnavailable() // nolint:wrapcheck
	}

	booking, err = s.reserveWithToken(ctx, booking)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.dispatch(c, notification.EventBookingCreated, booking, constant.Empty)
		s.invalidateListCaches(c)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getOwned(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// CheckAvailability answers whether one (doctor, date, slot) triple is free.
func (s *serviceImpl) CheckAvailability(ctx context.Context, doctorID, date, slot string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointmentDate, err := time.Parse(constant.AppointmentDateInput, date)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date format, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	free, err := s.repo.IsSlotFree(ctx, doctorID, appointmentDate, slot, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot availability")

		return res, fmt.Errorf("failed to check slot availability: %w", err)
	}

	res.DoctorID = doctorID
	res.AppointmentDate = model.NormalizeAppointmentDate(appointmentDate).Format(constant.AppointmentDateInput)
	res.Slot = slot
	res.Available = free

	return res, nil
}

// Cancel moves the booking to cancelled. The status filter on the update
// makes the transition guard atomic: a concurrent transition wins and this
// call reports the conflict instead of overwriting it.
func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getOwned(ctx, id)
	if err != nil {
		return res, err
	}

	if err = model.Transition(booking.Status, model.StatusCancelled); err != nil {
		return res, err // nolint:wrapcheck
	}

	user := s.actor(ctx, booking)
	now := timezone.Now()

	affected, err := s.repo.UpdateCount(ctx, map[string]any{
		model.FieldStatus:             string(model.StatusCancelled),
		model.FieldCancellationReason: req.Reason,
		model.FieldCancelledAt:        now,
		constant.FieldModifiedAt:      now,
		constant.FieldModifiedBy:      user,
	}, s.guardFilter(id, model.StatusPending, model.StatusConfirmed))
	if err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if affected == 0 {
		return res, failure.InvalidTransition(string(booking.Status), string(model.StatusCancelled)) // nolint:wrapcheck
	}

	booking.Status = model.StatusCancelled
	booking.CancellationReason = req.Reason
	booking.CancelledAt = &now

	go func() {
		c := context.WithoutCancel(ctx)

		s.dispatch(c, notification.EventBookingCancelled, booking, req.Reason)
		s.invalidateBookingCaches(c, id)
	}()

	res.FromModel(booking)

	return res, nil
}

// Reschedule moves an active booking to a new date and slot in a single
// guarded update. The unique index claims the target slot atomically, so a
// lost race surfaces as a slot conflict rather than a double booking.
func (s *serviceImpl) Reschedule(ctx context.Context, id string, req dto.RescheduleBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Reschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getOwned(ctx, id)
	if err != nil {
		return res, err
	}

	if !booking.Status.IsActive() {
		return res, failure.StateConflict("booking is no longer active") // nolint:wrapcheck
	}

	newDate, err := req.Date()
	if err != nil {
		return res, failure.BadRequestFromString("invalid date format, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	doctor, err := s.doctorRepo.Get(ctx, shared.FilterByID(booking.DoctorID, doctorModel.FieldID, doctorModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get doctor")

		return res, fmt.Errorf("failed to get doctor: %w", err)
	}

	if !doctor.OffersSlot(req.Slot) {
		return res, failure.BadRequestFromString("slot is not offered by this doctor") // nolint:wrapcheck
	}

	user := s.actor(ctx, booking)
	now := timezone.Now()

	affected, err := s.repo.UpdateCount(ctx, map[string]any{
		model.FieldAppointmentDate: newDate,
		model.FieldSlot:            req.Slot,
		constant.FieldModifiedAt:   now,
		constant.FieldModifiedBy:   user,
	}, s.guardFilter(id, model.StatusPending, model.StatusConfirmed))
	if err != nil {
		if mapped := repository.MapUniqueViolation(err); failure.IsKind(mapped, failure.KindSlotUnavailable) {
			return res, mapped // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to reschedule booking")

		return res, fmt.Errorf("failed to reschedule booking: %w", err)
	}

	if affected == 0 {
		return res, failure.StateConflict("booking is no longer active") // nolint:wrapcheck
	}

	booking.AppointmentDate = newDate
	booking.Slot = req.Slot

	go func() {
		c := context.WithoutCancel(ctx)

		s.dispatch(c, notification.EventBookingRescheduled, booking, constant.Empty)
		s.invalidateBookingCaches(c, id)
	}()

	res.FromModel(booking)

	return res, nil
}

// ConfirmPayment moves a pending booking to confirmed after a successful
// payment. Only the pending state accepts the transition.
func (s *serviceImpl) ConfirmPayment(ctx context.Context, id, paymentRef string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ConfirmPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if err = model.Transition(booking.Status, model.StatusConfirmed); err != nil {
		return err // nolint:wrapcheck
	}

	now := timezone.Now()

	affected, err := s.repo.UpdateCount(ctx, map[string]any{
		model.FieldStatus:        string(model.StatusConfirmed),
		model.FieldPaymentStatus: model.PaymentCompleted,
		model.FieldPaymentRef:    paymentRef,
		constant.FieldModifiedAt: now,
	}, s.guardFilter(id, model.StatusPending))
	if err != nil {
		log.Error().Err(err).Msg("failed to confirm booking")

		return fmt.Errorf("failed to confirm booking: %w", err)
	}

	if affected == 0 {
		return failure.InvalidTransition(string(booking.Status), string(model.StatusConfirmed)) // nolint:wrapcheck
	}

	booking.Status = model.StatusConfirmed

	go func() {
		c := context.WithoutCancel(ctx)

		s.dispatch(c, notification.EventBookingConfirmed, booking, constant.Empty)
		s.invalidateBookingCaches(c, id)
	}()

	return nil
}

// CheckIn records the patient's arrival at the clinic.
func (s *serviceImpl) CheckIn(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if err = s.ensureDoctorAccess(ctx, booking); err != nil {
		return err
	}

	if err = model.Transition(booking.Status, model.StatusChecked); err != nil {
		return err // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	affected, err := s.repo.UpdateCount(ctx, map[string]any{
		model.FieldStatus:        string(model.StatusChecked),
		model.FieldCheckedAt:     now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}, s.guardFilter(id, model.StatusConfirmed))
	if err != nil {
		log.Error().Err(err).Msg("failed to check in booking")

		return fmt.Errorf("failed to check in booking: %w", err)
	}

	if affected == 0 {
		return failure.InvalidTransition(string(booking.Status), string(model.StatusChecked)) // nolint:wrapcheck
	}

	go func() {
		s.invalidateBookingCaches(context.WithoutCancel(ctx), id)
	}()

	return nil
}

// Complete closes the booking after the consultation.
func (s *serviceImpl) Complete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if err = s.ensureDoctorAccess(ctx, booking); err != nil {
		return err
	}

	if err = model.Transition(booking.Status, model.StatusCompleted); err != nil {
		return err // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	affected, err := s.repo.UpdateCount(ctx, map[string]any{
		model.FieldStatus:        string(model.StatusCompleted),
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}, s.guardFilter(id, model.StatusConfirmed, model.StatusChecked))
	if err != nil {
		log.Error().Err(err).Msg("failed to complete booking")

		return fmt.Errorf("failed to complete booking: %w", err)
	}

	if affected == 0 {
		return failure.InvalidTransition(string(booking.Status), string(model.StatusCompleted)) // nolint:wrapcheck
	}

	booking.Status = model.StatusCompleted

	go func() {
		c := context.WithoutCancel(ctx)

		s.dispatch(c, notification.EventBookingCompleted, booking, constant.Empty)
		s.invalidateBookingCaches(c, id)
	}()

	return nil
}

// reserveWithToken retries the insert with fresh random tokens until the
// insert lands, the slot is lost, or the attempt budget runs out.
func (s *serviceImpl) reserveWithToken(ctx context.Context, booking model.Booking) (model.Booking, error) {
	maxAttempts := s.cfg.Booking.Token.MaxAttempts

	for attempt := 0; attempt < maxAttempts; attempt++ {
		token, err := randomToken(s.cfg.Booking.Token.Min, s.cfg.Booking.Token.Max)
		if err != nil {
			log.Error().Err(err).Msg("failed to generate queue token")

			return booking, fmt.Errorf("failed to generate queue token: %w", err)
		}

		booking.Token = token

		err = s.repo.Reserve(ctx, booking)
		if err == nil {
			return booking, nil
		}

		if errors.Is(err, repository.ErrTokenTaken) {
			continue
		}

		if failure.IsKind(err, failure.KindSlotUnavailable) {
			return booking, err // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return booking, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, failure.TokenSpaceExhausted(maxAttempts) // nolint:wrapcheck
}

// getOwned loads the booking and enforces ownership: admins see everything,
// users see their own bookings, verified guests see bookings made with their
// phone number. Doctors get no blanket pass here; their access goes through
// the doctor-side operations, which check the booking's doctor.
func (s *serviceImpl) getOwned(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return booking, err
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleAdmin {
		return booking, nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if booking.IsOwnedByUser(user) {
		return booking, nil
	}

	phone, _ := ctx.Value(constant.ContextKeyGuestPhone).(string)
	if booking.IsOwnedByGuestPhone(phone) {
		verified, err := s.verification.IsVerified(ctx, phone)
		if err != nil {
			log.Error().Err(err).Msg("failed to check phone verification")

			return booking, fmt.Errorf("failed to check phone verification: %w", err)
		}

		if verified {
			return booking, nil
		}
	}

	return booking, failure.ResourceRestrictedError // nolint:wrapcheck
}

// ensureDoctorAccess restricts doctor-side transitions to the booking's own
// doctor. Admins pass; a doctor caller is resolved by email and must match the
// booking's doctor id.
func (s *serviceImpl) ensureDoctorAccess(ctx context.Context, booking model.Booking) error {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleAdmin {
		return nil
	}

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	if role != constant.RoleDoctor || email == constant.Empty {
		return failure.ResourceRestrictedError // nolint:wrapcheck
	}

	doctor, err := s.doctorRepo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: doctorModel.FieldEmail, Value: email, Operator: gDto.FilterOperatorEq},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve doctor")

		return fmt.Errorf("failed to resolve doctor: %w", err)
	}

	if doctor.ID == constant.Empty || doctor.ID != booking.DoctorID {
		return failure.ResourceRestrictedError // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) actor(ctx context.Context, booking model.Booking) string {
	if user, _ := ctx.Value(constant.ContextKeyUserID).(string); user != "" {
		return user
	}

	return booking.PatientPhone
}

// guardFilter restricts an update to the booking id plus the states the
// transition is allowed to leave from.
func (s *serviceImpl) guardFilter(id string, from ...model.Status) gDto.FilterGroup {
	states := make([]string, len(from))
	for i, st := range from {
		states[i] = string(st)
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldStatus, Value: states, Operator: gDto.FilterOperatorIn},
		},
	}
}

func (s *serviceImpl) dispatch(ctx context.Context, eventType notification.EventType, booking model.Booking, reason string) {
	err := s.dispatcher.Dispatch(ctx, notification.Event{
		Type:            eventType,
		BookingID:       booking.ID,
		DoctorID:        booking.DoctorID,
		DoctorName:      booking.DoctorName,
		PatientName:     booking.PatientName,
		Phone:           booking.PatientPhone,
		Email:           booking.PatientEmail,
		AppointmentDate: booking.AppointmentDate.Format(constant.AppointmentDateInput),
		Slot:            booking.Slot,
		Token:           booking.Token,
		Reason:          reason,
	})
	if err != nil {
		log.Error().Err(err).Str("type", string(eventType)).Msg("failed to dispatch booking notification")
	}
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking from cache")
	}

	s.invalidateListCaches(ctx)
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
}

// randomToken draws a uniform token from [min, max] inclusive.
func randomToken(min, max int) (string, error) {
	if max < min {
		return "", fmt.Errorf("invalid token range [%d, %d]", min, max)
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min+1)))
	if err != nil {
		return "", fmt.Errorf("failed to read random token: %w", err)
	}

	return strconv.Itoa(min + int(n.Int64())), nil
}
