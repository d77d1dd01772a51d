package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"medibook/config"
	"medibook/infras/otel"
	bookingModel "medibook/internal/domains/booking/model"
	bookingDto "medibook/internal/domains/booking/model/dto"
	bookingRepo "medibook/internal/domains/booking/repository"
	"medibook/internal/domains/doctor/model"
	"medibook/internal/domains/doctor/model/dto"
	"medibook/internal/domains/doctor/repository"
	"medibook/shared"
	"medibook/shared/cache"
	"medibook/shared/constant"
	gDto "medibook/shared/dto"
	"medibook/shared/failure"
)

const (
	cacheGetDoctor    = "doctor:get"
	cacheGetAllDoctor = "doctor:gets"
	cacheCountDoctor  = "doctor:count"
)

type Doctor interface {
	Create(ctx context.Context, req dto.CreateDoctorRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDoctorsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.DoctorResponse, error)
	GetAvailability(ctx context.Context, id, date string) (dto.AvailabilityResponse, error)
	GetPatients(ctx context.Context, id string, req gDto.QueryParams) (bookingDto.GetBookingsResponse, error)
	Update(ctx context.Context, req dto.UpdateDoctorRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Doctor
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Doctor, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Doctor {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDoctorRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".doctor.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create doctor")

		return fmt.Errorf("failed to create doctor: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllDoctor)
		shared.InvalidateCaches(c, s.cache, cacheCountDoctor)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDoctorsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".doctor.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDoctor, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for doctors")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count doctors")

		return res, fmt.Errorf("failed to count doctors: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get doctors")

		return res, fmt.Errorf("failed to get doctors: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save doctors to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".doctor.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountDoctor, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count doctors")

		return res, fmt.Errorf("failed to count doctors: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save doctor count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DoctorResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".doctor.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetDoctor, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	doctor, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get doctor")

		return res, fmt.Errorf("failed to get doctor: %w", err)
	}

	if doctor.ID == constant.Empty {
		return res, failure.NotFound("doctor not found") // nolint:wrapcheck
	}

	res.FromModel(doctor)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save doctor to cache")
		}
	}()

	return res, nil
}

// GetAvailability reads the doctor's slot catalog and marks each slot against
// the active bookings for the requested date. The result is never cached so a
// reservation made a moment ago is already reflected.
func (s *serviceImpl) GetAvailability(ctx context.Context, id, date string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".doctor.GetAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointmentDate, err := time.Parse(constant.AppointmentDateInput, date)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date format, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	doctor, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get doctor")

		return res, fmt.Errorf("failed to get doctor: %w", err)
	}

	if doctor.ID == constant.Empty {
		return res, failure.NotFound("doctor not found") // nolint:wrapcheck
	}

	normalized := bookingModel.NormalizeAppointmentDate(appointmentDate)

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: bookingModel.FieldDoctorID, Value: id, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: bookingModel.FieldAppointmentDate, Value: normalized, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: bookingModel.FieldStatus, Value: bookingModel.ActiveStatusStrings(), Operator: gDto.FilterOperatorIn},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for availability")

		return res, fmt.Errorf("failed to get bookings for availability: %w", err)
	}

	taken := make(map[string]bool, len(bookings))
	for _, booking := range bookings {
		taken[booking.Slot] = true
	}

	res.DoctorID = doctor.ID
	res.AppointmentDate = normalized.Format(constant.AppointmentDateInput)
	res.Slots = make([]dto.SlotAvailability, len(doctor.Slots))

	for i, slot := range doctor.Slots {
		res.Slots[i] = dto.SlotAvailability{Slot: slot, Available: !taken[slot]}
	}

	return res, nil
}

// GetPatients lists the doctor's bookings that reached the clinic, i.e. the
// patient checked in or the consultation completed.
func (s *serviceImpl) GetPatients(ctx context.Context, id string, req gDto.QueryParams) (res bookingDto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".doctor.GetPatients")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if doctor exists")

		return res, fmt.Errorf("failed to check if doctor exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("doctor not found") // nolint:wrapcheck
	}

	if err = s.ensureOwnListing(ctx, id); err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: bookingModel.FieldDoctorID, Value: id, Operator: gDto.FilterOperatorEq},
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Value:    []string{string(bookingModel.StatusChecked), string(bookingModel.StatusCompleted)},
				Operator: gDto.FilterOperatorIn,
			},
		},
	}

	total, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count doctor patients")

		return res, fmt.Errorf("failed to count doctor patients: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get doctor patients")

		return res, fmt.Errorf("failed to get doctor patients: %w", err)
	}

	res.FromModels(bookings, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateDoctorRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".doctor.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateDoctorRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if doctor exists")

		return fmt.Errorf("failed to check if doctor exists: %w", err)
	}

	if !exist {
		return failure.NotFound("doctor not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update doctor")

		return fmt.Errorf("failed to update doctor: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDoctor, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete doctor from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllDoctor)
		shared.InvalidateCaches(c, s.cache, cacheCountDoctor)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".doctor.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if doctor exists")

		return fmt.Errorf("failed to check if doctor exists: %w", err)
	}

	if !exist {
		return failure.NotFound("doctor not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete doctor")

		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDoctor, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete doctor from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllDoctor)
		shared.InvalidateCaches(c, s.cache, cacheCountDoctor)
	}()

	return nil
}

// ensureOwnListing keeps a doctor-role caller on their own patient list.
// Admins may list any doctor's patients.
func (s *serviceImpl) ensureOwnListing(ctx context.Context, id string) error {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role != constant.RoleDoctor {
		return nil
	}

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	if email == constant.Empty {
		return failure.ResourceRestrictedError // nolint:wrapcheck
	}

	own, err := s.repo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldEmail, Value: email, Operator: gDto.FilterOperatorEq},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve doctor")

		return fmt.Errorf("failed to resolve doctor: %w", err)
	}

	if own.ID == constant.Empty || own.ID != id {
		return failure.ResourceRestrictedError // nolint:wrapcheck
	}

	return nil
}
