package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"medibook/config"
	"medibook/external/notification"
	"medibook/infras/otel"
	"medibook/internal/domains/verification/model"
	"medibook/internal/domains/verification/model/dto"
	"medibook/internal/domains/verification/repository"
	"medibook/shared"
	"medibook/shared/cache"
	"medibook/shared/constant"
	gDto "medibook/shared/dto"
	"medibook/shared/failure"
	gModel "medibook/shared/model"
	"medibook/shared/password"
	"medibook/shared/timezone"
)

const (
	cacheOtpCooldown = "otp:cooldown"
	cacheOtpVerified = "otp:verified"
)

type Verification interface {
	SendOtp(ctx context.Context, req dto.SendOtpRequest) (dto.SendOtpResponse, error)
	VerifyOtp(ctx context.Context, req dto.VerifyOtpRequest) (dto.VerifyOtpResponse, error)
	IsVerified(ctx context.Context, phone string) (bool, error)
}

type serviceImpl struct {
	repo       repository.Verification
	cfg        *config.Config
	cache      cache.RedisCache
	dispatcher notification.Dispatcher
	otel       otel.Otel
}

func New(repo repository.Verification, cfg *config.Config, cache cache.RedisCache, dispatcher notification.Dispatcher, otel otel.Otel) Verification {
	return &serviceImpl{
		repo:       repo,
		cfg:        cfg,
		cache:      cache,
		dispatcher: dispatcher,
		otel:       otel,
	}
}

// SendOtp issues a fresh code for the phone. A redis cooldown key throttles
// repeated sends; the code itself is bcrypt hashed before it touches the
// database and leaves the service only through the notification channel.
func (s *serviceImpl) SendOtp(ctx context.Context, req dto.SendOtpRequest) (res dto.SendOtpResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".verification.SendOtp")
	defer scope.End()
	defer scope.TraceIfError(err)

	cooldownKey := shared.BuildCacheKey(cacheOtpCooldown, req.Phone)

	saved, err := s.cache.SaveIfAbsent(ctx, cooldownKey, timezone.Now().Unix(), s.cfg.Otp.ResendCooldownSeconds)
	if err != nil {
		log.Error().Err(err).Msg("failed to set otp cooldown")

		return res, fmt.Errorf("failed to set otp cooldown: %w", err)
	}

	if !saved {
		return res, failure.TooManyRequests("please wait before requesting a new code") // nolint:wrapcheck
	}

	code, err := generateCode(s.cfg.Otp.CodeLength)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate otp code")

		return res, fmt.Errorf("failed to generate otp code: %w", err)
	}

	hash, err := password.Hash(code)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash otp code")

		return res, fmt.Errorf("failed to hash otp code: %w", err)
	}

	now := timezone.Now()
	verification := model.OtpVerification{
		ID:        uuid.NewString(),
		Phone:     req.Phone,
		CodeHash:  hash,
		ExpiresAt: now.Add(time.Duration(s.cfg.Otp.TTLMinutes) * time.Minute),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  req.Phone,
			ModifiedBy: req.Phone,
		},
	}

	if err = s.repo.Insert(ctx, verification); err != nil {
		log.Error().Err(err).Msg("failed to store otp verification")

		return res, fmt.Errorf("failed to store otp verification: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.dispatcher.Dispatch(c, notification.Event{
			Type:    notification.EventOtpRequested,
			Phone:   req.Phone,
			OtpCode: code,
		}); err != nil {
			log.Error().Err(err).Msg("failed to dispatch otp notification")
		}
	}()

	res.Phone = req.Phone
	res.ExpiresInMins = s.cfg.Otp.TTLMinutes
	res.ResendCooldown = s.cfg.Otp.ResendCooldownSeconds

	return res, nil
}

// VerifyOtp checks the submitted code against the latest issued one. Every
// call burns an attempt; a correct code spends the row and opens the
// verification window for the phone.
func (s *serviceImpl) VerifyOtp(ctx context.Context, req dto.VerifyOtpRequest) (res dto.VerifyOtpResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".verification.VerifyOtp")
	defer scope.End()
	defer scope.TraceIfError(err)

	verification, err := s.repo.GetLatestByPhone(ctx, req.Phone)
	if err != nil {
		log.Error().Err(err).Msg("failed to get otp verification")

		return res, fmt.Errorf("failed to get otp verification: %w", err)
	}

	now := timezone.Now()

	if verification.ID == constant.Empty || verification.IsExpired(now) {
		return res, failure.Unauthorized("verification code expired or not found") // nolint:wrapcheck
	}

	if verification.IsSpent() {
		return res, failure.Unauthorized("verification code already used") // nolint:wrapcheck
	}

	if verification.Attempts >= s.cfg.Otp.MaxVerifyAttempts {
		return res, failure.TooManyRequests("too many verification attempts, request a new code") // nolint:wrapcheck
	}

	attempts := verification.Attempts + 1
	rowFilter := unspentFilter(verification.ID, verification.Attempts)

	if err = password.Verify(req.Code, verification.CodeHash); err != nil {
		if _, updateErr := s.repo.UpdateCount(ctx, map[string]any{model.FieldAttempts: attempts}, rowFilter); updateErr != nil {
			log.Error().Err(updateErr).Msg("failed to record otp attempt")
		}

		res.Phone = req.Phone
		res.RemainingAttempts = s.cfg.Otp.MaxVerifyAttempts - attempts

		return res, failure.Unauthorized("invalid verification code") // nolint:wrapcheck
	}

	affected, err := s.repo.UpdateCount(ctx, map[string]any{
		model.FieldAttempts:   attempts,
		model.FieldVerifiedAt: now,
	}, rowFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to mark otp verified")

		return res, fmt.Errorf("failed to mark otp verified: %w", err)
	}

	if affected == 0 {
		return res, failure.Unauthorized("verification code already used") // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		verifiedKey := shared.BuildCacheKey(cacheOtpVerified, req.Phone)
		if err := s.cache.Save(c, verifiedKey, now.Unix(), s.cfg.Otp.VerifiedTTLMinutes*60); err != nil {
			log.Error().Err(err).Msg("failed to cache verified phone")
		}
	}()

	res.Phone = req.Phone
	res.Verified = true
	res.ValidForMins = s.cfg.Otp.VerifiedTTLMinutes

	return res, nil
}

// IsVerified reports whether the phone passed OTP verification within the
// configured window. The redis marker answers most calls; the database covers
// a cold cache.
func (s *serviceImpl) IsVerified(ctx context.Context, phone string) (verified bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".verification.IsVerified")
	defer scope.End()
	defer scope.TraceIfError(err)

	var marker int64
	if err := s.cache.Get(ctx, shared.BuildCacheKey(cacheOtpVerified, phone), &marker); err == nil {
		return true, nil
	}

	windowStart := timezone.Now().Add(-time.Duration(s.cfg.Otp.VerifiedTTLMinutes) * time.Minute)

	verified, err = s.repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldPhone, Value: phone, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldVerifiedAt, Value: windowStart, Operator: gDto.FilterOperatorGreaterEq},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check phone verification")

		return false, fmt.Errorf("failed to check phone verification: %w", err)
	}

	return verified, nil
}

// unspentFilter pins an update to the code row as it was read: still unspent
// and holding the observed attempt count. When two verifications race, the
// first commit consumes the row and the loser matches zero rows.
func unspentFilter(id string, attempts int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldVerifiedAt, Operator: gDto.FilterIsNull},
			gDto.Filter{Field: model.FieldAttempts, Value: attempts, Operator: gDto.FilterOperatorEq},
		},
	}
}

func generateCode(length int) (string, error) {
	digits := make([]byte, length)

	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to read random digit: %w", err)
		}

		digits[i] = byte('0' + n.Int64())
	}

	return string(digits), nil
}
