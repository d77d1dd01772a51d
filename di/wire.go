//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"medibook/config"
	"medibook/external/notification"
	"medibook/external/razorpay"
	"medibook/infras/jwt"
	"medibook/infras/kafka"
	"medibook/infras/otel"
	"medibook/infras/postgres"
	"medibook/infras/redis"
	"medibook/permissions"
	"medibook/shared/cache"
	"medibook/transport/http"
	"medibook/transport/http/middleware"
	"medibook/transport/http/router"

	bookingRepository "medibook/internal/domains/booking/repository"
	bookingService "medibook/internal/domains/booking/service"
	doctorRepository "medibook/internal/domains/doctor/repository"
	doctorService "medibook/internal/domains/doctor/service"
	paymentService "medibook/internal/domains/payment/service"
	verificationRepository "medibook/internal/domains/verification/repository"
	verificationService "medibook/internal/domains/verification/service"

	bookingHandler "medibook/internal/handlers/booking"
	doctorHandler "medibook/internal/handlers/doctor"
	healthHandler "medibook/internal/handlers/health"
	paymentHandler "medibook/internal/handlers/payment"
	verificationHandler "medibook/internal/handlers/verification"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var externals = wire.NewSet(
	notification.NewKafkaDispatcher,
	razorpay.NewClient,
)

var doctorDomain = wire.NewSet(
	doctorRepository.New,
	doctorService.New,
)

var verificationDomain = wire.NewSet(
	verificationRepository.New,
	verificationService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentService.New,
)

var domains = wire.NewSet(
	doctorDomain,
	verificationDomain,
	bookingDomain,
	paymentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	doctorHandler.New,
	bookingHandler.New,
	verificationHandler.New,
	paymentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		externals,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
