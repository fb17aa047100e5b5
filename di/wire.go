//go:build wireinject
// +build wireinject

package di

import (
	"aircon/config"
	"aircon/infras/jwt"
	"aircon/infras/mail"
	"aircon/infras/otel"
	"aircon/infras/postgres"
	"aircon/infras/redis"
	"aircon/internal/handlers/health"
	submissionHandler "aircon/internal/handlers/submission"
	"aircon/permissions"
	"aircon/shared/cache"
	"aircon/transport/http"
	"aircon/transport/http/middleware"
	"aircon/transport/http/router"

	contentRepository "aircon/internal/domains/content/repository"
	contentService "aircon/internal/domains/content/service"
	notificationService "aircon/internal/domains/notification/service"
	submissionRepository "aircon/internal/domains/submission/repository"
	submissionService "aircon/internal/domains/submission/service"

	"github.com/google/wire"
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
	mail.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var contentDomain = wire.NewSet(
	contentRepository.New,
	contentService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var submissionDomain = wire.NewSet(
	submissionRepository.New,
	submissionService.New,
)

var domains = wire.NewSet(
	contentDomain,
	notificationDomain,
	submissionDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	wire.Bind(new(health.Pinger), new(*postgres.Connection)),
	health.New,
	submissionHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
