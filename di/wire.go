//go:build wireinject
// +build wireinject

package di

import (
	"risecheckout/config"
	"risecheckout/infras/otel"
	"risecheckout/infras/postgres"
	"risecheckout/infras/redis"
	"risecheckout/infras/s3"
	salesHandler "risecheckout/internal/handlers/sales"
	timezoneHandler "risecheckout/internal/handlers/timezone"
	"risecheckout/shared/cache"
	"risecheckout/shared/timezone"
	"risecheckout/transport/http"
	"risecheckout/transport/http/middleware"
	"risecheckout/transport/http/router"

	salesRepository "risecheckout/internal/domains/sales/repository"
	salesService "risecheckout/internal/domains/sales/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	timezone.NewFromConfig,
)

var salesDomain = wire.NewSet(
	salesRepository.New,
	salesService.New,
)

var domains = wire.NewSet(
	salesDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	salesHandler.New,
	timezoneHandler.New,
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
