package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"aircon/config"
	"aircon/infras/otel"
	"aircon/internal/domains/content/model"
	"aircon/internal/domains/content/repository"
	"aircon/shared"
	"aircon/shared/cache"
	"aircon/shared/constant"
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
)

const defaultCacheTTL = 300

// Content is the read-only view of the CMS used by this service.
type Content interface {
	// Company never fails. Store and cache errors fall back to the configured company.
	Company(ctx context.Context) model.Company
}

type serviceImpl struct {
	repo  repository.SiteContent
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.SiteContent, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Content {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) fallback() model.Company {
	return model.Company{
		Name:    s.cfg.App.Company.Name,
		Phone:   s.cfg.App.Company.Phone,
		Email:   s.cfg.App.Company.Email,
		Website: s.cfg.App.Company.Website,
	}
}

func (s *serviceImpl) ttl() int {
	if s.cfg.Cache.TTL > 0 {
		return s.cfg.Cache.TTL
	}

	return defaultCacheTTL
}

func (s *serviceImpl) Company(ctx context.Context) model.Company {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Company")
	defer scope.End()

	fallback := s.fallback()
	key := shared.BuildCacheKey(model.TableName, model.SectionCompany)

	var company model.Company

	err := s.cache.Get(ctx, key, &company)
	if err == nil {
		return company.Merge(fallback)
	}

	// an unreadable entry would otherwise be served until it expires
	if !errors.Is(err, cache.Nil) {
		if err = s.cache.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Msg("failed to drop unreadable company cache entry")
		}
	}

	content, err := s.repo.Get(ctx, shared.FilterByID(model.SectionCompany, model.FieldSection, model.TableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get company content, using configured company")

		return fallback
	}

	if content.Section == "" || len(content.Content) == 0 {
		return fallback
	}

	company = model.Company{}
	if err = json.Unmarshal(content.Content, &company); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode company content, using configured company")

		return fallback
	}

	if err = s.cache.Save(ctx, key, company, s.ttl()); err != nil {
		log.Warn().Err(err).Msg("failed to cache company content")
	}

	return company.Merge(fallback)
}
