package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"aircon/infras/otel"
	"aircon/infras/postgres"
	"aircon/internal/domains/content/model"
	gDto "aircon/shared/dto"
	gRepo "aircon/shared/repository"
	"context"
)

// SiteContent reads CMS sections. The CMS owns writes.
type SiteContent interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SiteContent, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.SiteContent]
}

func New(db *postgres.Connection, otel otel.Otel) SiteContent {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.SiteContent](model.EntityName, model.TableName, model.FieldSection, db, otel),
	}
}
