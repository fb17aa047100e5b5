package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"aircon/infras/otel"
	"aircon/infras/postgres"
	"aircon/internal/domains/submission/model"
	gDto "aircon/shared/dto"
	gRepo "aircon/shared/repository"
	"context"
)

type Submission interface {
	Insert(ctx context.Context, model model.Submission) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Submission, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Submission, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Submission]
}

func New(db *postgres.Connection, otel otel.Otel) Submission {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Submission](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
