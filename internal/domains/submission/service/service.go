package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"aircon/config"
	"aircon/infras/otel"
	notification "aircon/internal/domains/notification/service"
	"aircon/internal/domains/submission/model"
	"aircon/internal/domains/submission/model/dto"
	"aircon/internal/domains/submission/repository"
	"aircon/shared"
	"aircon/shared/constant"
	gDto "aircon/shared/dto"
	"aircon/shared/failure"
	"aircon/shared/metrics"
	"aircon/shared/timezone"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Submission interface {
	Create(ctx context.Context, req dto.CreateSubmissionRequest, ipAddress string) (dto.SubmissionResponse, error)
	Listing(ctx context.Context, filter dto.ListSubmissionsFilter) ([]model.Submission, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.ListSubmissionsFilter) (dto.GetSubmissionsResponse, error)
	Get(ctx context.Context, id string) (dto.SubmissionResponse, error)
	Update(ctx context.Context, req dto.UpdateSubmissionRequest, id string) (dto.SubmissionResponse, error)
	SetStatus(ctx context.Context, status model.Status, id string) (dto.SubmissionResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.Submission
	dispatcher notification.Dispatcher
	cfg        *config.Config
	otel       otel.Otel
}

func New(repo repository.Submission, dispatcher notification.Dispatcher, cfg *config.Config, otel otel.Otel) Submission {
	return &serviceImpl{
		repo:       repo,
		dispatcher: dispatcher,
		cfg:        cfg,
		otel:       otel,
	}
}

// Create persists a new submission and schedules its notifications without waiting for them.
// Only a store failure is returned.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSubmissionRequest, ipAddress string) (res dto.SubmissionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	submission := req.ToModel(ipAddress, constant.ContextGuest)

	if err = s.repo.Insert(ctx, submission); err != nil {
		log.Error().Err(err).Msg("failed to create submission")

		return res, fmt.Errorf("failed to create submission: %w", err)
	}

	metrics.RecordSubmissionCreated(string(submission.Kind))
	scope.SetAttribute("submission.id", submission.ID)

	s.dispatcher.Dispatch(ctx, submission)

	res.FromModel(submission)

	return res, nil
}

// Listing returns every matching submission, most recent first.
func (s *serviceImpl) Listing(ctx context.Context, filter dto.ListSubmissionsFilter) (res []model.Submission, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Listing")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = filter.Validate(); err != nil {
		return nil, err
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldCreatedAt,
		SortDir: constant.DefaultValueSortDir,
	}

	res, err = s.repo.GetAll(ctx, params, filter.FilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to get submissions")

		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}

	return res, nil
}

// GetAll slices the listing into the requested page. Without a page every match is returned.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.ListSubmissionsFilter) (res dto.GetSubmissionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	submissions, err := s.Listing(ctx, filter)
	if err != nil {
		return res, err
	}

	pageSize := 0

	if params.Paged() {
		pageSize = s.pageSize(params.Limit)
	}

	res.FromPage(shared.Paginate(submissions, pageSize, params.Page))

	return res, nil
}

func (s *serviceImpl) pageSize(limit int) int {
	if limit > 0 {
		return limit
	}

	if s.cfg.App.Listing.PageSize > 0 {
		return s.cfg.App.Listing.PageSize
	}

	return constant.DefaultValuePageSize
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SubmissionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	submission, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(submission)

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Submission, error) {
	submission, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get submission")

		return submission, fmt.Errorf("failed to get submission: %w", err)
	}

	if submission.ID == "" {
		return submission, failure.NotFound("submission not found") // nolint:wrapcheck
	}

	return submission, nil
}

// Update applies a partial change. Any status may follow any other. Concurrent updates are
// last write wins.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSubmissionRequest, id string) (res dto.SubmissionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.EmptyUpdateRequest
	}

	if req.Status != nil && !req.Status.IsValid() {
		return res, failure.InvalidStatusParam
	}

	current, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	changes := req.Changes(current.Status, timezone.Now())

	affected, err := s.repo.Update(ctx, changes.Fields(user), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update submission")

		return res, fmt.Errorf("failed to update submission: %w", err)
	}

	if affected == 0 {
		return res, failure.NotFound("submission not found") // nolint:wrapcheck
	}

	updated, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) SetStatus(ctx context.Context, status model.Status, id string) (dto.SubmissionResponse, error) {
	return s.Update(ctx, dto.UpdateSubmissionRequest{Status: &status}, id)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete submission")

		return fmt.Errorf("failed to delete submission: %w", err)
	}

	if affected == 0 {
		return failure.NotFound("submission not found") // nolint:wrapcheck
	}

	return nil
}
