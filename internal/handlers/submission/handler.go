package submission

import (
	"aircon/infras/otel"
	"aircon/internal/domains/submission/model/dto"
	"aircon/internal/domains/submission/service"
	"aircon/shared/clientip"
	"aircon/shared/constant"
	gDto "aircon/shared/dto"
	"aircon/shared/validator"
	"aircon/transport/http/middleware"
	"aircon/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const messageSubmissionReceived = "submission received"

type Handler struct {
	service service.Submission
	app     middleware.AppMiddleware
	otel    otel.Otel
}

func New(service service.Submission, app middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service: service,
		app:     app,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/submissions", func(routerGroup chi.Router) {
		routerGroup.With(handler.app.RateLimit()).Post("/", handler.CreateSubmission)
		routerGroup.Get("/", handler.GetSubmissions)
		routerGroup.Get("/{id}", handler.GetSubmissionByID)
		routerGroup.Patch("/{id}", handler.UpdateSubmission)
		routerGroup.Delete("/{id}", handler.DeleteSubmission)
	})
}

// CreateSubmission accepts a booking or contact form from the public site.
// @Summary Submit a booking or contact form
// @Description Store a new lead and notify the customer and the operations inbox.
// @Tags Submission
// @Accept json
// @Produce json
// @Param request body dto.CreateSubmissionRequest true "Create Submission Request"
// @Success 201 {object} dto.CreateSubmissionResponse
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Message
// @Failure 500 {object} response.Error
// @Router /v1/submissions [post]
func (handler *Handler) CreateSubmission(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSubmission")
	defer scope.End()

	req := dto.CreateSubmissionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("rejected submission request body")

		response.WithError(writer, err)

		return
	}

	submission, err := handler.service.Create(ctx, req, clientip.Resolve(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create submission")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Submission received " + submission.ID)

	response.WithPayload(writer, http.StatusCreated, dto.CreateSubmissionResponse{
		Message:    messageSubmissionReceived,
		Submission: submission,
	})
}

// GetSubmissions lists submissions, most recent first.
// @Summary Get all submissions
// @Description Retrieve submissions with optional search, filters and pagination. Without page every match is returned.
// @Tags Submission
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param q query string false "Search name, email, phone, mobile and message"
// @Param status query string false "Filter by status (new, contacted, scheduled, confirmed, completed, cancelled, all)"
// @Param kind query string false "Filter by kind (booking, contact, all)"
// @Success 200 {object} response.Data[dto.GetSubmissionsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/submissions [get]
// @Security BearerAuth
func (handler *Handler) GetSubmissions(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSubmissions")
	defer scope.End()

	queryParams := gDto.QueryParams{}

	if err := queryParams.FromRequest(request); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	query := request.URL.Query()
	filter := dto.ListSubmissionsFilter{
		Query:  query.Get(constant.RequestParamQuery),
		Status: query.Get(constant.RequestParamStatus),
		Kind:   query.Get(constant.RequestParamKind),
	}

	submissions, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get submissions")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, submissions)
}

// GetSubmissionByID retrieves a single submission.
// @Summary Get a submission
// @Tags Submission
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} response.Data[dto.SubmissionResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/submissions/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetSubmissionByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSubmissionByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	submission, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get submission")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, submission)
}

// UpdateSubmission records staff follow-up on a submission.
// @Summary Update a submission
// @Description Change status, admin notes, quoted amount or contacted time. Any status may follow any other.
// @Tags Submission
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param request body dto.UpdateSubmissionRequest true "Update Submission Request"
// @Success 200 {object} response.Data[dto.SubmissionResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/submissions/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSubmission(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSubmission")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	req := dto.UpdateSubmissionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("rejected submission update body")

		response.WithError(writer, err)

		return
	}

	submission, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update submission")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Submission updated by user " + user)

	response.WithJSON(writer, http.StatusOK, submission)
}

// DeleteSubmission removes a submission permanently.
// @Summary Delete a submission
// @Tags Submission
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/submissions/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSubmission(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSubmission")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete submission")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "submission deleted successfully")
}
