package service_test

import (
	"aircon/config"
	"aircon/infras/otel/mocks"
	notificationMocks "aircon/internal/domains/notification/service/mocks"
	submissionMocks "aircon/internal/domains/submission/mocks"
	"aircon/internal/domains/submission/model"
	"aircon/internal/domains/submission/model/dto"
	"aircon/internal/domains/submission/service"
	"aircon/shared/constant"
	gDto "aircon/shared/dto"
	"aircon/shared/failure"
	gModel "aircon/shared/model"
	"aircon/shared/timezone"
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo       *submissionMocks.MockSubmission
	dispatcher *notificationMocks.MockDispatcher
	svc        service.Submission
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.Listing.PageSize = 15

	repo := submissionMocks.NewMockSubmission(ctrl)
	dispatcher := notificationMocks.NewMockDispatcher(ctrl)

	return fixture{
		repo:       repo,
		dispatcher: dispatcher,
		svc:        service.New(repo, dispatcher, cfg, mocks.NewOtel()),
	}
}

func staffContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
}

func stored(id string, status model.Status) model.Submission {
	now := timezone.Now()

	return model.Submission{
		ID:     id,
		Kind:   model.KindBooking,
		Name:   "Alice Tan",
		Email:  "alice@example.com",
		Status: status,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: constant.ContextGuest,
			UpdatedBy: constant.ContextGuest,
		},
	}
}

func TestSubmissionService_Create(t *testing.T) {
	t.Run("persists before dispatching", func(t *testing.T) {
		f := newFixture(t)

		req := dto.CreateSubmissionRequest{
			Name:          "Alice Tan",
			Email:         "alice@example.com",
			ServiceType:   "normal-servicing",
			NumberOfUnits: "3",
		}

		var inserted model.Submission

		gomock.InOrder(
			f.repo.EXPECT().
				Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, submission model.Submission) error {
					inserted = submission

					return nil
				}),
			f.dispatcher.EXPECT().
				Dispatch(gomock.Any(), gomock.Any()).
				Do(func(_ context.Context, submission model.Submission) {
					assert.Equal(t, inserted, submission)
				}),
		)

		res, err := f.svc.Create(context.Background(), req, "203.0.113.7")
		require.NoError(t, err)

		assert.NotEmpty(t, res.ID)
		assert.Equal(t, inserted.ID, res.ID)
		assert.Equal(t, "new", res.Status)
		assert.Equal(t, "booking", res.Kind)
		assert.Equal(t, "203.0.113.7", res.IPAddress)
		assert.Equal(t, "3", res.NumberOfUnits)
		assert.Equal(t, constant.ContextGuest, res.CreatedBy)
		assert.Nil(t, res.ContactedAt)
	})

	t.Run("store failure skips notifications", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		_, err := f.svc.Create(context.Background(), dto.CreateSubmissionRequest{Name: "Alice"}, "203.0.113.7")

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestSubmissionService_Listing(t *testing.T) {
	tests := []struct {
		name    string
		filter  dto.ListSubmissionsFilter
		wantErr error
	}{
		{name: "no filters", filter: dto.ListSubmissionsFilter{}},
		{name: "all sentinel", filter: dto.ListSubmissionsFilter{Status: "all", Kind: "all"}},
		{name: "status and kind", filter: dto.ListSubmissionsFilter{Status: "contacted", Kind: "contact", Query: "tan"}},
		{name: "invalid status", filter: dto.ListSubmissionsFilter{Status: "archived"}, wantErr: failure.InvalidStatusParam},
		{name: "invalid kind", filter: dto.ListSubmissionsFilter{Kind: "quote"}, wantErr: failure.InvalidKindParam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.wantErr == nil {
				f.repo.EXPECT().
					GetAll(gomock.Any(), gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: "DESC"}, tt.filter.FilterGroup()).
					Return([]model.Submission{stored("a", model.StatusNew)}, nil)
			}

			res, err := f.svc.Listing(context.Background(), tt.filter)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Len(t, res, 1)
		})
	}

	t.Run("store error", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		_, err := f.svc.Listing(context.Background(), dto.ListSubmissionsFilter{})
		assert.Error(t, err)
	})
}

func TestSubmissionService_GetAll(t *testing.T) {
	submissions := make([]model.Submission, 0, 20)
	for i := range 20 {
		submissions = append(submissions, stored(fmt.Sprintf("id-%02d", i), model.StatusNew))
	}

	tests := []struct {
		name          string
		params        gDto.QueryParams
		wantIDs       int
		wantFirst     string
		wantPage      int
		wantTotalPage int
	}{
		{name: "no page returns everything", params: gDto.QueryParams{}, wantIDs: 20, wantFirst: "id-00", wantPage: 1, wantTotalPage: 1},
		{name: "limit alone is ignored", params: gDto.QueryParams{Limit: 5}, wantIDs: 20, wantFirst: "id-00", wantPage: 1, wantTotalPage: 1},
		{name: "default page size", params: gDto.QueryParams{Page: 1}, wantIDs: 15, wantFirst: "id-00", wantPage: 1, wantTotalPage: 2},
		{name: "second page of default size", params: gDto.QueryParams{Page: 2}, wantIDs: 5, wantFirst: "id-15", wantPage: 2, wantTotalPage: 2},
		{name: "explicit limit", params: gDto.QueryParams{Page: 3, Limit: 4}, wantIDs: 4, wantFirst: "id-08", wantPage: 3, wantTotalPage: 5},
		{name: "past the end", params: gDto.QueryParams{Page: 9, Limit: 10}, wantIDs: 0, wantPage: 9, wantTotalPage: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(submissions, nil)

			res, err := f.svc.GetAll(context.Background(), tt.params, dto.ListSubmissionsFilter{})
			require.NoError(t, err)

			assert.Len(t, res.Submissions, tt.wantIDs)
			assert.NotNil(t, res.Submissions)
			assert.Equal(t, 20, res.TotalData)
			assert.Equal(t, tt.wantPage, res.Page)
			assert.Equal(t, tt.wantTotalPage, res.TotalPage)

			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, res.Submissions[0].ID)
			}
		})
	}

	t.Run("invalid filter", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{}, dto.ListSubmissionsFilter{Status: "bogus"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestSubmissionService_Get(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f fixture)
		wantCode int
	}{
		{
			name: "found",
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored("abc", model.StatusNew), nil)
			},
		},
		{
			name: "not found",
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Submission{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "store error",
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Submission{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.Get(context.Background(), "abc")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "abc", res.ID)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestSubmissionService_Update(t *testing.T) {
	explicit := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		current       model.Status
		req           dto.UpdateSubmissionRequest
		wantStamp     bool
		wantExplicit  bool
		wantAdminNote *string
	}{
		{
			name:      "new to contacted stamps contactedAt",
			current:   model.StatusNew,
			req:       dto.UpdateSubmissionRequest{Status: ptr(model.StatusContacted)},
			wantStamp: true,
		},
		{
			name:    "contacted to contacted keeps contactedAt",
			current: model.StatusContacted,
			req:     dto.UpdateSubmissionRequest{Status: ptr(model.StatusContacted)},
		},
		{
			name:         "explicit contactedAt wins",
			current:      model.StatusNew,
			req:          dto.UpdateSubmissionRequest{Status: ptr(model.StatusContacted), ContactedAt: &explicit},
			wantExplicit: true,
		},
		{
			name:    "completed to new is allowed",
			current: model.StatusCompleted,
			req:     dto.UpdateSubmissionRequest{Status: ptr(model.StatusNew)},
		},
		{
			name:          "notes only",
			current:       model.StatusScheduled,
			req:           dto.UpdateSubmissionRequest{Notes: ptr("call after 6pm")},
			wantAdminNote: ptr("call after 6pm"),
		},
		{
			name:          "adminNotes wins over notes",
			current:       model.StatusScheduled,
			req:           dto.UpdateSubmissionRequest{Notes: ptr("old"), AdminNotes: ptr("new")},
			wantAdminNote: ptr("new"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			current := stored("abc", tt.current)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
			f.repo.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
					assert.Equal(t, "staff-1", fields[constant.FieldUpdatedBy])
					assert.Contains(t, fields, constant.FieldUpdatedAt)

					contactedAt, stamped := fields[model.FieldContactedAt]

					switch {
					case tt.wantExplicit:
						require.True(t, stamped)
						assert.Equal(t, explicit, *contactedAt.(*time.Time))
					case tt.wantStamp:
						require.True(t, stamped)
						assert.WithinDuration(t, time.Now(), *contactedAt.(*time.Time), time.Minute)
					default:
						assert.False(t, stamped)
					}

					if tt.wantAdminNote != nil {
						assert.Equal(t, *tt.wantAdminNote, *fields[model.FieldAdminNotes].(*string))
					}

					if tt.req.Status != nil {
						assert.Equal(t, *tt.req.Status, *fields[model.FieldStatus].(*model.Status))
					}

					return 1, nil
				})

			updated := current
			if tt.req.Status != nil {
				updated.Status = *tt.req.Status
			}

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil)

			res, err := f.svc.Update(staffContext(), tt.req, "abc")
			require.NoError(t, err)
			assert.Equal(t, string(updated.Status), res.Status)
		})
	}
}

func TestSubmissionService_UpdateErrors(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.UpdateSubmissionRequest
		setup    func(f fixture)
		wantCode int
	}{
		{
			name:     "empty request",
			req:      dto.UpdateSubmissionRequest{},
			setup:    func(fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid status",
			req:      dto.UpdateSubmissionRequest{Status: ptr(model.Status("archived"))},
			setup:    func(fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown id",
			req:  dto.UpdateSubmissionRequest{Status: ptr(model.StatusConfirmed)},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Submission{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "deleted before write",
			req:  dto.UpdateSubmissionRequest{Status: ptr(model.StatusConfirmed)},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored("abc", model.StatusNew), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "store error",
			req:  dto.UpdateSubmissionRequest{QuotedAmount: ptr(180.0)},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored("abc", model.StatusNew), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			_, err := f.svc.Update(staffContext(), tt.req, "abc")
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestSubmissionService_SetStatusIsPermissive(t *testing.T) {
	for _, from := range model.Statuses() {
		for _, to := range model.Statuses() {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				f := newFixture(t)

				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored("abc", from), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored("abc", to), nil)

				res, err := f.svc.SetStatus(staffContext(), to, "abc")
				require.NoError(t, err)
				assert.Equal(t, string(to), res.Status)
			})
		}
	}
}

func TestSubmissionService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		err      error
		wantCode int
	}{
		{name: "deleted", affected: 1},
		{name: "not found", affected: 0, wantCode: http.StatusNotFound},
		{name: "store error", err: errors.New("database error"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(tt.affected, tt.err)

			err := f.svc.Delete(staffContext(), "abc")

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
