package dto_test

import (
	"aircon/internal/domains/submission/model"
	"aircon/internal/domains/submission/model/dto"
	"aircon/shared/constant"
	gDto "aircon/shared/dto"
	"aircon/shared/failure"
	gModel "aircon/shared/model"
	"aircon/shared/validator"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSubmissionRequest_ToModel(t *testing.T) {
	req := dto.CreateSubmissionRequest{
		Name:          "Alice Tan",
		Email:         "alice@example.com",
		ServiceType:   "normal-servicing",
		NumberOfUnits: "2",
		PDPAConsent:   true,
	}

	submission := req.ToModel("198.51.100.4", constant.ContextGuest)

	assert.NotEmpty(t, submission.ID)
	assert.Equal(t, model.KindBooking, submission.Kind)
	assert.Equal(t, model.StatusNew, submission.Status)
	assert.Equal(t, "198.51.100.4", submission.IPAddress)
	assert.Equal(t, "2", submission.NumberOfUnits)
	assert.True(t, submission.PDPAConsent)
	assert.Equal(t, constant.ContextGuest, submission.CreatedBy)
	assert.Equal(t, constant.ContextGuest, submission.UpdatedBy)
	assert.False(t, submission.CreatedAt.IsZero())
	assert.Nil(t, submission.ContactedAt)
	assert.Nil(t, submission.QuotedAmount)

	req.Kind = model.KindContact
	assert.Equal(t, model.KindContact, req.ToModel("", constant.ContextGuest).Kind)
	assert.NotEqual(t, submission.ID, req.ToModel("", constant.ContextGuest).ID)
}

func TestCreateSubmissionRequest_IgnoresClientControlledFields(t *testing.T) {
	body := `{"name":"Alice","email":"a@example.com","ipAddress":"10.0.0.1","status":"completed","id":"fixed","numberOfUnits":4}`

	var req dto.CreateSubmissionRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	submission := req.ToModel("203.0.113.9", constant.ContextGuest)

	assert.Equal(t, "203.0.113.9", submission.IPAddress)
	assert.Equal(t, model.StatusNew, submission.Status)
	assert.NotEqual(t, "fixed", submission.ID)
	assert.Equal(t, "4", submission.NumberOfUnits)
}

func TestCreateSubmissionRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "name and email present", body: `{"name":"Alice","email":"a@example.com"}`},
		{name: "missing name", body: `{"email":"a@example.com"}`, wantErr: "name is required"},
		{name: "blank email", body: `{"name":"Alice","email":"   "}`, wantErr: "email"},
		{name: "unknown kind", body: `{"name":"Alice","email":"a@example.com","kind":"quote"}`, wantErr: "kind"},
		{name: "unknown fields ignored", body: `{"name":"Alice","email":"a@example.com","favouriteColour":"blue"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.CreateSubmissionRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, failure.IsClientError(err))
		})
	}
}

func TestUpdateSubmissionRequest_IsEmpty(t *testing.T) {
	var req dto.UpdateSubmissionRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.True(t, req.IsEmpty())

	require.NoError(t, json.Unmarshal([]byte(`{"notes":""}`), &req))
	assert.False(t, req.IsEmpty())
}

func TestUpdateSubmissionRequest_Changes(t *testing.T) {
	now := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	explicit := now.Add(-time.Hour)
	contacted := model.StatusContacted
	scheduled := model.StatusScheduled
	notes := "left voicemail"

	tests := []struct {
		name            string
		req             dto.UpdateSubmissionRequest
		current         model.Status
		wantContactedAt *time.Time
	}{
		{name: "stamp on entry", req: dto.UpdateSubmissionRequest{Status: &contacted}, current: model.StatusNew, wantContactedAt: &now},
		{name: "no stamp when already contacted", req: dto.UpdateSubmissionRequest{Status: &contacted}, current: model.StatusContacted},
		{name: "explicit value wins", req: dto.UpdateSubmissionRequest{Status: &contacted, ContactedAt: &explicit}, current: model.StatusNew, wantContactedAt: &explicit},
		{name: "other status", req: dto.UpdateSubmissionRequest{Status: &scheduled}, current: model.StatusNew},
		{name: "notes only", req: dto.UpdateSubmissionRequest{Notes: &notes}, current: model.StatusNew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := tt.req.Changes(tt.current, now)

			assert.Equal(t, tt.wantContactedAt, changes.ContactedAt)
			assert.Equal(t, tt.req.Status, changes.Status)
		})
	}
}

func TestSubmissionChanges_Fields(t *testing.T) {
	empty := ""
	status := model.StatusCancelled

	fields := dto.SubmissionChanges{Status: &status, AdminNotes: &empty}.Fields("staff-1")

	assert.Equal(t, &status, fields[model.FieldStatus])
	assert.Equal(t, &empty, fields[model.FieldAdminNotes])
	assert.Equal(t, "staff-1", fields[constant.FieldUpdatedBy])
	assert.Contains(t, fields, constant.FieldUpdatedAt)
	assert.NotContains(t, fields, model.FieldQuotedAmount)
	assert.NotContains(t, fields, model.FieldContactedAt)
}

func TestListSubmissionsFilter_Validate(t *testing.T) {
	tests := []struct {
		filter  dto.ListSubmissionsFilter
		wantErr error
	}{
		{filter: dto.ListSubmissionsFilter{}},
		{filter: dto.ListSubmissionsFilter{Status: "all", Kind: "ALL"}},
		{filter: dto.ListSubmissionsFilter{Status: "confirmed", Kind: "booking"}},
		{filter: dto.ListSubmissionsFilter{Status: "done"}, wantErr: failure.InvalidStatusParam},
		{filter: dto.ListSubmissionsFilter{Kind: "quote"}, wantErr: failure.InvalidKindParam},
	}

	for _, tt := range tests {
		t.Run(tt.filter.Status+"/"+tt.filter.Kind, func(t *testing.T) {
			err := tt.filter.Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListSubmissionsFilter_FilterGroup(t *testing.T) {
	filter := dto.ListSubmissionsFilter{Query: " 50%_off ", Status: "new", Kind: "all"}
	group := filter.FilterGroup()

	where, args := group.GetWhereClause()

	assert.Equal(t,
		`((LOWER(submissions.name) LIKE LOWER(:q_name) ESCAPE '\' OR `+
			`LOWER(submissions.email) LIKE LOWER(:q_email) ESCAPE '\' OR `+
			`LOWER(submissions.phone) LIKE LOWER(:q_phone) ESCAPE '\' OR `+
			`LOWER(submissions.mobile) LIKE LOWER(:q_mobile) ESCAPE '\' OR `+
			`LOWER(submissions.message) LIKE LOWER(:q_message) ESCAPE '\') AND `+
			`submissions.status = :status)`,
		where,
	)
	assert.Equal(t, `%50\%\_off%`, args["q_email"])
	assert.Equal(t, "new", args["status"])
	assert.NotContains(t, args, "kind")

	empty := dto.ListSubmissionsFilter{Query: "   "}
	emptyGroup := empty.FilterGroup()
	where, _ = emptyGroup.GetWhereClause()
	assert.Empty(t, where)
}

func TestListSubmissionsFilter_SearchProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every search field gets the same escaped pattern", prop.ForAll(
		func(query string) bool {
			filter := dto.ListSubmissionsFilter{Query: query}
			group := filter.FilterGroup()
			where, args := group.GetWhereClause()

			if strings.TrimSpace(query) == "" {
				return where == "" && len(args) == 0
			}

			pattern := "%" + gDto.EscapeLike(strings.TrimSpace(query)) + "%"

			for _, field := range model.SearchFields {
				if args["q_"+field] != pattern {
					return false
				}
			}

			return len(args) == len(model.SearchFields) && strings.Count(where, " OR ") == len(model.SearchFields)-1
		},
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSubmissionResponse_FromModel(t *testing.T) {
	now := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	quoted := 240.5

	submission := model.Submission{
		ID:           "abc",
		Kind:         model.KindContact,
		Name:         "Alice",
		Status:       model.StatusContacted,
		ContactedAt:  &now,
		QuotedAmount: &quoted,
		AdminNotes:   "called",
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: constant.ContextGuest,
			UpdatedBy: "staff-1",
		},
	}

	var res dto.SubmissionResponse
	res.FromModel(submission)

	assert.Equal(t, "abc", res.ID)
	assert.Equal(t, "contact", res.Kind)
	assert.Equal(t, "contacted", res.Status)
	require.NotNil(t, res.ContactedAt)
	assert.NotEmpty(t, *res.ContactedAt)
	assert.Equal(t, &quoted, res.QuotedAmount)
	assert.Equal(t, "called", res.AdminNotes)
	assert.Equal(t, "staff-1", res.UpdatedBy)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"createdAt"`)
	assert.Contains(t, string(raw), `"quotedAmount":240.5`)
}
