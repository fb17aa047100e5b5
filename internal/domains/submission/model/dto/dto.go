package dto

import (
	"aircon/internal/domains/submission/model"
	"aircon/shared"
	"aircon/shared/constant"
	gDto "aircon/shared/dto"
	"aircon/shared/failure"
	gModel "aircon/shared/model"
	"aircon/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateSubmissionRequest is the public intake payload. Unknown fields, including ipAddress and
// status, are ignored.
type CreateSubmissionRequest struct {
	Kind          model.Kind       `json:"kind" validate:"omitempty,enum"`
	FormType      string           `json:"formType" validate:"max=100"`
	Name          string           `json:"name" validate:"required,notblank,max=255"`
	Email         string           `json:"email" validate:"required,notblank,max=255"`
	Phone         string           `json:"phone" validate:"max=50"`
	Mobile        string           `json:"mobile" validate:"max=50"`
	Message       string           `json:"message"`
	Address       string           `json:"address"`
	PostalCode    string           `json:"postalCode" validate:"max=20"`
	PropertyType  string           `json:"propertyType" validate:"max=100"`
	ServiceType   string           `json:"serviceType" validate:"max=100"`
	NumberOfUnits model.FlexString `json:"numberOfUnits" validate:"max=20"`
	Brand         string           `json:"brand" validate:"max=100"`
	PreferredDate string           `json:"preferredDate" validate:"max=50"`
	TimeSlot      string           `json:"timeSlot" validate:"max=50"`
	Remarks       string           `json:"remarks"`
	PDPAConsent   bool             `json:"pdpaConsent"`
	Source        string           `json:"source" validate:"max=100"`
	Referrer      string           `json:"referrer"`
}

// ToModel builds a new submission in status new. ipAddress must come from the transport.
func (c *CreateSubmissionRequest) ToModel(ipAddress, user string) model.Submission {
	kind := c.Kind
	if kind == "" {
		kind = model.KindBooking
	}

	now := timezone.Now()

	return model.Submission{
		ID:            uuid.NewString(),
		Kind:          kind,
		FormType:      c.FormType,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Mobile:        c.Mobile,
		Message:       c.Message,
		Address:       c.Address,
		PostalCode:    c.PostalCode,
		PropertyType:  c.PropertyType,
		ServiceType:   c.ServiceType,
		NumberOfUnits: string(c.NumberOfUnits),
		Brand:         c.Brand,
		PreferredDate: c.PreferredDate,
		TimeSlot:      c.TimeSlot,
		Remarks:       c.Remarks,
		PDPAConsent:   c.PDPAConsent,
		Status:        model.StatusNew,
		Source:        c.Source,
		Referrer:      c.Referrer,
		IPAddress:     ipAddress,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: user,
			UpdatedBy: user,
		},
	}
}

// UpdateSubmissionRequest is a partial update. Nil fields are left untouched. adminNotes wins
// over notes when both are sent.
type UpdateSubmissionRequest struct {
	Status       *model.Status `json:"status" validate:"omitempty,enum"`
	Notes        *string       `json:"notes"`
	AdminNotes   *string       `json:"adminNotes"`
	QuotedAmount *float64      `json:"quotedAmount" validate:"omitempty,gte=0"`
	ContactedAt  *time.Time    `json:"contactedAt"`
}

func (u *UpdateSubmissionRequest) IsEmpty() bool {
	return u.Status == nil && u.Notes == nil && u.AdminNotes == nil && u.QuotedAmount == nil && u.ContactedAt == nil
}

func (u *UpdateSubmissionRequest) notes() *string {
	if u.AdminNotes != nil {
		return u.AdminNotes
	}

	return u.Notes
}

// SubmissionChanges holds the columns written by a lifecycle update.
type SubmissionChanges struct {
	Status       *model.Status `db:"status"`
	AdminNotes   *string       `db:"admin_notes"`
	QuotedAmount *float64      `db:"quoted_amount"`
	ContactedAt  *time.Time    `db:"contacted_at"`
}

// Changes resolves the request against the stored status. Moving into contacted from another
// status stamps contactedAt with now unless the request carries its own value.
func (u *UpdateSubmissionRequest) Changes(current model.Status, now time.Time) SubmissionChanges {
	changes := SubmissionChanges{
		Status:       u.Status,
		AdminNotes:   u.notes(),
		QuotedAmount: u.QuotedAmount,
		ContactedAt:  u.ContactedAt,
	}

	if changes.ContactedAt == nil && u.Status != nil && *u.Status == model.StatusContacted && current != model.StatusContacted {
		changes.ContactedAt = &now
	}

	return changes
}

// Fields returns the column map for the repository, including the audit columns.
func (c SubmissionChanges) Fields(user string) map[string]any {
	return shared.TransformFields(c, user)
}

// ListSubmissionsFilter narrows the listing. Empty values and "all" disable a filter.
type ListSubmissionsFilter struct {
	Query  string
	Status string
	Kind   string
}

func (f *ListSubmissionsFilter) Validate() error {
	if active(f.Status) && !model.Status(f.Status).IsValid() {
		return failure.InvalidStatusParam
	}

	if active(f.Kind) && !model.Kind(f.Kind).IsValid() {
		return failure.InvalidKindParam
	}

	return nil
}

// FilterGroup ANDs the status and kind filters with an OR across the search fields.
func (f *ListSubmissionsFilter) FilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if query := strings.TrimSpace(f.Query); query != "" {
		search := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr}

		for _, field := range model.SearchFields {
			search.Filters = append(search.Filters, gDto.Filter{
				ArgName:  "q_" + field,
				Field:    field,
				Value:    query,
				Operator: gDto.FilterOperatorContains,
				Table:    model.TableName,
			})
		}

		group.Filters = append(group.Filters, search)
	}

	if active(f.Status) {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    f.Status,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if active(f.Kind) {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldKind,
			Value:    f.Kind,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return group
}

func active(value string) bool {
	return value != "" && !strings.EqualFold(value, constant.FilterAll)
}

type SubmissionResponse struct {
	ID            string   `json:"id"`
	Kind          string   `json:"kind"`
	FormType      string   `json:"formType"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Mobile        string   `json:"mobile"`
	Message       string   `json:"message"`
	Address       string   `json:"address"`
	PostalCode    string   `json:"postalCode"`
	PropertyType  string   `json:"propertyType"`
	ServiceType   string   `json:"serviceType"`
	NumberOfUnits string   `json:"numberOfUnits"`
	Brand         string   `json:"brand"`
	PreferredDate string   `json:"preferredDate"`
	TimeSlot      string   `json:"timeSlot"`
	Remarks       string   `json:"remarks"`
	PDPAConsent   bool     `json:"pdpaConsent"`
	Status        string   `json:"status"`
	Source        string   `json:"source"`
	Referrer      string   `json:"referrer"`
	IPAddress     string   `json:"ipAddress"`
	AdminNotes    string   `json:"adminNotes"`
	ContactedAt   *string  `json:"contactedAt"`
	QuotedAmount  *float64 `json:"quotedAmount"`
	gDto.Metadata
}

func (r *SubmissionResponse) FromModel(model model.Submission) {
	r.ID = model.ID
	r.Kind = string(model.Kind)
	r.FormType = model.FormType
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Mobile = model.Mobile
	r.Message = model.Message
	r.Address = model.Address
	r.PostalCode = model.PostalCode
	r.PropertyType = model.PropertyType
	r.ServiceType = model.ServiceType
	r.NumberOfUnits = model.NumberOfUnits
	r.Brand = model.Brand
	r.PreferredDate = model.PreferredDate
	r.TimeSlot = model.TimeSlot
	r.Remarks = model.Remarks
	r.PDPAConsent = model.PDPAConsent
	r.Status = string(model.Status)
	r.Source = model.Source
	r.Referrer = model.Referrer
	r.IPAddress = model.IPAddress
	r.AdminNotes = model.AdminNotes
	r.QuotedAmount = model.QuotedAmount
	r.ContactedAt = nil

	if model.ContactedAt != nil {
		contactedAt := timezone.Format(*model.ContactedAt, constant.DateFormat)
		r.ContactedAt = &contactedAt
	}

	r.Metadata.FromModel(model.Metadata)
}

type CreateSubmissionResponse struct {
	Message    string             `json:"message"`
	Submission SubmissionResponse `json:"submission"`
}

type GetSubmissionsResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
	Page        int                  `json:"page"`
	TotalPage   int                  `json:"totalPage"`
	TotalData   int                  `json:"totalData"`
}

func (r *GetSubmissionsResponse) FromPage(page shared.Page[model.Submission]) {
	r.Page = page.Page
	r.TotalPage = page.TotalPage
	r.TotalData = page.TotalData

	r.Submissions = make([]SubmissionResponse, len(page.Items))
	for i, mod := range page.Items {
		r.Submissions[i].FromModel(mod)
	}
}
