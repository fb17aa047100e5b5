package model

import (
	"aircon/shared/model"
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const (
	TableName  = "submissions"
	EntityName = "submission"

	FieldID           = "id"
	FieldKind         = "kind"
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldMobile       = "mobile"
	FieldMessage      = "message"
	FieldStatus       = "status"
	FieldAdminNotes   = "admin_notes"
	FieldContactedAt  = "contacted_at"
	FieldQuotedAmount = "quoted_amount"
	FieldCreatedAt    = "created_at"
)

// SearchFields are the columns matched by free-text search.
var SearchFields = []string{FieldName, FieldEmail, FieldPhone, FieldMobile, FieldMessage}

type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func Statuses() []Status {
	return []Status{StatusNew, StatusContacted, StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

type Kind string

const (
	KindBooking Kind = "booking"
	KindContact Kind = "contact"
)

func (k Kind) IsValid() bool {
	return k == KindBooking || k == KindContact
}

// FlexString decodes from either a JSON string or a JSON number.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*f = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("failed to decode string: %w", err)
		}

		*f = FlexString(value)

		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}

	*f = FlexString(number.String())

	return nil
}

type Submission struct {
	ID            string     `db:"id"`
	Kind          Kind       `db:"kind"`
	FormType      string     `db:"form_type"`
	Name          string     `db:"name"`
	Email         string     `db:"email"`
	Phone         string     `db:"phone"`
	Mobile        string     `db:"mobile"`
	Message       string     `db:"message"`
	Address       string     `db:"address"`
	PostalCode    string     `db:"postal_code"`
	PropertyType  string     `db:"property_type"`
	ServiceType   string     `db:"service_type"`
	NumberOfUnits string     `db:"number_of_units"`
	Brand         string     `db:"brand"`
	PreferredDate string     `db:"preferred_date"`
	TimeSlot      string     `db:"time_slot"`
	Remarks       string     `db:"remarks"`
	PDPAConsent   bool       `db:"pdpa_consent"`
	Status        Status     `db:"status"`
	Source        string     `db:"source"`
	Referrer      string     `db:"referrer"`
	IPAddress     string     `db:"ip_address"`
	AdminNotes    string     `db:"admin_notes"`
	ContactedAt   *time.Time `db:"contacted_at"`
	QuotedAmount  *float64   `db:"quoted_amount"`
	model.Metadata
}
