package model

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

const (
	TableName  = "site_contents"
	EntityName = "site_content"

	FieldSection = "section"

	SectionCompany = "company"
)

// SiteContent is one section of the CMS document. Content is the raw JSON of the section.
type SiteContent struct {
	Section   string         `db:"section"`
	Content   types.JSONText `db:"content"`
	UpdatedAt time.Time      `db:"updated_at"`
	UpdatedBy string         `db:"updated_by"`
}

// Company is the business identity used to sign outgoing notifications.
type Company struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// Merge fills empty fields of c from fallback.
func (c Company) Merge(fallback Company) Company {
	if c.Name == "" {
		c.Name = fallback.Name
	}

	if c.Phone == "" {
		c.Phone = fallback.Phone
	}

	if c.Email == "" {
		c.Email = fallback.Email
	}

	if c.Website == "" {
		c.Website = fallback.Website
	}

	return c
}
