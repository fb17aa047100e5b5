package model

import (
	contentModel "aircon/internal/domains/content/model"
	submissionModel "aircon/internal/domains/submission/model"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	Acknowledgment = "acknowledgment"
	Alert          = "alert"

	GeneralEnquiry = "General Enquiry"
)

// TemplateData is rendered into every notification template.
type TemplateData struct {
	Submission  submissionModel.Submission
	Company     contentModel.Company
	ServiceType string
}

func NewTemplateData(submission submissionModel.Submission, company contentModel.Company) TemplateData {
	return TemplateData{
		Submission:  submission,
		Company:     company,
		ServiceType: HumanizeServiceType(submission.ServiceType),
	}
}

// HumanizeServiceType turns a slug such as "normal-servicing" into "Normal Servicing".
func HumanizeServiceType(serviceType string) string {
	words := strings.FieldsFunc(serviceType, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})

	if len(words) == 0 {
		return GeneralEnquiry
	}

	// A Caser is stateful, so each call gets its own.
	return cases.Title(language.English).String(strings.Join(words, " "))
}
