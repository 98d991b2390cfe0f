package models

import "strings"

// Enquiry is the consultation request posted by the contact form.
// It is validated, turned into outbound links and dropped; nothing stores it.
type Enquiry struct {
	Name       string `form:"name" json:"name" validate:"min=2"`
	Email      string `form:"email" json:"email" validate:"email"`
	Phone      string `form:"phone" json:"phone" validate:"min=6"`
	StudyLevel string `form:"studyLevel" json:"studyLevel" validate:"min=2"`
	Intake     string `form:"intake" json:"intake" validate:"min=2"`
	Message    string `form:"message" json:"message" validate:"min=5"`

	// Company is a honeypot; people never see it, bots fill it in.
	Company string `form:"company" json:"company"`
	Consent bool   `form:"consent" json:"consent"`
}

// IsSpam reports whether the honeypot was filled.
func (e Enquiry) IsSpam() bool {
	return strings.TrimSpace(e.Company) != ""
}

// EnquiryResponse is the JSON answer to an accepted enquiry.
type EnquiryResponse struct {
	Status       string `json:"status"`
	Summary      string `json:"summary"`
	EmailURL     string `json:"email_url"`
	MessagingURL string `json:"messaging_url"`
}
