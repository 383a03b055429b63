package models

import (
	"time"

	"github.com/google/uuid"
)

// Lead subjects accepted by the contact form.
const (
	SubjectFashionShoot       = "Fashion Shoot"
	SubjectBrandCampaign      = "Brand Campaign"
	SubjectProductPhotography = "Product Photography"
	SubjectVideoProduction    = "Video Production"
	SubjectOther              = "Other"
)

// LeadSubjects lists every accepted subject in display order.
var LeadSubjects = []string{
	SubjectFashionShoot,
	SubjectBrandCampaign,
	SubjectProductPhotography,
	SubjectVideoProduction,
	SubjectOther,
}

// Lead is a contact form submission. Optional fields are nil when left blank.
type Lead struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Subject    string    `json:"subject"`
	Budget     *string   `json:"budget,omitempty"`
	Membership *string   `json:"membership,omitempty"`
	Website    *string   `json:"website,omitempty"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
