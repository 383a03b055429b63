package validation

import (
	"strings"

	"github.com/studioreel/website/internal/models"
)

// LeadInput is the raw contact form.
type LeadInput struct {
	Name       string `form:"name" label:"Name" validate:"required"`
	Email      string `form:"email" label:"Email" validate:"required,leademail"`
	Phone      string `form:"phone" label:"Phone" validate:"required,mobile"`
	Subject    string `form:"subject" label:"Subject" validate:"required,leadsubject"`
	Website    string `form:"website" label:"Website" validate:"omitempty,website"`
	Message    string `form:"message" label:"Message" validate:"required"`
	Budget     string `form:"budget" label:"Budget"`
	Membership string `form:"membership" label:"Membership"`
}

// Lead normalizes and checks a contact form submission.
func Lead(in LeadInput) (models.Lead, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Website = strings.TrimSpace(in.Website)
	in.Message = strings.TrimSpace(in.Message)

	if err := check(in); err != nil {
		return models.Lead{}, err
	}
	return models.Lead{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Subject:    in.Subject,
		Website:    optional(in.Website),
		Message:    in.Message,
		Budget:     optional(in.Budget),
		Membership: optional(in.Membership),
	}, nil
}

type demoInput struct {
	Mobile string `label:"Mobile" validate:"required,mobile"`
}

// Mobile checks a demo request number and returns it trimmed.
func Mobile(raw string) (string, error) {
	in := demoInput{Mobile: strings.TrimSpace(raw)}
	if err := check(in); err != nil {
		return "", err
	}
	return in.Mobile, nil
}

// VideoInput is the raw video upload form.
type VideoInput struct {
	Title       string
	Description string
	HasFile     bool
}

// VideoForm is a validated video upload.
type VideoForm struct {
	Title       string
	Description string
}

// Video requires a file and fills in the default title.
func Video(in VideoInput) (VideoForm, error) {
	if !in.HasFile {
		return VideoForm{}, Violations{{Field: "Video", Message: "No video file selected."}}
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = models.DefaultVideoTitle
	}
	return VideoForm{Title: title, Description: strings.TrimSpace(in.Description)}, nil
}

// BlogInput is the raw blog add/edit form.
type BlogInput struct {
	Title      string `form:"title" label:"Title" validate:"required"`
	Paragraph1 string `form:"paragraph1" label:"Paragraph 1" validate:"required"`
	Paragraph2 string `form:"paragraph2" label:"Paragraph 2" validate:"required"`
	Quote      string `form:"quote" label:"Quote"`
}

// Blog trims the text fields and requires title and both paragraphs.
func Blog(in BlogInput) (BlogInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Paragraph1 = strings.TrimSpace(in.Paragraph1)
	in.Paragraph2 = strings.TrimSpace(in.Paragraph2)
	in.Quote = strings.TrimSpace(in.Quote)
	if err := check(in); err != nil {
		return BlogInput{}, err
	}
	return in, nil
}
