// Package validation holds the per-form rules applied before anything is persisted.
// Every exported function is pure: raw strings in, a normalized value or Violations out.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/studioreel/website/internal/models"
)

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobileRe = regexp.MustCompile(`^[6-9]\d{9}$`)
	urlRe    = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)
	handleRe = regexp.MustCompile(`^@[a-zA-Z0-9_]+$`)
	domainRe = regexp.MustCompile(`^[a-zA-Z0-9][-a-zA-Z0-9]*(\.[a-zA-Z0-9][-a-zA-Z0-9]*)*$`)
)

// validate is safe for concurrent use once the custom tags are registered.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if l := f.Tag.Get("label"); l != "" {
			return l
		}
		return f.Name
	})
	mustRegister(v, "leademail", func(fl validator.FieldLevel) bool { return emailRe.MatchString(fl.Field().String()) })
	mustRegister(v, "mobile", func(fl validator.FieldLevel) bool { return IsMobile(fl.Field().String()) })
	mustRegister(v, "website", func(fl validator.FieldLevel) bool { return IsWebsite(fl.Field().String()) })
	mustRegister(v, "leadsubject", func(fl validator.FieldLevel) bool { return IsSubject(fl.Field().String()) })
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// IsMobile reports whether s is exactly 10 digits starting with 6-9.
func IsMobile(s string) bool {
	return mobileRe.MatchString(s)
}

// IsWebsite accepts an http(s) URL, an @handle or a bare domain-like token.
func IsWebsite(s string) bool {
	return urlRe.MatchString(s) || handleRe.MatchString(s) || domainRe.MatchString(s)
}

// IsSubject reports whether s is one of the lead subjects.
func IsSubject(s string) bool {
	for _, subject := range models.LeadSubjects {
		if s == subject {
			return true
		}
	}
	return false
}

// Violation is a single failed rule.
type Violation struct {
	Field   string
	Message string
}

// Violations is returned as the error of a failed validation.
type Violations []Violation

func (v Violations) Error() string {
	msgs := make([]string, 0, len(v))
	for _, violation := range v {
		msgs = append(msgs, violation.Message)
	}
	return strings.Join(msgs, "; ")
}

// check runs struct validation and converts failures into Violations.
func check(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := make(Violations, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, Violation{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "leademail":
		return "Please provide a valid email address"
	case "mobile":
		return fe.Field() + " must be 10 digits starting with 6-9"
	case "leadsubject":
		return "Please choose one of: " + strings.Join(models.LeadSubjects, ", ")
	case "website":
		return "Please provide a valid website URL or Instagram link"
	default:
		return fe.Field() + " is invalid"
	}
}

// optional trims s and returns nil when nothing is left.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
