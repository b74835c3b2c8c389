package command

import (
	"strings"

	"github.com/heartmarshall/ustwo-backend/internal/domain"
	"github.com/heartmarshall/ustwo-backend/internal/service/countdown"
)

// Field messages are shown to chat users as-is.
const (
	msgMemoryEmpty   = "Please provide text or attach an image."
	msgInvalidDate   = "Invalid date format. Use YYYY-MM-DD (e.g., 2023-12-25)."
	msgNameRequired  = "Please give the milestone a name."
	msgIdeaRequired  = "Please describe the date idea."
	msgCategoryBlank = "Please give the date idea a category."
)

// LogMemoryInput holds the parameters of the log command.
type LogMemoryInput struct {
	Content  *string
	ImageURL *string
}

// Validate requires text, an image URL, or both.
func (i LogMemoryInput) Validate() error {
	if domain.TrimOrNil(i.Content) == nil && domain.TrimOrNil(i.ImageURL) == nil {
		return domain.NewValidationError("memory", msgMemoryEmpty)
	}
	return nil
}

// AddDateIdeaInput holds the parameters of the date command.
type AddDateIdeaInput struct {
	Category string
	Idea     string
}

// Validate checks all fields and collects all errors.
func (i AddDateIdeaInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Category) == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: msgCategoryBlank})
	}
	if strings.TrimSpace(i.Idea) == "" {
		errs = append(errs, domain.FieldError{Field: "idea", Message: msgIdeaRequired})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// PickDateIdeaInput holds the parameters of the pick command.
// A nil or blank Category means any category.
type PickDateIdeaInput struct {
	Category *string
}

// SetMilestoneInput holds the parameters of the milestone command.
type SetMilestoneInput struct {
	Date string
	Name string
}

// Validate checks all fields and collects all errors. The date must be a
// real calendar date in YYYY-MM-DD form.
func (i SetMilestoneInput) Validate() error {
	var errs []domain.FieldError
	if _, err := countdown.ParseDate(i.Date); err != nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: msgInvalidDate})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: msgNameRequired})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
