package topic

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

const (
	maxCategoryNameLen = 100
	maxURLLen          = 2048
	maxObservationLen  = 2000
)

const titleTooLong = "Máximo 200 caracteres"

// CategoryInput holds the fields of a topic category.
type CategoryInput struct {
	Name         string
	DisplayOrder int
}

// Validate validates the category input.
func (i CategoryInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(i.Name) > maxCategoryNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateAutoTopicInput holds parameters for a new auto topic template.
type CreateAutoTopicInput struct {
	Title        string
	DisplayOrder int
}

// Validate validates the create auto topic input.
func (i CreateAutoTopicInput) Validate() error {
	errs := validateTitle(nil, i.Title)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateAutoTopicInput holds a partial auto topic patch.
type UpdateAutoTopicInput struct {
	Title        *string
	IsActive     *bool
	DisplayOrder *int
}

// Validate validates the update auto topic input.
func (i UpdateAutoTopicInput) Validate() error {
	var errs []domain.FieldError
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateDailyTopicInput holds parameters for a new daily topic.
// A nil or zero CategoryID leaves the topic uncategorised.
type CreateDailyTopicInput struct {
	Title          string
	URL            *string
	IncludeURL     bool
	Observation    *string
	CategoryID     *int64
	OriginalSource *string
	OriginalURL    *string
}

// Validate validates the create daily topic input.
func (i CreateDailyTopicInput) Validate() error {
	errs := validateTitle(nil, i.Title)
	errs = validateOptional(errs, "url", i.URL, maxURLLen)
	errs = validateOptional(errs, "observation", i.Observation, maxObservationLen)
	errs = validateOptional(errs, "original_url", i.OriginalURL, maxURLLen)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDailyTopicInput holds a partial daily topic patch.
type UpdateDailyTopicInput struct {
	Title       *string
	URL         *string
	IncludeURL  *bool
	Observation *string
	CategoryID  *int64
}

// Validate validates the update daily topic input.
func (i UpdateDailyTopicInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	errs = validateOptional(errs, "url", i.URL, maxURLLen)
	errs = validateOptional(errs, "observation", i.Observation, maxObservationLen)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTitle(errs []domain.FieldError, title string) []domain.FieldError {
	if strings.TrimSpace(title) == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > domain.MaxTopicTitleLen {
		return append(errs, domain.FieldError{Field: "title", Message: titleTooLong})
	}
	return errs
}

func validateOptional(errs []domain.FieldError, field string, v *string, max int) []domain.FieldError {
	if v != nil && len(*v) > max {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
