package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

const (
	maxCategoryNameLen = 100
	maxDomainFieldLen  = 255
	maxURLLen          = 2048
)

// CreateDomainInput holds parameters for creating a catalog entry.
type CreateDomainInput struct {
	Name       string
	FullURL    string
	Host       string
	CategoryID int64
}

// Validate validates the create domain input.
func (i CreateDomainInput) Validate() error {
	var errs []domain.FieldError

	errs = requireText(errs, "name", i.Name, maxDomainFieldLen)
	errs = requireText(errs, "full_url", i.FullURL, maxURLLen)
	errs = requireText(errs, "domain", i.Host, maxDomainFieldLen)
	if i.CategoryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDomainInput holds a partial domain patch. Nil fields are unchanged.
type UpdateDomainInput struct {
	Name       *string
	FullURL    *string
	Host       *string
	CategoryID *int64
}

// Validate validates the update domain input.
func (i UpdateDomainInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		errs = requireText(errs, "name", *i.Name, maxDomainFieldLen)
	}
	if i.FullURL != nil {
		errs = requireText(errs, "full_url", *i.FullURL, maxURLLen)
	}
	if i.Host != nil {
		errs = requireText(errs, "domain", *i.Host, maxDomainFieldLen)
	}
	if i.CategoryID != nil && *i.CategoryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateDomainInput) patch() domain.DomainPatch {
	return domain.DomainPatch{
		Name:       i.Name,
		FullURL:    i.FullURL,
		Host:       i.Host,
		CategoryID: i.CategoryID,
	}
}

func validateCategoryName(name string) error {
	errs := requireText(nil, "name", name, maxCategoryNameLen)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func requireText(errs []domain.FieldError, field, value string, max int) []domain.FieldError {
	if strings.TrimSpace(value) == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(value) > max {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
