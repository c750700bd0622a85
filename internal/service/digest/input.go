package digest

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

const (
	maxRecipients    = 50
	maxSubjectLen    = 255
	maxLogsPageLimit = 200
	defaultLogsLimit = 50
)

// SendInput holds a digest send request. An empty HTMLBody is rendered from
// the selected drafts; empty TopicIDs selects every draft.
type SendInput struct {
	Recipients []string
	Subject    string
	HTMLBody   string
	TopicIDs   []int64
}

// Validate validates the send input.
func (i SendInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case len(i.Recipients) == 0:
		errs = append(errs, domain.FieldError{Field: "recipients", Message: "required"})
	case len(i.Recipients) > maxRecipients:
		errs = append(errs, domain.FieldError{Field: "recipients", Message: fmt.Sprintf("max %d recipients", maxRecipients)})
	default:
		for n, r := range i.Recipients {
			if !strings.Contains(r, "@") {
				errs = append(errs, domain.FieldError{Field: fmt.Sprintf("recipients[%d]", n), Message: "invalid email format"})
			}
		}
	}

	if strings.TrimSpace(i.Subject) == "" {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "required"})
	} else if len(i.Subject) > maxSubjectLen {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "too long"})
	}

	errs = append(errs, validateTopicIDs(i.TopicIDs)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PreviewInput overrides parts of the proposed digest. Zero values fall back
// to today's subject, the default intro and every draft.
type PreviewInput struct {
	Subject  string
	Message  string
	TopicIDs []int64
}

// Validate validates the preview input.
func (i PreviewInput) Validate() error {
	var errs []domain.FieldError
	if len(i.Subject) > maxSubjectLen {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "too long"})
	}
	errs = append(errs, validateTopicIDs(i.TopicIDs)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListLogsInput pages through the email log. A zero Limit means 50.
type ListLogsInput struct {
	Limit  int
	Offset int
}

// Validate validates the list input.
func (i ListLogsInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 || i.Limit > maxLogsPageLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", maxLogsPageLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListLogsInput) limit() int {
	if i.Limit == 0 {
		return defaultLogsLimit
	}
	return i.Limit
}

func validateTopicIDs(ids []int64) []domain.FieldError {
	for n, id := range ids {
		if id <= 0 {
			return []domain.FieldError{{Field: fmt.Sprintf("topic_ids[%d]", n), Message: "must be positive"}}
		}
	}
	return nil
}
