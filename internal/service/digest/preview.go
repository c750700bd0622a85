package digest

import (
	"context"
	"fmt"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

// Preview is a proposed digest, ready to be edited and sent.
type Preview struct {
	Subject    string
	Recipients []string
	Message    string
	HTML       string
	TopicIDs   []int64
}

// Preview renders the digest for the current drafts (or the listed ones) with
// today's subject and the default recipients unless overridden.
func (s *Service) Preview(ctx context.Context, in PreviewInput) (*Preview, error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	subject := in.Subject
	if subject == "" {
		subject = s.DefaultSubject()
	}
	message := in.Message
	if message == "" {
		message = DefaultMessage
	}

	topics, err := s.draftTopics(ctx, in.TopicIDs)
	if err != nil {
		return nil, fmt.Errorf("digest.Preview: %w", err)
	}
	html, err := Render(subject, message, topics)
	if err != nil {
		return nil, fmt.Errorf("digest.Preview: %w", err)
	}

	return &Preview{
		Subject:    subject,
		Recipients: s.digest.RecipientList(),
		Message:    message,
		HTML:       html,
		TopicIDs:   idsOf(topics),
	}, nil
}

// ListLogs returns a page of delivered digests, newest first, and the total.
func (s *Service) ListLogs(ctx context.Context, in ListLogsInput) ([]domain.EmailLog, int, error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, 0, err
	}
	if err := in.Validate(); err != nil {
		return nil, 0, err
	}

	logs, total, err := s.logs.List(ctx, in.limit(), in.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("digest.ListLogs: %w", err)
	}
	return logs, total, nil
}
