package digest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

const smtpNotConfigured = "SMTP no configurado en el servidor. Añade SMTP_HOST al .env del VPS."

// SendDigest mails the digest as the session user and, once the relay has
// accepted it, flips the selected drafts to sent and appends an email log in
// one transaction. A relay failure changes nothing.
func (s *Service) SendDigest(ctx context.Context, in SendInput) (*domain.EmailLog, error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if !s.mail.Enabled() {
		return nil, domain.NewError(domain.ErrServiceUnavailable, smtpNotConfigured)
	}

	var topicIDs []int64
	body := in.HTMLBody
	if strings.TrimSpace(body) == "" {
		topics, err := s.draftTopics(ctx, in.TopicIDs)
		if err != nil {
			return nil, fmt.Errorf("digest.SendDigest: %w", err)
		}
		if body, err = Render(in.Subject, DefaultMessage, topics); err != nil {
			return nil, fmt.Errorf("digest.SendDigest: %w", err)
		}
		topicIDs = idsOf(topics)
	} else {
		if topicIDs, err = s.topicSet(ctx, in.TopicIDs); err != nil {
			return nil, fmt.Errorf("digest.SendDigest: %w", err)
		}
	}

	msg := s.outgoing(session.User, in.Recipients, in.Subject, body)
	if err := s.mail.Send(ctx, msg); err != nil {
		return nil, domain.WrapError(domain.ErrBadGateway, "Error SMTP", err)
	}

	var entry *domain.EmailLog
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		sentAt := s.now().UTC()
		if _, err := s.daily.MarkSent(txCtx, topicIDs, sentAt); err != nil {
			return fmt.Errorf("mark sent: %w", err)
		}

		senderID := session.UserID()
		appended, err := s.logs.Append(txCtx, &domain.EmailLog{
			SentAt:      sentAt,
			SenderID:    &senderID,
			SenderEmail: msg.From,
			Recipients:  in.Recipients,
			Subject:     in.Subject,
			HTMLBody:    body,
			TopicCount:  len(topicIDs),
		})
		if err != nil {
			return fmt.Errorf("append email log: %w", err)
		}
		entry = appended
		return nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "digest delivered but not recorded",
			slog.Int64("user_id", session.UserID()),
			slog.Int("topics", len(topicIDs)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("digest.SendDigest: %w", err)
	}

	s.log.InfoContext(ctx, "digest sent",
		slog.Int64("user_id", session.UserID()),
		slog.Int("recipients", len(in.Recipients)),
		slog.Int("topics", len(topicIDs)),
	)
	return entry, nil
}

// topicSet selects the drafts a send marks as sent: the listed drafts when
// ids is non-empty, otherwise every draft at the time of the call.
func (s *Service) topicSet(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		all, err := s.daily.DraftIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("snapshot drafts: %w", err)
		}
		return all, nil
	}
	topics, err := s.draftTopics(ctx, ids)
	if err != nil {
		return nil, err
	}
	return idsOf(topics), nil
}

// draftTopics loads the drafts to render, hydrated with their category.
// Listed ids that are missing or already sent are skipped.
func (s *Service) draftTopics(ctx context.Context, ids []int64) ([]domain.DailyTopic, error) {
	if len(ids) == 0 {
		topics, err := s.daily.ListDrafts(ctx)
		if err != nil {
			return nil, fmt.Errorf("list drafts: %w", err)
		}
		return topics, nil
	}

	topics, err := s.daily.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get topics: %w", err)
	}
	drafts := make([]domain.DailyTopic, 0, len(topics))
	for _, t := range topics {
		if t.IsDraft {
			drafts = append(drafts, t)
		}
	}
	return drafts, nil
}

// outgoing resolves relay credentials for sender. The auth identity is the
// sender's local part at the configured auth domain, else the relay user.
// The password is the sender's own, else the relay's.
func (s *Service) outgoing(sender domain.User, recipients []string, subject, body string) domain.OutgoingMail {
	authUser := s.smtp.User
	if sender.Email != "" && s.smtp.AuthDomain != "" {
		local, _, _ := strings.Cut(sender.Email, "@")
		authUser = local + "@" + s.smtp.AuthDomain
	}

	password := s.smtp.Password
	if sender.HasSMTPPassword() {
		password = *sender.SMTPPassword
	}

	from := sender.Email
	if from == "" {
		from = s.smtp.From
	}
	if from == "" {
		from = authUser
	}

	return domain.OutgoingMail{
		From:         from,
		To:           recipients,
		Subject:      subject,
		HTML:         body,
		AuthUser:     authUser,
		AuthPassword: password,
	}
}

func idsOf(topics []domain.DailyTopic) []int64 {
	ids := make([]int64, len(topics))
	for i, t := range topics {
		ids[i] = t.ID
	}
	return ids
}
