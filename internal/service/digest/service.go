// Package digest renders the daily topics digest, mails it and records the
// delivery.
package digest

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/editorial-backend/internal/auth"
	"github.com/heartmarshall/editorial-backend/internal/config"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

type dailyRepo interface {
	ListDrafts(ctx context.Context) ([]domain.DailyTopic, error)
	DraftIDs(ctx context.Context) ([]int64, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.DailyTopic, error)
	MarkSent(ctx context.Context, ids []int64, sentAt time.Time) (int64, error)
}

type logRepo interface {
	Append(ctx context.Context, l *domain.EmailLog) (*domain.EmailLog, error)
	List(ctx context.Context, limit, offset int) ([]domain.EmailLog, int, error)
}

type mailer interface {
	Enabled() bool
	Send(ctx context.Context, m domain.OutgoingMail) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service sends the digest of draft topics.
type Service struct {
	log    *slog.Logger
	daily  dailyRepo
	logs   logRepo
	mail   mailer
	tx     txManager
	smtp   config.SMTPConfig
	digest config.DigestConfig
	loc    *time.Location
	now    func() time.Time
}

// NewService creates a new digest service instance.
func NewService(
	logger *slog.Logger,
	daily dailyRepo,
	logs logRepo,
	mail mailer,
	tx txManager,
	smtpCfg config.SMTPConfig,
	digestCfg config.DigestConfig,
) *Service {
	loc, err := time.LoadLocation(digestCfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return &Service{
		log:    logger.With("service", "digest"),
		daily:  daily,
		logs:   logs,
		mail:   mail,
		tx:     tx,
		smtp:   smtpCfg,
		digest: digestCfg,
		loc:    loc,
		now:    time.Now,
	}
}

// DefaultSubject is the subject proposed for today's digest.
func (s *Service) DefaultSubject() string {
	return s.digest.SubjectPrefix + " - " + s.now().In(s.loc).Format("02/01/2006")
}

func requireSession(ctx context.Context) (domain.Session, error) {
	session := auth.SessionFromCtx(ctx)
	if err := auth.RequireSession(session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}
