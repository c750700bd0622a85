// Package mail delivers HTML messages through an SMTP relay.
package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/editorial-backend/internal/config"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

// Sender talks to the configured relay. It is safe for concurrent use;
// every Send opens its own connection.
type Sender struct {
	cfg       config.SMTPConfig
	log       *slog.Logger
	helo      string
	tlsConfig *tls.Config
	now       func() time.Time
}

// NewSender creates a Sender for cfg.
func NewSender(cfg config.SMTPConfig, logger *slog.Logger) *Sender {
	return &Sender{
		cfg:       cfg,
		log:       logger.With("adapter", "mail"),
		helo:      "localhost",
		tlsConfig: &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12},
		now:       time.Now,
	}
}

// Enabled reports whether a relay host is configured.
func (s *Sender) Enabled() bool {
	return s.cfg.Enabled()
}

// Send delivers m. The SMTP exchange runs on its own goroutine and is bounded
// by the configured timeout; cancelling ctx aborts the connection.
func (s *Sender) Send(ctx context.Context, m domain.OutgoingMail) error {
	if !s.Enabled() {
		return errors.New("mail: relay not configured")
	}
	if len(m.To) == 0 {
		return errors.New("mail: no recipients")
	}

	body, err := buildMessage(m, s.now())
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	dialer := net.Dialer{Timeout: s.cfg.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("mail: dial %s: %w", addr, err)
	}
	if s.cfg.Timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(s.cfg.Timeout))
	}

	done := make(chan error, 1)
	go func() {
		done <- s.exchange(conn, m, body)
	}()

	select {
	case err := <-done:
		if err != nil {
			s.log.WarnContext(ctx, "smtp exchange failed", slog.String("addr", addr), slog.String("error", err.Error()))
			return err
		}
		s.log.InfoContext(ctx, "mail sent", slog.String("addr", addr), slog.Int("recipients", len(m.To)))
		return nil
	case <-ctx.Done():
		_ = conn.Close()
		<-done
		return fmt.Errorf("mail: %w", ctx.Err())
	}
}

func (s *Sender) exchange(conn net.Conn, m domain.OutgoingMail, body []byte) error {
	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("mail: greeting: %w", err)
	}
	defer c.Close()

	if err := c.Hello(s.helo); err != nil {
		return fmt.Errorf("mail: ehlo: %w", err)
	}
	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(s.tlsConfig); err != nil {
			return fmt.Errorf("mail: starttls: %w", err)
		}
	}
	if m.AuthUser != "" {
		if err := c.Auth(s.auth(c, m.AuthUser, m.AuthPassword)); err != nil {
			return fmt.Errorf("mail: auth: %w", err)
		}
	}

	if err := c.Mail(envelopeAddress(m.From)); err != nil {
		return fmt.Errorf("mail: mail from: %w", err)
	}
	for _, rcpt := range m.To {
		if err := c.Rcpt(envelopeAddress(rcpt)); err != nil {
			return fmt.Errorf("mail: rcpt %s: %w", rcpt, err)
		}
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("mail: data: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("mail: write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("mail: end data: %w", err)
	}

	return c.Quit()
}

// auth prefers PLAIN and falls back to LOGIN for relays that only offer it.
func (s *Sender) auth(c *smtp.Client, user, password string) smtp.Auth {
	_, mechs := c.Extension("AUTH")
	for _, mech := range strings.Fields(strings.ToUpper(mechs)) {
		if mech == "PLAIN" {
			return smtp.PlainAuth("", user, password, s.cfg.Host)
		}
	}
	for _, mech := range strings.Fields(strings.ToUpper(mechs)) {
		if mech == "LOGIN" {
			return &loginAuth{user: user, password: password}
		}
	}
	return smtp.PlainAuth("", user, password, s.cfg.Host)
}

// envelopeAddress strips a display name: "Name <a@b>" becomes "a@b".
func envelopeAddress(addr string) string {
	if i := strings.LastIndex(addr, "<"); i >= 0 {
		if j := strings.LastIndex(addr, ">"); j > i {
			return strings.TrimSpace(addr[i+1 : j])
		}
	}
	return strings.TrimSpace(addr)
}

type loginAuth struct {
	user, password string
}

func (a *loginAuth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	if !server.TLS && !isLocalhost(server.Name) {
		return "", nil, errors.New("unencrypted connection")
	}
	return "LOGIN", nil, nil
}

func (a *loginAuth) Next(fromServer []byte, more bool) ([]byte, error) {
	if !more {
		return nil, nil
	}
	switch strings.ToLower(strings.TrimSpace(string(fromServer))) {
	case "username:":
		return []byte(a.user), nil
	case "password:":
		return []byte(a.password), nil
	default:
		return nil, fmt.Errorf("unexpected LOGIN challenge %q", fromServer)
	}
}

func isLocalhost(name string) bool {
	return name == "localhost" || name == "127.0.0.1" || name == "::1"
}
