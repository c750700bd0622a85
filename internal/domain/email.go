package domain

import "time"

// EmailLog is an append-only record of a delivered digest.
type EmailLog struct {
	ID          int64
	SentAt      time.Time
	SenderID    *int64
	SenderEmail string
	Recipients  []string
	Subject     string
	HTMLBody    string
	TopicCount  int
}

// OutgoingMail is a single HTML message handed to the mail transport.
// AuthUser empty means the relay is used without authentication.
type OutgoingMail struct {
	From         string
	To           []string
	Subject      string
	HTML         string
	AuthUser     string
	AuthPassword string
}
