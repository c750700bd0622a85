package rest

import (
	"time"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

type roleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type userResponse struct {
	ID              int64        `json:"id"`
	Email           string       `json:"email"`
	FirstName       *string      `json:"first_name"`
	LastName        *string      `json:"last_name"`
	Avatar          *string      `json:"avatar"`
	IsActive        bool         `json:"is_active"`
	HasSMTPPassword bool         `json:"has_smtp_password"`
	Role            roleResponse `json:"role"`
	CreatedAt       time.Time    `json:"created_at"`
}

func toRoleResponse(r domain.Role) roleResponse {
	return roleResponse{ID: r.ID, Name: string(r.Name)}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Avatar:          u.Avatar,
		IsActive:        u.IsActive,
		HasSMTPPassword: u.HasSMTPPassword(),
		Role:            toRoleResponse(u.Role),
		CreatedAt:       u.CreatedAt,
	}
}

type domainCategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type domainResponse struct {
	ID        int64                  `json:"id"`
	Name      string                 `json:"name"`
	FullURL   string                 `json:"full_url"`
	Domain    string                 `json:"domain"`
	Category  domainCategoryResponse `json:"category"`
	CreatedAt time.Time              `json:"created_at"`
}

func toDomainCategoryResponse(c domain.DomainCategory) domainCategoryResponse {
	return domainCategoryResponse{ID: c.ID, Name: c.Name}
}

func toDomainResponse(d *domain.Domain) domainResponse {
	return domainResponse{
		ID:        d.ID,
		Name:      d.Name,
		FullURL:   d.FullURL,
		Domain:    d.Host,
		Category:  toDomainCategoryResponse(d.Category),
		CreatedAt: d.CreatedAt,
	}
}

type sportEventResponse struct {
	ID          int64   `json:"id"`
	DayName     string  `json:"day_name"`
	EventDate   string  `json:"event_date"`
	Sport       string  `json:"deporte"`
	Time        string  `json:"hora"`
	Competition string  `json:"competicion"`
	Event       string  `json:"evento"`
	Channel     *string `json:"canal"`
}

func toSportEventResponse(e domain.SportEvent) sportEventResponse {
	return sportEventResponse{
		ID:          e.ID,
		DayName:     e.DayName,
		EventDate:   e.EventDate,
		Sport:       e.Sport,
		Time:        e.Time,
		Competition: e.Competition,
		Event:       e.Event,
		Channel:     e.Channel,
	}
}

type topicCategoryResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
	IsFixed      bool   `json:"is_fixed"`
}

type autoTopicResponse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

type dailyTopicResponse struct {
	ID             int64                  `json:"id"`
	Title          string                 `json:"title"`
	URL            *string                `json:"url"`
	IncludeURL     bool                   `json:"include_url"`
	Observation    *string                `json:"observation"`
	Category       *topicCategoryResponse `json:"category"`
	OriginalSource *string                `json:"original_source"`
	OriginalURL    *string                `json:"original_url"`
	CreatedAt      time.Time              `json:"created_at"`
	IsDraft        bool                   `json:"is_draft"`
	SentAt         *time.Time             `json:"sent_at"`
}

func toTopicCategoryResponse(c domain.TopicCategory) topicCategoryResponse {
	return topicCategoryResponse{ID: c.ID, Name: c.Name, DisplayOrder: c.DisplayOrder, IsFixed: c.IsFixed}
}

func toAutoTopicResponse(a domain.AutoTopic) autoTopicResponse {
	return autoTopicResponse{ID: a.ID, Title: a.Title, IsActive: a.IsActive, DisplayOrder: a.DisplayOrder}
}

func toDailyTopicResponse(t domain.DailyTopic) dailyTopicResponse {
	resp := dailyTopicResponse{
		ID:             t.ID,
		Title:          t.Title,
		URL:            t.URL,
		IncludeURL:     t.IncludeURL,
		Observation:    t.Observation,
		OriginalSource: t.OriginalSource,
		OriginalURL:    t.OriginalURL,
		CreatedAt:      t.CreatedAt,
		IsDraft:        t.IsDraft,
		SentAt:         t.SentAt,
	}
	if t.Category != nil {
		c := toTopicCategoryResponse(*t.Category)
		resp.Category = &c
	}
	return resp
}

type senderResponse struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type emailLogResponse struct {
	ID          int64           `json:"id"`
	SentAt      time.Time       `json:"sent_at"`
	SenderEmail string          `json:"sender_email"`
	Sender      *senderResponse `json:"sender"`
	Recipients  []string        `json:"recipients"`
	Subject     string          `json:"subject"`
	HTMLBody    string          `json:"html_body"`
	TopicCount  int             `json:"topic_count"`
}

type emailLogPage struct {
	Items []emailLogResponse `json:"items"`
	Total int                `json:"total"`
}

func toEmailLogResponse(l domain.EmailLog, sender *domain.User) emailLogResponse {
	resp := emailLogResponse{
		ID:          l.ID,
		SentAt:      l.SentAt,
		SenderEmail: l.SenderEmail,
		Recipients:  l.Recipients,
		Subject:     l.Subject,
		HTMLBody:    l.HTMLBody,
		TopicCount:  l.TopicCount,
	}
	if resp.Recipients == nil {
		resp.Recipients = []string{}
	}
	if sender != nil {
		resp.Sender = &senderResponse{
			ID:        sender.ID,
			Email:     sender.Email,
			FirstName: sender.FirstName,
			LastName:  sender.LastName,
		}
	}
	return resp
}

// mapSlice converts each element with fn. A nil input yields an empty slice
// so lists always encode as [].
func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
