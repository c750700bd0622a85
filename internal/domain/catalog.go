package domain

import "time"

// DomainCategory groups catalog domains.
type DomainCategory struct {
	ID   int64
	Name string
}

// Domain is a catalog site entry.
type Domain struct {
	ID         int64
	Name       string
	FullURL    string
	Host       string
	CategoryID int64
	Category   DomainCategory
	CreatedAt  time.Time
}

// DomainPatch lists the domain columns to change. Nil fields are left as is.
type DomainPatch struct {
	Name       *string
	FullURL    *string
	Host       *string
	CategoryID *int64
}

// IsEmpty reports whether the patch changes nothing.
func (p DomainPatch) IsEmpty() bool {
	return p.Name == nil && p.FullURL == nil && p.Host == nil && p.CategoryID == nil
}
