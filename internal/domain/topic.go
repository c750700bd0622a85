package domain

import "time"

// CommonCategoryName is the fixed category that receives applied auto topics.
const CommonCategoryName = "COMUNES"

// MaxTopicTitleLen is the maximum title length for daily and auto topics.
const MaxTopicTitleLen = 200

// TopicCategory groups daily topics in the digest.
// Fixed categories are seeded at bootstrap and cannot be deleted.
type TopicCategory struct {
	ID           int64
	Name         string
	DisplayOrder int
	IsFixed      bool
}

// AutoTopic is a reusable title template expanded into draft daily topics.
type AutoTopic struct {
	ID           int64
	Title        string
	IsActive     bool
	DisplayOrder int
}

// DailyTopic is an editorial item. It starts as a draft and becomes sent
// exactly once, when a digest containing it is delivered.
type DailyTopic struct {
	ID             int64
	Title          string
	URL            *string
	IncludeURL     bool
	Observation    *string
	CategoryID     *int64
	Category       *TopicCategory
	OriginalSource *string
	OriginalURL    *string
	CreatedAt      time.Time
	IsDraft        bool
	SentAt         *time.Time
}

// AutoTopicPatch lists the auto topic columns to change.
type AutoTopicPatch struct {
	Title        *string
	IsActive     *bool
	DisplayOrder *int
}

// IsEmpty reports whether the patch changes nothing.
func (p AutoTopicPatch) IsEmpty() bool {
	return p.Title == nil && p.IsActive == nil && p.DisplayOrder == nil
}

// DailyTopicPatch lists the daily topic columns to change. A nil CategoryID
// keeps the current category; topics are detached only when their category
// is deleted.
type DailyTopicPatch struct {
	Title       *string
	URL         *string
	IncludeURL  *bool
	Observation *string
	CategoryID  *int64
}

// IsEmpty reports whether the patch changes nothing.
func (p DailyTopicPatch) IsEmpty() bool {
	return p.Title == nil && p.URL == nil && p.IncludeURL == nil && p.Observation == nil && p.CategoryID == nil
}
