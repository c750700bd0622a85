package topic

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/editorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const (
	deleteDailyTopicSQL = `DELETE FROM daily_topics WHERE id = $1`

	detachCategorySQL = `UPDATE daily_topics SET category_id = NULL WHERE category_id = $1`

	draftIDsSQL = `SELECT id FROM daily_topics WHERE is_draft ORDER BY id`

	// Only drafts transition; a topic that is already sent keeps its sent_at.
	markSentSQL = `UPDATE daily_topics SET is_draft = FALSE, sent_at = $2
WHERE id = ANY($1::bigint[]) AND is_draft`
)

func selectDailyTopics() sq.SelectBuilder {
	return postgres.Builder().
		Select(
			"t.id", "t.title", "t.url", "t.include_url", "t.observation", "t.category_id",
			"t.original_source", "t.original_url", "t.created_at", "t.is_draft", "t.sent_at",
			"c.name", "c.display_order", "c.is_fixed",
		).
		From("daily_topics t").
		LeftJoin("topic_categories c ON c.id = t.category_id")
}

// DailyRepo provides daily topic persistence. Reads hydrate the category.
type DailyRepo struct {
	pool *pgxpool.Pool
}

// NewDailyRepo creates a new daily topic repository.
func NewDailyRepo(pool *pgxpool.Pool) *DailyRepo {
	return &DailyRepo{pool: pool}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// List returns every topic, newest first.
func (r *DailyRepo) List(ctx context.Context) ([]domain.DailyTopic, error) {
	return r.query(ctx, selectDailyTopics().OrderBy("t.created_at DESC", "t.id DESC"))
}

// ListDrafts returns the draft topics, newest first.
func (r *DailyRepo) ListDrafts(ctx context.Context) ([]domain.DailyTopic, error) {
	return r.query(ctx, selectDailyTopics().Where("t.is_draft").OrderBy("t.created_at DESC", "t.id DESC"))
}

// GetByIDs returns the topics with the given ids ordered by id.
// Unknown ids are skipped.
func (r *DailyRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.DailyTopic, error) {
	if len(ids) == 0 {
		return []domain.DailyTopic{}, nil
	}
	return r.query(ctx, selectDailyTopics().Where(sq.Eq{"t.id": ids}).OrderBy("t.id"))
}

// GetByID returns a topic by primary key.
func (r *DailyRepo) GetByID(ctx context.Context, id int64) (*domain.DailyTopic, error) {
	query, args, err := selectDailyTopics().Where(sq.Eq{"t.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get daily topic: %w", err)
	}

	t, err := scanDaily(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "daily_topic", id)
	}
	return &t, nil
}

// DraftIDs returns the ids of every draft topic in ascending order.
func (r *DailyRepo) DraftIDs(ctx context.Context) ([]int64, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, draftIDsSQL)
	if err != nil {
		return nil, fmt.Errorf("list draft ids: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("collect draft ids: %w", err)
	}
	return ids, nil
}

func (r *DailyRepo) query(ctx context.Context, b sq.SelectBuilder) ([]domain.DailyTopic, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list daily topics: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list daily topics: %w", err)
	}
	defer rows.Close()

	topics := make([]domain.DailyTopic, 0)
	for rows.Next() {
		t, err := scanDaily(rows)
		if err != nil {
			return nil, fmt.Errorf("scan daily topic: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily topics: %w", err)
	}

	return topics, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a draft topic and returns it with its category.
func (r *DailyRepo) Create(ctx context.Context, t *domain.DailyTopic) (*domain.DailyTopic, error) {
	query, args, err := postgres.Builder().
		Insert("daily_topics").
		Columns("title", "url", "include_url", "observation", "category_id", "original_source", "original_url").
		Values(t.Title, t.URL, t.IncludeURL, t.Observation, t.CategoryID, t.OriginalSource, t.OriginalURL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create daily topic: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "daily_topic", 0)
	}

	return r.GetByID(ctx, id)
}

// CreateDrafts inserts one draft per title, all in the same category, and
// returns the new ids in insertion order.
func (r *DailyRepo) CreateDrafts(ctx context.Context, titles []string, categoryID *int64) ([]int64, error) {
	if len(titles) == 0 {
		return []int64{}, nil
	}

	b := postgres.Builder().Insert("daily_topics").Columns("title", "category_id").Suffix("RETURNING id")
	for _, title := range titles {
		b = b.Values(title, categoryID)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create drafts: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "daily_topic", 0)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, postgres.MapError(err, "daily_topic", 0)
	}
	return ids, nil
}

// Update applies a partial patch and returns the re-read topic.
func (r *DailyRepo) Update(ctx context.Context, id int64, p domain.DailyTopicPatch) (*domain.DailyTopic, error) {
	if p.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder().Update("daily_topics").Where(sq.Eq{"id": id})
	if p.Title != nil {
		b = b.Set("title", *p.Title)
	}
	if p.URL != nil {
		b = b.Set("url", *p.URL)
	}
	if p.IncludeURL != nil {
		b = b.Set("include_url", *p.IncludeURL)
	}
	if p.Observation != nil {
		b = b.Set("observation", *p.Observation)
	}
	if p.CategoryID != nil {
		b = b.Set("category_id", *p.CategoryID)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update daily topic: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "daily_topic", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.NotFound("daily_topic", id)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a topic.
func (r *DailyRepo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteDailyTopicSQL, id)
	if err != nil {
		return postgres.MapError(err, "daily_topic", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.NotFound("daily_topic", id)
	}
	return nil
}

// DetachCategory clears category_id on every topic in the category and
// returns the number of topics touched.
func (r *DailyRepo) DetachCategory(ctx context.Context, categoryID int64) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, detachCategorySQL, categoryID)
	if err != nil {
		return 0, fmt.Errorf("detach category %d: %w", categoryID, err)
	}
	return tag.RowsAffected(), nil
}

// MarkSent flips the listed drafts to sent at sentAt and returns how many
// rows changed. Ids that are not drafts are ignored.
func (r *DailyRepo) MarkSent(ctx context.Context, ids []int64, sentAt time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, markSentSQL, ids, sentAt)
	if err != nil {
		return 0, fmt.Errorf("mark topics sent: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanDaily(row pgx.Row) (domain.DailyTopic, error) {
	var (
		t          domain.DailyTopic
		categoryID pgtype.Int8
		sentAt     pgtype.Timestamptz
		catName    pgtype.Text
		catOrder   pgtype.Int4
		catFixed   pgtype.Bool
	)
	err := row.Scan(
		&t.ID, &t.Title, &t.URL, &t.IncludeURL, &t.Observation, &categoryID,
		&t.OriginalSource, &t.OriginalURL, &t.CreatedAt, &t.IsDraft, &sentAt,
		&catName, &catOrder, &catFixed,
	)
	if err != nil {
		return domain.DailyTopic{}, err
	}

	if categoryID.Valid {
		id := categoryID.Int64
		t.CategoryID = &id
		t.Category = &domain.TopicCategory{
			ID:           id,
			Name:         catName.String,
			DisplayOrder: int(catOrder.Int32),
			IsFixed:      catFixed.Bool,
		}
	}
	if sentAt.Valid {
		ts := sentAt.Time
		t.SentAt = &ts
	}
	return t, nil
}
