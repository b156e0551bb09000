package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/alumnet/backend/internal/app/models"
	"github.com/alumnet/backend/internal/db"
	"github.com/alumnet/backend/internal/pkg/apperrors"
	"github.com/alumnet/backend/internal/pkg/logger"
)

var threadColumns = []string{"id", "title", "content", "author_id", "date", "replies"}

// ForumRepository handles forum thread database operations
type ForumRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewForumRepository creates a new ForumRepository
func NewForumRepository(conn db.DBTX) *ForumRepository {
	return &ForumRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// scanThread reads threadColumns; replies arrive as raw JSONB
func scanThread(row pgx.Row) (*models.ForumThread, error) {
	var t models.ForumThread
	var replies []byte
	if err := row.Scan(&t.ID, &t.Title, &t.Content, &t.AuthorID, &t.Date, &replies); err != nil {
		return nil, err
	}
	t.Replies = make([]models.Reply, 0)
	if len(replies) > 0 {
		if err := json.Unmarshal(replies, &t.Replies); err != nil {
			return nil, fmt.Errorf("error decoding replies: %w", err)
		}
	}
	return &t, nil
}

// Create inserts a thread with no replies
func (r *ForumRepository) Create(ctx context.Context, thread *models.ForumThread) error {
	thread.ID = newID()
	thread.Date = nowUTC()
	thread.Replies = make([]models.Reply, 0)

	sql, args, err := r.sb.Insert("forum_threads").
		Columns("id", "title", "content", "author_id", "date").
		Values(thread.ID, thread.Title, thread.Content, thread.AuthorID, thread.Date).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create thread query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create thread query")
		return fmt.Errorf("error creating thread: %w", err)
	}
	return r.resolveNames(ctx, []*models.ForumThread{thread})
}

// List returns all threads newest first with author and reply-author names
func (r *ForumRepository) List(ctx context.Context) ([]*models.ForumThread, error) {
	sql, args, err := r.sb.Select(threadColumns...).
		From("forum_threads").
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list threads query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing threads: %w", err)
	}
	defer rows.Close()

	threads := make([]*models.ForumThread, 0)
	for rows.Next() {
		t, err := scanThread(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning thread: %w", err)
		}
		threads = append(threads, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating threads: %w", err)
	}
	rows.Close()

	if err := r.resolveNames(ctx, threads); err != nil {
		return nil, err
	}
	return threads, nil
}

// GetByID retrieves a single thread
func (r *ForumRepository) GetByID(ctx context.Context, id string) (*models.ForumThread, error) {
	sql, args, err := r.sb.Select(threadColumns...).
		From("forum_threads").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get thread query: %w", err)
	}

	thread, err := scanThread(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrThreadNotFound
		}
		return nil, fmt.Errorf("error getting thread: %w", err)
	}

	if err := r.resolveNames(ctx, []*models.ForumThread{thread}); err != nil {
		return nil, err
	}
	return thread, nil
}

// AppendReply adds reply to the end of the thread's replies in a single
// statement, so concurrent replies are never lost.
func (r *ForumRepository) AppendReply(ctx context.Context, threadID string, reply models.Reply) (*models.ForumThread, error) {
	if reply.Date.IsZero() {
		reply.Date = nowUTC()
	}
	reply.AuthorName = ""

	payload, err := json.Marshal(reply)
	if err != nil {
		return nil, fmt.Errorf("failed to encode reply: %w", err)
	}

	sql, args, err := r.sb.Update("forum_threads").
		Set("replies", squirrel.Expr("replies || jsonb_build_array(?::jsonb)", string(payload))).
		Where(squirrel.Eq{"id": threadID}).
		Suffix("RETURNING id, title, content, author_id, date, replies").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build append reply query: %w", err)
	}

	thread, err := scanThread(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrThreadNotFound
		}
		logger.Error().Err(err).Str("threadID", threadID).Msg("Error executing append reply query")
		return nil, fmt.Errorf("error appending reply: %w", err)
	}

	if err := r.resolveNames(ctx, []*models.ForumThread{thread}); err != nil {
		return nil, err
	}
	return thread, nil
}

// resolveNames fills AuthorName on threads and replies with one lookup
func (r *ForumRepository) resolveNames(ctx context.Context, threads []*models.ForumThread) error {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	add := func(id string) {
		if _, ok := seen[id]; ok || id == "" {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, t := range threads {
		add(t.AuthorID)
		for _, reply := range t.Replies {
			add(reply.Author)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	sql, args, err := r.sb.Select("id", "name").
		From("users").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build author names query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error loading author names: %w", err)
	}
	defer rows.Close()

	names := make(map[string]string, len(ids))
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return fmt.Errorf("error scanning author name: %w", err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating author names: %w", err)
	}

	for _, t := range threads {
		t.AuthorName = names[t.AuthorID]
		for i := range t.Replies {
			t.Replies[i].AuthorName = names[t.Replies[i].Author]
		}
	}
	return nil
}
