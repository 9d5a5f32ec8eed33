package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"studioshot/internal/domain"
)

// RepositoryPG implements Repository using PostgreSQL.
type RepositoryPG struct {
	pool *pgxpool.Pool
}

// NewRepositoryPG creates a history repository backed by PostgreSQL.
func NewRepositoryPG(pool *pgxpool.Pool) *RepositoryPG {
	return &RepositoryPG{pool: pool}
}

// EnsureSchema creates the history table when it does not exist yet.
func (r *RepositoryPG) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS generation_history (
    id              TEXT PRIMARY KEY,
    product_name    TEXT NOT NULL,
    scene_id        TEXT NOT NULL,
    scene_name      TEXT NOT NULL,
    prompt          TEXT NOT NULL,
    negative_prompt TEXT NOT NULL DEFAULT '',
    image_count     INT NOT NULL DEFAULT 0,
    duration_ms     BIGINT NOT NULL DEFAULT 0,
    thumbnails      TEXT[] NOT NULL DEFAULT '{}',
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS generation_history_created_at_idx ON generation_history (created_at DESC);
CREATE INDEX IF NOT EXISTS generation_history_scene_idx ON generation_history (scene_id);
`)
	return err
}

// Save inserts a record and trims storage beyond MaxItems.
func (r *RepositoryPG) Save(ctx context.Context, rec *Record) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	query := `
INSERT INTO generation_history (id, product_name, scene_id, scene_name, prompt, negative_prompt, image_count, duration_ms, thumbnails, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`
	if _, err := r.pool.Exec(ctx, query,
		rec.ID,
		rec.ProductName,
		rec.SceneID,
		rec.SceneName,
		rec.Prompt,
		rec.NegativePrompt,
		rec.ImageCount,
		rec.DurationMs,
		rec.Thumbnails,
		rec.CreatedAt,
	); err != nil {
		return err
	}

	_, err := r.pool.Exec(ctx, `
DELETE FROM generation_history
WHERE id NOT IN (
    SELECT id FROM generation_history ORDER BY created_at DESC LIMIT $1
);
`, MaxItems)
	return err
}

// List returns records newest first, narrowed by the filter.
func (r *RepositoryPG) List(ctx context.Context, f Filter) ([]Record, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.SceneID != "" {
		conds = append(conds, "scene_id = "+arg(f.SceneID))
	}
	if f.Query != "" {
		p := arg("%" + f.Query + "%")
		conds = append(conds, fmt.Sprintf("(product_name ILIKE %s OR scene_name ILIKE %s)", p, p))
	}
	if !f.From.IsZero() {
		conds = append(conds, "created_at >= "+arg(f.From))
	}
	if !f.To.IsZero() {
		conds = append(conds, "created_at <= "+arg(f.To))
	}

	query := `
SELECT id, product_name, scene_id, scene_name, prompt, negative_prompt, image_count, duration_ms, thumbnails, created_at
FROM generation_history
`
	if len(conds) > 0 {
		query += "WHERE " + strings.Join(conds, " AND ") + "\n"
	}
	query += "ORDER BY created_at DESC\n"
	if f.Limit > 0 {
		query += "LIMIT " + arg(f.Limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID,
			&rec.ProductName,
			&rec.SceneID,
			&rec.SceneName,
			&rec.Prompt,
			&rec.NegativePrompt,
			&rec.ImageCount,
			&rec.DurationMs,
			&rec.Thumbnails,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetByID fetches one record.
func (r *RepositoryPG) GetByID(ctx context.Context, id string) (*Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, product_name, scene_id, scene_name, prompt, negative_prompt, image_count, duration_ms, thumbnails, created_at
FROM generation_history
WHERE id = $1;
`, id)

	var rec Record
	if err := row.Scan(
		&rec.ID,
		&rec.ProductName,
		&rec.SceneID,
		&rec.SceneName,
		&rec.Prompt,
		&rec.NegativePrompt,
		&rec.ImageCount,
		&rec.DurationMs,
		&rec.Thumbnails,
		&rec.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// Delete removes one record.
func (r *RepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM generation_history WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Clear wipes all history.
func (r *RepositoryPG) Clear(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM generation_history;`)
	return err
}

// CleanupOlderThan removes records created before the cutoff.
func (r *RepositoryPG) CleanupOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM generation_history WHERE created_at < $1;`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Stats aggregates usage in SQL; daily usage covers the retention window.
func (r *RepositoryPG) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{SceneUsage: map[string]int{}, SuccessRate: 100}

	row := r.pool.QueryRow(ctx, `
SELECT COUNT(*) FILTER (WHERE image_count > 0),
       COALESCE(SUM(image_count), 0),
       COUNT(*),
       COALESCE(AVG(duration_ms) FILTER (WHERE image_count > 0), 0)::bigint,
       MAX(created_at) FILTER (WHERE image_count > 0)
FROM generation_history;
`)
	var attempts int
	var lastAt *time.Time
	if err := row.Scan(&stats.TotalGenerations, &stats.TotalImages, &attempts, &stats.AverageDurationMs, &lastAt); err != nil {
		return nil, err
	}
	stats.LastGeneratedAt = lastAt
	if attempts > 0 {
		stats.SuccessRate = int(float64(stats.TotalGenerations)/float64(attempts)*100 + 0.5)
	}

	rows, err := r.pool.Query(ctx, `
SELECT scene_id, COUNT(*)
FROM generation_history
WHERE image_count > 0
GROUP BY scene_id
ORDER BY COUNT(*) DESC, scene_id;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var scene string
		var count int
		if err := rows.Scan(&scene, &count); err != nil {
			return nil, err
		}
		stats.SceneUsage[scene] = count
		if stats.FavoriteScene == "" {
			stats.FavoriteScene = scene
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	daily, err := r.pool.Query(ctx, `
SELECT to_char(created_at, 'YYYY-MM-DD') AS day, COUNT(*)
FROM generation_history
WHERE image_count > 0 AND created_at >= NOW() - make_interval(days => $1)
GROUP BY day
ORDER BY day;
`, RetentionDays)
	if err != nil {
		return nil, err
	}
	defer daily.Close()
	for daily.Next() {
		var dc DailyCount
		if err := daily.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, err
		}
		stats.DailyUsage = append(stats.DailyUsage, dc)
	}
	return stats, daily.Err()
}
