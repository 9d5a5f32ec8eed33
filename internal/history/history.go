package history

import (
	"context"
	"time"
)

const (
	// MaxItems caps stored history; older records are trimmed on save.
	MaxItems = 50

	// RetentionDays is how long records live before cleanup removes them.
	RetentionDays = 30
)

// Record is one finished generation run. Failed runs are stored with
// ImageCount 0 so the success rate reflects real attempts.
type Record struct {
	ID             string    `json:"id"`
	ProductName    string    `json:"product_name"`
	SceneID        string    `json:"scene_id"`
	SceneName      string    `json:"scene_name"`
	Prompt         string    `json:"prompt"`
	NegativePrompt string    `json:"negative_prompt"`
	ImageCount     int       `json:"image_count"`
	DurationMs     int64     `json:"duration_ms"`
	Thumbnails     []string  `json:"thumbnails"`
	CreatedAt      time.Time `json:"created_at"`
}

// Succeeded reports whether the run produced any images.
func (r Record) Succeeded() bool { return r.ImageCount > 0 }

// Filter narrows a history listing. Zero values mean "no constraint".
type Filter struct {
	SceneID string
	Query   string
	From    time.Time
	To      time.Time
	Limit   int
}

// DailyCount is one day's generation count, date formatted YYYY-MM-DD.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Stats aggregates usage across all stored records.
type Stats struct {
	TotalGenerations  int            `json:"total_generations"`
	TotalImages       int            `json:"total_images"`
	SuccessRate       int            `json:"success_rate"`
	AverageDurationMs int64          `json:"average_duration_ms"`
	FavoriteScene     string         `json:"favorite_scene"`
	SceneUsage        map[string]int `json:"scene_usage"`
	DailyUsage        []DailyCount   `json:"daily_usage"`
	LastGeneratedAt   *time.Time     `json:"last_generated_at"`
}

// Repository persists generation records and serves aggregates.
type Repository interface {
	Save(ctx context.Context, rec *Record) error
	List(ctx context.Context, f Filter) ([]Record, error)
	GetByID(ctx context.Context, id string) (*Record, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	CleanupOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	Stats(ctx context.Context) (*Stats, error)
}
