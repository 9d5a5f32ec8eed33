package history

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"studioshot/internal/domain"
)

// RepositoryMem is an in-memory Repository. It backs the service when no
// DATABASE_URL is configured, so the pipeline works out of the box.
type RepositoryMem struct {
	mu      sync.RWMutex
	records []Record
}

func NewRepositoryMem() *RepositoryMem {
	return &RepositoryMem{}
}

func (r *RepositoryMem) Save(_ context.Context, rec *Record) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append([]Record{*rec}, r.records...)
	if len(r.records) > MaxItems {
		r.records = r.records[:MaxItems]
	}
	return nil
}

func (r *RepositoryMem) List(_ context.Context, f Filter) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Record
	query := strings.ToLower(f.Query)
	for _, rec := range r.records {
		if f.SceneID != "" && rec.SceneID != f.SceneID {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(rec.ProductName), query) &&
			!strings.Contains(strings.ToLower(rec.SceneName), query) {
			continue
		}
		if !f.From.IsZero() && rec.CreatedAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && rec.CreatedAt.After(f.To) {
			continue
		}
		out = append(out, rec)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

func (r *RepositoryMem) GetByID(_ context.Context, id string) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.ID == id {
			out := rec
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *RepositoryMem) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *RepositoryMem) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
	return nil
}

func (r *RepositoryMem) CleanupOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.records[:0]
	var removed int64
	for _, rec := range r.records {
		if rec.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	r.records = kept
	return removed, nil
}

func (r *RepositoryMem) Stats(_ context.Context) (*Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &Stats{SceneUsage: map[string]int{}, SuccessRate: 100}

	var totalDuration int64
	daily := map[string]int{}
	cutoff := time.Now().AddDate(0, 0, -RetentionDays)

	for _, rec := range r.records {
		if !rec.Succeeded() {
			continue
		}
		stats.TotalGenerations++
		stats.TotalImages += rec.ImageCount
		totalDuration += rec.DurationMs
		stats.SceneUsage[rec.SceneID]++
		if stats.LastGeneratedAt == nil || rec.CreatedAt.After(*stats.LastGeneratedAt) {
			at := rec.CreatedAt
			stats.LastGeneratedAt = &at
		}
		if rec.CreatedAt.After(cutoff) {
			daily[rec.CreatedAt.Format("2006-01-02")]++
		}
	}

	if n := len(r.records); n > 0 {
		stats.SuccessRate = int(float64(stats.TotalGenerations)/float64(n)*100 + 0.5)
	}
	if stats.TotalGenerations > 0 {
		stats.AverageDurationMs = totalDuration / int64(stats.TotalGenerations)
	}

	var best int
	for scene, count := range stats.SceneUsage {
		if count > best || (count == best && (stats.FavoriteScene == "" || scene < stats.FavoriteScene)) {
			best = count
			stats.FavoriteScene = scene
		}
	}

	for day, count := range daily {
		stats.DailyUsage = append(stats.DailyUsage, DailyCount{Date: day, Count: count})
	}
	sort.Slice(stats.DailyUsage, func(i, j int) bool {
		return stats.DailyUsage[i].Date < stats.DailyUsage[j].Date
	})
	return stats, nil
}
