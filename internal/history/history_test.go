package history

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"studioshot/internal/domain"
)

func record(id, product, scene string, images int, createdAt time.Time) *Record {
	return &Record{
		ID:          id,
		ProductName: product,
		SceneID:     scene,
		SceneName:   scene,
		Prompt:      "Create a professional product photograph of " + product,
		ImageCount:  images,
		DurationMs:  1200,
		CreatedAt:   createdAt,
	}
}

func TestSaveTrimsToMaxItems(t *testing.T) {
	repo := NewRepositoryMem()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < MaxItems+5; i++ {
		rec := record(fmt.Sprintf("rec-%02d", i), "Watch", "studio-white", 2, base.Add(time.Duration(i)*time.Minute))
		if err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	items, err := repo.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != MaxItems {
		t.Fatalf("len(items) = %d, want %d", len(items), MaxItems)
	}
	if items[0].ID != fmt.Sprintf("rec-%02d", MaxItems+4) {
		t.Fatalf("newest first, got %s", items[0].ID)
	}
}

func TestListFilters(t *testing.T) {
	repo := NewRepositoryMem()
	ctx := context.Background()
	now := time.Now()

	repo.Save(ctx, record("a", "SmartWatch X", "outdoor", 2, now.Add(-3*time.Hour)))
	repo.Save(ctx, record("b", "Ceramic Mug", "lifestyle", 1, now.Add(-2*time.Hour)))
	repo.Save(ctx, record("c", "Hiking Boots", "outdoor", 3, now.Add(-1*time.Hour)))

	byScene, _ := repo.List(ctx, Filter{SceneID: "outdoor"})
	if len(byScene) != 2 {
		t.Fatalf("scene filter matched %d, want 2", len(byScene))
	}

	byQuery, _ := repo.List(ctx, Filter{Query: "mug"})
	if len(byQuery) != 1 || byQuery[0].ID != "b" {
		t.Fatalf("query filter got %v", byQuery)
	}

	byRange, _ := repo.List(ctx, Filter{From: now.Add(-90 * time.Minute)})
	if len(byRange) != 1 || byRange[0].ID != "c" {
		t.Fatalf("range filter got %v", byRange)
	}

	limited, _ := repo.List(ctx, Filter{Limit: 2})
	if len(limited) != 2 {
		t.Fatalf("limit got %d", len(limited))
	}
}

func TestGetAndDelete(t *testing.T) {
	repo := NewRepositoryMem()
	ctx := context.Background()

	repo.Save(ctx, record("a", "Watch", "luxury", 2, time.Now()))

	got, err := repo.GetByID(ctx, "a")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.SceneID != "luxury" {
		t.Fatalf("scene = %q", got.SceneID)
	}

	if err := repo.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, "a"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "a"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("double delete: want ErrNotFound, got %v", err)
	}
}

func TestCleanupOlderThan(t *testing.T) {
	repo := NewRepositoryMem()
	ctx := context.Background()
	now := time.Now()

	repo.Save(ctx, record("old", "Watch", "outdoor", 2, now.AddDate(0, 0, -40)))
	repo.Save(ctx, record("new", "Watch", "outdoor", 2, now))

	removed, err := repo.CleanupOlderThan(ctx, now.AddDate(0, 0, -RetentionDays))
	if err != nil {
		t.Fatalf("CleanupOlderThan: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if _, err := repo.GetByID(ctx, "new"); err != nil {
		t.Fatalf("recent record gone: %v", err)
	}
}

func TestStatsAggregation(t *testing.T) {
	repo := NewRepositoryMem()
	ctx := context.Background()
	now := time.Now()

	repo.Save(ctx, record("a", "Watch", "outdoor", 2, now.Add(-3*time.Hour)))
	repo.Save(ctx, record("b", "Watch", "outdoor", 3, now.Add(-2*time.Hour)))
	repo.Save(ctx, record("c", "Mug", "lifestyle", 1, now.Add(-1*time.Hour)))
	repo.Save(ctx, record("d", "Mug", "lifestyle", 0, now)) // failed run

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalGenerations != 3 {
		t.Fatalf("TotalGenerations = %d, want 3", stats.TotalGenerations)
	}
	if stats.TotalImages != 6 {
		t.Fatalf("TotalImages = %d, want 6", stats.TotalImages)
	}
	if stats.SuccessRate != 75 {
		t.Fatalf("SuccessRate = %d, want 75", stats.SuccessRate)
	}
	if stats.FavoriteScene != "outdoor" {
		t.Fatalf("FavoriteScene = %q, want outdoor", stats.FavoriteScene)
	}
	if stats.SceneUsage["outdoor"] != 2 || stats.SceneUsage["lifestyle"] != 1 {
		t.Fatalf("SceneUsage = %v", stats.SceneUsage)
	}
	if stats.LastGeneratedAt == nil || !stats.LastGeneratedAt.Equal(now.Add(-1*time.Hour)) {
		t.Fatalf("LastGeneratedAt = %v", stats.LastGeneratedAt)
	}
	if len(stats.DailyUsage) == 0 {
		t.Fatalf("DailyUsage empty")
	}
}

func TestStatsEmpty(t *testing.T) {
	stats, err := NewRepositoryMem().Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.SuccessRate != 100 {
		t.Fatalf("empty SuccessRate = %d, want 100", stats.SuccessRate)
	}
	if stats.FavoriteScene != "" || stats.LastGeneratedAt != nil {
		t.Fatalf("empty stats populated: %+v", stats)
	}
}
