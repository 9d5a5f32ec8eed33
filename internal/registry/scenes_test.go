package registry

import "testing"

func TestSceneByID(t *testing.T) {
	s, ok := SceneByID("studio-white")
	if !ok {
		t.Fatal("studio-white not found")
	}
	if s.Name != "纯白棚拍" {
		t.Fatalf("Name = %q, want %q", s.Name, "纯白棚拍")
	}
	if !s.HasDetailedLighting || !s.HasDetailedComposition {
		t.Fatal("studio-white should author both lighting and composition")
	}

	if _, ok := SceneByID("underwater"); ok {
		t.Fatal("unknown scene id should not resolve")
	}
}

func TestSceneListOrderStable(t *testing.T) {
	list := SceneList()
	if len(list) != 6 {
		t.Fatalf("len = %d, want 6", len(list))
	}
	if list[0].ID != "studio-white" {
		t.Fatalf("first scene = %q, want studio-white", list[0].ID)
	}

	// mutating the returned slice must not leak into the registry
	list[0].ID = "mutated"
	if again := SceneList(); again[0].ID != "studio-white" {
		t.Fatal("SceneList leaked internal state")
	}
}

func TestScenesByTag(t *testing.T) {
	got := ScenesByTag("户外")
	if len(got) != 1 || got[0].ID != "outdoor" {
		t.Fatalf("ScenesByTag(户外) = %v", got)
	}
	if got := ScenesByTag("no-such-tag"); len(got) != 0 {
		t.Fatalf("expected empty result, got %d scenes", len(got))
	}
}
