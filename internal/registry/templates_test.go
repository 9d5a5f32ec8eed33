package registry

import (
	"strings"
	"testing"
)

func TestTemplateList(t *testing.T) {
	list := TemplateList()
	if len(list) != 8 {
		t.Fatalf("len(templates) = %d, want 8", len(list))
	}
	seen := map[string]bool{}
	for _, tmpl := range list {
		if seen[tmpl.ID] {
			t.Fatalf("duplicate template id %q", tmpl.ID)
		}
		seen[tmpl.ID] = true
		if _, ok := SceneByID(tmpl.SceneID); !ok {
			t.Fatalf("template %q references unknown scene %q", tmpl.ID, tmpl.SceneID)
		}
		if !strings.Contains(tmpl.PromptTemplate, "{product}") {
			t.Fatalf("template %q missing {product} placeholder", tmpl.ID)
		}
	}
}

func TestTemplateByID(t *testing.T) {
	tmpl, ok := TemplateByID("ecommerce-main")
	if !ok {
		t.Fatalf("ecommerce-main not found")
	}
	if tmpl.SceneID != SceneStudioWhite {
		t.Fatalf("scene = %q, want %q", tmpl.SceneID, SceneStudioWhite)
	}
	if _, ok := TemplateByID("nope"); ok {
		t.Fatalf("unknown id resolved")
	}
}

func TestApplyTemplate(t *testing.T) {
	tmpl, _ := TemplateByID("ecommerce-main")
	applied := ApplyTemplate(tmpl, "陶瓷马克杯")
	if strings.Contains(applied, "{product}") {
		t.Fatalf("placeholder not substituted: %q", applied)
	}
	if !strings.Contains(applied, "陶瓷马克杯") {
		t.Fatalf("product name missing: %q", applied)
	}
}

func TestTemplatesByTagAndScene(t *testing.T) {
	if got := TemplatesByScene(SceneStudioWhite); len(got) == 0 {
		t.Fatalf("no templates for studio-white")
	}
	for _, tmpl := range TemplatesByTag("电商") {
		found := false
		for _, tag := range tmpl.Tags {
			if tag == "电商" {
				found = true
			}
		}
		if !found {
			t.Fatalf("template %q lacks tag", tmpl.ID)
		}
	}
}
