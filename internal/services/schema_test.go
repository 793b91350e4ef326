package services

import (
	"sort"
	"testing"
)

func TestPortfolioSchema_CategoryEnum(t *testing.T) {
	props := PortfolioSchema()["properties"].(map[string]any)
	skills := props["skills"].(map[string]any)
	item := skills["items"].(map[string]any)
	category := item["properties"].(map[string]any)["category"].(map[string]any)

	if category["type"] != "string" {
		t.Fatalf("expected category type string, got %v", category["type"])
	}

	enum, ok := category["enum"].([]string)
	if !ok {
		t.Fatalf("expected category enum []string, got %T", category["enum"])
	}

	got := append([]string(nil), enum...)
	sort.Strings(got)
	want := []string{"Backend", "Design", "DevOps", "Frontend", "Other", "Tools"}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected categories %v, got %v", want, got)
		}
	}
}

func TestPortfolioSchema_Required(t *testing.T) {
	schema := PortfolioSchema()
	required := schema["required"].([]string)

	want := map[string]bool{
		"fullName": true, "tagline": true, "about": true,
		"experience": true, "skills": true, "projects": true, "education": true,
	}
	if len(required) != len(want) {
		t.Fatalf("unexpected required fields: %v", required)
	}
	for _, f := range required {
		if !want[f] {
			t.Fatalf("unexpected required field %q", f)
		}
	}

	props := schema["properties"].(map[string]any)
	for _, optional := range []string{"email", "location"} {
		if _, ok := props[optional]; !ok {
			t.Fatalf("expected optional property %q", optional)
		}
	}
}

func TestPortfolioSchema_ItemRequired(t *testing.T) {
	props := PortfolioSchema()["properties"].(map[string]any)

	tests := map[string][]string{
		"experience": {"company", "role", "duration", "description"},
		"skills":     {"name", "level", "category"},
		"projects":   {"title", "description", "techStack"},
		"education":  {"institution", "degree", "year"},
	}

	for field, want := range tests {
		item := props[field].(map[string]any)["items"].(map[string]any)
		got := item["required"].([]string)
		if len(got) != len(want) {
			t.Fatalf("%s: expected required %v, got %v", field, want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s: expected required %v, got %v", field, want, got)
			}
		}
	}
}

func TestPortfolioSchema_Hints(t *testing.T) {
	props := PortfolioSchema()["properties"].(map[string]any)
	tagline := props["tagline"].(map[string]any)
	if tagline["description"] == nil {
		t.Fatalf("expected tagline hint")
	}

	level := props["skills"].(map[string]any)["items"].(map[string]any)["properties"].(map[string]any)["level"].(map[string]any)
	if level["type"] != "number" || level["description"] == nil {
		t.Fatalf("unexpected level property: %v", level)
	}
}
