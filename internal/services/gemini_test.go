package services

import (
	"context"
	"testing"
)

func TestBuildContents_Text(t *testing.T) {
	contents := buildContents(StructuredRequest{Prompt: "extract this"})
	if len(contents) != 1 || len(contents[0].Parts) != 1 {
		t.Fatalf("expected a single text part, got %+v", contents)
	}
	if contents[0].Parts[0].Text != "extract this" {
		t.Fatalf("unexpected text %q", contents[0].Parts[0].Text)
	}
}

func TestBuildContents_Document(t *testing.T) {
	contents := buildContents(StructuredRequest{
		Prompt:     "extract this",
		Document:   true,
		InlineData: []byte("%PDF-1.4"),
		MIMEType:   "application/pdf",
	})
	if len(contents) != 1 || len(contents[0].Parts) != 2 {
		t.Fatalf("expected inline data and prompt parts, got %+v", contents)
	}

	blob := contents[0].Parts[0].InlineData
	if blob == nil || blob.MIMEType != "application/pdf" || string(blob.Data) != "%PDF-1.4" {
		t.Fatalf("unexpected inline data %+v", blob)
	}
	if contents[0].Parts[1].Text != "extract this" {
		t.Fatalf("unexpected prompt part %+v", contents[0].Parts[1])
	}
	if contents[0].Role != "user" {
		t.Fatalf("expected user role, got %q", contents[0].Role)
	}
}

func TestBuildContents_TextIgnoresInlineData(t *testing.T) {
	contents := buildContents(StructuredRequest{
		Prompt:     "extract this",
		InlineData: []byte("stray"),
		MIMEType:   "application/pdf",
	})
	if len(contents) != 1 || len(contents[0].Parts) != 1 || contents[0].Parts[0].InlineData != nil {
		t.Fatalf("text request must carry only the prompt, got %+v", contents)
	}
}

func TestBuildContents_DocumentAlwaysInline(t *testing.T) {
	contents := buildContents(StructuredRequest{Prompt: "extract this", Document: true})
	if len(contents) != 1 || len(contents[0].Parts) != 2 || contents[0].Parts[0].InlineData == nil {
		t.Fatalf("document request must carry an inline part, got %+v", contents)
	}
}

func TestNewGeminiService_RequiresKey(t *testing.T) {
	if _, err := NewGeminiService(context.Background(), "", ""); err == nil {
		t.Fatalf("expected error for empty API key")
	}
}
