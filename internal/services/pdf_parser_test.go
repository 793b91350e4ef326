package services

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// buildPDF assembles a one-page PDF whose page content stream is content.
func buildPDF(content string) []byte {
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func TestExtractTextFromBytes_OnePage(t *testing.T) {
	data := buildPDF("BT /F1 12 Tf 72 720 Td (Ada Lovelace) Tj T* (  Analyst  ) Tj ET")

	content, err := NewPDFParserService().ExtractTextFromBytes(data)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if content.PageCount != 1 {
		t.Fatalf("expected 1 page, got %d", content.PageCount)
	}
	if content.Text != "Ada Lovelace\nAnalyst" {
		t.Fatalf("unexpected text %q", content.Text)
	}
}

func TestExtractTextFromBytes_NoText(t *testing.T) {
	data := buildPDF("0 0 m 100 100 l S")

	_, err := NewPDFParserService().ExtractTextFromBytes(data)
	if err == nil {
		t.Fatalf("expected error for a PDF without text")
	}
	if !strings.Contains(err.Error(), "no text content") {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestExtractTextFromBytes_Corrupt(t *testing.T) {
	valid := buildPDF("BT /F1 12 Tf (Ada Lovelace) Tj ET")

	// xref entry opens a string that is never closed; the pdf package panics at EOF
	unterminated := "%PDF-1.4\nxref\n0 1\n(" + strings.Repeat("a", 128) + "\nstartxref\n9\n%%EOF\n"

	tests := map[string][]byte{
		"truncated":         valid[:len(valid)/2],
		"bad startxref":     bytes.Replace(valid, []byte("startxref\n"), []byte("startxref\n9"), 1),
		"unterminated xref": []byte(unterminated),
		"not a pdf":         []byte("definitely not a pdf"),
		"header only":       []byte("%PDF-1.4\n"),
	}

	parser := NewPDFParserService()
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("parser panicked: %v", r)
				}
			}()
			if _, err := parser.ExtractTextFromBytes(data); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestCleanText(t *testing.T) {
	in := "  Ada Lovelace  \n\n\n   Analyst\n \n"
	if got := CleanText(in); got != "Ada Lovelace\nAnalyst" {
		t.Fatalf("unexpected cleaned text %q", got)
	}
}
