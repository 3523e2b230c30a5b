package services

import (
	"strings"
	"testing"

	"alfredoptarigan/resume-ranker/internal/models"
)

func newTestExtractor() DocumentExtractor {
	return NewDocumentExtractor(NewPDFParserService(), NewDocxParserService())
}

func TestExtractPlainText(t *testing.T) {
	extractor := newTestExtractor()

	text, err := extractor.Extract(models.NewRawDocument("resume.txt", []byte("Go developer, 5 years")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Go developer, 5 years" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractPlainTextDropsInvalidUTF8(t *testing.T) {
	extractor := newTestExtractor()

	content := []byte{'g', 'o', 0xff, 0xfe, 'l', 'a', 'n', 'g'}
	text, err := extractor.Extract(models.NewRawDocument("resume.txt", content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "golang" {
		t.Fatalf("expected invalid bytes dropped, got %q", text)
	}
}

func TestExtractUnknownFormatYieldsEmptyText(t *testing.T) {
	extractor := newTestExtractor()

	text, err := extractor.Extract(models.NewRawDocument("resume.png", []byte{0x89, 0x50, 0x4e, 0x47}))
	if err != nil {
		t.Fatalf("unknown format must not error, got %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
}

func TestExtractMalformedPDFReturnsError(t *testing.T) {
	extractor := newTestExtractor()

	_, err := extractor.Extract(models.NewRawDocument("resume.pdf", []byte("not a pdf at all")))
	if err == nil {
		t.Fatal("expected error for malformed PDF")
	}
}

func TestExtractMalformedDOCXReturnsError(t *testing.T) {
	extractor := newTestExtractor()

	_, err := extractor.Extract(models.NewRawDocument("resume.docx", []byte("not a zip archive")))
	if err == nil {
		t.Fatal("expected error for malformed DOCX")
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"shorter than limit", "short", 10, "short"},
		{"exact limit", "abcd", 4, "abcd"},
		{"truncated", "abcdefgh", 4, "abcd"},
		{"multibyte boundary", "héllo wörld", 6, "héllo "},
		{"zero limit", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateRunes(tt.text, tt.limit); got != tt.want {
				t.Fatalf("TruncateRunes(%q, %d) = %q, want %q", tt.text, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncateRunesLongResume(t *testing.T) {
	text := strings.Repeat("a", 10000)

	got := TruncateRunes(text, 4000)
	if len(got) != 4000 {
		t.Fatalf("expected exactly 4000 characters, got %d", len(got))
	}
}
