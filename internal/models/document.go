package models

import (
	"path/filepath"
	"strings"
)

type DocumentFormat string

const (
	FormatPDF     DocumentFormat = "pdf"
	FormatDOCX    DocumentFormat = "docx"
	FormatText    DocumentFormat = "text"
	FormatUnknown DocumentFormat = "unknown"
)

// FormatFromFilename maps a filename suffix to a document format.
// Anything outside the supported set is FormatUnknown, not an error.
func FormatFromFilename(filename string) DocumentFormat {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx", ".doc":
		return FormatDOCX
	case ".txt":
		return FormatText
	default:
		return FormatUnknown
	}
}

// RawDocument is one uploaded resume before text extraction.
type RawDocument struct {
	Filename string
	Content  []byte
	Format   DocumentFormat
}

func NewRawDocument(filename string, content []byte) RawDocument {
	return RawDocument{
		Filename: filename,
		Content:  content,
		Format:   FormatFromFilename(filename),
	}
}

// ExtractedResume is the plain-text form of a resume, already capped
// to the pipeline's character budget.
type ExtractedResume struct {
	Filename string
	Text     string
}
