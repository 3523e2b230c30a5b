package services

import (
	"strings"
	"unicode/utf8"

	"alfredoptarigan/resume-ranker/internal/models"
)

// DocumentExtractor converts a raw uploaded document into plain text.
type DocumentExtractor interface {
	Extract(doc models.RawDocument) (string, error)
}

type documentExtractor struct {
	pdfParser  PDFParserService
	docxParser DocxParserService
}

func NewDocumentExtractor(pdfParser PDFParserService, docxParser DocxParserService) DocumentExtractor {
	return &documentExtractor{
		pdfParser:  pdfParser,
		docxParser: docxParser,
	}
}

// Extract dispatches on the declared document format. Unknown formats
// yield empty text and no error; downstream treats such a resume as a
// valid zero-similarity candidate.
func (e *documentExtractor) Extract(doc models.RawDocument) (string, error) {
	switch doc.Format {
	case models.FormatPDF:
		return e.pdfParser.ExtractText(doc.Content)
	case models.FormatDOCX:
		return e.docxParser.ExtractText(doc.Content)
	case models.FormatText:
		return decodePlainText(doc.Content), nil
	default:
		return "", nil
	}
}

// decodePlainText drops invalid UTF-8 sequences instead of failing, so
// plain-text ingestion never errors on odd encodings.
func decodePlainText(content []byte) string {
	if utf8.Valid(content) {
		return string(content)
	}
	return strings.ToValidUTF8(string(content), "")
}

// TruncateRunes caps text at limit characters. The cut lands on a
// character boundary but makes no attempt to preserve words.
func TruncateRunes(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
