package services

import (
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/token/stop"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
)

// minTermLength drops single-character tokens before weighting.
const minTermLength = 2

// SimilarityEngine scores resumes against a job description in a
// TF-IDF vector space built fresh from the documents of a single call.
type SimilarityEngine struct {
	analyzer analysis.Analyzer
}

func NewSimilarityEngine() (*SimilarityEngine, error) {
	stopWords := analysis.NewTokenMap()
	if err := stopWords.LoadBytes(en.EnglishStopWords); err != nil {
		return nil, fmt.Errorf("failed to load english stop words: %w", err)
	}

	analyzer := &analysis.DefaultAnalyzer{
		Tokenizer: unicode.NewUnicodeTokenizer(),
		TokenFilters: []analysis.TokenFilter{
			lowercase.NewLowerCaseFilter(),
			stop.NewStopTokensFilter(stopWords),
		},
	}

	return &SimilarityEngine{analyzer: analyzer}, nil
}

// ScoreAll returns one cosine similarity per resume, aligned by index,
// each in [0,1]. The vocabulary covers the job text plus every resume;
// nothing is persisted between calls, so scores from different calls
// are not comparable.
func (e *SimilarityEngine) ScoreAll(jobText string, resumes []string) []float64 {
	scores := make([]float64, len(resumes))
	if len(resumes) == 0 {
		return scores
	}

	termCounts := make([]map[string]float64, 0, len(resumes)+1)
	termCounts = append(termCounts, e.countTerms(jobText))
	for _, resume := range resumes {
		termCounts = append(termCounts, e.countTerms(resume))
	}

	vocab, docFreq := buildVocabulary(termCounts)
	idf := inverseDocFreq(vocab, docFreq, len(termCounts))

	jobVector := weightedVector(termCounts[0], vocab, idf)
	for i := 1; i < len(termCounts); i++ {
		scores[i-1] = cosineSimilarity(jobVector, weightedVector(termCounts[i], vocab, idf))
	}

	return scores
}

func (e *SimilarityEngine) countTerms(text string) map[string]float64 {
	stream := e.analyzer.Analyze([]byte(text))

	counts := make(map[string]float64, len(stream))
	for _, token := range stream {
		if utf8.RuneCount(token.Term) < minTermLength {
			continue
		}
		counts[string(token.Term)]++
	}
	return counts
}

// buildVocabulary collects the sorted corpus vocabulary and the number
// of documents each term appears in. The sorted order keeps vector
// construction (and so floating-point accumulation) deterministic.
func buildVocabulary(termCounts []map[string]float64) ([]string, map[string]int) {
	docFreq := make(map[string]int)
	for _, counts := range termCounts {
		for term := range counts {
			docFreq[term]++
		}
	}

	vocab := make([]string, 0, len(docFreq))
	for term := range docFreq {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	return vocab, docFreq
}

// inverseDocFreq uses the smoothed formulation ln((1+n)/(1+df)) + 1,
// which never zeroes out corpus-wide terms entirely.
func inverseDocFreq(vocab []string, docFreq map[string]int, totalDocs int) []float64 {
	idf := make([]float64, len(vocab))
	for i, term := range vocab {
		idf[i] = math.Log((1+float64(totalDocs))/(1+float64(docFreq[term]))) + 1
	}
	return idf
}

func weightedVector(counts map[string]float64, vocab []string, idf []float64) []float64 {
	vector := make([]float64, len(vocab))
	for i, term := range vocab {
		if freq, ok := counts[term]; ok {
			vector[i] = freq * idf[i]
		}
	}
	return vector
}

// cosineSimilarity defines the similarity of any all-zero vector as 0.
func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
