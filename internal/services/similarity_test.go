package services

import (
	"math"
	"testing"
)

const jobText = "Senior Go engineer building distributed backend systems with PostgreSQL and Kubernetes"

func newTestEngine(t *testing.T) *SimilarityEngine {
	t.Helper()
	engine, err := NewSimilarityEngine()
	if err != nil {
		t.Fatalf("failed to create similarity engine: %v", err)
	}
	return engine
}

func TestScoreAllIdenticalTextScoresOne(t *testing.T) {
	engine := newTestEngine(t)

	scores := engine.ScoreAll(jobText, []string{jobText})
	if len(scores) != 1 {
		t.Fatalf("expected 1 score, got %d", len(scores))
	}

	if math.Abs(scores[0]-1.0) > 1e-9 {
		t.Fatalf("expected similarity 1.0 for identical text, got %v", scores[0])
	}
}

func TestScoreAllDisjointVocabulariesScoreZero(t *testing.T) {
	engine := newTestEngine(t)

	resumes := []string{
		"pastry chef croissant baking sourdough patisserie",
		"violin orchestra concerto symphony rehearsal",
	}

	scores := engine.ScoreAll(jobText, resumes)
	for i, score := range scores {
		if score != 0 {
			t.Errorf("resume %d: expected 0 similarity, got %v", i, score)
		}
	}
}

func TestScoreAllEmptyResumeScoresZero(t *testing.T) {
	engine := newTestEngine(t)

	scores := engine.ScoreAll(jobText, []string{""})
	if scores[0] != 0 {
		t.Fatalf("expected 0 for empty resume, got %v", scores[0])
	}
}

func TestScoreAllStopWordsOnlyOverlapScoresZero(t *testing.T) {
	engine := newTestEngine(t)

	// Shares only stop words with the job text.
	scores := engine.ScoreAll("the and with of a building", []string{"the and with of a ballet"})
	if scores[0] != 0 {
		t.Fatalf("expected 0 when only stop words overlap, got %v", scores[0])
	}
}

func TestScoreAllZeroResumesReturnsEmpty(t *testing.T) {
	engine := newTestEngine(t)

	scores := engine.ScoreAll(jobText, nil)
	if len(scores) != 0 {
		t.Fatalf("expected empty result, got %d scores", len(scores))
	}
}

func TestScoreAllRelevanceOrdering(t *testing.T) {
	engine := newTestEngine(t)

	resumes := []string{
		"Go engineer with backend and Kubernetes experience building distributed systems",
		"Frontend designer working with Figma and CSS animations",
	}

	scores := engine.ScoreAll(jobText, resumes)
	if scores[0] <= scores[1] {
		t.Fatalf("expected closer resume to score higher: got %v vs %v", scores[0], scores[1])
	}
	for i, score := range scores {
		if score < 0 || score > 1 {
			t.Errorf("resume %d: score %v outside [0,1]", i, score)
		}
	}
}

func TestScoreAllDeterministic(t *testing.T) {
	engine := newTestEngine(t)

	resumes := []string{
		"Go engineer with Kubernetes and PostgreSQL experience",
		"Data analyst skilled in SQL and reporting dashboards",
		"Backend developer building distributed systems in Go",
	}

	first := engine.ScoreAll(jobText, resumes)
	second := engine.ScoreAll(jobText, resumes)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("resume %d: scores differ between runs: %v vs %v", i, first[i], second[i])
		}
	}
}
