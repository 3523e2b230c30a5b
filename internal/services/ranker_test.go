package services

import "testing"

func TestRankOrdersDescendingAndTruncates(t *testing.T) {
	ranker := NewRanker(5, 3)

	scores := []float64{0.10, 0.90, 0.30, 0.70, 0.50, 0.20, 0.80}
	entries := ranker.Rank(scores)

	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(entries))
	}

	wantIndices := []int{1, 6, 3, 4, 2}
	for rank, entry := range entries {
		if entry.Rank != rank {
			t.Errorf("entry %d: rank = %d, want %d", rank, entry.Rank, rank)
		}
		if entry.Index != wantIndices[rank] {
			t.Errorf("rank %d: index = %d, want %d", rank, entry.Index, wantIndices[rank])
		}
		if rank > 0 && entries[rank-1].Score < entry.Score {
			t.Errorf("rank %d: score %v exceeds previous %v", rank, entry.Score, entries[rank-1].Score)
		}
	}
}

func TestRankFewerThanTopResults(t *testing.T) {
	ranker := NewRanker(5, 3)

	entries := ranker.Rank([]float64{0.2, 0.4})
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Index != 1 || entries[1].Index != 0 {
		t.Fatalf("unexpected order: %+v", entries)
	}
}

func TestRankStableTieBreakByInputOrder(t *testing.T) {
	ranker := NewRanker(5, 3)

	entries := ranker.Rank([]float64{0.5, 0.5, 0.5, 0.5})
	for rank, entry := range entries {
		if entry.Index != rank {
			t.Errorf("rank %d: tie broken out of input order, got index %d", rank, entry.Index)
		}
	}
}

func TestRankFeedbackEligibleWindow(t *testing.T) {
	ranker := NewRanker(5, 3)

	entries := ranker.Rank([]float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6})
	for _, entry := range entries {
		want := entry.Rank < 3
		if entry.FeedbackEligible != want {
			t.Errorf("rank %d: FeedbackEligible = %v, want %v", entry.Rank, entry.FeedbackEligible, want)
		}
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	ranker := NewRanker(5, 3)

	scores := []float64{0.3, 0.1, 0.2}
	ranker.Rank(scores)

	if scores[0] != 0.3 || scores[1] != 0.1 || scores[2] != 0.2 {
		t.Fatalf("input slice was mutated: %v", scores)
	}
}
