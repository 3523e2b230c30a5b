package services

import "sort"

// RankedEntry points back into the submitted resume slice. Rank 0 is
// the best match; FeedbackEligible marks the entries the feedback
// generator will be invoked for.
type RankedEntry struct {
	Index            int
	Score            float64
	Rank             int
	FeedbackEligible bool
}

type Ranker struct {
	topResults  int
	feedbackTop int
}

func NewRanker(topResults, feedbackTop int) *Ranker {
	return &Ranker{
		topResults:  topResults,
		feedbackTop: feedbackTop,
	}
}

// Rank orders scores descending and keeps at most topResults entries.
// The input slice is not modified. Ties keep original submission order.
func (r *Ranker) Rank(scores []float64) []RankedEntry {
	entries := make([]RankedEntry, len(scores))
	for i, score := range scores {
		entries[i] = RankedEntry{Index: i, Score: score}
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Score > entries[b].Score
	})

	if len(entries) > r.topResults {
		entries = entries[:r.topResults]
	}

	for rank := range entries {
		entries[rank].Rank = rank
		entries[rank].FeedbackEligible = rank < r.feedbackTop
	}

	return entries
}
