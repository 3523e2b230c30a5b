package models

// ScoredResume pairs an extracted resume with its cosine similarity
// against the job description, as a fraction in [0,1].
type ScoredResume struct {
	Resume ExtractedResume
	Score  float64
}

// RankedResult is one entry of the final ranking. Score is a percentage
// rounded to two decimals; rank 0 holds the highest score.
type RankedResult struct {
	Resume     string  `json:"resume"`
	Score      float64 `json:"score"`
	Rank       int     `json:"rank"`
	AIFeedback string  `json:"ai_feedback"`
}

type MatchResponse struct {
	Message string         `json:"message"`
	Results []RankedResult `json:"results"`
}
