package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"go.uber.org/zap"

	"alfredoptarigan/resume-ranker/internal/config"
	"alfredoptarigan/resume-ranker/internal/models"
)

// ErrMissingInput is returned when the job description is empty or no
// resume documents were supplied. It is the only error surfacing from
// a pipeline run; later failures degrade to per-resume sentinels.
var ErrMissingInput = errors.New("job description and at least one resume are required")

// MatchPipeline runs one full ranking cycle per request: extract,
// score, rank, annotate. It holds no state between runs.
type MatchPipeline struct {
	extractor  DocumentExtractor
	similarity *SimilarityEngine
	ranker     *Ranker
	feedback   *FeedbackGenerator
	cfg        config.PipelineConfig
	logger     *zap.Logger
}

func NewMatchPipeline(
	extractor DocumentExtractor,
	similarity *SimilarityEngine,
	feedback *FeedbackGenerator,
	cfg config.PipelineConfig,
	logger *zap.Logger,
) *MatchPipeline {
	return &MatchPipeline{
		extractor:  extractor,
		similarity: similarity,
		ranker:     NewRanker(cfg.TopResults, cfg.FeedbackTop),
		feedback:   feedback,
		cfg:        cfg,
		logger:     logger,
	}
}

// Run returns min(TopResults, len(docs)) ranked results in descending
// score order. Feedback is requested strictly after ranking, in rank
// order, for the eligible window only.
func (p *MatchPipeline) Run(ctx context.Context, jobDescription string, docs []models.RawDocument) ([]models.RankedResult, error) {
	jobDescription = strings.TrimSpace(jobDescription)
	if jobDescription == "" || len(docs) == 0 {
		return nil, ErrMissingInput
	}

	scored := p.scoreAll(jobDescription, p.extractAll(docs))

	scores := make([]float64, len(scored))
	for i, candidate := range scored {
		scores[i] = candidate.Score
	}
	entries := p.ranker.Rank(scores)

	results := make([]models.RankedResult, 0, len(entries))
	for _, entry := range entries {
		candidate := scored[entry.Index]
		scorePercent := roundPercent(candidate.Score)

		feedback := NotEvaluatedFeedback
		if entry.FeedbackEligible {
			feedback = p.feedback.ForResume(ctx, jobDescription, candidate.Resume.Text, scorePercent).Text
		}

		results = append(results, models.RankedResult{
			Resume:     candidate.Resume.Filename,
			Score:      scorePercent,
			Rank:       entry.Rank,
			AIFeedback: feedback,
		})
	}

	p.logger.Info("pipeline run completed",
		zap.Int("resumes", len(docs)),
		zap.Int("results", len(results)),
	)

	return results, nil
}

// extractAll produces exactly one extracted resume per document. A
// document that cannot be read still yields an entry with empty text,
// so the batch never shrinks.
func (p *MatchPipeline) extractAll(docs []models.RawDocument) []models.ExtractedResume {
	resumes := make([]models.ExtractedResume, len(docs))
	for i, doc := range docs {
		text, err := p.extractor.Extract(doc)
		if err != nil {
			p.logger.Warn("text extraction failed",
				zap.String("filename", doc.Filename),
				zap.String("format", string(doc.Format)),
				zap.Error(err),
			)
			text = ""
		}

		resumes[i] = models.ExtractedResume{
			Filename: doc.Filename,
			Text:     TruncateRunes(text, p.cfg.MaxResumeChars),
		}
	}
	return resumes
}

// scoreAll pairs every extracted resume with its similarity score,
// aligned by submission index.
func (p *MatchPipeline) scoreAll(jobDescription string, resumes []models.ExtractedResume) []models.ScoredResume {
	texts := make([]string, len(resumes))
	for i, resume := range resumes {
		texts[i] = resume.Text
	}
	scores := p.similarity.ScoreAll(jobDescription, texts)

	scored := make([]models.ScoredResume, len(resumes))
	for i, resume := range resumes {
		scored[i] = models.ScoredResume{Resume: resume, Score: scores[i]}
	}
	return scored
}

// roundPercent converts a [0,1] fraction to a percentage with two
// decimal places. Rounding happens only here, at the display boundary.
func roundPercent(score float64) float64 {
	return math.Round(score*100*100) / 100
}
