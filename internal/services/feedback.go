package services

import (
	"context"

	"go.uber.org/zap"
)

const (
	// FallbackFeedback replaces the critique whenever the external
	// call fails, regardless of the failure kind.
	FallbackFeedback = "AI feedback unavailable."

	// NotEvaluatedFeedback marks ranked entries outside the
	// feedback-eligible window.
	NotEvaluatedFeedback = "AI feedback available for top 3 resumes only."
)

// FeedbackResult carries either the critique text or the failure that
// produced the fallback. The error never propagates past the
// generator; it is kept for logging only.
type FeedbackResult struct {
	Text string
	Err  error
}

// FeedbackGenerator requests a natural-language critique for one
// resume at a time. Failures are contained per resume: a timeout or
// API error for one resume never affects its siblings.
type FeedbackGenerator struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
	logger        *zap.Logger
}

func NewFeedbackGenerator(generator TextGenerator, logger *zap.Logger) *FeedbackGenerator {
	return &FeedbackGenerator{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		logger:        logger,
	}
}

// ForResume makes a single attempt against the external capability.
// No retry, no caching: identical resumes get independent calls.
func (g *FeedbackGenerator) ForResume(ctx context.Context, jobDescription, resumeText string, scorePercent float64) FeedbackResult {
	prompt := g.promptBuilder.BuildResumeFeedbackPrompt(jobDescription, resumeText, scorePercent)

	text, err := g.generator.GenerateText(ctx, EvaluatorRole, prompt)
	if err != nil {
		g.logger.Warn("ai feedback unavailable",
			zap.Float64("score_percent", scorePercent),
			zap.Error(err),
		)
		return FeedbackResult{Text: FallbackFeedback, Err: err}
	}

	return FeedbackResult{Text: text}
}
