package services

import "fmt"

// EvaluatorRole frames the model as the recruiting evaluator for
// every feedback request.
const EvaluatorRole = "You are a professional ATS resume evaluator."

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeFeedbackPrompt creates the bounded critique request: at
// most 6 bullet points, each 15 words or fewer. The shape is requested
// from the model, not enforced on the returned text.
func (pb *PromptBuilder) BuildResumeFeedbackPrompt(jobDescription, resumeText string, scorePercent float64) string {
	return fmt.Sprintf(`You are an AI resume screening assistant used by recruiters.

Job Description:
%s

Resume:
%s

Similarity Score: %.2f%%

STRICT INSTRUCTIONS:
- Respond in MAX 6 bullet points
- Each bullet <= 15 words
- Professional, recruiter-style tone
- No explanations, no paragraphs
- No repetition

FORMAT EXACTLY LIKE THIS:
• Overall: <short assessment>
• Strengths: <key strengths>
• Gaps: <key missing skills>
• Recommendation: <1-line improvement>`,
		jobDescription, resumeText, scorePercent)
}
