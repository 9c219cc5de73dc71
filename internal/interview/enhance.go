package interview

import (
	"context"
	"strings"

	"github.com/jonathan/interview-prep/internal/llm"
	"github.com/jonathan/interview-prep/internal/prompts"
)

// EnhanceSummary rewrites a professional summary into 1-2 compelling,
// ATS-friendly sentences.
func (e *Engine) EnhanceSummary(ctx context.Context, userContent string) (string, error) {
	return e.enhance(ctx, "summary", userContent, prompts.EnhanceSummary)
}

// EnhanceDescription rewrites a job description into 1-2 sentences built
// around action verbs and quantifiable results.
func (e *Engine) EnhanceDescription(ctx context.Context, userContent string) (string, error) {
	return e.enhance(ctx, "description", userContent, prompts.EnhanceDescription)
}

func (e *Engine) enhance(ctx context.Context, op, userContent string, build func(string) []llm.Message) (string, error) {
	if strings.TrimSpace(userContent) == "" {
		return "", &ValidationError{Field: "userContent", Message: "content is required"}
	}

	raw, err := e.client.Complete(ctx, build(userContent), llm.FormatText)
	if err != nil {
		return "", err
	}

	enhanced := strings.TrimSpace(raw)
	if enhanced == "" {
		return "", &EmptyResponseError{Op: op}
	}
	return enhanced, nil
}
