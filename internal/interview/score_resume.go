package interview

import (
	"context"
	"strings"

	"github.com/jonathan/interview-prep/internal/ats"
	"github.com/jonathan/interview-prep/internal/llm"
	"github.com/jonathan/interview-prep/internal/prompts"
	"github.com/jonathan/interview-prep/internal/resumetext"
	"github.com/jonathan/interview-prep/internal/types"
)

// ScoreInput carries the inputs for ATS scoring. A resolved Resume is
// scored via the normalizer pipeline with silent truncation; free-form
// ResumeText is bounds-checked instead.
type ScoreInput struct {
	Resume     *types.Resume
	ResumeText string
	TargetRole string
}

// ScoreResume evaluates a resume against ATS screening heuristics and
// returns the validated, repaired result. Input bounds are enforced before
// any external call.
func (e *Engine) ScoreResume(ctx context.Context, in ScoreInput) (*ats.Result, error) {
	var resumeText string
	if in.Resume != nil {
		resumeText = resumetext.Truncate(resumetext.ToText(in.Resume), resumetext.ATSLimit)
		if strings.TrimSpace(resumeText) == "" {
			return nil, &ValidationError{Field: "resume", Message: "resume has no content to score"}
		}
	} else {
		if err := ats.ValidateInput(in.ResumeText); err != nil {
			return nil, err
		}
		resumeText = strings.TrimSpace(in.ResumeText)
	}

	messages := prompts.ATSScore(resumeText, in.TargetRole)
	raw, err := e.client.Complete(ctx, messages, llm.FormatJSON)
	if err != nil {
		return nil, err
	}

	return ats.RepairResult(raw)
}
