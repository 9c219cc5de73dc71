package interview

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/interview-prep/internal/followup"
	"github.com/jonathan/interview-prep/internal/llm"
	"github.com/jonathan/interview-prep/internal/prompts"
	"github.com/jonathan/interview-prep/internal/resumetext"
	"github.com/jonathan/interview-prep/internal/types"
)

// FollowUpInput carries the inputs for follow-up generation. The scope is
// (UserID, ResumeID) when a resolved Resume is present, otherwise
// (UserID, SessionID) with uploaded ResumeText.
type FollowUpInput struct {
	UserID     uuid.UUID
	Question   string
	JobRole    string
	Category   string
	Resume     *types.Resume
	ResumeID   string
	ResumeText string
	SessionID  string
}

// GenerateFollowUp produces one deeper follow-up question for a base
// question, charged against the scope's budget. Validation and the budget
// check both happen before any external call; the budget is recorded only
// after a non-empty follow-up came back.
func (e *Engine) GenerateFollowUp(ctx context.Context, in FollowUpInput) (string, error) {
	if strings.TrimSpace(in.Question) == "" {
		return "", &ValidationError{Field: "question", Message: "base question is required"}
	}
	if in.UserID == uuid.Nil {
		return "", &ValidationError{Field: "userId", Message: "user is required"}
	}

	var (
		scope      followup.Scope
		resumeText string
	)
	if in.Resume != nil {
		if strings.TrimSpace(in.ResumeID) == "" {
			return "", &ValidationError{Field: "resumeId", Message: "resume ID is required"}
		}
		scope = followup.ResumeScope(in.UserID, in.ResumeID)
		resumeText = resumetext.Truncate(resumetext.ToText(in.Resume), resumetext.DefaultPromptLimit)
	} else {
		if strings.TrimSpace(in.ResumeText) == "" {
			return "", &ValidationError{Field: "resumeText", Message: "resume text is required"}
		}
		if strings.TrimSpace(in.SessionID) == "" {
			return "", &ValidationError{Field: "sessionId", Message: "session ID is required"}
		}
		scope = followup.SessionScope(in.UserID, in.SessionID)
		resumeText = resumetext.Truncate(in.ResumeText, resumetext.DefaultPromptLimit)
	}

	if err := e.tracker.Check(ctx, scope); err != nil {
		return "", err
	}

	messages := prompts.FollowUp(resumeText, in.JobRole, in.Question)
	raw, err := e.client.Complete(ctx, messages, llm.FormatText)
	if err != nil {
		return "", err
	}

	followUp := strings.TrimSpace(raw)
	if followUp == "" {
		return "", &EmptyResponseError{Op: "follow-up"}
	}

	if err := e.tracker.Record(ctx, scope, in.Question); err != nil {
		return "", err
	}

	return followUp, nil
}
