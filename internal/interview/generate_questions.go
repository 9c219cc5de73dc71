package interview

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/interview-prep/internal/depth"
	"github.com/jonathan/interview-prep/internal/llm"
	"github.com/jonathan/interview-prep/internal/prompts"
	"github.com/jonathan/interview-prep/internal/resumetext"
	"github.com/jonathan/interview-prep/internal/types"
)

// QuestionsInput carries the inputs for question generation. Exactly one
// of Resume (stored, externally resolved) and ResumeText (uploaded) is
// expected.
type QuestionsInput struct {
	Resume     *types.Resume
	ResumeText string
	JobRole    string
}

// QuestionsResult is the outcome of question generation.
type QuestionsResult struct {
	Questions types.QuestionSet    `json:"questions"`
	Counts    types.QuestionCounts `json:"counts"`
	Score     int                  `json:"score"`
}

// GenerateQuestions produces interview questions sized to the resume's
// depth. Malformed model output and missing category keys become empty
// lists, and each category is truncated to the requested count in case the
// model over-produces.
func (e *Engine) GenerateQuestions(ctx context.Context, in QuestionsInput) (*QuestionsResult, error) {
	if strings.TrimSpace(in.JobRole) == "" {
		return nil, &ValidationError{Field: "jobRole", Message: "job role is required"}
	}

	var (
		resumeText string
		score      int
	)
	switch {
	case in.Resume != nil:
		resumeText = resumetext.Truncate(resumetext.ToText(in.Resume), resumetext.DefaultPromptLimit)
		score = depth.Score(in.Resume)
	case strings.TrimSpace(in.ResumeText) != "":
		resumeText = resumetext.Truncate(in.ResumeText, resumetext.DefaultPromptLimit)
		score = depth.ScoreFromText(resumeText)
	default:
		return nil, &ValidationError{Field: "resumeText", Message: "resume text is required"}
	}

	counts := depth.CountsForScore(score)
	messages := prompts.QuestionGeneration(resumeText, in.JobRole, counts)

	raw, err := e.client.Complete(ctx, messages, llm.FormatJSON)
	if err != nil {
		return nil, err
	}

	questions := parseQuestionPayload(raw)
	questions.Technical = clampList(questions.Technical, counts.Technical)
	questions.ProjectBased = clampList(questions.ProjectBased, counts.ProjectBased)
	questions.HR = clampList(questions.HR, counts.HR)

	return &QuestionsResult{
		Questions: questions,
		Counts:    counts,
		Score:     score,
	}, nil
}

// parseQuestionPayload decodes the model's question JSON. Any malformed
// payload or missing key degrades to empty category lists instead of
// failing the operation.
func parseQuestionPayload(raw string) types.QuestionSet {
	var payload struct {
		Technical    []string `json:"technical"`
		ProjectBased []string `json:"projectBased"`
		HR           []string `json:"hr"`
	}
	_ = json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &payload)

	set := types.QuestionSet{
		Technical:    payload.Technical,
		ProjectBased: payload.ProjectBased,
		HR:           payload.HR,
	}
	if set.Technical == nil {
		set.Technical = []string{}
	}
	if set.ProjectBased == nil {
		set.ProjectBased = []string{}
	}
	if set.HR == nil {
		set.HR = []string{}
	}
	return set
}

// clampList truncates list to at most n entries.
func clampList(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}
