package interview

import (
	"context"
	"encoding/json"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/interview-prep/internal/llm"
	"github.com/jonathan/interview-prep/internal/prompts"
	"github.com/jonathan/interview-prep/internal/resumetext"
	"github.com/jonathan/interview-prep/internal/types"
)

// answerConcurrency bounds how many completion calls run at once during
// batch answer generation.
const answerConcurrency = 3

// AnswersInput carries the inputs for batch answer generation.
type AnswersInput struct {
	Questions  []types.FlatQuestion
	JobRole    string
	Resume     *types.Resume
	ResumeText string
}

// AnsweredQuestion pairs a question with its generated answer, preserving
// input order and category tags.
type AnsweredQuestion struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GenerateAnswers produces a model answer for every question. Completions
// run concurrently with a small bound; a single failure fails the batch.
func (e *Engine) GenerateAnswers(ctx context.Context, in AnswersInput) ([]AnsweredQuestion, error) {
	if len(in.Questions) == 0 {
		return nil, &ValidationError{Field: "questions", Message: "questions are required"}
	}

	var resumeText string
	switch {
	case in.Resume != nil:
		resumeText = resumetext.Truncate(resumetext.ToText(in.Resume), resumetext.DefaultPromptLimit)
	case strings.TrimSpace(in.ResumeText) != "":
		resumeText = resumetext.Truncate(in.ResumeText, resumetext.DefaultPromptLimit)
	default:
		return nil, &ValidationError{Field: "resumeText", Message: "resume text is required"}
	}

	answered := make([]AnsweredQuestion, len(in.Questions))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(answerConcurrency)

	for i, question := range in.Questions {
		group.Go(func() error {
			messages := prompts.AnswerGeneration(resumeText, in.JobRole, question.Question)
			raw, err := e.client.Complete(groupCtx, messages, llm.FormatText)
			if err != nil {
				return err
			}
			answered[i] = AnsweredQuestion{
				Category: question.Category,
				Question: question.Question,
				Answer:   strings.TrimSpace(raw),
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return answered, nil
}

// FlattenQuestions normalizes a caller-shaped question list. It accepts the
// grouped {technical, projectBased, hr} object, a flat array of strings,
// or an array of {category, question} items. Entries with an empty
// question are dropped.
func FlattenQuestions(raw json.RawMessage) []types.FlatQuestion {
	if len(raw) == 0 {
		return nil
	}

	var flat []string
	if err := json.Unmarshal(raw, &flat); err == nil {
		out := make([]types.FlatQuestion, 0, len(flat))
		for _, q := range flat {
			if strings.TrimSpace(q) != "" {
				out = append(out, types.FlatQuestion{Question: q})
			}
		}
		return out
	}

	var tagged []types.FlatQuestion
	if err := json.Unmarshal(raw, &tagged); err == nil {
		out := make([]types.FlatQuestion, 0, len(tagged))
		for _, item := range tagged {
			if strings.TrimSpace(item.Question) != "" {
				out = append(out, item)
			}
		}
		return out
	}

	var grouped types.QuestionSet
	if err := json.Unmarshal(raw, &grouped); err == nil {
		out := make([]types.FlatQuestion, 0,
			len(grouped.Technical)+len(grouped.ProjectBased)+len(grouped.HR))
		appendCategory := func(category string, questions []string) {
			for _, q := range questions {
				if strings.TrimSpace(q) != "" {
					out = append(out, types.FlatQuestion{Category: category, Question: q})
				}
			}
		}
		appendCategory("technical", grouped.Technical)
		appendCategory("projectBased", grouped.ProjectBased)
		appendCategory("hr", grouped.HR)
		return out
	}

	return nil
}

// GroupAnswers regroups answered questions into the three known
// categories, preserving order within each. Answers with other category
// tags are ignored.
func GroupAnswers(answered []AnsweredQuestion) types.AnswerSet {
	grouped := types.AnswerSet{
		Technical:    []string{},
		ProjectBased: []string{},
		HR:           []string{},
	}
	for _, item := range answered {
		switch item.Category {
		case "technical":
			grouped.Technical = append(grouped.Technical, item.Answer)
		case "projectBased":
			grouped.ProjectBased = append(grouped.ProjectBased, item.Answer)
		case "hr":
			grouped.HR = append(grouped.HR, item.Answer)
		}
	}
	return grouped
}
