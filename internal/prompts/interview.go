package prompts

import (
	"strconv"
	"strings"

	"github.com/jonathan/interview-prep/internal/llm"
	"github.com/jonathan/interview-prep/internal/types"
)

// roleLine renders the target-role line embedded in user prompts. An absent
// job role becomes an explicit sentinel rather than an empty line.
func roleLine(jobRole string) string {
	if strings.TrimSpace(jobRole) == "" {
		return "Target role: not provided"
	}
	return "Target role: " + jobRole
}

// QuestionGeneration builds the message sequence for interview question
// generation. The model is instructed to return strict JSON with the three
// category keys and exactly the requested counts.
func QuestionGeneration(resumeText, jobRole string, counts types.QuestionCounts) []llm.Message {
	user := Format(MustGet("interview.json", "question-generation-user"), map[string]string{
		"RoleLine":          roleLine(jobRole),
		"ResumeText":        resumeText,
		"TechnicalCount":    strconv.Itoa(counts.Technical),
		"ProjectBasedCount": strconv.Itoa(counts.ProjectBased),
		"HRCount":           strconv.Itoa(counts.HR),
	})

	return []llm.Message{
		{Role: llm.RoleSystem, Content: MustGet("interview.json", "question-generation-system")},
		{Role: llm.RoleUser, Content: user},
	}
}

// AnswerGeneration builds the message sequence for a concise 3-6 sentence
// model answer grounded in the resume context.
func AnswerGeneration(resumeText, jobRole, question string) []llm.Message {
	user := Format(MustGet("interview.json", "answer-generation-user"), map[string]string{
		"Question":   question,
		"RoleLine":   roleLine(jobRole),
		"ResumeText": resumeText,
	})

	return []llm.Message{
		{Role: llm.RoleSystem, Content: MustGet("interview.json", "answer-generation-system")},
		{Role: llm.RoleUser, Content: user},
	}
}

// FollowUp builds the message sequence for exactly one deeper follow-up
// question on a base question.
func FollowUp(resumeText, jobRole, question string) []llm.Message {
	user := Format(MustGet("interview.json", "follow-up-user"), map[string]string{
		"Question":   question,
		"RoleLine":   roleLine(jobRole),
		"ResumeText": resumeText,
	})

	return []llm.Message{
		{Role: llm.RoleSystem, Content: MustGet("interview.json", "follow-up-system")},
		{Role: llm.RoleUser, Content: user},
	}
}
