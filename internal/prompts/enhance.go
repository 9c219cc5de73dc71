package prompts

import "github.com/jonathan/interview-prep/internal/llm"

// EnhanceSummary builds the message sequence for professional summary
// enhancement.
func EnhanceSummary(userContent string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: MustGet("enhance.json", "summary-system")},
		{Role: llm.RoleUser, Content: userContent},
	}
}

// EnhanceDescription builds the message sequence for job description
// enhancement.
func EnhanceDescription(userContent string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: MustGet("enhance.json", "description-system")},
		{Role: llm.RoleUser, Content: userContent},
	}
}
