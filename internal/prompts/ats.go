package prompts

import "github.com/jonathan/interview-prep/internal/llm"

// ATSScore builds the message sequence for ATS resume scoring. targetRole
// may be empty.
func ATSScore(resumeText, targetRole string) []llm.Message {
	user := Format(MustGet("ats.json", "score-user"), map[string]string{
		"RoleLine":   roleLine(targetRole),
		"ResumeText": resumeText,
	})

	return []llm.Message{
		{Role: llm.RoleSystem, Content: MustGet("ats.json", "score-system")},
		{Role: llm.RoleUser, Content: user},
	}
}
