package ats

import "strings"

// Resume text bounds for the free-form scoring path. Stored resumes are
// truncated upstream instead of rejected.
const (
	MinResumeTextLength = 100
	MaxResumeTextLength = 50000
)

// ValidateInput checks caller-supplied resume text before any external
// call is made.
func ValidateInput(resumeText string) error {
	trimmed := strings.TrimSpace(resumeText)
	if trimmed == "" {
		return &InputError{Field: "resumeText", Message: "resume text is required"}
	}
	if len(trimmed) < MinResumeTextLength {
		return &InputError{
			Field:   "resumeText",
			Message: "resume text is too short to be a resume (minimum 100 characters)",
		}
	}
	if len(trimmed) > MaxResumeTextLength {
		return &InputError{
			Field:   "resumeText",
			Message: "resume text exceeds 50000 characters; truncate it before scoring",
		}
	}
	return nil
}
