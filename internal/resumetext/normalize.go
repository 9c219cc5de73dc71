// Package resumetext flattens structured resumes into plain text blocks
// suitable for prompting.
package resumetext

import (
	"strings"

	"github.com/jonathan/interview-prep/internal/types"
)

const (
	// DefaultPromptLimit is the character cap applied to resume text
	// embedded in interview prompts.
	DefaultPromptLimit = 9000
	// ATSLimit is the character cap applied to resume text sent for ATS
	// scoring. Stored resumes are truncated silently at this bound;
	// free-form input beyond it is rejected upstream instead.
	ATSLimit = 50000
)

// ToText renders a resume as a single text block. Sections appear in a
// fixed order, each on its own line; empty sections are omitted entirely.
// A nil resume yields an empty string.
func ToText(r *types.Resume) string {
	if r == nil {
		return ""
	}

	sections := make([]string, 0, 6)

	personal := joinNonEmpty(" | ",
		r.PersonalInfo.FullName,
		r.PersonalInfo.Profession,
		r.PersonalInfo.Email,
		r.PersonalInfo.Phone,
		r.PersonalInfo.Location,
		r.PersonalInfo.LinkedIn,
		r.PersonalInfo.Website,
	)
	if personal != "" {
		sections = append(sections, personal)
	}

	if summary := strings.TrimSpace(r.ProfessionalSummary); summary != "" {
		sections = append(sections, summary)
	}

	if skills := skillsText(r.Skills); skills != "" {
		sections = append(sections, skills)
	}

	if experience := experienceText(r.Experience); experience != "" {
		sections = append(sections, experience)
	}

	if projects := projectText(r.Project); projects != "" {
		sections = append(sections, projects)
	}

	if education := educationText(r.Education); education != "" {
		sections = append(sections, education)
	}

	return strings.Join(sections, "\n")
}

// Truncate caps text at max characters. Empty input stays empty.
func Truncate(text string, max int) string {
	if text == "" || max <= 0 {
		return ""
	}
	if len(text) <= max {
		return text
	}
	return text[:max]
}

// skillsText renders skill groups as "category: item, item" segments.
// Groups without a category render items only.
func skillsText(skills types.SkillSet) string {
	segments := make([]string, 0, len(skills.Groups))
	for _, group := range skills.Groups {
		items := strings.Join(nonEmpty(group.Items), ", ")
		label := ""
		if group.Category != "" {
			label = group.Category + ": "
		}
		segment := strings.TrimSpace(label + items)
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return strings.Join(segments, " | ")
}

func experienceText(entries []types.Experience) string {
	parts := make([]string, 0, len(entries))
	for _, exp := range entries {
		title := joinNonEmpty(" at ", exp.Position, exp.Company)
		dates := joinNonEmpty(" - ", exp.StartDate, exp.EndDate)
		entry := joinNonEmpty(". ", title, dates, exp.Description)
		if entry != "" {
			parts = append(parts, entry)
		}
	}
	return strings.Join(parts, " | ")
}

func projectText(entries []types.Project) string {
	parts := make([]string, 0, len(entries))
	for _, proj := range entries {
		title := joinNonEmpty(" - ", proj.Name, proj.Type)
		entry := joinNonEmpty(": ", title, proj.Description)
		if entry != "" {
			parts = append(parts, entry)
		}
	}
	return strings.Join(parts, " | ")
}

func educationText(entries []types.Education) string {
	parts := make([]string, 0, len(entries))
	for _, edu := range entries {
		title := joinNonEmpty(" in ", edu.Degree, edu.Field)
		entry := joinNonEmpty(", ", title, edu.Institution, edu.GraduationDate)
		if entry != "" {
			parts = append(parts, entry)
		}
	}
	return strings.Join(parts, " | ")
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	return strings.Join(nonEmpty(parts), sep)
}

func nonEmpty(parts []string) []string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return kept
}
