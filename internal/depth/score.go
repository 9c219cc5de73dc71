// Package depth computes resume depth scores and maps them to interview
// question counts. The score is a heuristic proxy for how much substantive
// content a resume contains; richer resumes get more questions.
package depth

import (
	"regexp"
	"strings"

	"github.com/jonathan/interview-prep/internal/types"
)

// Section weights. Experience counts for more than projects, projects for
// more than individual skills.
const (
	skillWeight      = 2
	projectWeight    = 3
	experienceWeight = 4
)

const (
	// maxSectionLines bounds how far past a heading the text heuristic reads.
	maxSectionLines = 12
	// maxEntryCount caps the project/experience counts extracted from raw text.
	maxEntryCount = 8
)

// Score computes the depth score of a structured resume:
// skills*2 + projects*3 + experience*4. A nil resume scores 0.
func Score(r *types.Resume) int {
	if r == nil {
		return 0
	}
	return r.Skills.Count()*skillWeight +
		len(r.Project)*projectWeight +
		len(r.Experience)*experienceWeight
}

// nextHeadingRe matches the start of another known resume section. Used to
// stop reading lines once the current section ends.
var nextHeadingRe = regexp.MustCompile(`(?i)\n\s*(education|experience|projects?|skills?|summary|certifications|languages)\b`)

// skillSplitRe splits a skills section into individual tokens.
var skillSplitRe = regexp.MustCompile(`[,|;\x{2022}]`)

// ScoreFromText estimates a depth score from raw extracted resume text when
// no structured resume is available. Section headings are located by
// case-insensitive substring search; a heading that is not found simply
// contributes zero. The output is a best-effort signal, not an exact count.
func ScoreFromText(text string) int {
	skillsLines := sectionLines(text, "skills")
	projectLines := sectionLines(text, "project")
	experienceLines := sectionLines(text, "experience")

	skillsCount := 0
	for _, token := range skillSplitRe.Split(strings.Join(skillsLines, " "), -1) {
		if len(strings.TrimSpace(token)) > 1 {
			skillsCount++
		}
	}

	projectsCount := min(len(projectLines), maxEntryCount)
	experienceCount := min(len(experienceLines), maxEntryCount)

	return skillsCount*skillWeight +
		projectsCount*projectWeight +
		experienceCount*experienceWeight
}

// sectionLines returns up to maxSectionLines non-empty lines following the
// first occurrence of heading, stopping early if another known section
// heading appears.
func sectionLines(text, heading string) []string {
	if text == "" {
		return nil
	}

	idx := strings.Index(strings.ToLower(text), heading)
	if idx < 0 {
		return nil
	}

	after := text[idx+len(heading):]
	// Skip the remainder of the heading line itself ("s" in "Projects").
	nl := strings.Index(after, "\n")
	if nl < 0 {
		return nil
	}
	after = after[nl:]

	if loc := nextHeadingRe.FindStringIndex(after); loc != nil {
		after = after[:loc[0]]
	}

	var lines []string
	for _, line := range strings.Split(after, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxSectionLines {
			break
		}
	}
	return lines
}
