package ats

// SectionImpact describes how a single resume section affects the score.
type SectionImpact struct {
	Section    string `json:"section"`
	Impact     string `json:"impact"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Result is the repaired ATS evaluation. After RepairResult, ATSScore is
// always within [0, 100], every array field is non-nil, and
// TopImprovementSection is explicitly null when absent, so consumers never
// branch on missing fields.
type Result struct {
	ATSScore              float64         `json:"atsScore"`
	Strengths             []string        `json:"strengths"`
	Weaknesses            []string        `json:"weaknesses"`
	MissingKeywords       []string        `json:"missingKeywords"`
	Suggestions           []string        `json:"suggestions"`
	GrammarIssues         []string        `json:"grammarIssues"`
	KeywordDensity        string          `json:"keywordDensity"`
	OverallFeedback       string          `json:"overallFeedback"`
	SectionImpactAnalysis []SectionImpact `json:"sectionImpactAnalysis"`
	TopImprovementSection *string         `json:"topImprovementSection"`
}
