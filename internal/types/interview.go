package types

// QuestionCounts holds the number of interview questions requested per
// category. The three counts are always equal; they are derived from a
// single depth score.
type QuestionCounts struct {
	Technical    int `json:"technical"`
	ProjectBased int `json:"projectBased"`
	HR           int `json:"hr"`
}

// QuestionSet holds generated interview questions grouped by category.
type QuestionSet struct {
	Technical    []string `json:"technical"`
	ProjectBased []string `json:"projectBased"`
	HR           []string `json:"hr"`
}

// AnswerSet holds generated model answers grouped by category.
type AnswerSet struct {
	Technical    []string `json:"technical"`
	ProjectBased []string `json:"projectBased"`
	HR           []string `json:"hr"`
}

// FlatQuestion is a single question tagged with its category. It is the
// normalized form used by answer generation regardless of how the caller
// shaped the question list.
type FlatQuestion struct {
	Category string `json:"category"`
	Question string `json:"question"`
}
