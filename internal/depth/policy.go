package depth

import "github.com/jonathan/interview-prep/internal/types"

// Question count bounds applied to the step table output.
const (
	MinQuestions = 5
	MaxQuestions = 13
)

// QuestionCountForScore maps a depth score to the number of questions to
// request per category via a step table.
func QuestionCountForScore(score int) int {
	switch {
	case score <= 10:
		return 5
	case score <= 20:
		return 7
	case score <= 30:
		return 9
	case score <= 40:
		return 11
	default:
		return 13
	}
}

// CountsForScore returns the per-category question counts for a depth
// score. All three categories always receive the same count.
func CountsForScore(score int) types.QuestionCounts {
	count := QuestionCountForScore(score)
	bounded := min(MaxQuestions, max(MinQuestions, count))

	return types.QuestionCounts{
		Technical:    bounded,
		ProjectBased: bounded,
		HR:           bounded,
	}
}
