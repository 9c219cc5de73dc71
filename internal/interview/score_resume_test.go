package interview

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-prep/internal/ats"
	"github.com/jonathan/interview-prep/internal/llm"
	"github.com/jonathan/interview-prep/internal/types"
)

func validResumeText() string {
	return strings.Repeat("Experienced backend engineer. ", 10)
}

func TestScoreResume_StoredResume(t *testing.T) {
	client := &fakeClient{responses: []string{`{"atsScore": 82, "overallFeedback": "solid"}`}}
	engine := newTestEngine(client)

	result, err := engine.ScoreResume(context.Background(), ScoreInput{
		Resume:     sampleResume(),
		TargetRole: "Backend Engineer",
	})
	require.NoError(t, err)

	assert.Equal(t, 82.0, result.ATSScore)
	assert.Equal(t, "solid", result.OverallFeedback)

	require.Len(t, client.formats, 1)
	assert.Equal(t, llm.FormatJSON, client.formats[0])
	assert.Contains(t, llm.UserText(client.calls[0]), "Ada Lovelace")
}

func TestScoreResume_FreeTextBoundsEnforcedBeforeCall(t *testing.T) {
	client := &fakeClient{responses: []string{`{"atsScore": 50}`}}
	engine := newTestEngine(client)

	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "too short", text: "too short to be a resume"},
		{name: "too long", text: strings.Repeat("a", ats.MaxResumeTextLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.ScoreResume(context.Background(), ScoreInput{ResumeText: tt.text})

			var inputErr *ats.InputError
			require.ErrorAs(t, err, &inputErr)
		})
	}

	assert.Zero(t, client.callCount(), "bound violations must not reach the completion service")
}

func TestScoreResume_FreeText(t *testing.T) {
	client := &fakeClient{responses: []string{`{"atsScore": 150}`}}
	engine := newTestEngine(client)

	result, err := engine.ScoreResume(context.Background(), ScoreInput{
		ResumeText: validResumeText(),
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.ATSScore, "overshoot scores clamp to 100")
}

func TestScoreResume_EmptyStructuredResumeRejected(t *testing.T) {
	client := &fakeClient{responses: []string{`{"atsScore": 50}`}}
	engine := newTestEngine(client)

	_, err := engine.ScoreResume(context.Background(), ScoreInput{
		Resume: &types.Resume{},
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Zero(t, client.callCount())
}

func TestScoreResume_UnparseableResponse(t *testing.T) {
	client := &fakeClient{responses: []string{"the model rambled instead of returning JSON"}}
	engine := newTestEngine(client)

	_, err := engine.ScoreResume(context.Background(), ScoreInput{
		ResumeText: validResumeText(),
	})

	var parseErr *ats.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestScoreResume_NonNumericScore(t *testing.T) {
	client := &fakeClient{responses: []string{`{"atsScore": "high"}`}}
	engine := newTestEngine(client)

	_, err := engine.ScoreResume(context.Background(), ScoreInput{
		ResumeText: validResumeText(),
	})

	var formatErr *ats.InvalidScoreFormatError
	require.ErrorAs(t, err, &formatErr)
}
