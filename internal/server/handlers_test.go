package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-prep/internal/config"
	"github.com/jonathan/interview-prep/internal/followup"
	"github.com/jonathan/interview-prep/internal/interview"
	"github.com/jonathan/interview-prep/internal/llm"
)

// stubClient returns the same canned response for every completion call.
type stubClient struct {
	response string
}

func (c *stubClient) Complete(_ context.Context, _ []llm.Message, _ llm.ResponseFormat) (string, error) {
	return c.response, nil
}

func (c *stubClient) Close() error { return nil }

func newTestServer(t *testing.T, response string) (*Server, string) {
	t.Helper()

	store := followup.NewMemoryStore()
	s := &Server{
		engine:     interview.NewEngine(&stubClient{response: response}, followup.NewTracker(store)),
		store:      store,
		jwtService: NewJWTService(config.JWTConfig{Secret: "test-secret", ExpirationHours: 1}),
	}

	token, err := s.jwtService.GenerateToken(uuid.New())
	require.NoError(t, err)
	return s, token
}

func doRequest(s *Server, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint_NoAuthRequired(t *testing.T) {
	s, _ := newTestServer(t, "")

	rec := doRequest(s, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestAuth_MissingAndInvalidTokens(t *testing.T) {
	s, _ := newTestServer(t, "")
	body := `{"jobRole": "Backend Engineer", "resumeText": "Skills\nGo, SQL"}`

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing", token: ""},
		{name: "garbage", token: "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(s, http.MethodPost, "/interview/questions/from-text", tt.token, body)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	s, _ := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodPost, "/interview/questions/from-text", strings.NewReader("{}"))
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestQuestionsFromTextEndpoint(t *testing.T) {
	s, token := newTestServer(t, `{"technical": ["t1"], "projectBased": ["p1"], "hr": ["h1"]}`)
	body := `{"jobRole": "Backend Engineer", "resumeText": "Skills\nGo, SQL\n"}`

	rec := doRequest(s, http.MethodPost, "/interview/questions/from-text", token, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var result interview.QuestionsResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, []string{"t1"}, result.Questions.Technical)
	assert.Equal(t, 5, result.Counts.Technical)
	assert.Equal(t, 4, result.Score)
}

func TestQuestionsEndpoint_ValidationFailure(t *testing.T) {
	s, token := newTestServer(t, "")

	tests := []struct {
		name string
		body string
	}{
		{name: "missing job role", body: `{"resume": {"skills": ["Go"]}}`},
		{name: "missing resume", body: `{"jobRole": "Backend Engineer"}`},
		{name: "not json", body: `this is not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(s, http.MethodPost, "/interview/questions", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestFollowUpEndpoint_BudgetExhaustion(t *testing.T) {
	s, token := newTestServer(t, "How did you measure the impact?")

	for i := range followup.MaxFollowUps {
		body := fmt.Sprintf(`{
			"question": "base question %d",
			"resumeId": "resume-1",
			"resume": {"skills": ["Go", "SQL"]}
		}`, i)
		rec := doRequest(s, http.MethodPost, "/interview/follow-up", token, body)
		require.Equal(t, http.StatusOK, rec.Code)

		var payload map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, "How did you measure the impact?", payload["followUp"])
	}

	rec := doRequest(s, http.MethodPost, "/interview/follow-up", token, `{
		"question": "one more",
		"resumeId": "resume-1",
		"resume": {"skills": ["Go", "SQL"]}
	}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "follow_up_limit_exceeded", payload["error"])
}

func TestFollowUpEndpoint_BudgetIsPerUser(t *testing.T) {
	s, token := newTestServer(t, "a deeper question")
	body := `{"question": "base", "resumeId": "resume-1", "resume": {"skills": ["Go"]}}`

	for range followup.MaxFollowUps {
		rec := doRequest(s, http.MethodPost, "/interview/follow-up", token, body)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := doRequest(s, http.MethodPost, "/interview/follow-up", token, body)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different user keeps a fresh budget for the same resume.
	otherToken, err := s.jwtService.GenerateToken(uuid.New())
	require.NoError(t, err)
	rec = doRequest(s, http.MethodPost, "/interview/follow-up", otherToken, body)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAnswersEndpoint(t *testing.T) {
	s, token := newTestServer(t, "A concise, specific answer.")
	body := `{
		"questions": {"technical": ["t1"], "projectBased": [], "hr": ["h1"]},
		"resumeText": "Skills\nGo, SQL\n"
	}`

	rec := doRequest(s, http.MethodPost, "/interview/answers", token, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Answers struct {
			Technical []string `json:"technical"`
			HR        []string `json:"hr"`
		} `json:"answers"`
		Items []interview.AnsweredQuestion `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, []string{"A concise, specific answer."}, payload.Answers.Technical)
	assert.Equal(t, []string{"A concise, specific answer."}, payload.Answers.HR)
	require.Len(t, payload.Items, 2)
	assert.Equal(t, "t1", payload.Items[0].Question)
}

func TestATSScoreEndpoint(t *testing.T) {
	s, token := newTestServer(t, `{"atsScore": 150}`)
	body := fmt.Sprintf(`{"resumeText": %q, "targetRole": "Backend Engineer"}`,
		strings.Repeat("Experienced engineer. ", 10))

	rec := doRequest(s, http.MethodPost, "/ats/score", token, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Result struct {
			ATSScore  float64  `json:"atsScore"`
			Strengths []string `json:"strengths"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, 100.0, payload.Result.ATSScore)
	assert.NotNil(t, payload.Result.Strengths)
}

func TestATSScoreEndpoint_MissingInput(t *testing.T) {
	s, token := newTestServer(t, "")

	rec := doRequest(s, http.MethodPost, "/ats/score", token, `{"targetRole": "Backend Engineer"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestATSScoreEndpoint_UnparseableUpstream(t *testing.T) {
	s, token := newTestServer(t, "rambling prose, no JSON")
	body := fmt.Sprintf(`{"resumeText": %q}`, strings.Repeat("Experienced engineer. ", 10))

	rec := doRequest(s, http.MethodPost, "/ats/score", token, body)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestEnhanceEndpoints(t *testing.T) {
	s, token := newTestServer(t, "A sharper sentence.")

	rec := doRequest(s, http.MethodPost, "/ai/enhance-summary", token, `{"userContent": "I write Go."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"enhancedSummary": "A sharper sentence."}`, rec.Body.String())

	rec = doRequest(s, http.MethodPost, "/ai/enhance-description", token, `{"userContent": "Worked on billing."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"enhancedDescription": "A sharper sentence."}`, rec.Body.String())

	rec = doRequest(s, http.MethodPost, "/ai/enhance-summary", token, `{"userContent": ""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
