package interview

import (
	"context"
	"sync"

	"github.com/jonathan/interview-prep/internal/followup"
	"github.com/jonathan/interview-prep/internal/llm"
	"github.com/jonathan/interview-prep/internal/types"
)

// fakeClient is a scripted llm.Client. Responses are returned in order,
// with the last one repeating; a configured error wins over responses. A
// custom complete func overrides both.
type fakeClient struct {
	mu        sync.Mutex
	responses []string
	err       error
	complete  func(messages []llm.Message, format llm.ResponseFormat) (string, error)

	calls   [][]llm.Message
	formats []llm.ResponseFormat
}

func (c *fakeClient) Complete(_ context.Context, messages []llm.Message, format llm.ResponseFormat) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, messages)
	c.formats = append(c.formats, format)

	if c.complete != nil {
		return c.complete(messages, format)
	}
	if c.err != nil {
		return "", c.err
	}
	if len(c.responses) == 0 {
		return "", nil
	}
	response := c.responses[0]
	if len(c.responses) > 1 {
		c.responses = c.responses[1:]
	}
	return response, nil
}

func (c *fakeClient) Close() error { return nil }

func (c *fakeClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func newTestEngine(client llm.Client) *Engine {
	return NewEngine(client, followup.NewTracker(followup.NewMemoryStore()))
}

func sampleResume() *types.Resume {
	return &types.Resume{
		PersonalInfo:        types.PersonalInfo{FullName: "Ada Lovelace"},
		ProfessionalSummary: "Backend engineer.",
		Skills: types.SkillSet{Groups: []types.SkillGroup{
			{Category: "Languages", Items: []string{"Go", "SQL", "Python", "Rust"}},
		}},
		Experience: []types.Experience{
			{Company: "Initech", Position: "Engineer"},
			{Company: "Globex", Position: "Engineer"},
			{Company: "Hooli", Position: "Engineer"},
		},
		Project: []types.Project{
			{Name: "Analytical Engine"},
			{Name: "Difference Engine"},
		},
	}
}
