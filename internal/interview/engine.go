// Package interview orchestrates the interview preparation operations:
// question generation, model answers, follow-ups under a budget, and ATS
// scoring. Each operation is a short, request-scoped pipeline over an
// injected completion client; the only cross-request state is the
// follow-up budget store.
package interview

import (
	"github.com/jonathan/interview-prep/internal/followup"
	"github.com/jonathan/interview-prep/internal/llm"
)

// Engine wires the completion client and follow-up tracker together.
// It holds no per-request state and is safe for concurrent use.
type Engine struct {
	client  llm.Client
	tracker *followup.Tracker
}

// NewEngine creates an Engine. Both collaborators are required; there is
// no package-level default client.
func NewEngine(client llm.Client, tracker *followup.Tracker) *Engine {
	return &Engine{
		client:  client,
		tracker: tracker,
	}
}

// Close releases the underlying completion client.
func (e *Engine) Close() error {
	return e.client.Close()
}
