// Package followup enforces the per-scope cap on follow-up interview
// questions. A scope is (user, resume) for saved resumes or (user, session)
// for uploaded ones; the two kinds are never mixed.
package followup

import (
	"fmt"

	"github.com/google/uuid"
)

// MaxFollowUps is the hard cap on follow-up questions per scope, summed
// across all base questions.
const MaxFollowUps = 3

// Scope identifies the budget bucket a follow-up request draws from.
// Exactly one of ResumeID and SessionID is set.
type Scope struct {
	UserID    uuid.UUID
	ResumeID  string
	SessionID string
}

// ResumeScope returns the scope for follow-ups on a saved resume.
func ResumeScope(userID uuid.UUID, resumeID string) Scope {
	return Scope{UserID: userID, ResumeID: resumeID}
}

// SessionScope returns the scope for follow-ups on an uploaded, ephemeral
// resume.
func SessionScope(userID uuid.UUID, sessionID string) Scope {
	return Scope{UserID: userID, SessionID: sessionID}
}

// Valid reports whether the scope has a user and exactly one scope key.
func (s Scope) Valid() bool {
	if s.UserID == uuid.Nil {
		return false
	}
	return (s.ResumeID != "") != (s.SessionID != "")
}

// Key returns a stable string identity for the scope, used for per-scope
// serialization in storage.
func (s Scope) Key() string {
	return fmt.Sprintf("%s/%s/%s", s.UserID, s.ResumeID, s.SessionID)
}

func (s Scope) String() string {
	if s.ResumeID != "" {
		return fmt.Sprintf("user %s resume %s", s.UserID, s.ResumeID)
	}
	return fmt.Sprintf("user %s session %s", s.UserID, s.SessionID)
}
