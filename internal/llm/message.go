package llm

import "strings"

// Role tags a message with its speaker.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one role-tagged entry in a completion request.
type Message struct {
	Role    Role
	Content string
}

// ResponseFormat hints what shape of output the caller expects.
type ResponseFormat string

const (
	// FormatText requests free-form prose.
	FormatText ResponseFormat = "text"
	// FormatJSON requests a strict JSON payload; providers that support a
	// JSON response mode turn it on, and markdown fences are stripped from
	// the output either way.
	FormatJSON ResponseFormat = "json"
)

// SystemText joins the content of all system messages, in order.
func SystemText(messages []Message) string {
	return joinByRole(messages, RoleSystem)
}

// UserText joins the content of all user messages, in order.
func UserText(messages []Message) string {
	return joinByRole(messages, RoleUser)
}

func joinByRole(messages []Message, role Role) string {
	var parts []string
	for _, m := range messages {
		if m.Role == role && m.Content != "" {
			parts = append(parts, m.Content)
		}
	}
	return strings.Join(parts, "\n\n")
}
