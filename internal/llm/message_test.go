package llm

import "testing"

func TestSystemAndUserText(t *testing.T) {
	messages := []Message{
		{Role: RoleSystem, Content: "first instruction"},
		{Role: RoleUser, Content: "the prompt"},
		{Role: RoleSystem, Content: "second instruction"},
	}

	if got := SystemText(messages); got != "first instruction\n\nsecond instruction" {
		t.Errorf("SystemText() = %q", got)
	}
	if got := UserText(messages); got != "the prompt" {
		t.Errorf("UserText() = %q", got)
	}
}

func TestJoinByRole_EmptyContentSkipped(t *testing.T) {
	messages := []Message{
		{Role: RoleUser, Content: ""},
		{Role: RoleUser, Content: "only this"},
	}

	if got := UserText(messages); got != "only this" {
		t.Errorf("UserText() = %q", got)
	}
	if got := SystemText(messages); got != "" {
		t.Errorf("SystemText() = %q, want empty", got)
	}
}
