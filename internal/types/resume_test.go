package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillSetUnmarshal_FlatArray(t *testing.T) {
	var s SkillSet
	err := json.Unmarshal([]byte(`["Go", "SQL", "Docker"]`), &s)
	require.NoError(t, err)

	require.Len(t, s.Groups, 1)
	assert.Empty(t, s.Groups[0].Category)
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, s.Groups[0].Items)
	assert.Equal(t, 3, s.Count())
}

func TestSkillSetUnmarshal_GroupedArray(t *testing.T) {
	var s SkillSet
	err := json.Unmarshal([]byte(`[
		{"category": "Languages", "items": ["Go", "SQL"]},
		{"category": "Tools", "items": ["Docker"]}
	]`), &s)
	require.NoError(t, err)

	require.Len(t, s.Groups, 2)
	assert.Equal(t, "Languages", s.Groups[0].Category)
	assert.Equal(t, []string{"Go", "SQL"}, s.Groups[0].Items)
	assert.Equal(t, 3, s.Count())
}

func TestSkillSetUnmarshal_EmptyAndInvalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		count   int
	}{
		{name: "empty array", input: `[]`, count: 0},
		{name: "null", input: `null`, count: 0},
		{name: "object", input: `{"skills": ["Go"]}`, wantErr: true},
		{name: "number", input: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s SkillSet
			err := json.Unmarshal([]byte(tt.input), &s)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.count, s.Count())
		})
	}
}

func TestSkillSetMarshal_AlwaysGrouped(t *testing.T) {
	var s SkillSet
	require.NoError(t, json.Unmarshal([]byte(`["Go"]`), &s))

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"category": "", "items": ["Go"]}]`, string(out))
}

func TestSkillSetMarshal_Empty(t *testing.T) {
	out, err := json.Marshal(SkillSet{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestResumeUnmarshal_MixedSections(t *testing.T) {
	data := []byte(`{
		"personal_info": {"full_name": "Ada Lovelace", "profession": "Engineer"},
		"professional_summary": "Backend engineer.",
		"skills": ["Go", "Postgres"],
		"experience": [{"company": "Initech", "position": "Engineer"}],
		"project": [{"name": "Analytical Engine", "type": "Personal"}]
	}`)

	var r Resume
	require.NoError(t, json.Unmarshal(data, &r))

	assert.Equal(t, "Ada Lovelace", r.PersonalInfo.FullName)
	assert.Equal(t, 2, r.Skills.Count())
	require.Len(t, r.Experience, 1)
	assert.Equal(t, "Initech", r.Experience[0].Company)
	require.Len(t, r.Project, 1)
	assert.Empty(t, r.Education)
}
