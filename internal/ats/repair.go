package ats

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/interview-prep/internal/llm"
)

//go:embed schema.json
var responseSchema string

// RepairResult parses raw completion output into a Result, validating the
// score and backfilling every optional field.
//
// Malformed JSON fails with *ParseError. A missing or non-numeric atsScore
// fails with *InvalidScoreFormatError. A numeric score outside [0, 100] is
// model overshoot and is clamped into range rather than rejected.
func RepairResult(raw string) (*Result, error) {
	cleaned := llm.CleanJSONBlock(raw)
	if strings.TrimSpace(cleaned) == "" {
		return nil, &ParseError{Message: "empty response"}
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		return nil, &ParseError{Message: "response is not a JSON object", Cause: err}
	}

	if err := validateShape(cleaned); err != nil {
		return nil, err
	}

	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, &InvalidScoreFormatError{Detail: err.Error()}
	}

	result.ATSScore = clampScore(result.ATSScore)
	backfill(&result)
	return &result, nil
}

// validateShape checks the response against the embedded JSON Schema. The
// schema requires atsScore to be a JSON number; every other field is
// optional and repaired afterwards.
func validateShape(jsonText string) error {
	schemaLoader := gojsonschema.NewStringLoader(responseSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonText)

	validation, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &ParseError{Message: "schema validation failed during load", Cause: err}
	}
	if validation.Valid() {
		return nil
	}

	details := make([]string, 0, len(validation.Errors()))
	for _, desc := range validation.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		details = append(details, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return &InvalidScoreFormatError{Detail: strings.Join(details, "; ")}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// backfill defaults every optional array to empty so consumers never
// null-check beyond TopImprovementSection, which stays explicitly null
// when absent.
func backfill(r *Result) {
	if r.Strengths == nil {
		r.Strengths = []string{}
	}
	if r.Weaknesses == nil {
		r.Weaknesses = []string{}
	}
	if r.MissingKeywords == nil {
		r.MissingKeywords = []string{}
	}
	if r.Suggestions == nil {
		r.Suggestions = []string{}
	}
	if r.GrammarIssues == nil {
		r.GrammarIssues = []string{}
	}
	if r.SectionImpactAnalysis == nil {
		r.SectionImpactAnalysis = []SectionImpact{}
	}
}
