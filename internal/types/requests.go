package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// GenerateQuestionsRequest is the request body for interview question
// generation against a stored (externally resolved) resume.
type GenerateQuestionsRequest struct {
	JobRole  string  `json:"jobRole" validate:"required,min=1"`
	ResumeID string  `json:"resumeId,omitempty"`
	Resume   *Resume `json:"resume" validate:"required"`
}

// GenerateQuestionsFromTextRequest is the request body for interview
// question generation against uploaded free-form resume text.
type GenerateQuestionsFromTextRequest struct {
	JobRole    string `json:"jobRole" validate:"required,min=1"`
	ResumeText string `json:"resumeText" validate:"required,min=1"`
	SessionID  string `json:"sessionId,omitempty"`
}

// FollowUpRequest is the request body for follow-up generation against a
// stored resume.
type FollowUpRequest struct {
	Question string  `json:"question" validate:"required,min=1"`
	JobRole  string  `json:"jobRole,omitempty"`
	Category string  `json:"category,omitempty"`
	ResumeID string  `json:"resumeId" validate:"required,min=1"`
	Resume   *Resume `json:"resume" validate:"required"`
}

// FollowUpFromTextRequest is the request body for follow-up generation
// against uploaded resume text within an ephemeral session.
type FollowUpFromTextRequest struct {
	Question   string `json:"question" validate:"required,min=1"`
	JobRole    string `json:"jobRole,omitempty"`
	Category   string `json:"category,omitempty"`
	ResumeText string `json:"resumeText" validate:"required,min=1"`
	SessionID  string `json:"sessionId" validate:"required,min=1"`
}

// GenerateAnswersRequest is the request body for batch answer generation.
// Questions accepts the grouped {technical, projectBased, hr} object, a flat
// array of strings, or an array of {category, question} items.
type GenerateAnswersRequest struct {
	Questions  json.RawMessage `json:"questions" validate:"required"`
	JobRole    string          `json:"jobRole,omitempty"`
	Resume     *Resume         `json:"resume,omitempty"`
	ResumeText string          `json:"resumeText,omitempty"`
}

// ATSScoreRequest is the request body for resume scoring.
type ATSScoreRequest struct {
	ResumeText string  `json:"resumeText,omitempty"`
	Resume     *Resume `json:"resume,omitempty"`
	TargetRole string  `json:"targetRole,omitempty"`
}

// EnhanceRequest is the request body for the summary/description
// enhancement operations.
type EnhanceRequest struct {
	UserContent string `json:"userContent" validate:"required,min=1"`
}

// Validate validates the GenerateQuestionsRequest using the validator.
func (r *GenerateQuestionsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateQuestionsFromTextRequest using the validator.
func (r *GenerateQuestionsFromTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the FollowUpRequest using the validator.
func (r *FollowUpRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the FollowUpFromTextRequest using the validator.
func (r *FollowUpFromTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateAnswersRequest using the validator.
func (r *GenerateAnswersRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the EnhanceRequest using the validator.
func (r *EnhanceRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
