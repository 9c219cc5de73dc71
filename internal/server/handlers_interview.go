package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/interview-prep/internal/ats"
	"github.com/jonathan/interview-prep/internal/interview"
	"github.com/jonathan/interview-prep/internal/types"
)

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
		return false
	}
	return true
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateQuestionsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := s.engine.GenerateQuestions(r.Context(), interview.QuestionsInput{
		Resume:  req.Resume,
		JobRole: req.JobRole,
	})
	if err != nil {
		domainError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleQuestionsFromText(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateQuestionsFromTextRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := s.engine.GenerateQuestions(r.Context(), interview.QuestionsInput{
		ResumeText: req.ResumeText,
		JobRole:    req.JobRole,
	})
	if err != nil {
		domainError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleFollowUp(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		errorResponse(w, http.StatusUnauthorized, "missing_token", "no authenticated user")
		return
	}

	var req types.FollowUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	followUp, err := s.engine.GenerateFollowUp(r.Context(), interview.FollowUpInput{
		UserID:   userID,
		Question: req.Question,
		JobRole:  req.JobRole,
		Category: req.Category,
		Resume:   req.Resume,
		ResumeID: req.ResumeID,
	})
	if err != nil {
		domainError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"followUp": followUp})
}

func (s *Server) handleFollowUpFromText(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		errorResponse(w, http.StatusUnauthorized, "missing_token", "no authenticated user")
		return
	}

	var req types.FollowUpFromTextRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	followUp, err := s.engine.GenerateFollowUp(r.Context(), interview.FollowUpInput{
		UserID:     userID,
		Question:   req.Question,
		JobRole:    req.JobRole,
		Category:   req.Category,
		ResumeText: req.ResumeText,
		SessionID:  req.SessionID,
	})
	if err != nil {
		domainError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"followUp": followUp})
}

func (s *Server) handleAnswers(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateAnswersRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	answered, err := s.engine.GenerateAnswers(r.Context(), interview.AnswersInput{
		Questions:  interview.FlattenQuestions(req.Questions),
		JobRole:    req.JobRole,
		Resume:     req.Resume,
		ResumeText: req.ResumeText,
	})
	if err != nil {
		domainError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"answers": interview.GroupAnswers(answered),
		"items":   answered,
	})
}

func (s *Server) handleATSScore(w http.ResponseWriter, r *http.Request) {
	var req types.ATSScoreRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Resume == nil && req.ResumeText == "" {
		errorResponse(w, http.StatusBadRequest, "validation_error", "either resume or resumeText is required")
		return
	}

	result, err := s.engine.ScoreResume(r.Context(), interview.ScoreInput{
		Resume:     req.Resume,
		ResumeText: req.ResumeText,
		TargetRole: req.TargetRole,
	})
	if err != nil {
		domainError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]*ats.Result{"result": result})
}
