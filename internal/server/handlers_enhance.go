package server

import (
	"net/http"

	"github.com/jonathan/interview-prep/internal/types"
)

func (s *Server) handleEnhanceSummary(w http.ResponseWriter, r *http.Request) {
	var req types.EnhanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	enhanced, err := s.engine.EnhanceSummary(r.Context(), req.UserContent)
	if err != nil {
		domainError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"enhancedSummary": enhanced})
}

func (s *Server) handleEnhanceDescription(w http.ResponseWriter, r *http.Request) {
	var req types.EnhanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	enhanced, err := s.engine.EnhanceDescription(r.Context(), req.UserContent)
	if err != nil {
		domainError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"enhancedDescription": enhanced})
}
