package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/interview-prep/internal/config"
	"github.com/jonathan/interview-prep/internal/followup"
	"github.com/jonathan/interview-prep/internal/interview"
	"github.com/jonathan/interview-prep/internal/llm"
)

type contextKey string

const userIDKey contextKey = "userID"

// Server exposes the interview engine over HTTP.
type Server struct {
	engine     *interview.Engine
	store      followup.Store
	jwtService *JWTService
	httpServer *http.Server
}

// New wires up the engine, its follow-up store, and the HTTP routes.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	store, err := followup.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting follow-up store: %w", err)
	}

	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg = llmCfg.WithModel(cfg.Model)
	}
	client, err := llm.NewClient(ctx, llmCfg, cfg.GeminiAPIKey)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("creating llm client: %w", err)
	}

	s := &Server{
		engine:     interview.NewEngine(client, followup.NewTracker(store)),
		store:      store,
		jwtService: NewJWTService(cfg.JWT),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      withLogging(withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /interview/questions", s.requireAuth(s.handleQuestions))
	mux.HandleFunc("POST /interview/questions/from-text", s.requireAuth(s.handleQuestionsFromText))
	mux.HandleFunc("POST /interview/follow-up", s.requireAuth(s.handleFollowUp))
	mux.HandleFunc("POST /interview/follow-up/from-text", s.requireAuth(s.handleFollowUpFromText))
	mux.HandleFunc("POST /interview/answers", s.requireAuth(s.handleAnswers))
	mux.HandleFunc("POST /ats/score", s.requireAuth(s.handleATSScore))
	mux.HandleFunc("POST /ai/enhance-summary", s.requireAuth(s.handleEnhanceSummary))
	mux.HandleFunc("POST /ai/enhance-description", s.requireAuth(s.handleEnhanceDescription))
	return mux
}

// Start blocks serving requests until the context is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Println("shutting down")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	s.store.Close()
	return s.engine.Close()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requireAuth validates the bearer token and stashes the caller's user ID
// in the request context.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			errorResponse(w, http.StatusUnauthorized, "missing_token", "authorization header required")
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			errorResponse(w, http.StatusUnauthorized, "missing_token", "authorization header must use the Bearer scheme")
			return
		}

		userID, err := s.jwtService.ValidateToken(token)
		if err != nil {
			errorResponse(w, http.StatusUnauthorized, "invalid_token", "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next(w, r.WithContext(ctx))
	}
}

func userIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, kind, message string) {
	jsonResponse(w, status, map[string]string{"error": kind, "message": message})
}

// domainError maps an engine error onto the wire using the shared
// status and kind tables.
func domainError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
	}
	errorResponse(w, status, ErrorKind(err), err.Error())
}
