// Package server exposes the advisor over HTTP: a stateless keyword advice
// endpoint and session-based model chat.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/careerbot/internal/application"
	"github.com/bnema/careerbot/internal/domain"
	"go.uber.org/zap"
)

const (
	maxRequestBytes = 64 << 10
	shutdownTimeout = 10 * time.Second
	noInputMessage  = "No input provided"
)

type Server struct {
	chat     *application.ChatService
	logger   *zap.Logger
	sessions *sessionStore
}

// Options bounds the in-memory session table. Zero values fall back to
// DefaultMaxSessions and DefaultSessionTTL.
type Options struct {
	MaxSessions int
	SessionTTL  time.Duration
	Now         func() time.Time
}

func New(chat *application.ChatService, logger *zap.Logger, opts Options) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{
		chat:     chat,
		logger:   logger,
		sessions: newSessionStore(opts.MaxSessions, opts.SessionTTL, opts.Now),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat", s.handleAdvise)
	mux.HandleFunc("GET /api/industries", s.handleIndustries)
	mux.HandleFunc("POST /api/sessions", s.handleCreateSession)
	mux.HandleFunc("GET /api/sessions/{id}", s.handleGetSession)
	mux.HandleFunc("POST /api/sessions/{id}/messages", s.handleSendMessage)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

// Serve listens on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	return s.serveListener(ctx, listener)
}

func (s *Server) serveListener(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.Serve(listener)
	}()
	s.logger.Info("http server listening", zap.String("addr", listener.Addr().String()))

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	s.logger.Info("http server stopped")

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve http: %w", err)
	}
	return nil
}

type adviseRequest struct {
	Input string `json:"input"`
}

type adviseResponse struct {
	Advice string `json:"advice"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type industryResponse struct {
	Name           string `json:"name"`
	GrowthEstimate string `json:"growth_estimate"`
}

type sessionResponse struct {
	SessionID string                   `json:"session_id"`
	Messages  []domain.Utterance       `json:"messages"`
	Context   domain.ContextAttributes `json:"context"`
}

type messageRequest struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Reply    domain.Utterance         `json:"reply"`
	Context  domain.ContextAttributes `json:"context"`
	Warnings []string                 `json:"warnings,omitempty"`
}

// handleAdvise answers from the keyword advisor only. A missing body, a
// malformed body and an empty input all count as no input.
func (s *Server) handleAdvise(w http.ResponseWriter, r *http.Request) {
	var req adviseRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.Input) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: noInputMessage})
		return
	}

	writeJSON(w, http.StatusOK, adviseResponse{Advice: domain.Advise(req.Input)})
}

func (s *Server) handleIndustries(w http.ResponseWriter, _ *http.Request) {
	industries := domain.GrowingIndustries()
	resp := make([]industryResponse, 0, len(industries))
	for _, industry := range industries {
		resp = append(resp, industryResponse{Name: industry.Name, GrowthEstimate: industry.GrowthEstimate})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	conv, err := s.chat.NewConversation(r.Context(), nil)
	if err != nil {
		s.logger.Error("create session", zap.Error(err))
		writeJSON(w, statusFor(err), errorResponse{Error: domain.Describe(err)})
		return
	}

	if evicted := s.sessions.add(conv); evicted > 0 {
		s.logger.Debug("sessions evicted", zap.Int("count", evicted))
	}
	s.logger.Debug("session created", zap.String("session_id", conv.ID))

	writeJSON(w, http.StatusCreated, sessionResponse{
		SessionID: conv.ID,
		Messages:  conv.Transcript(),
		Context:   conv.Context(),
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Session not found"})
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	writeJSON(w, http.StatusOK, sessionResponse{
		SessionID: sess.conv.ID,
		Messages:  sess.conv.Transcript(),
		Context:   sess.conv.Context(),
	})
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Session not found"})
		return
	}

	var req messageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	result, err := s.chat.Send(r.Context(), sess.conv, req.Message, nil)
	if err != nil {
		s.logger.Warn("chat turn failed", zap.String("session_id", sess.conv.ID), zap.Error(err))
		writeJSON(w, statusFor(err), errorResponse{Error: domain.Describe(err)})
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Reply:    result.Reply,
		Context:  result.Context,
		Warnings: result.Warnings,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) lookup(id string) (*session, bool) {
	return s.sessions.get(id)
}

func statusFor(err error) int {
	var serviceErr *domain.ServiceError
	if !errors.As(err, &serviceErr) {
		return http.StatusInternalServerError
	}

	switch serviceErr.Kind {
	case domain.ErrorKindValidation:
		return http.StatusBadRequest
	case domain.ErrorKindExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBytes))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
