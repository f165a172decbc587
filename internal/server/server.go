// Package server exposes template discovery and document generation over
// HTTP. Requests are validated against an embedded OpenAPI contract.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/goliatone/go-docgen/components/jurisdictions"
	"github.com/goliatone/go-docgen/pkg/export"
	"github.com/goliatone/go-docgen/pkg/model"
	"github.com/goliatone/go-docgen/pkg/orchestrator"
	"github.com/goliatone/go-docgen/pkg/renderers/jsondoc"
	"github.com/goliatone/go-docgen/pkg/templates"
)

const (
	defaultMaxBody  = 1 << 20
	shutdownTimeout = 10 * time.Second
)

// Option configures a Server.
type Option func(*Server)

// WithOrchestrator sets the pipeline used for generation.
func WithOrchestrator(o *orchestrator.Orchestrator) Option {
	return func(s *Server) {
		if o != nil {
			s.orchestrator = o
		}
	}
}

// WithExporter sets the exporter used for non-json formats.
func WithExporter(e *export.Exporter) Option {
	return func(s *Server) {
		if e != nil {
			s.exporter = e
		}
	}
}

// WithMaxBodyBytes caps request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Server serves the docgen HTTP API.
type Server struct {
	orchestrator *orchestrator.Orchestrator
	exporter     *export.Exporter
	contract     *contract
	maxBody      int64
	logger       *slog.Logger
}

// New builds a Server and loads its contract.
func New(ctx context.Context, options ...Option) (*Server, error) {
	s := &Server{maxBody: defaultMaxBody}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.orchestrator == nil {
		s.orchestrator = orchestrator.New()
	}
	if s.exporter == nil {
		s.exporter = export.New()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.logger = s.logger.With("component", "server")

	c, err := loadContract(ctx)
	if err != nil {
		return nil, err
	}
	s.contract = c
	return s, nil
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/templates", s.handleTemplates)
	mux.HandleFunc("GET /v1/templates/{id}/questions", s.handleQuestions)
	mux.HandleFunc("POST /v1/documents", s.handleGenerate)
	mux.HandleFunc("POST /v1/documents/stream", s.handleStream)

	states := jurisdictions.New()
	mux.Handle("GET "+states.Path(""), s.validated(states.Handler()))

	mux.HandleFunc("GET /openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(contractYAML)
	})
	return mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}

type templateSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Sections    int    `json:"sections"`
	Questions   int    `json:"questions"`
}

type dataResponse struct {
	Data any `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GenerateRequest is the body of both document endpoints.
type GenerateRequest struct {
	TemplateID string        `json:"templateId"`
	Answers    model.Answers `json:"answers,omitempty"`
	Format     string        `json:"format,omitempty"`
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	if !s.validate(w, r) {
		return
	}
	defs := s.orchestrator.Registry().List()
	out := make([]templateSummary, 0, len(defs))
	for _, def := range defs {
		out = append(out, templateSummary{
			ID:          def.ID,
			Name:        def.Name,
			Category:    def.Category,
			Description: def.Description,
			Sections:    len(def.Sections),
			Questions:   len(def.Questions),
		})
	}
	writeJSON(w, http.StatusOK, dataResponse{Data: out})
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	if !s.validate(w, r) {
		return
	}
	questions, err := s.orchestrator.Registry().Questions(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Data: questions})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	doc, err := s.orchestrator.Run(r.Context(), orchestrator.Request{
		TemplateID: req.TemplateID,
		Answers:    req.Answers,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	format := req.Format
	if format == "" {
		format = jsondoc.Name
	}
	artifact, err := s.exporter.Render(r.Context(), *doc, format)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", artifact.ContentType)
	if format != jsondoc.Name {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Data)
}

type streamLine struct {
	Progress *model.Progress          `json:"progress,omitempty"`
	Document *model.GeneratedDocument `json:"document,omitempty"`
	Error    string                   `json:"error,omitempty"`
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	if !s.orchestrator.Registry().Has(req.TemplateID) {
		s.writeError(w, fmt.Errorf("server: %w: %s", templates.ErrTemplateNotFound, req.TemplateID))
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(w)
	flusher, _ := w.(http.Flusher)
	send := func(line streamLine) {
		if err := enc.Encode(line); err != nil {
			s.logger.Debug("stream write failed", "error", err)
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}

	doc, err := orchestrator.RunWithProgress(r.Context(), s.orchestrator, orchestrator.Request{
		TemplateID: req.TemplateID,
		Answers:    req.Answers,
	}, func(p model.Progress) {
		send(streamLine{Progress: &p})
	})
	if err != nil {
		s.logger.Warn("stream aborted", "template", req.TemplateID, "error", err)
		send(streamLine{Error: err.Error()})
		return
	}
	send(streamLine{Document: doc})
}

// decode validates and parses a generation request, writing the error
// response itself when it fails.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (GenerateRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	if !s.validate(w, r) {
		return GenerateRequest{}, false
	}
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return GenerateRequest{}, false
	}
	return req, true
}

func (s *Server) validate(w http.ResponseWriter, r *http.Request) bool {
	if err := s.contract.validate(r); err != nil {
		s.logger.Debug("request rejected", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return false
	}
	return true
}

// validated runs the contract check before next.
func (s *Server) validated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.validate(w, r) {
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, templates.ErrTemplateNotFound):
		status = http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}
