// Package server exposes the sprite-sheet codec over HTTP for asset
// pipelines that prefer a service to a linked library.
//
// # Endpoints
//
//	GET  /healthz            liveness probe
//	POST /v1/validate        decode + lint the request body
//	POST /v1/canonical       return the canonical encoding of the body
//	GET  /v1/sheets/{name}   canonical encoding of a sheet file under
//	                         the configured directory
//
// Validation and canonicalization are pure functions of the request
// body. The sheets endpoint caches canonical encodings keyed by the
// content hash of the source file, so edits invalidate naturally.
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/spriteops/asejson/pkg/aseprite"
	"github.com/spriteops/asejson/pkg/cache"
	"github.com/spriteops/asejson/pkg/errors"
)

// maxBodyBytes bounds request bodies. Sheet documents are small; 8 MiB
// leaves room for very large exports.
const maxBodyBytes = 8 << 20

// cacheTTL bounds how long a canonical encoding is kept. Entries are
// keyed by content hash, so the TTL only limits disk growth.
const cacheTTL = 24 * time.Hour

// Config configures a Server.
type Config struct {
	// Dir is the directory served by /v1/sheets. Empty disables the
	// endpoint.
	Dir string

	// Cache stores canonical encodings for /v1/sheets. Nil disables
	// caching.
	Cache cache.Cache

	// Logger receives request logs. Nil uses log.Default().
	Logger *log.Logger
}

// Server is the HTTP handler for the sheet service.
type Server struct {
	dir    string
	cache  cache.Cache
	logger *log.Logger
	mux    *chi.Mux
}

// New creates a Server from cfg.
func New(cfg Config) *Server {
	s := &Server{
		dir:    cfg.Dir,
		cache:  cfg.Cache,
		logger: cfg.Logger,
	}
	if s.cache == nil {
		s.cache = cache.NewNullCache()
	}
	if s.logger == nil {
		s.logger = log.Default()
	}

	mux := chi.NewRouter()
	mux.Use(s.logRequests)
	mux.Get("/healthz", s.handleHealth)
	mux.Post("/v1/validate", s.handleValidate)
	mux.Post("/v1/canonical", s.handleCanonical)
	if s.dir != "" {
		mux.Get("/v1/sheets/{name}", s.handleSheet)
	}
	s.mux = mux
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// logRequests logs one line per request with method, path, and elapsed
// time.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"elapsed", time.Since(start).Round(time.Microsecond))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

// errorBody is the JSON shape of a failed request.
type errorBody struct {
	Code    string `json:"code"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// problemBody is one lint finding.
type problemBody struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// validateResponse reports the outcome of POST /v1/validate.
type validateResponse struct {
	Valid    bool          `json:"valid"`
	Frames   int           `json:"frames"`
	Problems []problemBody `json:"problems"`
	Error    *errorBody    `json:"error,omitempty"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
		return
	}

	sheet, err := aseprite.DecodeBytes(body)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validateResponse{
			Valid:    false,
			Problems: []problemBody{},
			Error:    toErrorBody(err),
		})
		return
	}

	problems := make([]problemBody, 0)
	for _, p := range aseprite.Lint(sheet) {
		problems = append(problems, problemBody{Path: p.Path, Message: p.Message})
	}

	writeJSON(w, http.StatusOK, validateResponse{
		Valid:    true,
		Frames:   len(sheet.Frames),
		Problems: problems,
	})
}

func (s *Server) handleCanonical(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
		return
	}

	sheet, err := aseprite.DecodeBytes(body)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	encoded, err := aseprite.EncodeBytes(sheet)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(encoded)
}

func (s *Server) handleSheet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := errors.ValidateSheetFilename(name); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			writeError(w, http.StatusNotFound, errors.New(errors.ErrCodeFileNotFound, "", "no sheet named %q", name))
			return
		}
		writeError(w, http.StatusInternalServerError, errors.Wrap(errors.ErrCodeInternal, err, "read sheet"))
		return
	}

	key := "canonical:" + cache.Hash(raw)
	if cached, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		s.logger.Debug("cache hit", "sheet", name)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(cached)
		return
	}

	sheet, err := aseprite.DecodeBytes(raw)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	encoded, err := aseprite.EncodeBytes(sheet)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if err := s.cache.Set(r.Context(), key, encoded, cacheTTL); err != nil {
		s.logger.Warn("cache write failed", "sheet", name, "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(encoded)
}

// toErrorBody flattens any error into the wire error shape.
func toErrorBody(err error) *errorBody {
	body := &errorBody{
		Code:    string(errors.ErrCodeInternal),
		Message: errors.UserMessage(err),
	}
	if code := errors.GetCode(err); code != "" {
		body.Code = string(code)
	}
	body.Path = errors.GetPath(err)
	return body
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, struct {
		Error *errorBody `json:"error"`
	}{Error: toErrorBody(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ListenAndServe runs the server on addr until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
