package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/logger"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/services"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/services/token"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/services/usage"
)

// minServiceLineLength rejects obviously truncated identifiers before
// hitting the upstream API.
const minServiceLineLength = 7

// errorResponse is the JSON error body for API consumers.
type errorResponse struct {
	Error string `json:"error"`
}

// Server serves the dashboard query API.
type Server struct {
	manager *services.Manager
	http    *http.Server
}

// New creates an API server listening on addr.
func New(addr string, manager *services.Manager) *Server {
	s := &Server{manager: manager}

	router := NewRouter(Routes{
		{
			Name:        "Usage",
			Method:      http.MethodGet,
			Pattern:     "/api/starlink/usage",
			HandlerFunc: s.handleUsage,
		},
		{
			Name:        "RawUsage",
			Method:      http.MethodGet,
			Pattern:     "/api/starlink/raw-usage",
			HandlerFunc: s.handleRawUsage,
		},
	})

	s.http = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe blocks serving requests until Shutdown is called.
func (s *Server) ListenAndServe() error {
	logger.Info("api server listening", "addr", s.http.Addr)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// serviceLineParam extracts and validates the serviceLineNumber query
// parameter. The empty string return signals the 400 was written.
func serviceLineParam(w http.ResponseWriter, r *http.Request) string {
	line := strings.TrimSpace(r.URL.Query().Get("serviceLineNumber"))
	if line == "" {
		writeError(w, http.StatusBadRequest, "missing serviceLineNumber")
		return ""
	}
	if len(line) < minServiceLineLength {
		writeError(w, http.StatusBadRequest, "serviceLineNumber is too short")
		return ""
	}
	return line
}

// handleUsage returns the normalized dashboard for a service line.
func (s *Server) handleUsage(w http.ResponseWriter, r *http.Request) {
	line := serviceLineParam(w, r)
	if line == "" {
		return
	}

	dashboard, err := s.manager.Query(r.Context(), line)
	if err != nil {
		writeQueryError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dashboard); err != nil {
		logger.Error("failed to encode dashboard", "error", err)
	}
}

// handleRawUsage proxies the upstream usage response body untouched.
func (s *Server) handleRawUsage(w http.ResponseWriter, r *http.Request) {
	line := serviceLineParam(w, r)
	if line == "" {
		return
	}

	raw, err := s.manager.QueryRaw(r.Context(), line)
	if err != nil {
		writeQueryError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil {
		logger.Error("failed to write raw usage", "error", err)
	}
}

// writeQueryError maps query failures onto HTTP responses. Upstream
// usage failures keep their status code and body verbatim; everything
// else becomes a JSON error message.
func writeQueryError(w http.ResponseWriter, err error) {
	var upErr *usage.UpstreamError
	if errors.As(err, &upErr) {
		w.WriteHeader(upErr.StatusCode)
		if _, werr := w.Write([]byte(upErr.Body)); werr != nil {
			logger.Error("failed to write upstream error", "error", werr)
		}
		return
	}

	var authErr *token.AuthError
	switch {
	case errors.As(err, &authErr):
		writeError(w, http.StatusBadGateway, "upstream authentication failed")
	case errors.Is(err, usage.ErrNoResults):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
	logger.Error("usage query failed", "error", err)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: msg}); err != nil {
		logger.Error("failed to encode error response", "error", err)
	}
}
