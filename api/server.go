// Package api - Thin HTTP layer over the conversion table
// The API is ONLY responsible for: input ingestion, conversion, output serialization.
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"wageman/core/input"
	"wageman/core/output"
	"wageman/core/wage"
	"wageman/internal/errors"
	"wageman/internal/logging"
)

// Server is the API server
type Server struct {
	router  *chi.Mux
	version string
}

// ConvertRequest is the POST /convert body. Unit accepts 4, "4" or "4 hours".
type ConvertRequest struct {
	Value  *float64        `json:"value"`
	Prefix string          `json:"prefix"`
	Unit   json.RawMessage `json:"unit"`
}

// NewServer creates a new API server
func NewServer(version string) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		version: version,
	}
	s.registerRoutes()
	return s
}

// registerRoutes installs middleware and all API routes
func (s *Server) registerRoutes() {
	r := s.router
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/convert", s.handleConvertQuery)
	r.Post("/convert", s.handleConvertBody)
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
}

// handleConvertQuery handles GET /convert?value=20&prefix=hour&unit=8
func (s *Server) handleConvertQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in, err := parseWage(q.Get("value"), q.Get("prefix"), q.Get("unit"))
	if err != nil {
		s.writeErr(w, err)
		return
	}
	s.convert(w, r, in)
}

// handleConvertBody handles POST /convert
func (s *Server) handleConvertBody(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErr(w, errors.Wrap(errors.TypeInput, "invalid JSON body", err))
		return
	}
	if req.Value == nil {
		s.writeErr(w, errors.Input("value is required"))
		return
	}

	unit := string(req.Unit)
	var text string
	var num json.Number
	switch {
	case json.Unmarshal(req.Unit, &text) == nil:
		unit = text
	case json.Unmarshal(req.Unit, &num) == nil:
		if f, err := num.Float64(); err == nil {
			unit = strconv.FormatFloat(f, 'f', -1, 64)
		}
	}

	in, err := parseWage(strconv.FormatFloat(*req.Value, 'g', -1, 64), req.Prefix, unit)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	s.convert(w, r, in)
}

func (s *Server) convert(w http.ResponseWriter, r *http.Request, in wage.Wage) {
	result := output.NewResult(in, s.version)
	logging.Debug("converted over http",
		zap.String("run_id", result.Metadata.RunID),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Stringer("input", in))

	formatter, err := output.Get(output.FormatJSON, output.Options{Precision: -1})
	if err != nil {
		s.writeErr(w, err)
		return
	}

	var buf bytes.Buffer
	if err := formatter.Render(&buf, result); err != nil {
		s.writeErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		logging.Warn("write response", zap.Error(err))
	}
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "wageman",
	}, http.StatusOK)
}

func parseWage(value, prefix, unit string) (wage.Wage, error) {
	if value == "" {
		return wage.Wage{}, errors.Input("value is required")
	}
	v, err := input.ParseValue(value)
	if err != nil {
		return wage.Wage{}, err
	}
	p, err := input.ParsePrefix(prefix)
	if err != nil {
		return wage.Wage{}, err
	}
	u, err := input.ParseUnit(unit)
	if err != nil {
		return wage.Wage{}, err
	}
	return wage.New(v, p, u), nil
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Warn("write response", zap.Error(err))
	}
}

func (s *Server) writeErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := string(errors.TypeInternal)
	if e, ok := errors.As(err); ok {
		code = string(e.Type)
		switch e.Type {
		case errors.TypeInput, errors.TypeParsing:
			status = http.StatusBadRequest
		case errors.TypeOutput:
			status = http.StatusUnprocessableEntity
		}
	}
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": err.Error(),
		},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
