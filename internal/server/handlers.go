package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/jmylchreest/pctnorm/internal/output"
)

// NormalizeRequest is the POST /normalize body.
// Value is a pointer so an empty string is a value, not a missing field.
type NormalizeRequest struct {
	Value *string `json:"value" validate:"required"`
}

// ErrorResponse reports a request that could not be processed.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.writeJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) normalizeQuery(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	if !query.Has("value") {
		s.writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: "missing value parameter"})
		return
	}
	s.respond(w, r, query.Get("value"))
}

func (s *Server) normalizeBody(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)

	var req NormalizeRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeJSON(w, r, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})
			return
		}
		s.writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: "value is required"})
		return
	}

	s.respond(w, r, *req.Value)
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, raw string) {
	result := s.normalizer.Normalize(raw)

	status := http.StatusOK
	if !result.Success() {
		status = http.StatusUnprocessableEntity
		s.log.Debug("normalization failed",
			"request_id", RequestIDFrom(r.Context()),
			"input", raw,
			"kind", result.Kind().String(),
			"error", result.Err,
		)
	}
	s.writeJSON(w, r, status, output.NewRecord(result))
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to write JSON response",
			"request_id", RequestIDFrom(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
	}
}
