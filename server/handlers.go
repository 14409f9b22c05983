package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jongio/uri-core/logutil"
	"github.com/jongio/uri-core/uri"
)

// maxBodyBytes caps POST /v1/parse bodies.
const maxBodyBytes = 64 << 10

// ParseRequest is the POST /v1/parse body.
type ParseRequest struct {
	URI       string `json:"uri"`
	Delimiter string `json:"delimiter,omitempty"`
}

// ErrorResponse is returned for every non-2xx answer produced by this package.
type ErrorResponse struct {
	Error string `json:"error"`
	Input string `json:"input,omitempty"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		if !q.Has("uri") {
			writeErrorJSON(w, http.StatusBadRequest, "missing uri query parameter")
			return
		}
		req.URI = q.Get("uri")
		req.Delimiter = q.Get("delimiter")

	case http.MethodPost:
		if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
			writeErrorJSON(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
		if err != nil {
			writeErrorJSON(w, http.StatusBadRequest, "failed to read request body")
			return
		}
		if len(body) > maxBodyBytes {
			writeErrorJSON(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(body, &raw); err != nil {
			writeErrorJSON(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if _, ok := raw["uri"]; !ok {
			writeErrorJSON(w, http.StatusBadRequest, "missing uri field")
			return
		}
		if err := json.Unmarshal(body, &req); err != nil {
			writeErrorJSON(w, http.StatusBadRequest, "invalid request body")
			return
		}

	default:
		w.Header().Set("Allow", "GET, POST")
		writeErrorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	delimiter := req.Delimiter
	if delimiter == "" {
		delimiter = s.opts.PathDelimiter
	}

	log := s.log.WithOperation("parse").WithRequest(RequestID(r.Context()))

	start := time.Now()
	c, err := uri.ParseString(req.URI, delimiter)
	recordParse(c, err, time.Since(start))

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, uri.ErrInvalidPort) {
			status = http.StatusUnprocessableEntity
		}
		log.Info("parse rejected", "input", req.URI, "error", err)
		writeJSON(w, status, ErrorResponse{Error: err.Error(), Input: req.URI})
		return
	}

	log.Debug("parsed", "scheme", c.Scheme, "host", c.Host, "segments", len(c.Path))
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		writeErrorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logutil.Error("failed to encode response", "error", err)
	}
}

func writeErrorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
