// Package httpapi exposes a read-only view over the monitor's files: the
// configured entries and the last persisted status map. It never mutates
// state; passes stay the single writer.
package httpapi

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"urlwatch/internal/domain"
	"urlwatch/internal/entries"
	"urlwatch/internal/probe"
	"urlwatch/internal/status"
)

type Server struct {
	Logger  *zap.Logger
	Entries entries.Source
	Status  status.Store
	Checker probe.Checker
}

func NewServer(l *zap.Logger, src entries.Source, store status.Store, c probe.Checker) *Server {
	return &Server{Logger: l, Entries: src, Status: store, Checker: c}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/status", s.handleStatus)
	r.Get("/api/entries", s.handleEntries)
	r.Get("/api/check", s.handleCheck)

	return r
}

// handleStatus returns the status map as last persisted; URLs never checked
// are simply absent.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.Status.Load())
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	list, err := s.Entries.Load()
	if err != nil {
		s.Logger.Warn("entries_load_error", zap.Error(err))
		list = nil
	}
	if list == nil {
		list = []domain.Entry{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

type checkResponse struct {
	URL   string       `json:"url"`
	State domain.State `json:"state"`
}

// handleCheck runs one synchronous probe for immediate feedback. It does not
// consult or touch the status file.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("url")
	if !isValidHTTPURL(target) {
		http.Error(w, "invalid url", http.StatusBadRequest)
		return
	}

	st := s.Checker.Check(r.Context(), target)
	s.Logger.Info("adhoc_check",
		zap.String("url", target),
		zap.String("state", string(st)),
	)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(checkResponse{URL: target, State: st})
}

func isValidHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}
