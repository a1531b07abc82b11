// Package placementtest serves canned placement backend responses for tests.
package placementtest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// APIPrefix is where the fake backend mounts its routes, as the real one does.
const APIPrefix = "/api"

type Response struct {
	Status int
	Body   string
}

type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests []Request
}

// NewServer starts a fake backend that answers 404 {"detail":"Not Found"} for unknown routes.
func NewServer(t *testing.T) *Server {
	s := &Server{routes: make(map[string]http.HandlerFunc)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Host is the base address a client should be configured with.
func (s *Server) Host() string {
	return s.URL + APIPrefix
}

// Handle registers the response for method and path (without the /api prefix).
func (s *Server) Handle(method, path string, status int, body string) *Server {
	response := Response{Status: status, Body: body}
	if response.Status == 0 {
		response.Status = http.StatusOK
	}
	return s.HandleFunc(method, path, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(response.Status)
		_, _ = io.WriteString(w, response.Body)
	})
}

// HandleFunc registers a handler for stateful routes. The request body is already
// consumed and available through Requests.
func (s *Server) HandleFunc(method, path string, handler http.HandlerFunc) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[method+" "+APIPrefix+path] = handler
	return s
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	})
	handler, ok := s.routes[r.Method+" "+r.URL.Path]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"detail":"Not Found"}`)
		return
	}
	handler(w, r)
}
