package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// ServerInstance represents a running HTTP test server.
type ServerInstance struct {
	BaseURL string
	Close   func()

	mu       sync.Mutex
	requests []string
}

// Requests returns the paths requested so far.
func (s *ServerInstance) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// StartDatasetServer serves files keyed by path (without the leading slash).
// Unknown paths answer 404. The server closes when the test ends.
func StartDatasetServer(t testing.TB, files map[string]string) *ServerInstance {
	t.Helper()
	instance := &ServerInstance{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		instance.mu.Lock()
		instance.requests = append(instance.requests, r.URL.Path)
		instance.mu.Unlock()
		body, ok := files[strings.TrimPrefix(r.URL.Path, "/")]
		if !ok {
			http.Error(w, "no such dataset", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	instance.BaseURL = server.URL
	instance.Close = server.Close
	t.Cleanup(server.Close)
	return instance
}
