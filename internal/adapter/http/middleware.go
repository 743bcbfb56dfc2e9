package adapthttp

import (
	"log"
	"net/http"
	"time"

	"wellnesshub/internal/domain"
)

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

// requireAdmin gates the handlers reserved for the admin role. It reads the
// persisted identity rather than the request, since the hub runs as a
// single-user local service.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	id := s.auth.Current(r.Context())
	if !id.IsAuthenticated || id.Role != domain.RoleAdmin {
		http.Error(w, "admin role required", http.StatusForbidden)
		return false
	}
	return true
}

// currentName returns the signed-in user's display name, or "" when signed
// out so the services apply their own defaults.
func (s *Server) currentName(r *http.Request) string {
	id := s.auth.Current(r.Context())
	if !id.IsAuthenticated || id.User == nil {
		return ""
	}
	return id.User.DisplayName
}
