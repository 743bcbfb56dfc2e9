package adapthttp

import (
	"errors"
	"net/http"

	"wellnesshub/internal/app"
	"wellnesshub/internal/domain"
	"wellnesshub/internal/remote"
)

func (s *Server) handleIssues(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"items": s.issues.List()})
	case http.MethodPost:
		var body struct {
			Title   string `json:"title"`
			Details string `json:"details"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		iss, err := s.issues.Report(r.Context(), body.Title, body.Details, s.currentName(r))
		if errors.Is(err, app.ErrIssueFields) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		resp := map[string]any{"issue": iss}
		if iss.Status == domain.IssuePendingSync {
			resp["notice"] = "backend unreachable; issue saved locally and will sync later"
		}
		writeJSON(w, http.StatusCreated, resp)
	case http.MethodDelete:
		if !s.requireAdmin(w, r) {
			return
		}
		if !s.issues.Remove(r.Context(), r.URL.Query().Get("id")) {
			http.Error(w, "issue not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleIssueSync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	items, err := s.issues.Refresh(r.Context())
	if errors.Is(err, remote.ErrUnavailable) {
		// The cached mirror stays authoritative; report it with a notice.
		writeJSON(w, http.StatusOK, map[string]any{
			"items":  items,
			"notice": "backend unreachable; showing the local copy",
		})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
