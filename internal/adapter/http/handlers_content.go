package adapthttp

import (
	"net/http"

	"wellnesshub/internal/domain"
)

// The three content collections share one handler shape: public reads,
// admin-gated writes, deletes addressed by an id query parameter.

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"items": s.news.List()})
	case http.MethodPost:
		if !s.requireAdmin(w, r) {
			return
		}
		var a domain.NewsArticle
		if err := parseJSON(r, &a); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusCreated, s.news.Add(r.Context(), a))
	case http.MethodPut:
		if !s.requireAdmin(w, r) {
			return
		}
		var a domain.NewsArticle
		if err := parseJSON(r, &a); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if !s.news.Update(r.Context(), a) {
			http.Error(w, "article not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, a)
	case http.MethodDelete:
		if !s.requireAdmin(w, r) {
			return
		}
		if !s.news.Remove(r.Context(), r.URL.Query().Get("id")) {
			http.Error(w, "article not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleTrainers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"items": s.trainers.List()})
	case http.MethodPost:
		if !s.requireAdmin(w, r) {
			return
		}
		var t domain.Trainer
		if err := parseJSON(r, &t); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusCreated, s.trainers.Add(r.Context(), t))
	case http.MethodPut:
		if !s.requireAdmin(w, r) {
			return
		}
		var t domain.Trainer
		if err := parseJSON(r, &t); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if !s.trainers.Update(r.Context(), t) {
			http.Error(w, "trainer not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, t)
	case http.MethodDelete:
		if !s.requireAdmin(w, r) {
			return
		}
		if !s.trainers.Remove(r.Context(), r.URL.Query().Get("id")) {
			http.Error(w, "trainer not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleTips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"items": s.tips.List()})
	case http.MethodPost:
		if !s.requireAdmin(w, r) {
			return
		}
		var body struct {
			Text   string `json:"text"`
			Author string `json:"author"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusCreated, s.tips.Add(r.Context(), body.Text, body.Author))
	case http.MethodPut:
		if !s.requireAdmin(w, r) {
			return
		}
		var tip domain.Tip
		if err := parseJSON(r, &tip); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if !s.tips.Update(r.Context(), tip) {
			http.Error(w, "tip not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, tip)
	case http.MethodDelete:
		if !s.requireAdmin(w, r) {
			return
		}
		if !s.tips.Remove(r.Context(), r.URL.Query().Get("id")) {
			http.Error(w, "tip not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
