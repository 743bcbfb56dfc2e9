package adapthttp

import (
	"net/http"

	"wellnesshub/internal/domain"
)

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"items": s.community.Events()})
	case http.MethodPost:
		// Direct publication skips the review queue, so it is admin-only.
		if !s.requireAdmin(w, r) {
			return
		}
		var details domain.EventDetails
		if err := parseJSON(r, &details); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		event := s.community.PublishDirect(r.Context(), details, s.currentName(r))
		writeJSON(w, http.StatusCreated, event)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleRequests(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if !s.requireAdmin(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": s.community.PendingRequests()})
	case http.MethodPost:
		var details domain.EventDetails
		if err := parseJSON(r, &details); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		req := s.community.Submit(r.Context(), details, s.currentName(r))
		writeJSON(w, http.StatusCreated, req)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}
	var body struct {
		ID string `json:"id"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	event, ok := s.community.Approve(r.Context(), body.ID)
	if !ok {
		http.Error(w, "request not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (s *Server) handleReject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}
	var body struct {
		ID string `json:"id"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if !s.community.Reject(r.Context(), body.ID) {
		http.Error(w, "request not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}

func (s *Server) handleDiscussions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"topics": s.community.Discussions()})
}

func (s *Server) handleDiscussionMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		TopicID string `json:"topicId"`
		Content string `json:"content"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	msg, ok := s.community.AddMessage(r.Context(), body.TopicID, s.currentName(r), body.Content)
	if !ok {
		http.Error(w, "topic not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}
