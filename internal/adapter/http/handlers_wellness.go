package adapthttp

import (
	"errors"
	"net/http"

	"wellnesshub/internal/domain"
)

func (s *Server) handleComputeBMI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in domain.MetricsInput
	if err := parseJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.wellness.Calculate(in)
	if errors.Is(err, domain.ErrAgeOutOfRange) ||
		errors.Is(err, domain.ErrUnknownUnits) ||
		errors.Is(err, domain.ErrNonPositiveInput) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"result": result,
		"advice": domain.AdviceFor(result.Status),
	})
}

func (s *Server) handleBMISnapshot(w http.ResponseWriter, r *http.Request) {
	userKey := s.auth.UserKey(r.Context())
	switch r.Method {
	case http.MethodGet:
		snap := s.wellness.LoadBMI(r.Context(), userKey)
		writeJSON(w, http.StatusOK, map[string]any{"saved": snap})
	case http.MethodPost:
		var body struct {
			Value  float64 `json:"value"`
			Status string  `json:"status"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		status := domain.BMIStatus(body.Status)
		if status == "" {
			status = domain.ClassifyBMI(body.Value)
		}
		snap := s.wellness.SaveBMI(r.Context(), userKey, body.Value, status)
		writeJSON(w, http.StatusOK, map[string]any{"saved": snap})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	userKey := s.auth.UserKey(r.Context())
	switch r.Method {
	case http.MethodGet:
		snap := s.wellness.LoadJournal(r.Context(), userKey)
		writeJSON(w, http.StatusOK, map[string]any{"entry": snap})
	case http.MethodPost:
		var body struct {
			Text string `json:"text"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		snap := s.wellness.SaveJournal(r.Context(), userKey, body.Text)
		writeJSON(w, http.StatusOK, map[string]any{"entry": snap})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	status := domain.BMIStatus(r.URL.Query().Get("status"))
	writeJSON(w, http.StatusOK, map[string]any{
		"status": status,
		"advice": domain.AdviceFor(status),
	})
}
