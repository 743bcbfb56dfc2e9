// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"wellnesshub/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth      *app.AuthService
	wellness  *app.WellnessService
	news      *app.NewsService
	trainers  *app.TrainerService
	tips      *app.TipsService
	community *app.CommunityService
	issues    *app.IssueService
	planner   *app.PlannerService
}

// New creates a Server wired to the given application services.
func New(
	auth *app.AuthService,
	wellness *app.WellnessService,
	news *app.NewsService,
	trainers *app.TrainerService,
	tips *app.TipsService,
	community *app.CommunityService,
	issues *app.IssueService,
	planner *app.PlannerService,
) *Server {
	return &Server{
		auth:      auth,
		wellness:  wellness,
		news:      news,
		trainers:  trainers,
		tips:      tips,
		community: community,
		issues:    issues,
		planner:   planner,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/login", s.handleLogin)
	api.HandleFunc("/logout", s.handleLogout)
	api.HandleFunc("/register", s.handleRegister)
	api.HandleFunc("/me", s.handleMe)

	api.HandleFunc("/metrics/bmi", s.handleComputeBMI)
	api.HandleFunc("/wellness/bmi", s.handleBMISnapshot)
	api.HandleFunc("/wellness/journal", s.handleJournal)
	api.HandleFunc("/wellness/advice", s.handleAdvice)

	api.HandleFunc("/news", s.handleNews)
	api.HandleFunc("/trainers", s.handleTrainers)
	api.HandleFunc("/tips", s.handleTips)

	api.HandleFunc("/community/events", s.handleEvents)
	api.HandleFunc("/community/requests", s.handleRequests)
	api.HandleFunc("/community/requests/approve", s.handleApprove)
	api.HandleFunc("/community/requests/reject", s.handleReject)
	api.HandleFunc("/community/discussions", s.handleDiscussions)
	api.HandleFunc("/community/discussions/message", s.handleDiscussionMessage)

	api.HandleFunc("/issues", s.handleIssues)
	api.HandleFunc("/issues/sync", s.handleIssueSync)

	api.HandleFunc("/planner/tasks", s.handlePlannerTasks)
	api.HandleFunc("/planner/toggle", s.handlePlannerToggle)
	api.HandleFunc("/planner/focus", s.handlePlannerFocus)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	return withNoCache(s.loggingMiddleware(root))
}
