package domain

// PlannerTask is a single focus-planner task with its accumulated deep-focus
// minutes.
type PlannerTask struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Completed    bool   `json:"completed"`
	FocusMinutes int    `json:"focusMinutes"`
}

// PlannerState is the persisted focus-planner snapshot: the task list plus a
// running total of focused minutes across all tasks.
type PlannerState struct {
	Tasks             []PlannerTask `json:"tasks"`
	TotalFocusMinutes int           `json:"totalFocusMinutes"`
}
