package board

import (
	"time"

	"github.com/google/uuid"

	"github.com/nhle/taskboard/internal/model"
)

// seedSpec describes one demonstration task relative to the seeding time.
type seedSpec struct {
	title       string
	description string
	priority    string
	category    string
	dueInDays   int // 0 means no due date
	completed   bool
}

// seedSpecs spans all three priorities and the four suggested categories so
// a first run has something to filter, sort, and chart.
var seedSpecs = []seedSpec{
	{"Design new dashboard layout", "Create wireframes and high-fidelity designs for the new analytics dashboard", model.PriorityHigh, "design", 9, false},
	{"Implement user authentication", "Add login/signup functionality with JWT tokens", model.PriorityHigh, "development", 8, false},
	{"Write API documentation", "Document all API endpoints for the developer portal", model.PriorityMedium, "work", 13, true},
	{"Team meeting", "Weekly sync with the product team", model.PriorityMedium, "work", 4, false},
	{"Fix responsive bugs", "Address mobile layout issues on the dashboard", model.PriorityHigh, "development", 7, false},
	{"Create marketing assets", "Design social media graphics for product launch", model.PriorityLow, "design", 18, false},
	{"Code review", "Review pull requests from the team", model.PriorityMedium, "development", 5, true},
	{"Update dependencies", "Upgrade packages to their latest versions", model.PriorityLow, "development", 23, false},
	{"User testing session", "Conduct usability tests with 5 participants", model.PriorityHigh, "work", 6, false},
	{"Prepare presentation", "Create slides for the stakeholder meeting", model.PriorityMedium, "work", 0, true},
}

// SeedTasks builds the demonstration task set used on first run or when
// persisted data is unreadable. Creation times step backwards one day per
// task so every sort order is visibly different.
func SeedTasks(now time.Time) []model.Task {
	tasks := make([]model.Task, len(seedSpecs))
	for i, s := range seedSpecs {
		t := model.Task{
			ID:          uuid.New().String(),
			Title:       s.title,
			Description: s.description,
			Priority:    s.priority,
			Category:    s.category,
			Completed:   s.completed,
			CreatedAt:   now.Add(-time.Duration(i+1) * 24 * time.Hour),
		}
		if s.dueInDays > 0 {
			t.DueDate = now.AddDate(0, 0, s.dueInDays).Format(model.DueDateLayout)
		}
		tasks[i] = t
	}
	return tasks
}
