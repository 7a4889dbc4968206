// Package query provides pure functions computing derived views over task
// snapshots: filtered and sorted lists, aggregate statistics, and per-bucket
// distributions. Nothing in this package mutates its input.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nhle/taskboard/internal/model"
)

// Status filter values.
const (
	StatusAll       = "all"
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusHigh      = "high"
)

// Sort key values.
const (
	SortDateDesc = "date-desc"
	SortDateAsc  = "date-asc"
	SortPriority = "priority"
	SortAlpha    = "alpha"
)

// View is the ephemeral UI input driving the derived task views. It is not
// part of the durable data model.
type View struct {
	Search string
	Status string
	Sort   string
}

// alphaCollator orders titles with locale-aware collation rather than raw
// byte comparison.
var alphaCollator = collate.New(language.Und)

// Filter returns the tasks passing both the status filter and the search
// term (AND semantics). The search term matches case-insensitively as a
// substring against title or description.
func Filter(tasks []model.Task, v View) []model.Task {
	term := strings.ToLower(strings.TrimSpace(v.Search))

	var out []model.Task
	for _, t := range tasks {
		if !matchesStatus(t, v.Status) {
			continue
		}
		if term != "" && !matchesSearch(t, term) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// matchesStatus applies the status filter. Unknown filters behave as "all".
func matchesStatus(t model.Task, status string) bool {
	switch status {
	case StatusPending:
		return !t.Completed
	case StatusCompleted:
		return t.Completed
	case StatusHigh:
		return t.Priority == model.PriorityHigh && !t.Completed
	default:
		return true
	}
}

func matchesSearch(t model.Task, term string) bool {
	return strings.Contains(strings.ToLower(t.Title), term) ||
		strings.Contains(strings.ToLower(t.Description), term)
}

// Sort returns a new ordered slice. All orders are stable: ties retain
// their relative input order. Unknown keys return the input order.
func Sort(tasks []model.Task, key string) []model.Task {
	sorted := make([]model.Task, len(tasks))
	copy(sorted, tasks)

	switch key {
	case SortDateDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	case SortDateAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	case SortPriority:
		sort.SliceStable(sorted, func(i, j int) bool {
			return model.PriorityWeight(sorted[i].Priority) > model.PriorityWeight(sorted[j].Priority)
		})
	case SortAlpha:
		sort.SliceStable(sorted, func(i, j int) bool {
			return alphaCollator.CompareString(sorted[i].Title, sorted[j].Title) < 0
		})
	}

	return sorted
}

// Summary holds the aggregate counters shown on the dashboard. All counts
// are tallied over the full, unfiltered collection.
type Summary struct {
	Total               int
	Pending             int
	Completed           int
	HighPriorityPending int
}

// Stats tallies the dashboard counters in a single linear scan.
func Stats(tasks []model.Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
			continue
		}
		s.Pending++
		if t.Priority == model.PriorityHigh {
			s.HighPriorityPending++
		}
	}
	return s
}

// Bucket is one bar of a distribution chart: a name, its count, and its
// percentage share of the total (0 when the collection is empty).
type Bucket struct {
	Name    string
	Count   int
	Percent float64
}

// PriorityDistribution counts tasks per priority level, highest first.
func PriorityDistribution(tasks []model.Task) []Bucket {
	counts := make(map[string]int)
	for _, t := range tasks {
		counts[t.Priority]++
	}

	buckets := make([]Bucket, len(model.Priorities))
	for i, p := range model.Priorities {
		buckets[i] = Bucket{
			Name:    p,
			Count:   counts[p],
			Percent: share(counts[p], len(tasks)),
		}
	}
	return buckets
}

// CategoryDistribution counts tasks per category for the given buckets.
// Tasks in categories outside the list are not counted anywhere; category
// is free-form text, so the caller decides which buckets to chart.
func CategoryDistribution(tasks []model.Task, categories []string) []Bucket {
	counts := make(map[string]int)
	for _, t := range tasks {
		counts[t.Category]++
	}

	buckets := make([]Bucket, len(categories))
	for i, c := range categories {
		buckets[i] = Bucket{
			Name:    c,
			Count:   counts[c],
			Percent: share(counts[c], len(tasks)),
		}
	}
	return buckets
}

// CompletionRate returns the percentage of completed tasks, 0 for an
// empty collection.
func CompletionRate(tasks []model.Task) float64 {
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return share(completed, len(tasks))
}

// share computes a percentage without ever dividing by zero.
func share(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
