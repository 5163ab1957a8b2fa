package progression

import (
	"math"
	"strings"

	"scoutquest/internal/model"

	"github.com/google/uuid"
)

// FilterAll matches every value of the field it is set on.
const FilterAll = "all"

type Filter struct {
	Search   string
	Category string
	Level    string
}

func (f Filter) Match(a model.Achievement) bool {
	if term := strings.TrimSpace(f.Search); term != "" {
		term = strings.ToLower(term)
		if !strings.Contains(strings.ToLower(a.Name), term) &&
			!strings.Contains(strings.ToLower(a.Description), term) {
			return false
		}
	}

	if !isAll(f.Category) && a.CategoryID != f.Category {
		return false
	}

	if !isAll(f.Level) && string(a.Level) != f.Level {
		return false
	}

	return true
}

func (f Filter) Apply(achievements []model.Achievement) []model.Achievement {
	out := make([]model.Achievement, 0, len(achievements))
	for _, a := range achievements {
		if f.Match(a) {
			out = append(out, a)
		}
	}
	return out
}

func isAll(v string) bool {
	return v == "" || v == FilterAll
}

// Board is one scout's view of the catalog.
type Board struct {
	Available []model.Achievement
	Pending   []model.Achievement
	Completed []model.Achievement
	Rejected  []model.Achievement
}

func Partition(catalog []model.Achievement, applications []model.ScoutAchievement) Board {
	status := make(map[uuid.UUID]model.ApplicationStatus, len(applications))
	for _, app := range applications {
		status[app.AchievementID] = app.Status
	}

	board := Board{
		Available: make([]model.Achievement, 0),
		Pending:   make([]model.Achievement, 0),
		Completed: make([]model.Achievement, 0),
		Rejected:  make([]model.Achievement, 0),
	}

	for _, a := range catalog {
		s, applied := status[a.ID]
		switch {
		case !applied:
			board.Available = append(board.Available, a)
		case s == model.StatusApproved:
			board.Completed = append(board.Completed, a)
		case s == model.StatusRejected:
			board.Rejected = append(board.Rejected, a)
		default:
			board.Pending = append(board.Pending, a)
		}
	}

	return board
}

func (b Board) Filter(f Filter) Board {
	return Board{
		Available: f.Apply(b.Available),
		Pending:   f.Apply(b.Pending),
		Completed: f.Apply(b.Completed),
		Rejected:  f.Apply(b.Rejected),
	}
}

type CategoryProgress struct {
	Category  model.AchievementCategory
	Completed int
	Total     int
	Percent   int
}

func CompletionPercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}

func CategoryCompletion(
	categories []model.AchievementCategory,
	catalog []model.Achievement,
	completed []model.Achievement,
) []CategoryProgress {
	totals := make(map[string]int)
	for _, a := range catalog {
		totals[a.CategoryID]++
	}

	done := make(map[string]int)
	for _, a := range completed {
		done[a.CategoryID]++
	}

	out := make([]CategoryProgress, len(categories))
	for i, c := range categories {
		out[i] = CategoryProgress{
			Category:  c,
			Completed: done[c.ID],
			Total:     totals[c.ID],
			Percent:   CompletionPercent(done[c.ID], totals[c.ID]),
		}
	}
	return out
}
