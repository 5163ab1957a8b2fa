package progression

import (
	"testing"

	"scoutquest/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testCatalog() []model.Achievement {
	return []model.Achievement{
		{ID: uuid.New(), Name: "Fire Building", Description: "Safely build a campfire.", Points: 25, CategoryID: "outdoor", Level: model.LevelBeginner},
		{ID: uuid.New(), Name: "Wilderness Survival", Description: "Survive 48 hours outdoors.", Points: 75, CategoryID: "outdoor", Level: model.LevelAdvanced},
		{ID: uuid.New(), Name: "Community Service", Description: "Volunteer in your community.", Points: 50, CategoryID: "citizenship", Level: model.LevelIntermediate},
		{ID: uuid.New(), Name: "Robotics", Description: "Build and program a robot.", Points: 45, CategoryID: "stem", Level: model.LevelAdvanced},
		{ID: uuid.New(), Name: "First Aid", Description: "Learn to treat injuries and FIRE burns.", Points: 55, CategoryID: "emergency", Level: model.LevelIntermediate},
	}
}

func names(list []model.Achievement) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.Name
	}
	return out
}

func TestFilter_Apply(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "no filter", filter: Filter{}, want: names(catalog)},
		{name: "all sentinels", filter: Filter{Category: FilterAll, Level: FilterAll}, want: names(catalog)},
		{name: "search is case insensitive over name and description", filter: Filter{Search: "fire"}, want: []string{"Fire Building", "First Aid"}},
		{name: "category", filter: Filter{Category: "outdoor"}, want: []string{"Fire Building", "Wilderness Survival"}},
		{name: "level", filter: Filter{Level: "advanced"}, want: []string{"Wilderness Survival", "Robotics"}},
		{name: "predicates are conjunctive", filter: Filter{Search: "fire", Category: "outdoor", Level: "beginner"}, want: []string{"Fire Building"}},
		{name: "no match", filter: Filter{Search: "fire", Category: "stem"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(catalog)
			assert.Equal(t, tt.want, names(got))

			assert.Equal(t, got, tt.filter.Apply(got), "filter must be idempotent")
		})
	}
}

func TestPartition(t *testing.T) {
	catalog := testCatalog()
	scoutID := uuid.New()

	apps := []model.ScoutAchievement{
		{ScoutID: scoutID, AchievementID: catalog[0].ID, Status: model.StatusApproved},
		{ScoutID: scoutID, AchievementID: catalog[1].ID, Status: model.StatusPending},
		{ScoutID: scoutID, AchievementID: catalog[2].ID, Status: model.StatusRejected},
	}

	board := Partition(catalog, apps)
	assert.Equal(t, []string{"Fire Building"}, names(board.Completed))
	assert.Equal(t, []string{"Wilderness Survival"}, names(board.Pending))
	assert.Equal(t, []string{"Community Service"}, names(board.Rejected))
	assert.Equal(t, []string{"Robotics", "First Aid"}, names(board.Available))

	filtered := board.Filter(Filter{Category: "outdoor"})
	assert.Empty(t, filtered.Available)
	assert.Len(t, filtered.Completed, 1)
	assert.Len(t, filtered.Pending, 1)
}

func TestCategoryCompletion(t *testing.T) {
	catalog := testCatalog()
	completed := []model.Achievement{catalog[0]}

	categories := append([]model.AchievementCategory{}, Categories...)
	categories = append(categories, model.AchievementCategory{ID: "empty", Name: "Empty"})

	got := CategoryCompletion(categories, catalog, completed)
	byID := make(map[string]CategoryProgress)
	for _, c := range got {
		byID[c.Category.ID] = c
	}

	assert.Equal(t, 50, byID["outdoor"].Percent)
	assert.Equal(t, 0, byID["stem"].Percent)
	assert.Equal(t, 1, byID["stem"].Total)
	assert.Equal(t, 0, byID["empty"].Percent)
	assert.Equal(t, 0, byID["empty"].Total)
}

func TestCompletionPercent(t *testing.T) {
	assert.Equal(t, 0, CompletionPercent(0, 0))
	assert.Equal(t, 33, CompletionPercent(1, 3))
	assert.Equal(t, 67, CompletionPercent(2, 3))
	assert.Equal(t, 100, CompletionPercent(4, 4))
}
