package model

type Rank struct {
	ID          int
	Name        string
	Color       string
	MinPoints   int
	Image       string
	Description string
}

type Reward struct {
	ID             string
	Name           string
	Description    string
	PointsRequired int
	Image          string
}

type AchievementCategory struct {
	ID          string
	Name        string
	Description string
	Color       string
}
