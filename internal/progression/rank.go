package progression

import (
	"errors"
	"math"
	"sort"

	"scoutquest/internal/model"
)

var ErrNoRanks = errors.New("rank list is empty")

// Ladder is an immutable list of ranks ordered by ascending MinPoints.
type Ladder struct {
	ranks []model.Rank
}

type RankStatus struct {
	Points       int
	Current      model.Rank
	Next         *model.Rank
	Progress     int
	PointsToNext int
}

func NewLadder(ranks []model.Rank) (*Ladder, error) {
	if len(ranks) == 0 {
		return nil, ErrNoRanks
	}

	sorted := make([]model.Rank, len(ranks))
	copy(sorted, ranks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinPoints < sorted[j].MinPoints
	})

	return &Ladder{ranks: sorted}, nil
}

func (l *Ladder) Ranks() []model.Rank {
	out := make([]model.Rank, len(l.ranks))
	copy(out, l.ranks)
	return out
}

// CurrentRank returns the highest rank whose threshold is met, or the lowest rank
// when none is.
func (l *Ladder) CurrentRank(points int) model.Rank {
	return l.ranks[l.currentIndex(points)]
}

func (l *Ladder) NextRank(points int) (model.Rank, bool) {
	current := l.ranks[l.currentIndex(points)]
	for _, r := range l.ranks {
		if r.MinPoints > points && r.MinPoints > current.MinPoints {
			return r, true
		}
	}
	return model.Rank{}, false
}

func (l *Ladder) Progress(points int) int {
	next, ok := l.NextRank(points)
	if !ok {
		return 100
	}

	return bandPercent(points, l.CurrentRank(points).MinPoints, next.MinPoints)
}

func (l *Ladder) Status(points int) RankStatus {
	status := RankStatus{
		Points:   points,
		Current:  l.CurrentRank(points),
		Progress: l.Progress(points),
	}

	if next, ok := l.NextRank(points); ok {
		status.Next = &next
		status.PointsToNext = next.MinPoints - points
	}

	return status
}

func (l *Ladder) currentIndex(points int) int {
	for i := len(l.ranks) - 1; i >= 0; i-- {
		if points >= l.ranks[i].MinPoints {
			return i
		}
	}
	return 0
}

// bandPercent interpolates points between two thresholds as 0..100.
func bandPercent(points, from, to int) int {
	width := to - from
	if width <= 0 {
		if points >= to {
			return 100
		}
		return 0
	}

	percent := int(math.Round(float64(points-from) * 100 / float64(width)))
	return clampPercent(percent)
}

func clampPercent(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
