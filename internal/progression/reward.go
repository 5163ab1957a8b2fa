package progression

import (
	"sort"

	"scoutquest/internal/model"
)

// RewardTrack holds rewards ordered by ascending PointsRequired. Unlike ranks,
// any number of rewards can be unlocked at once.
type RewardTrack struct {
	rewards []model.Reward
}

type RewardStatus struct {
	Reward   model.Reward
	Unlocked bool
	Progress int
}

func NewRewardTrack(rewards []model.Reward) *RewardTrack {
	sorted := make([]model.Reward, len(rewards))
	copy(sorted, rewards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PointsRequired < sorted[j].PointsRequired
	})

	return &RewardTrack{rewards: sorted}
}

func (t *RewardTrack) Rewards() []model.Reward {
	out := make([]model.Reward, len(t.rewards))
	copy(out, t.rewards)
	return out
}

func Unlocked(reward model.Reward, points int) bool {
	return points >= reward.PointsRequired
}

func (t *RewardTrack) WithUnlocked(points int) []RewardStatus {
	out := make([]RewardStatus, len(t.rewards))
	for i, r := range t.rewards {
		out[i] = RewardStatus{
			Reward:   r,
			Unlocked: Unlocked(r, points),
			Progress: t.Progress(points, r),
		}
	}
	return out
}

func (t *RewardTrack) NextReward(points int) (model.Reward, bool) {
	for _, r := range t.rewards {
		if r.PointsRequired > points {
			return r, true
		}
	}
	return model.Reward{}, false
}

// Progress measures points against target, starting from the closest lower
// reward threshold (or zero).
func (t *RewardTrack) Progress(points int, target model.Reward) int {
	previous := 0
	for _, r := range t.rewards {
		if r.PointsRequired < target.PointsRequired && r.PointsRequired > previous {
			previous = r.PointsRequired
		}
	}

	if target.PointsRequired <= previous {
		if points >= previous {
			return 100
		}
		return 0
	}

	earned := points - previous
	if earned < 0 {
		earned = 0
	}

	return bandPercent(previous+earned, previous, target.PointsRequired)
}

func (t *RewardTrack) UnlockedCount(points int) int {
	n := 0
	for _, r := range t.rewards {
		if Unlocked(r, points) {
			n++
		}
	}
	return n
}
