// Package funding holds the pure arithmetic behind progress bars, milestone
// unlock state and currency conversion. Nothing here performs I/O.
package funding

import (
	"sort"

	"beamband/internal/domain"
)

// MilestoneState is the display state of a milestone against a funding total.
type MilestoneState string

const (
	// MilestoneAchieved means the persisted achieved flag is set.
	MilestoneAchieved MilestoneState = "achieved"
	// MilestoneRecentlyAchieved means the threshold was crossed by a total
	// fresher than the persisted flag; the UI surfaces it distinctly so a
	// backend sync can be prompted.
	MilestoneRecentlyAchieved MilestoneState = "recently-achieved"
	// MilestoneUpcoming means the threshold has not been reached.
	MilestoneUpcoming MilestoneState = "upcoming"
)

// Progress returns the funding percentage clamped to [0, 100] and the amount
// still needed to reach the goal. goal must be positive; callers guard.
func Progress(current, goal float64) (percent, remaining float64) {
	percent = current / goal * 100
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	remaining = goal - current
	if remaining < 0 {
		remaining = 0
	}
	return percent, remaining
}

// MilestoneStatus resolves the display state of a milestone given the city's
// current raised amount.
func MilestoneStatus(m domain.Milestone, current float64) MilestoneState {
	if m.Achieved {
		return MilestoneAchieved
	}
	if current >= m.Amount {
		return MilestoneRecentlyAchieved
	}
	return MilestoneUpcoming
}

// SortMilestones returns a copy ordered by threshold ascending. Equal
// thresholds keep their original relative order.
func SortMilestones(milestones []domain.Milestone) []domain.Milestone {
	sorted := make([]domain.Milestone, len(milestones))
	copy(sorted, milestones)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount < sorted[j].Amount
	})
	return sorted
}
