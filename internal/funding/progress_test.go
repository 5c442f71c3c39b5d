package funding

import (
	"testing"

	"beamband/internal/domain"
)

func TestProgress(t *testing.T) {
	cases := []struct {
		name          string
		current, goal float64
		wantPercent   float64
		wantRemaining float64
	}{
		{"partial", 32000, 50000, 64, 18000},
		{"zero", 0, 50000, 0, 50000},
		{"exact goal", 50000, 50000, 100, 0},
		{"over goal clamps", 120000, 50000, 100, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			percent, remaining := Progress(tc.current, tc.goal)
			if percent != tc.wantPercent {
				t.Fatalf("percent = %v, want %v", percent, tc.wantPercent)
			}
			if remaining != tc.wantRemaining {
				t.Fatalf("remaining = %v, want %v", remaining, tc.wantRemaining)
			}
		})
	}
}

func TestProgressStaysInRange(t *testing.T) {
	for current := float64(0); current <= 200000; current += 7919 {
		percent, remaining := Progress(current, 75000)
		if percent < 0 || percent > 100 {
			t.Fatalf("percent %v out of range for current %v", percent, current)
		}
		if current >= 75000 && percent != 100 {
			t.Fatalf("percent = %v, want 100 for current %v", percent, current)
		}
		if remaining < 0 {
			t.Fatalf("remaining %v negative for current %v", remaining, current)
		}
	}
}

func TestMilestoneStatus(t *testing.T) {
	achieved := domain.Milestone{Amount: 10000, Achieved: true}
	if got := MilestoneStatus(achieved, 0); got != MilestoneAchieved {
		t.Fatalf("status = %q, want %q", got, MilestoneAchieved)
	}

	crossed := domain.Milestone{Amount: 25000}
	if got := MilestoneStatus(crossed, 32000); got != MilestoneRecentlyAchieved {
		t.Fatalf("status = %q, want %q", got, MilestoneRecentlyAchieved)
	}
	if got := MilestoneStatus(crossed, 25000); got != MilestoneRecentlyAchieved {
		t.Fatalf("status at exact threshold = %q, want %q", got, MilestoneRecentlyAchieved)
	}

	upcoming := domain.Milestone{Amount: 40000}
	if got := MilestoneStatus(upcoming, 32000); got != MilestoneUpcoming {
		t.Fatalf("status = %q, want %q", got, MilestoneUpcoming)
	}
}

func TestSortMilestonesAscending(t *testing.T) {
	input := []domain.Milestone{
		{ID: "b", Amount: 25000},
		{ID: "a", Amount: 10000},
		{ID: "c", Amount: 40000},
	}
	sorted := SortMilestones(input)

	want := []string{"a", "b", "c"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Fatalf("sorted[%d].ID = %q, want %q", i, sorted[i].ID, id)
		}
	}
	if input[0].ID != "b" {
		t.Fatal("input slice should not be mutated")
	}
}

func TestSortMilestonesStableOnTies(t *testing.T) {
	input := []domain.Milestone{
		{ID: "first", Amount: 25000},
		{ID: "second", Amount: 25000},
		{ID: "low", Amount: 10000},
	}
	sorted := SortMilestones(input)

	if sorted[0].ID != "low" || sorted[1].ID != "first" || sorted[2].ID != "second" {
		t.Fatalf("unexpected order: %q %q %q", sorted[0].ID, sorted[1].ID, sorted[2].ID)
	}
}
