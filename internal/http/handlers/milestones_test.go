package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestCityMilestones(t *testing.T) {
	app := catalogApp()
	req := withSlug(httptest.NewRequest("GET", "/v1/cities/orlando/milestones", nil), "orlando")
	rr := httptest.NewRecorder()
	app.CityMilestones(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var body struct {
		Items            []milestoneView `json:"items"`
		FinalGoal        float64         `json:"finalGoal"`
		FinalGoalDisplay string          `json:"finalGoalDisplay"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(body.Items))
	}

	// Orlando sits at 32,000 of a 50,000 goal: the 10k and 25k tiers are
	// unlocked, the 40k tier is not.
	wantStatuses := []string{"achieved", "achieved", "upcoming"}
	for i, item := range body.Items {
		if i > 0 && item.Amount < body.Items[i-1].Amount {
			t.Fatalf("milestones not in ascending order: %v before %v", body.Items[i-1].Amount, item.Amount)
		}
		if item.Status != wantStatuses[i] {
			t.Fatalf("item %d status = %q, want %q", i, item.Status, wantStatuses[i])
		}
	}
	if body.Items[0].Display != "$10,000.00" {
		t.Fatalf("display = %q", body.Items[0].Display)
	}
	if body.Items[0].AchievedAt == "" {
		t.Fatal("achieved milestone should carry its date")
	}
	if body.Items[2].AchievedAt != "" {
		t.Fatalf("upcoming milestone has achievedAt %q", body.Items[2].AchievedAt)
	}
	if body.FinalGoal != 50000 || body.FinalGoalDisplay != "$50,000.00" {
		t.Fatalf("final goal = %v / %q", body.FinalGoal, body.FinalGoalDisplay)
	}
}

func TestCityMilestonesUnknownCity(t *testing.T) {
	app := catalogApp()
	req := withSlug(httptest.NewRequest("GET", "/v1/cities/nowhere/milestones", nil), "nowhere")
	rr := httptest.NewRecorder()
	app.CityMilestones(rr, req)

	if rr.Code != 404 {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}
