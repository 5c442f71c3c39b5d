package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestCityLeaderboard(t *testing.T) {
	app := catalogApp()
	req := withSlug(httptest.NewRequest("GET", "/v1/cities/orlando/leaderboard", nil), "orlando")
	rr := httptest.NewRecorder()
	app.CityLeaderboard(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var body struct {
		Items []leaderboardEntryView `json:"items"`
		City  string                 `json:"city"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.City != "Orlando" {
		t.Fatalf("city = %q", body.City)
	}
	if len(body.Items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(body.Items))
	}

	first := body.Items[0]
	if first.Name != "John Smith" || first.Amount != 5000 || first.Rank != 1 {
		t.Fatalf("first entry = %+v", first)
	}
	if first.AmountDisplay != "$5,000.00" {
		t.Fatalf("display = %q", first.AmountDisplay)
	}

	second := body.Items[1]
	if second.Name != "Anonymous Supporter" || !second.IsAnonymous {
		t.Fatalf("anonymous entry = %+v", second)
	}
	if second.Amount != 3500 || second.Rank != 2 {
		t.Fatalf("anonymous entry = %+v", second)
	}

	// Sarah Wilson's two donations aggregate into one row.
	third := body.Items[2]
	if third.Name != "Sarah Wilson" || third.Amount != 3000 || third.Rank != 3 {
		t.Fatalf("aggregated entry = %+v", third)
	}
}

func TestCityLeaderboardLimit(t *testing.T) {
	app := catalogApp()
	app.LeaderboardLimit = 1
	req := withSlug(httptest.NewRequest("GET", "/v1/cities/orlando/leaderboard", nil), "orlando")
	rr := httptest.NewRecorder()
	app.CityLeaderboard(rr, req)

	var body struct {
		Items []leaderboardEntryView `json:"items"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(body.Items))
	}
}

func TestCityLeaderboardEmpty(t *testing.T) {
	app := catalogApp()
	req := withSlug(httptest.NewRequest("GET", "/v1/cities/tampa/leaderboard", nil), "tampa")
	rr := httptest.NewRecorder()
	app.CityLeaderboard(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var body struct {
		Items []leaderboardEntryView `json:"items"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Items) != 0 {
		t.Fatalf("len(items) = %d, want 0", len(body.Items))
	}
}
