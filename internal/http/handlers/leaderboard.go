package handlers

import (
	"net/http"

	"beamband/internal/funding"
)

type leaderboardEntryView struct {
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
	AmountDisplay string  `json:"amountDisplay"`
	Rank          int     `json:"rank"`
	IsAnonymous   bool    `json:"isAnonymous"`
}

// CityLeaderboard renders the top supporters for a city. Anonymous donors
// appear under the placeholder name.
func (a *App) CityLeaderboard(w http.ResponseWriter, r *http.Request) {
	city, err := a.getCity(w, r)
	if err != nil {
		return
	}
	limit := a.LeaderboardLimit
	if limit <= 0 {
		limit = 10
	}
	entries, err := a.Donations.LeaderboardByCity(r.Context(), city.Slug, limit)
	if err != nil {
		a.Logger.Error().Err(err).Str("slug", city.Slug).Msg("load leaderboard")
		a.error(w, http.StatusInternalServerError, "Failed to load leaderboard")
		return
	}

	views := make([]leaderboardEntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, leaderboardEntryView{
			Name:          entry.DisplayName(),
			Amount:        entry.Amount,
			AmountDisplay: funding.FormatAmount(entry.Amount),
			Rank:          entry.Rank,
			IsAnonymous:   entry.Anonymous,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": views, "city": city.Name})
}
