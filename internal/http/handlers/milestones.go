package handlers

import (
	"net/http"
	"time"

	"beamband/internal/funding"
)

type milestoneView struct {
	ID          string   `json:"id"`
	Amount      float64  `json:"amount"`
	Display     string   `json:"amountDisplay"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	Status      string   `json:"status"`
	AchievedAt  string   `json:"achievedAt,omitempty"`
}

// CityMilestones renders the milestone tracker: thresholds ascending, each
// with its unlock state against the city's current total.
func (a *App) CityMilestones(w http.ResponseWriter, r *http.Request) {
	city, err := a.getCity(w, r)
	if err != nil {
		return
	}
	milestones, err := a.Milestones.MilestonesByCity(r.Context(), city.Slug)
	if err != nil {
		a.Logger.Error().Err(err).Str("slug", city.Slug).Msg("list milestones")
		a.error(w, http.StatusInternalServerError, "Failed to load milestones")
		return
	}

	views := make([]milestoneView, 0, len(milestones))
	for _, milestone := range funding.SortMilestones(milestones) {
		view := milestoneView{
			ID:          milestone.ID,
			Amount:      milestone.Amount,
			Display:     funding.FormatAmount(milestone.Amount),
			Title:       milestone.Title,
			Description: milestone.Description,
			Benefits:    milestone.Benefits,
			Status:      string(funding.MilestoneStatus(milestone, city.CurrentAmount)),
		}
		if milestone.Achieved && milestone.AchievedAt != nil {
			view.AchievedAt = milestone.AchievedAt.Format(time.DateOnly)
		}
		views = append(views, view)
	}

	a.json(w, http.StatusOK, map[string]any{
		"items":            views,
		"finalGoal":        city.FundraisingGoal,
		"finalGoalDisplay": funding.FormatAmount(city.FundraisingGoal),
	})
}
