package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"beamband/internal/domain"
	"beamband/internal/funding"
	"beamband/internal/middleware"
)

type coordinatorView struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
	ImageURL string `json:"imageUrl"`
}

type progressView struct {
	Percent          float64 `json:"percent"`
	Remaining        float64 `json:"remaining"`
	CurrentDisplay   string  `json:"currentDisplay"`
	GoalDisplay      string  `json:"goalDisplay"`
	RemainingDisplay string  `json:"remainingDisplay"`
}

type cityView struct {
	Slug            string           `json:"slug"`
	Name            string           `json:"name"`
	State           string           `json:"state"`
	Description     string           `json:"description"`
	ImageURL        string           `json:"imageUrl"`
	FundraisingGoal float64          `json:"fundraisingGoal"`
	CurrentAmount   float64          `json:"currentAmount"`
	Color           string           `json:"color"`
	EventCount      int              `json:"events"`
	SupporterCount  int              `json:"supporters"`
	Progress        *progressView    `json:"progress,omitempty"`
	Coordinator     *coordinatorView `json:"coordinator,omitempty"`
}

func newCityView(city domain.City) cityView {
	view := cityView{
		Slug:            city.Slug,
		Name:            city.Name,
		State:           city.State,
		Description:     city.Description,
		ImageURL:        city.ImageURL,
		FundraisingGoal: city.FundraisingGoal,
		CurrentAmount:   city.CurrentAmount,
		Color:           city.Color,
		EventCount:      city.EventCount,
		SupporterCount:  city.SupporterCount,
	}
	// goal <= 0 is a data error; render the city without a progress bar
	// rather than divide by zero.
	if city.FundraisingGoal > 0 {
		percent, remaining := funding.Progress(city.CurrentAmount, city.FundraisingGoal)
		view.Progress = &progressView{
			Percent:          percent,
			Remaining:        remaining,
			CurrentDisplay:   funding.FormatAmount(city.CurrentAmount),
			GoalDisplay:      funding.FormatAmount(city.FundraisingGoal),
			RemainingDisplay: funding.FormatAmount(remaining),
		}
	}
	if city.Coordinator != nil {
		view.Coordinator = &coordinatorView{
			Name:     city.Coordinator.Name,
			Email:    city.Coordinator.Email,
			Phone:    city.Coordinator.Phone,
			Bio:      city.Coordinator.Bio,
			ImageURL: city.Coordinator.ImageURL,
		}
	}
	return view
}

// CitiesList renders the city grid.
func (a *App) CitiesList(w http.ResponseWriter, r *http.Request) {
	cities, err := a.Cities.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list cities")
		a.error(w, http.StatusInternalServerError, "Failed to load cities")
		return
	}
	views := make([]cityView, 0, len(cities))
	for _, city := range cities {
		city.Coordinator = nil // grid cards omit coordinator details
		views = append(views, newCityView(city))
	}
	a.json(w, http.StatusOK, map[string]any{"items": views})
}

// CityDetail renders one city page, coordinator included.
func (a *App) CityDetail(w http.ResponseWriter, r *http.Request) {
	city, err := a.getCity(w, r)
	if err != nil {
		return
	}
	a.json(w, http.StatusOK, newCityView(*city))
}

// CitySuggested picks the chapter closest to the caller: a state match when
// the GeoIP database resolves one, the first chapter for other US visitors.
func (a *App) CitySuggested(w http.ResponseWriter, r *http.Request) {
	if a.Geo == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	region, err := a.Geo.Region(middleware.ClientIP(r))
	if err != nil {
		a.Logger.Debug().Err(err).Msg("resolve region")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if region.CountryCode != "US" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	cities, err := a.Cities.List(r.Context())
	if err != nil || len(cities) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	suggested := cities[0]
	for _, city := range cities {
		if city.State == region.SubdivisionCode {
			suggested = city
			break
		}
	}
	suggested.Coordinator = nil
	a.json(w, http.StatusOK, newCityView(suggested))
}

// getCity loads the {slug} city or writes the terminal not-found view.
func (a *App) getCity(w http.ResponseWriter, r *http.Request) (*domain.City, error) {
	slug := chi.URLParam(r, "slug")
	city, err := a.Cities.GetBySlug(r.Context(), slug)
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "City not found")
		return nil, err
	}
	if err != nil {
		a.Logger.Error().Err(err).Str("slug", slug).Msg("load city")
		a.error(w, http.StatusInternalServerError, "Failed to load city")
		return nil, err
	}
	return city, nil
}
