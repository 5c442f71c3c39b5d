package handlers

import (
	"net/http"

	"beamband/internal/funding"
)

type eventView struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Date               string  `json:"date"`
	Time               string  `json:"time"`
	Venue              string  `json:"venue"`
	Address            string  `json:"address"`
	TicketPrice        float64 `json:"ticketPrice"`
	TicketPriceDisplay string  `json:"ticketPriceDisplay"`
	ImageURL           string  `json:"imageUrl"`
	Status             string  `json:"status"`
}

// CityEvents renders a city's event cards.
func (a *App) CityEvents(w http.ResponseWriter, r *http.Request) {
	city, err := a.getCity(w, r)
	if err != nil {
		return
	}
	events, err := a.Events.EventsByCity(r.Context(), city.Slug)
	if err != nil {
		a.Logger.Error().Err(err).Str("slug", city.Slug).Msg("list events")
		a.error(w, http.StatusInternalServerError, "Failed to load events")
		return
	}

	views := make([]eventView, 0, len(events))
	for _, event := range events {
		views = append(views, eventView{
			ID:                 event.ID,
			Title:              event.Title,
			Description:        event.Description,
			Date:               event.Date.Format("2006-01-02"),
			Time:               event.Time,
			Venue:              event.Venue,
			Address:            event.Address,
			TicketPrice:        event.TicketPrice,
			TicketPriceDisplay: funding.FormatAmount(event.TicketPrice),
			ImageURL:           event.ImageURL,
			Status:             string(event.Status),
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": views})
}
