package domain

import "time"

// EventStatus describes where an event sits in its lifecycle.
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
)

// Event is a scheduled performance or gathering in a city chapter.
type Event struct {
	ID          string
	CitySlug    string
	Title       string
	Description string
	Date        time.Time
	Time        string
	Venue       string
	Address     string
	TicketPrice float64
	ImageURL    string
	Status      EventStatus
}
