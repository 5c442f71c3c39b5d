package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"beamband/internal/domain"
)

// EventRepositoryPG implements domain.EventRepository using PostgreSQL.
type EventRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates a new event repo.
func NewEventRepository(pool *pgxpool.Pool) *EventRepositoryPG {
	return &EventRepositoryPG{pool: pool}
}

// EventsByCity returns the city's events ordered by date.
func (r *EventRepositoryPG) EventsByCity(ctx context.Context, citySlug string) ([]domain.Event, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, city_slug, title, description, date, time, venue, address, ticket_price, image_url, status
FROM events
WHERE city_slug = $1
ORDER BY date;
`, citySlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var event domain.Event
		var status string
		if err := rows.Scan(&event.ID, &event.CitySlug, &event.Title, &event.Description, &event.Date,
			&event.Time, &event.Venue, &event.Address, &event.TicketPrice, &event.ImageURL, &status); err != nil {
			return nil, err
		}
		event.Status = domain.EventStatus(status)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
