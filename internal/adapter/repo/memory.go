package repo

import (
	"context"
	"sort"
	"sync"

	"beamband/internal/domain"
)

// Memory is a seeded in-memory catalog used when no DATABASE_URL is
// configured. It implements every read repository over static data and
// returns copies so callers can never alias its state.
type Memory struct {
	mu         sync.RWMutex
	cities     []domain.City
	events     []domain.Event
	milestones []domain.Milestone
	donations  []domain.Donation
}

// NewMemory returns a catalog seeded with the launch data set.
func NewMemory() *Memory {
	return &Memory{
		cities:     SeedCities(),
		events:     SeedEvents(),
		milestones: SeedMilestones(),
		donations:  SeedDonations(),
	}
}

// List returns all city chapters.
func (m *Memory) List(_ context.Context) ([]domain.City, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cities := make([]domain.City, len(m.cities))
	copy(cities, m.cities)
	return cities, nil
}

// GetBySlug returns one city or domain.ErrNotFound.
func (m *Memory) GetBySlug(_ context.Context, slug string) (*domain.City, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, city := range m.cities {
		if city.Slug == slug {
			found := city
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

// EventsByCity returns the city's events ordered by date.
func (m *Memory) EventsByCity(_ context.Context, citySlug string) ([]domain.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var events []domain.Event
	for _, event := range m.events {
		if event.CitySlug == citySlug {
			events = append(events, event)
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events, nil
}

// MilestonesByCity returns the city's milestones in seed order; thresholds
// are re-sorted by the caller for display.
func (m *Memory) MilestonesByCity(_ context.Context, citySlug string) ([]domain.Milestone, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var milestones []domain.Milestone
	for _, milestone := range m.milestones {
		if milestone.CitySlug == citySlug {
			milestones = append(milestones, milestone)
		}
	}
	return milestones, nil
}

// LeaderboardByCity aggregates donations per donor and ranks them by total,
// descending. Ties keep first-donation order.
func (m *Memory) LeaderboardByCity(_ context.Context, citySlug string, limit int) ([]domain.LeaderboardEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	type donor struct {
		name      string
		anonymous bool
	}
	totals := make(map[donor]float64)
	var order []donor
	for _, d := range m.donations {
		if d.CitySlug != citySlug {
			continue
		}
		key := donor{name: d.DonorName, anonymous: d.Anonymous}
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += d.Amount
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})
	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}

	entries := make([]domain.LeaderboardEntry, 0, len(order))
	for i, key := range order {
		entries = append(entries, domain.LeaderboardEntry{
			DonorName: key.name,
			Amount:    totals[key],
			Rank:      i + 1,
			Anonymous: key.anonymous,
		})
	}
	return entries, nil
}
