package domain

import "context"

// CityRepository defines read access to city chapters.
type CityRepository interface {
	List(ctx context.Context) ([]City, error)
	GetBySlug(ctx context.Context, slug string) (*City, error)
}

// EventRepository defines read access to city events.
type EventRepository interface {
	EventsByCity(ctx context.Context, citySlug string) ([]Event, error)
}

// MilestoneRepository defines read access to funding milestones.
type MilestoneRepository interface {
	MilestonesByCity(ctx context.Context, citySlug string) ([]Milestone, error)
}

// DonationRepository derives leaderboard views from recorded donations.
type DonationRepository interface {
	LeaderboardByCity(ctx context.Context, citySlug string, limit int) ([]LeaderboardEntry, error)
}
