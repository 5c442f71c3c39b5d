package domain

import "time"

// AnonymousDonorName is the placeholder shown instead of an anonymous donor's name.
const AnonymousDonorName = "Anonymous Supporter"

// Donation is a recorded supporter contribution, observed as a snapshot from
// the hosted data store. This layer never writes donations; the payment
// processor's webhook pipeline owns that.
type Donation struct {
	ID        string
	CitySlug  string
	DonorName string
	Amount    float64
	Message   string
	Anonymous bool
	CreatedAt time.Time
}

// LeaderboardEntry is a ranked view over a city's donations.
type LeaderboardEntry struct {
	DonorName string
	Amount    float64
	Rank      int
	Anonymous bool
}

// DisplayName returns the donor name or the anonymized placeholder.
func (e LeaderboardEntry) DisplayName() string {
	if e.Anonymous {
		return AnonymousDonorName
	}
	return e.DonorName
}
