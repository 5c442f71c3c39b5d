package repo

import (
	"time"

	"beamband/internal/domain"
)

// Launch catalog. Real deployments load the same shapes from Postgres; this
// data keeps every page renderable without one and feeds cmd/migrate's seed.

// SeedCities returns the launch city chapters.
func SeedCities() []domain.City {
	return []domain.City{
		{
			Slug: "orlando", Name: "Orlando", State: "FL",
			Description:     "The City Beautiful - Where music meets magic and community comes together to create unforgettable experiences.",
			ImageURL:        "/api/placeholder/800/400",
			FundraisingGoal: 50000, CurrentAmount: 32000,
			Color: "city-orlando", EventCount: 8, SupporterCount: 156,
			Coordinator: &domain.Coordinator{
				Name: "Sarah Johnson", Email: "sarah@beamorlando.com", Phone: "(407) 555-0123",
				Bio:      "Local music enthusiast and community organizer with 10+ years of experience bringing people together through the power of music.",
				ImageURL: "/api/placeholder/200/200",
			},
		},
		{
			Slug: "nashville", Name: "Nashville", State: "TN",
			Description:     "Music City - The heart of country music and southern hospitality, where every note tells a story of community and connection.",
			ImageURL:        "/api/placeholder/800/400",
			FundraisingGoal: 75000, CurrentAmount: 68000,
			Color: "city-nashville", EventCount: 12, SupporterCount: 234,
			Coordinator: &domain.Coordinator{
				Name: "Mike Williams", Email: "mike@beamnashville.com", Phone: "(615) 555-0456",
				Bio:      "Nashville native and music industry veteran dedicated to fostering local talent and community engagement.",
				ImageURL: "/api/placeholder/200/200",
			},
		},
		{
			Slug: "atlanta", Name: "Atlanta", State: "GA",
			Description:     "The Big Peach - Southern hospitality meets urban culture, creating a vibrant community where music bridges all divides.",
			ImageURL:        "/api/placeholder/800/400",
			FundraisingGoal: 60000, CurrentAmount: 45000,
			Color: "city-atlanta", EventCount: 10, SupporterCount: 189,
			Coordinator: &domain.Coordinator{
				Name: "Lisa Chen", Email: "lisa@beamatlanta.com", Phone: "(404) 555-0789",
				Bio:      "Community advocate and music lover working to unite Atlanta through the universal language of music.",
				ImageURL: "/api/placeholder/200/200",
			},
		},
		{
			Slug: "augusta", Name: "Augusta", State: "GA",
			Description:     "The Garden City - Rich in history and community spirit, where music grows like the beautiful gardens that give this city its name.",
			ImageURL:        "/api/placeholder/800/400",
			FundraisingGoal: 40000, CurrentAmount: 28000,
			Color: "city-augusta", EventCount: 6, SupporterCount: 98,
			Coordinator: &domain.Coordinator{
				Name: "David Thompson", Email: "david@beamaugusta.com", Phone: "(706) 555-0321",
				Bio:      "Local historian and community organizer passionate about preserving Augusta's rich cultural heritage through music.",
				ImageURL: "/api/placeholder/200/200",
			},
		},
		{
			Slug: "knoxville", Name: "Knoxville", State: "TN",
			Description:     "The Marble City - Gateway to the Great Smoky Mountains, where natural beauty inspires musical creativity and community harmony.",
			ImageURL:        "/api/placeholder/800/400",
			FundraisingGoal: 35000, CurrentAmount: 22000,
			Color: "city-knoxville", EventCount: 5, SupporterCount: 76,
			Coordinator: &domain.Coordinator{
				Name: "Emily Davis", Email: "emily@beamknoxville.com", Phone: "(865) 555-0654",
				Bio:      "Environmental advocate and music educator dedicated to connecting Knoxville's natural beauty with its musical soul.",
				ImageURL: "/api/placeholder/200/200",
			},
		},
		{
			Slug: "tampa", Name: "Tampa", State: "FL",
			Description:     "The Big Guava - Sunshine, beaches, and great vibes come together in this coastal city where music flows like the Gulf waters.",
			ImageURL:        "/api/placeholder/800/400",
			FundraisingGoal: 55000, CurrentAmount: 38000,
			Color: "city-tampa", EventCount: 9, SupporterCount: 145,
			Coordinator: &domain.Coordinator{
				Name: "Carlos Rodriguez", Email: "carlos@beamtampa.com", Phone: "(813) 555-0987",
				Bio:      "Tampa Bay native and cultural ambassador working to showcase the city's diverse musical heritage and community spirit.",
				ImageURL: "/api/placeholder/200/200",
			},
		},
		{
			Slug: "jackson", Name: "Jackson", State: "MS",
			Description:     "The Crossroads of the South - Where cultures converge and music creates bridges between communities, past and present.",
			ImageURL:        "/api/placeholder/800/400",
			FundraisingGoal: 30000, CurrentAmount: 18000,
			Color: "city-jackson", EventCount: 4, SupporterCount: 67,
			Coordinator: &domain.Coordinator{
				Name: "Maria Johnson", Email: "maria@beamjackson.com", Phone: "(601) 555-0543",
				Bio:      "Cultural preservationist and community leader dedicated to celebrating Jackson's rich musical and cultural diversity.",
				ImageURL: "/api/placeholder/200/200",
			},
		},
		{
			Slug: "virginia", Name: "Virginia", State: "VA",
			Description:     "The Old Dominion - Rich in American heritage and community values, where music honors tradition while building the future.",
			ImageURL:        "/api/placeholder/800/400",
			FundraisingGoal: 45000, CurrentAmount: 32000,
			Color: "city-virginia", EventCount: 7, SupporterCount: 112,
			Coordinator: &domain.Coordinator{
				Name: "Robert Wilson", Email: "robert@beamvirginia.com", Phone: "(804) 555-0765",
				Bio:      "Historian and community organizer working to preserve Virginia's musical heritage while fostering new community connections.",
				ImageURL: "/api/placeholder/200/200",
			},
		},
		{
			Slug: "los-angeles", Name: "Los Angeles", State: "CA",
			Description:     "The City of Angels - Entertainment capital of the world, where dreams come true and music creates global community connections.",
			ImageURL:        "/api/placeholder/800/400",
			FundraisingGoal: 100000, CurrentAmount: 85000,
			Color: "city-losangeles", EventCount: 15, SupporterCount: 298,
			Coordinator: &domain.Coordinator{
				Name: "Jennifer Martinez", Email: "jennifer@beamla.com", Phone: "(213) 555-0890",
				Bio:      "Entertainment industry professional and community advocate working to make LA's music scene accessible to all communities.",
				ImageURL: "/api/placeholder/200/200",
			},
		},
	}
}

// SeedEvents returns the launch event schedule.
func SeedEvents() []domain.Event {
	return []domain.Event{
		{
			ID: "evt-orlando-festival", CitySlug: "orlando",
			Title:       "Summer Music Festival",
			Description: "A day-long celebration of local music featuring multiple bands, food vendors, and community activities.",
			Date:        time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), Time: "2:00 PM",
			Venue: "Central Park", Address: "123 Main St, Downtown",
			TicketPrice: 25, ImageURL: "/api/placeholder/400/300",
			Status: domain.EventUpcoming,
		},
		{
			ID: "evt-orlando-acoustic", CitySlug: "orlando",
			Title:       "Acoustic Night",
			Description: "Intimate acoustic performances in a cozy setting with local singer-songwriters.",
			Date:        time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC), Time: "7:00 PM",
			Venue: "The Listening Room", Address: "456 Oak Ave, Arts District",
			TicketPrice: 15, ImageURL: "/api/placeholder/400/300",
			Status: domain.EventUpcoming,
		},
		{
			ID: "evt-nashville-writers", CitySlug: "nashville",
			Title:       "Songwriters in the Round",
			Description: "Four local songwriters trade songs and the stories behind them.",
			Date:        time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC), Time: "8:00 PM",
			Venue: "The Bluebird Annex", Address: "789 Music Row",
			TicketPrice: 20, ImageURL: "/api/placeholder/400/300",
			Status: domain.EventUpcoming,
		},
	}
}

// SeedMilestones generates the shared milestone ladder for every chapter,
// marking tiers already covered by the chapter's current total as achieved.
func SeedMilestones() []domain.Milestone {
	ladder := []struct {
		amount      float64
		title       string
		description string
		benefits    []string
	}{
		{
			amount:      10000,
			title:       "Community Kickoff",
			description: "Initial milestone to establish our presence and begin community outreach programs.",
			benefits:    []string{"Monthly community meetups", "Local artist showcases", "Music education workshops"},
		},
		{
			amount:      25000,
			title:       "Music Education Program",
			description: "Launch comprehensive music education programs for local schools and community centers.",
			benefits:    []string{"School music programs", "Instrument donations", "Professional musician visits"},
		},
		{
			amount:      40000,
			title:       "Community Center",
			description: "Establish a dedicated community center for music, arts, and cultural activities.",
			benefits:    []string{"Performance venue", "Recording studio", "Practice rooms", "Cultural events"},
		},
	}
	achievedDates := []time.Time{
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
	}

	var milestones []domain.Milestone
	for _, city := range SeedCities() {
		for i, step := range ladder {
			m := domain.Milestone{
				ID:          city.Slug + "-" + step.title,
				CitySlug:    city.Slug,
				Amount:      step.amount,
				Title:       step.title,
				Description: step.description,
				Benefits:    step.benefits,
			}
			if city.CurrentAmount >= step.amount {
				m.Achieved = true
				at := achievedDates[i]
				m.AchievedAt = &at
			}
			milestones = append(milestones, m)
		}
	}
	return milestones
}

// SeedDonations returns the launch donation history.
func SeedDonations() []domain.Donation {
	return []domain.Donation{
		{ID: "don-1", CitySlug: "orlando", DonorName: "John Smith", Amount: 5000, CreatedAt: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)},
		{ID: "don-2", CitySlug: "orlando", DonorName: "A. Friend", Amount: 3500, Anonymous: true, CreatedAt: time.Date(2024, 2, 14, 9, 30, 0, 0, time.UTC)},
		{ID: "don-3", CitySlug: "orlando", DonorName: "Sarah Wilson", Amount: 2500, Message: "Keep the music playing!", CreatedAt: time.Date(2024, 3, 2, 18, 45, 0, 0, time.UTC)},
		{ID: "don-4", CitySlug: "orlando", DonorName: "Sarah Wilson", Amount: 500, CreatedAt: time.Date(2024, 4, 11, 10, 0, 0, 0, time.UTC)},
		{ID: "don-5", CitySlug: "nashville", DonorName: "Hank Ledbetter", Amount: 7500, CreatedAt: time.Date(2024, 1, 20, 15, 0, 0, 0, time.UTC)},
		{ID: "don-6", CitySlug: "nashville", DonorName: "Patsy Greene", Amount: 4000, Anonymous: true, CreatedAt: time.Date(2024, 2, 8, 11, 15, 0, 0, time.UTC)},
	}
}
