// Command migrate creates the catalog schema and optionally loads the launch
// data set. It is idempotent: tables use IF NOT EXISTS and seed rows upsert.
package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lib/pq"

	"beamband/internal/adapter/repo"
)

func main() {
	var seedFlag bool
	flag.BoolVar(&seedFlag, "seed", false, "load the launch catalog after creating the schema")
	flag.Parse()

	_ = godotenv.Load()

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to open database: %w", err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}

	if err := runMigrations(db); err != nil {
		exitWithError(err)
	}
	fmt.Println("schema up to date")

	if seedFlag {
		if err := runSeed(db); err != nil {
			exitWithError(err)
		}
		fmt.Println("launch catalog loaded")
	}
}

func runMigrations(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS cities (
			slug VARCHAR(100) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			state VARCHAR(10) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image_url VARCHAR(255) NOT NULL DEFAULT '',
			fundraising_goal DOUBLE PRECISION NOT NULL,
			current_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
			color VARCHAR(50) NOT NULL DEFAULT '',
			event_count INT NOT NULL DEFAULT 0,
			supporter_count INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT now(),
			updated_at TIMESTAMP DEFAULT now()
		);`,

		`CREATE TABLE IF NOT EXISTS coordinators (
			city_slug VARCHAR(100) PRIMARY KEY REFERENCES cities(slug),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(50) NOT NULL DEFAULT '',
			bio TEXT NOT NULL DEFAULT '',
			image_url VARCHAR(255) NOT NULL DEFAULT ''
		);`,

		`CREATE TABLE IF NOT EXISTS events (
			id VARCHAR(100) PRIMARY KEY,
			city_slug VARCHAR(100) NOT NULL REFERENCES cities(slug),
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			date DATE NOT NULL,
			time VARCHAR(50) NOT NULL DEFAULT '',
			venue VARCHAR(255) NOT NULL DEFAULT '',
			address VARCHAR(255) NOT NULL DEFAULT '',
			ticket_price DOUBLE PRECISION NOT NULL DEFAULT 0,
			image_url VARCHAR(255) NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'upcoming'
		);`,

		`CREATE INDEX IF NOT EXISTS idx_events_city_date ON events (city_slug, date);`,

		`CREATE TABLE IF NOT EXISTS milestones (
			id VARCHAR(255) PRIMARY KEY,
			city_slug VARCHAR(100) NOT NULL REFERENCES cities(slug),
			amount DOUBLE PRECISION NOT NULL,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			benefits TEXT[] NOT NULL DEFAULT '{}',
			achieved BOOLEAN NOT NULL DEFAULT false,
			achieved_at TIMESTAMP,
			created_at TIMESTAMP DEFAULT now()
		);`,

		`CREATE TABLE IF NOT EXISTS donations (
			id VARCHAR(100) PRIMARY KEY,
			city_slug VARCHAR(100) NOT NULL REFERENCES cities(slug),
			donor_name VARCHAR(255) NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			message TEXT NOT NULL DEFAULT '',
			anonymous BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP DEFAULT now()
		);`,

		`CREATE INDEX IF NOT EXISTS idx_donations_city ON donations (city_slug);`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w\nquery: %s", err, query)
		}
	}
	return nil
}

func runSeed(db *sql.DB) error {
	for _, city := range repo.SeedCities() {
		_, err := db.Exec(`
INSERT INTO cities (slug, name, state, description, image_url, fundraising_goal, current_amount, color, event_count, supporter_count)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (slug) DO UPDATE SET
	name = EXCLUDED.name,
	state = EXCLUDED.state,
	description = EXCLUDED.description,
	image_url = EXCLUDED.image_url,
	fundraising_goal = EXCLUDED.fundraising_goal,
	current_amount = EXCLUDED.current_amount,
	color = EXCLUDED.color,
	event_count = EXCLUDED.event_count,
	supporter_count = EXCLUDED.supporter_count,
	updated_at = now();`,
			city.Slug, city.Name, city.State, city.Description, city.ImageURL,
			city.FundraisingGoal, city.CurrentAmount, city.Color, city.EventCount, city.SupporterCount)
		if err != nil {
			return fmt.Errorf("seed city %s: %w", city.Slug, err)
		}

		if city.Coordinator == nil {
			continue
		}
		c := city.Coordinator
		_, err = db.Exec(`
INSERT INTO coordinators (city_slug, name, email, phone, bio, image_url)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (city_slug) DO UPDATE SET
	name = EXCLUDED.name,
	email = EXCLUDED.email,
	phone = EXCLUDED.phone,
	bio = EXCLUDED.bio,
	image_url = EXCLUDED.image_url;`,
			city.Slug, c.Name, c.Email, c.Phone, c.Bio, c.ImageURL)
		if err != nil {
			return fmt.Errorf("seed coordinator for %s: %w", city.Slug, err)
		}
	}

	for _, event := range repo.SeedEvents() {
		_, err := db.Exec(`
INSERT INTO events (id, city_slug, title, description, date, time, venue, address, ticket_price, image_url, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO NOTHING;`,
			event.ID, event.CitySlug, event.Title, event.Description, event.Date, event.Time,
			event.Venue, event.Address, event.TicketPrice, event.ImageURL, string(event.Status))
		if err != nil {
			return fmt.Errorf("seed event %s: %w", event.ID, err)
		}
	}

	for _, milestone := range repo.SeedMilestones() {
		_, err := db.Exec(`
INSERT INTO milestones (id, city_slug, amount, title, description, benefits, achieved, achieved_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO NOTHING;`,
			milestone.ID, milestone.CitySlug, milestone.Amount, milestone.Title,
			milestone.Description, pq.Array(milestone.Benefits), milestone.Achieved, milestone.AchievedAt)
		if err != nil {
			return fmt.Errorf("seed milestone %s: %w", milestone.ID, err)
		}
	}

	for _, donation := range repo.SeedDonations() {
		_, err := db.Exec(`
INSERT INTO donations (id, city_slug, donor_name, amount, message, anonymous, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING;`,
			donation.ID, donation.CitySlug, donation.DonorName, donation.Amount,
			donation.Message, donation.Anonymous, donation.CreatedAt)
		if err != nil {
			return fmt.Errorf("seed donation %s: %w", donation.ID, err)
		}
	}

	return nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
