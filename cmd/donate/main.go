// Command donate submits a one-off donation from the terminal and prints the
// hosted checkout URL. Useful for smoke-testing payment credentials.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"beamband/internal/donation"
	"beamband/internal/infra"
	"beamband/internal/providers/stripe"
)

func main() {
	var (
		cityFlag      string
		cityNameFlag  string
		nameFlag      string
		amountFlag    float64
		customFlag    string
		messageFlag   string
		anonymousFlag bool
		originFlag    string
	)

	flag.StringVar(&cityFlag, "city", "", "city slug the donation supports")
	flag.StringVar(&cityNameFlag, "city-name", "", "display name for the city (defaults to the slug)")
	flag.StringVar(&nameFlag, "name", "", "donor name")
	flag.Float64Var(&amountFlag, "amount", 0, "donation amount in dollars")
	flag.StringVar(&customFlag, "custom-amount", "", "free-text amount, overrides -amount when set")
	flag.StringVar(&messageFlag, "message", "", "optional message of support")
	flag.BoolVar(&anonymousFlag, "anonymous", false, "hide the donor name on the leaderboard")
	flag.StringVar(&originFlag, "origin", "", "redirect origin (defaults to SITE_BASE_URL)")
	flag.Parse()

	citySlug := strings.TrimSpace(cityFlag)
	if citySlug == "" {
		exitWithError(errors.New("-city is required"))
	}
	cityName := strings.TrimSpace(cityNameFlag)
	if cityName == "" {
		cityName = citySlug
	}

	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		exitWithError(err)
	}
	origin := strings.TrimSpace(originFlag)
	if origin == "" {
		origin = cfg.SiteBaseURL
	}

	intent, err := donation.BuildIntent(donation.FormInput{
		DonorName:    nameFlag,
		Amount:       amountFlag,
		CustomAmount: customFlag,
		CityID:       citySlug,
		CityName:     cityName,
		Message:      messageFlag,
		Anonymous:    anonymousFlag,
	})
	if err != nil {
		exitWithError(err)
	}

	logger := infra.NewLogger("cli").With().Str("cmd", "donate").Logger()
	client, err := stripe.NewClient(stripe.Options{
		APIKey:  cfg.StripeSecretKey,
		BaseURL: cfg.StripeAPIBaseURL,
		Logger:  &logger,
	})
	if err != nil {
		exitWithError(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sub := donation.NewSubmission(intent, origin)
	if err := sub.Submit(ctx, client); err != nil {
		exitWithError(err)
	}

	session := sub.Session()
	fmt.Printf("Checkout session %s created for %s\n", session.ID, cityName)
	fmt.Printf("Complete the donation at: %s\n", session.URL)
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
