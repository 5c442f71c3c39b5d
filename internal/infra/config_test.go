package infra

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.StripeAPIBaseURL != "https://api.stripe.com/v1" {
		t.Fatalf("StripeAPIBaseURL = %q", cfg.StripeAPIBaseURL)
	}
	if cfg.SiteBaseURL != "http://localhost:3000" {
		t.Fatalf("SiteBaseURL = %q", cfg.SiteBaseURL)
	}
	if cfg.LeaderboardLimit != 10 {
		t.Fatalf("LeaderboardLimit = %d, want 10", cfg.LeaderboardLimit)
	}
}

func TestLoadConfigRequiresStripeKey(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when STRIPE_SECRET_KEY is unset")
	}
}

func TestLoadConfigCORSOriginsDefaultToSiteBaseURL(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("SITE_BASE_URL", "https://beamband.org")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "https://beamband.org" {
		t.Fatalf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadConfigParsesOriginList(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://beamband.org, https://staging.beamband.org")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("CORSAllowedOrigins = %v, want 2 entries", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[1] != "https://staging.beamband.org" {
		t.Fatalf("second origin = %q", cfg.CORSAllowedOrigins[1])
	}
}
