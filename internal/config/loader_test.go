package config

import (
	"os"
	"testing"
)

func TestLoader_ParseEnvironment(t *testing.T) {

	t.Run("applies defaults when variables are missing", func(t *testing.T) {
		unset := []string{
			"ASSISTANT_HTTP_PORT",
			"ASSISTANT_SEED",
			"ASSISTANT_SEED_MEETINGS",
			"ASSISTANT_SEED_DISABLED",
		}
		for _, key := range unset {
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("failed to unset %s: %v", key, err)
			}
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 8080 {
			t.Fatalf("expected default HTTP port 8080, got %d", cfg.HTTPPort)
		}
		if cfg.Seed != 1 {
			t.Fatalf("expected default seed 1, got %d", cfg.Seed)
		}
		if cfg.SeedMeetings != 70 {
			t.Fatalf("expected default seed meeting count 70, got %d", cfg.SeedMeetings)
		}
		if cfg.SeedDisabled {
			t.Fatal("expected seeding to be enabled by default")
		}
	})

	t.Run("parses numeric and boolean fields", func(t *testing.T) {
		t.Setenv("ASSISTANT_HTTP_PORT", "9090")
		t.Setenv("ASSISTANT_SEED", "42")
		t.Setenv("ASSISTANT_SEED_MEETINGS", "5")
		t.Setenv("ASSISTANT_SEED_DISABLED", "true")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 9090 {
			t.Fatalf("expected HTTP port 9090, got %d", cfg.HTTPPort)
		}
		if cfg.Seed != 42 {
			t.Fatalf("expected seed 42, got %d", cfg.Seed)
		}
		if cfg.SeedMeetings != 5 {
			t.Fatalf("expected seed meeting count 5, got %d", cfg.SeedMeetings)
		}
		if !cfg.SeedDisabled {
			t.Fatal("expected seeding to be disabled")
		}
	})

	t.Run("aggregates invalid values into one error", func(t *testing.T) {
		t.Setenv("ASSISTANT_HTTP_PORT", "-1")
		t.Setenv("ASSISTANT_SEED", "not-a-number")
		t.Setenv("ASSISTANT_SEED_MEETINGS", "5")
		t.Setenv("ASSISTANT_SEED_DISABLED", "false")

		_, err := Load()
		if err == nil {
			t.Fatal("expected error for invalid values")
		}
		expected := "環境変数の値が不正です: ASSISTANT_HTTP_PORT, ASSISTANT_SEED"
		if err.Error() != expected {
			t.Fatalf("unexpected error message: %q", err.Error())
		}
	})

	t.Run("rejects negative meeting counts", func(t *testing.T) {
		t.Setenv("ASSISTANT_HTTP_PORT", "8080")
		t.Setenv("ASSISTANT_SEED", "1")
		t.Setenv("ASSISTANT_SEED_MEETINGS", "-3")
		t.Setenv("ASSISTANT_SEED_DISABLED", "false")

		_, err := Load()
		if err == nil {
			t.Fatal("expected error for negative meeting count")
		}
	})
}
