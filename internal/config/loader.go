package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config captures environment driven configuration values for the assistant service.
type Config struct {
	HTTPPort     int
	Seed         int64
	SeedMeetings int
	SeedDisabled bool
}

// Load parses configuration values from the current process environment.
//
// Every field has a sensible default; set values are validated and invalid
// entries are reported together with localized error messages.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:     8080,
		Seed:         1,
		SeedMeetings: 70,
		SeedDisabled: false,
	}

	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("ASSISTANT_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "ASSISTANT_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if seedValue := strings.TrimSpace(os.Getenv("ASSISTANT_SEED")); seedValue != "" {
		seed, err := strconv.ParseInt(seedValue, 10, 64)
		if err != nil {
			invalid = append(invalid, "ASSISTANT_SEED")
		} else {
			cfg.Seed = seed
		}
	}

	if countValue := strings.TrimSpace(os.Getenv("ASSISTANT_SEED_MEETINGS")); countValue != "" {
		count, err := strconv.Atoi(countValue)
		if err != nil || count < 0 {
			invalid = append(invalid, "ASSISTANT_SEED_MEETINGS")
		} else {
			cfg.SeedMeetings = count
		}
	}

	if disabledValue := strings.TrimSpace(os.Getenv("ASSISTANT_SEED_DISABLED")); disabledValue != "" {
		disabled, err := strconv.ParseBool(disabledValue)
		if err != nil {
			invalid = append(invalid, "ASSISTANT_SEED_DISABLED")
		} else {
			cfg.SeedDisabled = disabled
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("環境変数の値が不正です: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
