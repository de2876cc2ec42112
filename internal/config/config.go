package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type DenominationConfig struct {
	Value  float64
	Sprite string
}

type Config struct {
	DatabaseHost     string
	DatabasePort     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string
	ServerPort       string
	JWTSecret        string
	CampaignStart    time.Time
	CampaignEnd      time.Time
	Denominations    []DenominationConfig
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		DatabaseHost:     getEnv("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnv("DATABASE_PORT", "5432"),
		DatabaseUser:     getEnv("DATABASE_USER", "postgres"),
		DatabasePassword: getEnv("DATABASE_PASSWORD", "password"),
		DatabaseName:     getEnv("DATABASE_NAME", "coinboard"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		JWTSecret:        getEnv("JWT_SECRET", "secret"),
	}

	start, err := time.Parse(time.RFC3339, getEnv("CAMPAIGN_START", "2026-01-01T00:00:00Z"))
	if err != nil {
		return nil, fmt.Errorf("invalid CAMPAIGN_START: %w", err)
	}
	end, err := time.Parse(time.RFC3339, getEnv("CAMPAIGN_END", "2026-12-31T23:59:59Z"))
	if err != nil {
		return nil, fmt.Errorf("invalid CAMPAIGN_END: %w", err)
	}
	cfg.CampaignStart = start
	cfg.CampaignEnd = end

	denominations, err := parseDenominations(getEnv("DENOMINATIONS", "100:coin_gold,25:coin_silver,10:coin_bronze,5:coin_copper,1:coin_tin"))
	if err != nil {
		return nil, err
	}
	cfg.Denominations = denominations

	return cfg, nil
}

// parseDenominations parses a "value:sprite,value:sprite" list.
func parseDenominations(raw string) ([]DenominationConfig, error) {
	var out []DenominationConfig
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid DENOMINATIONS entry %q, want value:sprite", entry)
		}
		value, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DENOMINATIONS value in %q: %w", entry, err)
		}
		out = append(out, DenominationConfig{Value: value, Sprite: parts[1]})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("DENOMINATIONS is empty")
	}
	return out, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
