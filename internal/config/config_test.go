package config

import (
	"testing"
)

func TestParseDenominations(t *testing.T) {
	got, err := parseDenominations("100:coin_gold, 5:coin_copper ,1:coin_tin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("parsed %d entries, want 3", len(got))
	}
	if got[0].Value != 100 || got[0].Sprite != "coin_gold" {
		t.Errorf("first entry = %+v, want 100:coin_gold", got[0])
	}
	if got[2].Value != 1 || got[2].Sprite != "coin_tin" {
		t.Errorf("last entry = %+v, want 1:coin_tin", got[2])
	}
}

func TestParseDenominations_Invalid(t *testing.T) {
	for _, raw := range []string{"", "100", "abc:sprite", ","} {
		if _, err := parseDenominations(raw); err == nil {
			t.Errorf("parseDenominations(%q): expected error", raw)
		}
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerPort == "" {
		t.Error("expected default server port")
	}
	if !cfg.CampaignEnd.After(cfg.CampaignStart) {
		t.Error("default campaign end is not after start")
	}
	if len(cfg.Denominations) == 0 {
		t.Error("expected default denominations")
	}
}

func TestLoadConfig_InvalidCampaignDate(t *testing.T) {
	t.Setenv("CAMPAIGN_START", "yesterday")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for malformed CAMPAIGN_START")
	}
}
