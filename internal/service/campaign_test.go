package service

import (
	"testing"
	"time"
)

func mustCampaign(t *testing.T, start, end time.Time) CampaignService {
	t.Helper()
	c, err := NewCampaignService(start, end, &mockLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestNewCampaignService_EndBeforeStart(t *testing.T) {
	now := time.Now()
	if _, err := NewCampaignService(now, now.Add(-time.Hour), &mockLogger{}); err == nil {
		t.Fatal("expected error for end before start")
	}
	if _, err := NewCampaignService(now, now, &mockLogger{}); err == nil {
		t.Fatal("expected error for end equal to start")
	}
}

func TestCampaignService_IsRunning(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	c := mustCampaign(t, start, end)

	if c.IsRunning(start.Add(-time.Second)) {
		t.Error("running before start")
	}
	if !c.IsRunning(start) {
		t.Error("not running at start")
	}
	if !c.IsRunning(end.Add(-time.Second)) {
		t.Error("not running just before end")
	}
	if c.IsRunning(end) {
		t.Error("running at end")
	}
}

func TestCampaignService_Countdown_Running(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	c := mustCampaign(t, start, end)

	now := end.Add(-(26*time.Hour + 3*time.Minute + 4*time.Second))
	got := c.Countdown(now)

	if got.Phase != PhaseRunning {
		t.Errorf("phase = %v, want running", got.Phase)
	}
	if got.Days != 1 || got.Hours != 2 || got.Minutes != 3 || got.Seconds != 4 {
		t.Errorf("countdown = %dd %d:%d:%d, want 1d 2:3:4", got.Days, got.Hours, got.Minutes, got.Seconds)
	}
	if got.Display != "01d 02:03:04" {
		t.Errorf("display = %q, want %q", got.Display, "01d 02:03:04")
	}
}

func TestCampaignService_Countdown_NotStarted(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	c := mustCampaign(t, start, end)

	got := c.Countdown(start.Add(-30 * time.Second))
	if got.Phase != PhaseNotStarted {
		t.Errorf("phase = %v, want not_started", got.Phase)
	}
	if got.Seconds != 30 || got.Days != 0 || got.Hours != 0 || got.Minutes != 0 {
		t.Errorf("countdown to start = %+v, want 30s", got)
	}
}

func TestCampaignService_Countdown_Finished(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	c := mustCampaign(t, start, end)

	got := c.Countdown(end.Add(time.Hour))
	if got.Phase != PhaseFinished {
		t.Errorf("phase = %v, want finished", got.Phase)
	}
	if got.Days != 0 || got.Hours != 0 || got.Minutes != 0 || got.Seconds != 0 {
		t.Errorf("finished countdown = %+v, want zeros", got)
	}
	if got.Display != "00d 00:00:00" {
		t.Errorf("display = %q, want %q", got.Display, "00d 00:00:00")
	}
}
