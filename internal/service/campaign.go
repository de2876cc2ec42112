package service

import (
	"fmt"
	"time"

	"coin-board/pkg"

	"go.uber.org/zap"
)

type CampaignPhase string

const (
	PhaseNotStarted CampaignPhase = "not_started"
	PhaseRunning    CampaignPhase = "running"
	PhaseFinished   CampaignPhase = "finished"
)

// Countdown is the remaining time either until the campaign opens or until it
// closes, depending on the phase.
type Countdown struct {
	Phase   CampaignPhase
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Display string
}

type CampaignService interface {
	Countdown(now time.Time) Countdown

	IsRunning(now time.Time) bool
}

type campaignService struct {
	start time.Time
	end   time.Time
}

func NewCampaignService(start, end time.Time, log pkg.Logger) (CampaignService, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("campaign end %s is not after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	log.Info("Campaign configured",
		zap.Time("start", start),
		zap.Time("end", end))
	return &campaignService{
		start: start,
		end:   end,
	}, nil
}

func (s *campaignService) IsRunning(now time.Time) bool {
	return !now.Before(s.start) && now.Before(s.end)
}

func (s *campaignService) Countdown(now time.Time) Countdown {
	var (
		phase     CampaignPhase
		remaining time.Duration
	)
	switch {
	case now.Before(s.start):
		phase = PhaseNotStarted
		remaining = s.start.Sub(now)
	case now.Before(s.end):
		phase = PhaseRunning
		remaining = s.end.Sub(now)
	default:
		phase = PhaseFinished
	}

	total := int(remaining.Seconds())
	c := Countdown{
		Phase:   phase,
		Days:    total / 86400,
		Hours:   total % 86400 / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}
	c.Display = fmt.Sprintf("%02dd %02d:%02d:%02d", c.Days, c.Hours, c.Minutes, c.Seconds)
	return c
}
