package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"cs2analytics/internal/config"
	"cs2analytics/internal/models"
	"cs2analytics/internal/repository"
	"cs2analytics/internal/stream"
)

const defaultLiveTimeout = 3 * time.Hour

// LifecycleService moves matches along upcoming -> live -> finished based on
// their start time. Sweeps closer together than Config.Cooldown are skipped.
type LifecycleService struct {
	Repo      repository.CatalogRepository
	Config    config.LifecycleConfig
	Publisher EventPublisher
	Logger    *zap.Logger

	mu        sync.Mutex
	lastSweep time.Time
	archived  int64
}

type StatusChange struct {
	MatchID string             `json:"match_id"`
	From    models.MatchStatus `json:"from"`
	To      models.MatchStatus `json:"to"`
}

type SweepResult struct {
	Skipped bool           `json:"skipped"`
	Changes []StatusChange `json:"changes"`
}

func (s *LifecycleService) Sweep(ctx context.Context, now time.Time) (SweepResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.lastSweep.IsZero() && s.Config.Cooldown > 0 && now.Sub(s.lastSweep) < s.Config.Cooldown {
		return SweepResult{Skipped: true}, nil
	}

	matches, err := s.Repo.ListMatches(ctx, repository.ListMatchesParams{})
	if err != nil {
		return SweepResult{}, fmt.Errorf("sweep: list matches: %w", err)
	}
	s.lastSweep = now

	timeout := s.Config.LiveTimeout
	if timeout <= 0 {
		timeout = defaultLiveTimeout
	}

	var result SweepResult
	for _, m := range matches {
		next, ok := nextStatus(m, now, timeout)
		if !ok {
			continue
		}
		if err := s.Repo.UpdateMatchStatus(ctx, m.ID, next); err != nil {
			return result, fmt.Errorf("sweep: update %s: %w", m.ID, err)
		}
		if next == models.StatusFinished {
			s.archived++
		}
		change := StatusChange{MatchID: m.ID, From: m.Status, To: next}
		result.Changes = append(result.Changes, change)
		publish(s.Publisher, stream.Event{Type: stream.EventMatchStatusChanged, At: now, Data: change})
	}

	if s.Logger != nil && len(result.Changes) > 0 {
		s.Logger.Info("lifecycle sweep",
			zap.Int("changed", len(result.Changes)),
			zap.Int64("archived_total", s.archived),
		)
	}
	return result, nil
}

// ArchivedCount is the number of matches the sweeper has finished so far.
func (s *LifecycleService) ArchivedCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.archived
}

func nextStatus(m models.Match, now time.Time, liveTimeout time.Duration) (models.MatchStatus, bool) {
	if m.Status == models.StatusFinished || m.StartTime.IsZero() {
		return "", false
	}
	if !now.Before(m.StartTime.Add(liveTimeout)) {
		return models.StatusFinished, true
	}
	if m.Status == models.StatusUpcoming && !now.Before(m.StartTime) {
		return models.StatusLive, true
	}
	return "", false
}
