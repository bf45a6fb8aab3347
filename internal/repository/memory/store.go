package memoryrepository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"cs2analytics/internal/models"
	"cs2analytics/internal/repository"
)

// Store keeps teams and matches in insertion order for the process lifetime.
// Index maps point into the slices; rows are never removed.
type Store struct {
	mu         sync.RWMutex
	teams      []models.Team
	teamIndex  map[string]int
	matches    []models.Match
	matchIndex map[string]int
}

var _ repository.CatalogRepository = (*Store)(nil)

func New() *Store {
	return &Store{
		teamIndex:  map[string]int{},
		matchIndex: map[string]int{},
	}
}

func (s *Store) InsertTeams(ctx context.Context, items []models.Team) error {
	_ = ctx
	if len(items) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]struct{}{}
	for _, item := range items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return fmt.Errorf("team %q: %w", item.Name, repository.ErrEmptyID)
		}
		if _, ok := s.teamIndex[id]; ok {
			return fmt.Errorf("team %s: %w", id, repository.ErrDuplicateID)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("team %s: %w", id, repository.ErrDuplicateID)
		}
		seen[id] = struct{}{}
	}
	for _, item := range items {
		item.ID = strings.TrimSpace(item.ID)
		s.teamIndex[item.ID] = len(s.teams)
		s.teams = append(s.teams, item)
	}
	return nil
}

func (s *Store) ListTeams(ctx context.Context) ([]models.Team, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Team, len(s.teams))
	copy(out, s.teams)
	return out, nil
}

func (s *Store) CountTeams(ctx context.Context) (int64, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.teams)), nil
}

func (s *Store) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.teamIndex[strings.TrimSpace(id)]
	if !ok {
		return nil, nil
	}
	team := s.teams[idx]
	return &team, nil
}

func (s *Store) ListTeamsByIDs(ctx context.Context, ids []string) ([]models.Team, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Team, 0, len(ids))
	seen := map[string]struct{}{}
	for _, raw := range ids {
		id := strings.TrimSpace(raw)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if idx, ok := s.teamIndex[id]; ok {
			out = append(out, s.teams[idx])
		}
	}
	return out, nil
}

func (s *Store) AppendMatches(ctx context.Context, items []models.Match) (int64, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]struct{}{}
	for _, item := range items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return 0, fmt.Errorf("match: %w", repository.ErrEmptyID)
		}
		if _, ok := s.matchIndex[id]; ok {
			return 0, fmt.Errorf("match %s: %w", id, repository.ErrDuplicateID)
		}
		if _, ok := seen[id]; ok {
			return 0, fmt.Errorf("match %s: %w", id, repository.ErrDuplicateID)
		}
		seen[id] = struct{}{}
	}
	for _, item := range items {
		item.ID = strings.TrimSpace(item.ID)
		s.matchIndex[item.ID] = len(s.matches)
		s.matches = append(s.matches, item)
	}
	return int64(len(s.matches)), nil
}

func (s *Store) ListMatches(ctx context.Context, params repository.ListMatchesParams) ([]models.Match, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Match, 0, len(s.matches))
	for _, m := range s.matches {
		if matchesFilter(m, params) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *Store) CountMatches(ctx context.Context, params repository.ListMatchesParams) (int64, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, m := range s.matches {
		if matchesFilter(m, params) {
			n++
		}
	}
	return n, nil
}

func (s *Store) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.matchIndex[strings.TrimSpace(id)]
	if !ok {
		return nil, nil
	}
	m := s.matches[idx]
	return &m, nil
}

func (s *Store) UpdateMatchStatus(ctx context.Context, id string, status models.MatchStatus) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.matchIndex[strings.TrimSpace(id)]
	if !ok {
		return fmt.Errorf("match %s: %w", id, repository.ErrNotFound)
	}
	s.matches[idx].Status = status
	return nil
}

func matchesFilter(m models.Match, params repository.ListMatchesParams) bool {
	if params.Status != nil && m.Status != *params.Status {
		return false
	}
	if params.Tournament != nil {
		want := strings.TrimSpace(*params.Tournament)
		if want != "" && !strings.EqualFold(m.Tournament, want) {
			return false
		}
	}
	return true
}
