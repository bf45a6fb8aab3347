package service

import (
	"context"
	"fmt"

	"cs2analytics/internal/models"
	"cs2analytics/internal/repository"
)

type CatalogQueryService struct {
	Repo repository.CatalogRepository
}

type CatalogTeamsResult struct {
	Items []models.Team
	Total int64
}

type CatalogMatchesResult struct {
	Items         []models.MatchWithTeams
	Total         int64
	LiveCount     int
	UpcomingCount int
}

func (s *CatalogQueryService) ListTeams(ctx context.Context) (CatalogTeamsResult, error) {
	items, err := s.Repo.ListTeams(ctx)
	if err != nil {
		return CatalogTeamsResult{}, fmt.Errorf("list teams: %w", err)
	}
	return CatalogTeamsResult{Items: items, Total: int64(len(items))}, nil
}

// ListMatches returns matches joined with their teams. Team ids that do not
// resolve leave the corresponding side nil.
func (s *CatalogQueryService) ListMatches(ctx context.Context, params repository.ListMatchesParams) (CatalogMatchesResult, error) {
	matches, err := s.Repo.ListMatches(ctx, params)
	if err != nil {
		return CatalogMatchesResult{}, fmt.Errorf("list matches: %w", err)
	}
	teamsByID, err := s.teamsFor(ctx, matches)
	if err != nil {
		return CatalogMatchesResult{}, err
	}

	out := CatalogMatchesResult{
		Items: make([]models.MatchWithTeams, 0, len(matches)),
		Total: int64(len(matches)),
	}
	for _, m := range matches {
		out.Items = append(out.Items, join(m, teamsByID))
		switch m.Status {
		case models.StatusLive:
			out.LiveCount++
		case models.StatusUpcoming:
			out.UpcomingCount++
		}
	}
	return out, nil
}

func (s *CatalogQueryService) GetMatch(ctx context.Context, id string) (*models.MatchWithTeams, error) {
	m, err := s.Repo.GetMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get match %s: %w", id, err)
	}
	if m == nil {
		return nil, ErrNotFound
	}
	teamsByID, err := s.teamsFor(ctx, []models.Match{*m})
	if err != nil {
		return nil, err
	}
	joined := join(*m, teamsByID)
	return &joined, nil
}

func (s *CatalogQueryService) teamsFor(ctx context.Context, matches []models.Match) (map[string]models.Team, error) {
	ids := make([]string, 0, len(matches)*2)
	for _, m := range matches {
		ids = append(ids, m.Team1ID, m.Team2ID)
	}
	teams, err := s.Repo.ListTeamsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve teams: %w", err)
	}
	byID := make(map[string]models.Team, len(teams))
	for _, t := range teams {
		byID[t.ID] = t
	}
	return byID, nil
}

func join(m models.Match, teamsByID map[string]models.Team) models.MatchWithTeams {
	out := models.MatchWithTeams{Match: m}
	if t, ok := teamsByID[m.Team1ID]; ok {
		t := t
		out.Team1 = &t
	}
	if t, ok := teamsByID[m.Team2ID]; ok {
		t := t
		out.Team2 = &t
	}
	return out
}
