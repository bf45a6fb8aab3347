package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cs2analytics/internal/models"
	"cs2analytics/internal/predictor"
	"cs2analytics/internal/repository"
)

// AnalysisService generates a fresh analysis per call. Nothing is cached or
// written back to the catalog.
type AnalysisService struct {
	Repo      repository.CatalogRepository
	Predictor *predictor.Predictor
	Logger    *zap.Logger
}

func (s *AnalysisService) Analyze(ctx context.Context, matchID string) (*models.Analysis, error) {
	m, err := s.Repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("analyze: get match %s: %w", matchID, err)
	}
	if m == nil {
		return nil, ErrNotFound
	}
	team1, err := s.Repo.GetTeam(ctx, m.Team1ID)
	if err != nil {
		return nil, fmt.Errorf("analyze: team1 %s: %w", m.Team1ID, err)
	}
	team2, err := s.Repo.GetTeam(ctx, m.Team2ID)
	if err != nil {
		return nil, fmt.Errorf("analyze: team2 %s: %w", m.Team2ID, err)
	}

	p := s.Predictor
	if p == nil {
		p = predictor.New(predictor.StrategyRandom, nil, "")
	}
	analysis := p.Predict(*m, team1, team2)
	if s.Logger != nil {
		s.Logger.Debug("match analyzed",
			zap.String("match_id", m.ID),
			zap.String("winner", analysis.PredictedWinner),
			zap.Float64("confidence", analysis.Confidence),
		)
	}
	return &analysis, nil
}
