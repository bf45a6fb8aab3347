package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"cs2analytics/internal/models"
	"cs2analytics/internal/repository"
)

type SeedData struct {
	Teams   []models.Team
	Matches []models.Match
}

// SeedService loads the initial catalog. It succeeds at most once per process.
type SeedService struct {
	Repo   repository.CatalogRepository
	Logger *zap.Logger
	Clock  func() time.Time
	// Data overrides the built-in data set when non-nil.
	Data func(now time.Time) SeedData

	mu     sync.Mutex
	seeded bool
}

func (s *SeedService) Seed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seeded {
		return ErrAlreadySeeded
	}

	now := nowFrom(s.Clock)
	build := s.Data
	if build == nil {
		build = DefaultSeedData
	}
	data := build(now)
	for i := range data.Teams {
		if data.Teams[i].CreatedAt.IsZero() {
			data.Teams[i].CreatedAt = now
		}
	}

	if err := s.Repo.InsertTeams(ctx, data.Teams); err != nil {
		return fmt.Errorf("seed teams: %w", err)
	}
	total, err := s.Repo.AppendMatches(ctx, data.Matches)
	if err != nil {
		return fmt.Errorf("seed matches: %w", err)
	}
	s.seeded = true
	if s.Logger != nil {
		s.Logger.Info("catalog seeded",
			zap.Int("teams", len(data.Teams)),
			zap.Int64("matches", total),
		)
	}
	return nil
}

func (s *SeedService) Seeded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seeded
}

func nowFrom(clock func() time.Time) time.Time {
	if clock != nil {
		return clock()
	}
	return time.Now().UTC()
}

func ptr(s string) *string { return &s }

// DefaultSeedData is the built-in catalog: current CS2 teams, three live
// matches and a run of upcoming ones scheduled hourly from now.
func DefaultSeedData(now time.Time) SeedData {
	teams := []models.Team{
		{ID: "1", Name: "Natus Vincere", ShortName: "NAVI"},
		{ID: "2", Name: "3DMAX", ShortName: "3DMAX"},
		{ID: "3", Name: "GamerLegion", ShortName: "GL"},
		{ID: "4", Name: "The MongolZ", ShortName: "TMZ"},
		{ID: "5", Name: "GenOne", ShortName: "G1"},
		{ID: "6", Name: "K27", ShortName: "K27"},
		{ID: "7", Name: "G2 Ares", ShortName: "G2A"},
		{ID: "8", Name: "BIG Academy", ShortName: "BIGA"},
		{ID: "9", Name: "Vitality", ShortName: "VIT"},
		{ID: "10", Name: "Liquid", ShortName: "LIQ"},
		{ID: "11", Name: "BetBoom", ShortName: "BB"},
		{ID: "12", Name: "BetClic", ShortName: "BC"},
		{ID: "13", Name: "FaZe", ShortName: "FAZE"},
		{ID: "14", Name: "Aurora", ShortName: "AUR"},
		{ID: "15", Name: "Spirit", ShortName: "SPR"},
		{ID: "16", Name: "HEROIC", ShortName: "HER"},
		{ID: "17", Name: "BIG", ShortName: "BIG"},
		{ID: "18", Name: "Spirit Academy", ShortName: "SPA"},
		{ID: "19", Name: "CYBERSHOKE", ShortName: "CYBER"},
		{ID: "20", Name: "FORZE Reload", ShortName: "FORZE"},
		{ID: "21", Name: "Sangal", ShortName: "SNG"},
		{ID: "22", Name: "AMKAL", ShortName: "AMK"},
		{ID: "23", Name: "Partizan", ShortName: "PTZ"},
		{ID: "24", Name: "Monte", ShortName: "MNT"},
		{ID: "25", Name: "Tricked", ShortName: "TRK"},
		{ID: "26", Name: "ASCRED", ShortName: "ASC"},
		{ID: "27", Name: "Leo", ShortName: "LEO"},
		{ID: "28", Name: "EYEBALLERS", ShortName: "EYE"},
	}
	for i := range teams {
		teams[i].CreatedAt = now
	}

	live := func(id, t1, t2, maps, rounds, mapName, o1, o2 string) models.Match {
		return models.Match{
			ID:            id,
			Team1ID:       t1,
			Team2ID:       t2,
			Tournament:    "Live Counter-Strike matches",
			StartTime:     now,
			Format:        models.FormatBO3,
			Status:        models.StatusLive,
			MapsScore:     ptr(maps),
			RoundsScore:   ptr(rounds),
			CurrentMap:    ptr(mapName),
			OddsTeam1:     ptr(o1),
			OddsTeam2:     ptr(o2),
			BookmakerName: ptr("1xBet"),
		}
	}
	upcoming := func(id, t1, t2, tournament string, hours int, odds ...string) models.Match {
		m := models.Match{
			ID:         id,
			Team1ID:    t1,
			Team2ID:    t2,
			Tournament: tournament,
			StartTime:  now.Add(time.Duration(hours) * time.Hour),
			Format:     models.FormatBO3,
			Status:     models.StatusUpcoming,
		}
		if len(odds) == 2 {
			m.OddsTeam1 = ptr(odds[0])
			m.OddsTeam2 = ptr(odds[1])
			m.BookmakerName = ptr("1xBet")
		}
		return m
	}

	matches := []models.Match{
		live("live_match_1", "1", "2", "9:8", "8:6", "de_mirage", "1.85", "2.05"),
		live("live_match_2", "3", "4", "2:10", "2:10", "de_dust2", "2.10", "1.75"),
		live("live_match_3", "5", "6", "13:11", "11:13", "de_inferno", "1.90", "1.95"),
		upcoming("upcoming_match_1", "9", "10", "Esports World Cup 2025", 1, "1.65", "2.20"),
		upcoming("upcoming_match_2", "11", "12", "Exort The Proving Grounds Season 3", 2, "2.15", "1.70"),
		upcoming("upcoming_match_3", "13", "14", "Esports World Cup 2025", 3, "1.80", "2.05"),
		upcoming("upcoming_match_4", "15", "16", "Esports World Cup 2025", 4, "1.75", "2.15"),
		upcoming("upcoming_match_5", "17", "18", "Exort The Proving Grounds Season 3", 5, "1.95", "1.90"),
		upcoming("upcoming_match_6", "19", "20", "Majestic LanData 3 Closed Qualifier", 6),
		upcoming("upcoming_match_7", "23", "24", "CCT Season 3 Europe Series 5", 7),
	}
	return SeedData{Teams: teams, Matches: matches}
}
