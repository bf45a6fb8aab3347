package repository

import (
	"context"
	"errors"

	"cs2analytics/internal/models"
)

var (
	ErrEmptyID     = errors.New("empty id")
	ErrDuplicateID = errors.New("duplicate id")
	ErrNotFound    = errors.New("record not found")
)

// CatalogRepository owns the team and match collections. Lookups that find
// nothing return (nil, nil); writers report ErrEmptyID / ErrDuplicateID.
type CatalogRepository interface {
	// Teams are written once at seed time.
	InsertTeams(ctx context.Context, items []models.Team) error
	ListTeams(ctx context.Context) ([]models.Team, error)
	CountTeams(ctx context.Context) (int64, error)
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	ListTeamsByIDs(ctx context.Context, ids []string) ([]models.Team, error)

	// AppendMatches adds rows after the existing ones and returns the new total.
	AppendMatches(ctx context.Context, items []models.Match) (int64, error)
	ListMatches(ctx context.Context, params ListMatchesParams) ([]models.Match, error)
	CountMatches(ctx context.Context, params ListMatchesParams) (int64, error)
	GetMatch(ctx context.Context, id string) (*models.Match, error)
	// UpdateMatchStatus returns ErrNotFound when the id is unknown.
	UpdateMatchStatus(ctx context.Context, id string, status models.MatchStatus) error
}

type ListMatchesParams struct {
	Status     *models.MatchStatus
	Tournament *string
}
