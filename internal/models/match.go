package models

import (
	"strings"
	"time"
)

type MatchFormat string

const (
	FormatBO1 MatchFormat = "BO1"
	FormatBO3 MatchFormat = "BO3"
)

type MatchStatus string

const (
	StatusLive     MatchStatus = "live"
	StatusUpcoming MatchStatus = "upcoming"
	StatusFinished MatchStatus = "finished"
)

// ParseMatchStatus accepts the three lifecycle values case-insensitively.
func ParseMatchStatus(raw string) (MatchStatus, bool) {
	switch MatchStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusLive:
		return StatusLive, true
	case StatusUpcoming:
		return StatusUpcoming, true
	case StatusFinished:
		return StatusFinished, true
	default:
		return "", false
	}
}

// Match is a scheduled or in-progress contest between two teams.
// Odds are kept as two-decimal strings ("1.85"), the way bookmakers print them.
type Match struct {
	ID            string      `json:"id"`
	Team1ID       string      `json:"team1_id"`
	Team2ID       string      `json:"team2_id"`
	Tournament    string      `json:"tournament"`
	StartTime     time.Time   `json:"start_time"`
	Format        MatchFormat `json:"format"`
	Status        MatchStatus `json:"status"`
	MapsScore     *string     `json:"maps_score,omitempty"`
	RoundsScore   *string     `json:"rounds_score,omitempty"`
	CurrentMap    *string     `json:"current_map,omitempty"`
	OddsTeam1     *string     `json:"odds_team1,omitempty"`
	OddsTeam2     *string     `json:"odds_team2,omitempty"`
	BookmakerName *string     `json:"bookmaker_name,omitempty"`
}

// MatchWithTeams is a match joined with its teams. A side whose team id does
// not resolve is nil and serializes as null.
type MatchWithTeams struct {
	Match
	Team1 *Team `json:"team1"`
	Team2 *Team `json:"team2"`
}
