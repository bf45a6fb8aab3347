package predictor

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cs2analytics/internal/models"
)

type Strategy string

const (
	// StrategyRandom picks the winner and scores at random and emits the
	// full recommendation set.
	StrategyRandom Strategy = "random"
	// StrategyDeterministic always favours team1 with fixed scores.
	StrategyDeterministic Strategy = "deterministic"
)

func ParseStrategy(raw string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", StrategyRandom:
		return StrategyRandom, nil
	case StrategyDeterministic:
		return StrategyDeterministic, nil
	default:
		return "", fmt.Errorf("unknown analysis strategy %q", raw)
	}
}

const (
	// UnresolvedTeamName stands in for a side whose team id does not resolve.
	UnresolvedTeamName = "TBD"

	RecommendationRecommended = "recommended"
	RecommendationRisky       = "risky"
	RecommendationInteresting = "interesting"

	StakeMedium = "medium"
	StakeLow    = "low"

	recommendedThreshold = 0.8

	fixedWinProbability = 0.65
	fixedConfidence     = 0.78
	fixedWinnerOdds     = 2.15
)

type Predictor struct {
	Strategy Strategy
	Rand     Rand
	// Backend is echoed into every analysis.
	Backend string
	Now     func() time.Time
}

func New(strategy Strategy, r Rand, backend string) *Predictor {
	if r == nil {
		r = NewRand(0)
	}
	return &Predictor{Strategy: strategy, Rand: r, Backend: backend}
}

// Predict builds a fresh analysis for match. team1/team2 may be nil.
func (p *Predictor) Predict(match models.Match, team1, team2 *models.Team) models.Analysis {
	name1 := teamName(team1)
	name2 := teamName(team2)

	var out models.Analysis
	switch p.Strategy {
	case StrategyDeterministic:
		out = p.deterministic(match, team1, name1, name2)
	default:
		out = p.random(name1, name2)
	}
	out.MatchID = match.ID
	out.Backend = p.Backend
	out.AnalysisTime = p.now()
	return out
}

func (p *Predictor) random(name1, name2 string) models.Analysis {
	r := p.rand()
	winProb := round2(Uniform(r, 0.55, 0.85))
	confidence := round2(Uniform(r, 0.70, 0.90))
	winner := name2
	if r.Float64() < 0.5 {
		winner = name1
	}
	recommendation, stake := winnerRecommendation(confidence)
	return models.Analysis{
		PredictedWinner: winner,
		WinProbability:  winProb,
		Confidence:      confidence,
		Reasoning: fmt.Sprintf(
			"Analysis shows that %s holds a statistical edge based on recent results and current team form.", winner),
		BettingRecommendations: []models.BettingRecommendation{
			{
				Type:           "Winner",
				Description:    "Victory for " + winner,
				Odds:           round2(Uniform(r, 1.8, 2.5)),
				Recommendation: recommendation,
				Stake:          stake,
			},
			{
				Type:           "Total Maps",
				Description:    "Total maps over 2.5",
				Odds:           round2(Uniform(r, 1.7, 2.1)),
				Recommendation: RecommendationInteresting,
				Stake:          StakeLow,
			},
		},
		RiskFactors: []string{
			"Unstable form on specific maps",
			"Possible roster changes",
		},
	}
}

func (p *Predictor) deterministic(match models.Match, team1 *models.Team, name1, name2 string) models.Analysis {
	winner, odds := name1, match.OddsTeam1
	if team1 == nil && name2 != UnresolvedTeamName {
		winner, odds = name2, match.OddsTeam2
	}
	recommendation, stake := winnerRecommendation(fixedConfidence)
	return models.Analysis{
		PredictedWinner: winner,
		WinProbability:  fixedWinProbability,
		Confidence:      fixedConfidence,
		Reasoning: fmt.Sprintf(
			"Analysis shows that %s has the advantage in current form and experience at tournaments of this level.", winner),
		BettingRecommendations: []models.BettingRecommendation{
			{
				Type:           "Winner",
				Description:    "Victory for " + winner,
				Odds:           parseOdds(odds, fixedWinnerOdds),
				Recommendation: recommendation,
				Stake:          stake,
			},
		},
		RiskFactors: []string{"Possible fatigue after recent matches"},
	}
}

// winnerRecommendation is a pure threshold on the reported confidence.
func winnerRecommendation(confidence float64) (string, string) {
	if confidence > recommendedThreshold {
		return RecommendationRecommended, StakeMedium
	}
	return RecommendationRisky, StakeLow
}

func (p *Predictor) rand() Rand {
	if p.Rand == nil {
		return NewRand(0)
	}
	return p.Rand
}

func (p *Predictor) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now().UTC()
}

func teamName(t *models.Team) string {
	if t == nil || strings.TrimSpace(t.Name) == "" {
		return UnresolvedTeamName
	}
	return t.Name
}

func parseOdds(raw *string, fallback float64) float64 {
	if raw == nil {
		return fallback
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*raw))
	if err != nil || !d.IsPositive() {
		return fallback
	}
	return d.Round(2).InexactFloat64()
}

func round2(v float64) float64 {
	r := decimal.NewFromFloat(v).Round(2)
	if r.LessThan(decimal.Zero) {
		return 0
	}
	return r.InexactFloat64()
}

// FormatOdds renders a decimal odds value the way the catalog stores it.
func FormatOdds(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
