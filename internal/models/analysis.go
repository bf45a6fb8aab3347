package models

import "time"

type BettingRecommendation struct {
	Type           string  `json:"type"`
	Description    string  `json:"description"`
	Odds           float64 `json:"odds"`
	Recommendation string  `json:"recommendation"`
	Stake          string  `json:"stake"`
}

// Analysis is generated per request and never stored.
type Analysis struct {
	MatchID                string                  `json:"match_id"`
	PredictedWinner        string                  `json:"predicted_winner"`
	WinProbability         float64                 `json:"win_probability"`
	Confidence             float64                 `json:"confidence"`
	Reasoning              string                  `json:"reasoning"`
	BettingRecommendations []BettingRecommendation `json:"betting_recommendations"`
	RiskFactors            []string                `json:"risk_factors"`
	Backend                string                  `json:"backend,omitempty"`
	AnalysisTime           time.Time               `json:"analysis_time"`
}
