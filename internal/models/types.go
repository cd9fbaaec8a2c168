package models

import "time"

// BalanceResult is the successful outcome of one balance query.
type BalanceResult struct {
	Chain   string  `json:"chain"`
	Balance float64 `json:"balance"`
}

// RiskLabel is one classification candidate returned by the model.
type RiskLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// RiskResult is the successful outcome of one risk analysis.
type RiskResult struct {
	Address      string    `json:"address"`
	Chain        string    `json:"chain"`
	Balance      float64   `json:"balance"`
	RiskAnalysis RiskLabel `json:"risk_analysis"`
}

// QueryEvent records one served tool call for the event sink.
type QueryEvent struct {
	Tool      string    `json:"tool"`
	Address   string    `json:"address"`
	Chain     string    `json:"chain"`
	Balance   float64   `json:"balance,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
