package risk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wallet-analyzer/internal/balance"
	"wallet-analyzer/internal/config"
	"wallet-analyzer/internal/models"

	"github.com/rs/zerolog"
)

// Analyzer composes one balance lookup with one call to the external
// text-classification endpoint.
type Analyzer struct {
	balances *balance.Service
	modelURL string
	token    string
	client   *http.Client
	logger   *zerolog.Logger
}

func NewAnalyzer(balances *balance.Service, cfg config.RiskConfig, logger *zerolog.Logger) *Analyzer {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Analyzer{
		balances: balances,
		modelURL: cfg.ModelURL,
		token:    cfg.Token,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

// Analyze classifies the risk profile of the wallet from its on-chain
// balance. A balance error is returned as-is and no classification request
// is made.
func (a *Analyzer) Analyze(ctx context.Context, address, chain string) (models.RiskResult, error) {
	balanceData, err := a.balances.GetBalance(ctx, address, chain)
	if err != nil {
		return models.RiskResult{}, err
	}

	prompt := fmt.Sprintf("Analyze risk profile for %s with %v %s balance", address, balanceData.Balance, chain)
	payload, err := json.Marshal(inferenceRequest{Inputs: prompt})
	if err != nil {
		return models.RiskResult{}, fmt.Errorf("failed to marshal inference request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.modelURL, bytes.NewReader(payload))
	if err != nil {
		return models.RiskResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error().Err(err).Msg("Risk analysis failed")
		return models.RiskResult{}, err
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.RiskResult{}, fmt.Errorf("failed to read inference response: %v", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return models.RiskResult{}, fmt.Errorf("HTTP error: %d - %s", resp.StatusCode, resp.Status)
	}

	candidates, err := decodeCandidates(body)
	if err != nil {
		return models.RiskResult{}, err
	}

	// First-max semantics: ties go to the earliest candidate.
	best := candidates[0]
	for _, candidate := range candidates[1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}

	return models.RiskResult{
		Address:      address,
		Chain:        chain,
		Balance:      balanceData.Balance,
		RiskAnalysis: best,
	}, nil
}

// decodeCandidates accepts both the flat candidate list and the
// single-nested form some models return.
func decodeCandidates(body []byte) ([]models.RiskLabel, error) {
	var flat []models.RiskLabel
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}

	var nested [][]models.RiskLabel
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0], nil
	}

	return nil, fmt.Errorf("unexpected inference response: %s", truncate(body, 200))
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
