package balance

import (
	"context"
	"fmt"

	"wallet-analyzer/internal/chains"
	"wallet-analyzer/internal/models"

	"github.com/rs/zerolog"
)

// Service resolves chain aliases and routes balance queries to the matching
// registry client.
type Service struct {
	registry *chains.Registry
	logger   *zerolog.Logger
}

func NewService(registry *chains.Registry, logger *zerolog.Logger) *Service {
	return &Service{
		registry: registry,
		logger:   logger,
	}
}

// GetBalance returns the native balance of the address on the given chain.
// Unknown chain identifiers and malformed addresses are rejected without
// any network call.
func (s *Service) GetBalance(ctx context.Context, address, chain string) (models.BalanceResult, error) {
	resolved, ok := models.ParseChain(chain)
	if !ok {
		return models.BalanceResult{}, models.ErrUnsupportedChain
	}

	client, ok := s.registry.Client(resolved)
	if !ok {
		return models.BalanceResult{}, fmt.Errorf("no client registered for %s", resolved)
	}

	amount, err := client.Balance(ctx, address)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("chain", resolved.String()).
			Str("address", address).
			Msg("Balance check failed")
		return models.BalanceResult{}, err
	}

	return models.BalanceResult{Chain: resolved.String(), Balance: amount}, nil
}
