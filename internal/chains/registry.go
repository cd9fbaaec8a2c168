package chains

import (
	"context"
	"fmt"
	"strings"

	"wallet-analyzer/internal/config"
	"wallet-analyzer/internal/interfaces"
	"wallet-analyzer/internal/models"
	"wallet-analyzer/internal/rpc"

	"github.com/rs/zerolog"
)

// Registry holds one connection per supported chain. It is fully built
// before any handler runs and never mutated afterwards, so reads need no
// locking.
type Registry struct {
	clients map[models.Chain]interfaces.ChainClient
}

// NewRegistry connects and probes every supported chain. Any failure tears
// down the clients opened so far and returns an error; a partial registry
// is never returned.
func NewRegistry(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Registry, error) {
	clients := make(map[models.Chain]interfaces.ChainClient)

	fail := func(err error) (*Registry, error) {
		for _, client := range clients {
			client.Close()
		}
		return nil, err
	}

	for _, chain := range models.Chains() {
		chainCfg, ok := cfg.Chains[chain]
		if !ok || chainCfg.RpcEndpoint == "" {
			return fail(fmt.Errorf("missing RPC URL for %s", chain))
		}

		var client interfaces.ChainClient
		if chain.IsEVM() {
			evm, err := NewEVMClient(ctx, chain, chainCfg.RpcEndpoint)
			if err != nil {
				return fail(err)
			}
			client = evm
		} else {
			client = NewSolanaClient(rpc.NewClient(chainCfg.RpcEndpoint, "", chainCfg.RateLimit, cfg.HTTPTimeout, logger))
		}

		version, err := client.Probe(ctx)
		if err != nil {
			client.Close()
			return fail(err)
		}

		logger.Info().
			Str("chain", strings.ToUpper(chain.String())).
			Str("clientVersion", version).
			Msg("Connected to node")

		clients[chain] = client
	}

	return &Registry{clients: clients}, nil
}

// Client returns the connection for the given chain.
func (r *Registry) Client(chain models.Chain) (interfaces.ChainClient, bool) {
	client, ok := r.clients[chain]
	return client, ok
}

// Chains returns the registered chains in registry order.
func (r *Registry) Chains() []models.Chain {
	chains := make([]models.Chain, 0, len(r.clients))
	for _, chain := range models.Chains() {
		if _, ok := r.clients[chain]; ok {
			chains = append(chains, chain)
		}
	}
	return chains
}

// Close releases every client connection.
func (r *Registry) Close() {
	for _, client := range r.clients {
		client.Close()
	}
}
