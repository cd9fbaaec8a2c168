package chains

import (
	"context"
	"encoding/json"
	"fmt"

	"wallet-analyzer/internal/interfaces"
	"wallet-analyzer/internal/models"
	"wallet-analyzer/internal/rpc"

	"github.com/btcsuite/btcd/btcutil/base58"
)

var _ interfaces.ChainClient = (*SolanaClient)(nil)

const (
	// lamportsPerSol is the scale between the smallest unit and SOL.
	lamportsPerSol = 1e9

	// solanaPubkeyLen is the decoded length of a valid account address.
	solanaPubkeyLen = 32
)

// SolanaClient serves balance queries against a Solana RPC node.
type SolanaClient struct {
	client *rpc.Client
}

func NewSolanaClient(client *rpc.Client) *SolanaClient {
	return &SolanaClient{client: client}
}

func (s *SolanaClient) Chain() models.Chain {
	return models.Solana
}

// Probe asks the node for its solana-core version.
func (s *SolanaClient) Probe(ctx context.Context) (string, error) {
	resp, err := s.client.Call(ctx, "getVersion", nil)
	if err != nil {
		return "", fmt.Errorf("Solana liveness probe failed: %w", err)
	}

	var version struct {
		SolanaCore string `json:"solana-core"`
	}
	if err := json.Unmarshal(resp.Result, &version); err != nil {
		return "", fmt.Errorf("failed to parse version response: %v", err)
	}
	return version.SolanaCore, nil
}

// Balance returns the account balance in SOL. A string that does not decode
// to a 32-byte public key is rejected before any network call.
func (s *SolanaClient) Balance(ctx context.Context, address string) (float64, error) {
	if decoded := base58.Decode(address); len(decoded) != solanaPubkeyLen {
		return 0, models.ErrInvalidAddress
	}

	resp, err := s.client.Call(ctx, "getBalance", []interface{}{address})
	if err != nil {
		return 0, fmt.Errorf("failed to get Solana balance: %w", err)
	}

	var result struct {
		Value uint64 `json:"value"`
	}
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		return 0, fmt.Errorf("failed to parse balance response: %v", err)
	}

	return float64(result.Value) / lamportsPerSol, nil
}

func (s *SolanaClient) BlockHead(ctx context.Context) (uint64, error) {
	resp, err := s.client.Call(ctx, "getSlot", nil)
	if err != nil {
		return 0, err
	}

	var slot uint64
	if err := json.Unmarshal(resp.Result, &slot); err != nil {
		return 0, err
	}
	return slot, nil
}

func (s *SolanaClient) Close() {
	s.client.Close()
}
