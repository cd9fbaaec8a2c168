package interfaces

import (
	"context"

	"wallet-analyzer/internal/models"
)

// ChainClient is the read-only view of one chain connection held by the
// registry. Implementations are immutable after construction and safe for
// concurrent use.
type ChainClient interface {
	// Chain returns the chain this client is bound to.
	Chain() models.Chain

	// Probe issues a lightweight liveness query and returns the node's
	// reported client version.
	Probe(ctx context.Context) (string, error)

	// Balance returns the native balance of the address converted to the
	// chain's display unit.
	Balance(ctx context.Context, address string) (float64, error)

	// BlockHead returns the latest block number or slot.
	BlockHead(ctx context.Context) (uint64, error)

	Close()
}

// EventEmitter defines the interface for emitting query events
type EventEmitter interface {
	EmitEvent(event models.QueryEvent) error
}
