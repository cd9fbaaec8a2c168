package chains

import (
	"context"
	"fmt"
	"math/big"

	"wallet-analyzer/internal/interfaces"
	"wallet-analyzer/internal/models"
	"wallet-analyzer/internal/validation"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

var _ interfaces.ChainClient = (*EVMClient)(nil)

// weiPerEther is the scale between the smallest unit and the display unit.
var weiPerEther = big.NewFloat(1e18)

// EVMClient serves balance queries for one account-model chain over a
// JSON-RPC provider.
type EVMClient struct {
	chain models.Chain
	rpc   *gethrpc.Client
	eth   *ethclient.Client
}

// NewEVMClient dials the RPC endpoint for the given chain.
func NewEVMClient(ctx context.Context, chain models.Chain, endpoint string) (*EVMClient, error) {
	rpcClient, err := gethrpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s node: %w", chain, err)
	}

	return &EVMClient{
		chain: chain,
		rpc:   rpcClient,
		eth:   ethclient.NewClient(rpcClient),
	}, nil
}

func (c *EVMClient) Chain() models.Chain {
	return c.chain
}

// Probe asks the node for its client version.
func (c *EVMClient) Probe(ctx context.Context) (string, error) {
	var version string
	if err := c.rpc.CallContext(ctx, &version, "web3_clientVersion"); err != nil {
		return "", fmt.Errorf("%s liveness probe failed: %w", c.chain, err)
	}
	return version, nil
}

// Balance returns the native balance of the address in ether units.
func (c *EVMClient) Balance(ctx context.Context, address string) (float64, error) {
	if err := validation.ValidateAddress(address, c.chain); err != nil {
		return 0, models.ErrInvalidAddress
	}

	wei, err := c.eth.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get %s balance: %w", c.chain, err)
	}

	balance, _ := new(big.Float).Quo(new(big.Float).SetInt(wei), weiPerEther).Float64()
	return balance, nil
}

func (c *EVMClient) BlockHead(ctx context.Context) (uint64, error) {
	return c.eth.BlockNumber(ctx)
}

func (c *EVMClient) Close() {
	c.rpc.Close()
}
