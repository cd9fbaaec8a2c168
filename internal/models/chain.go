package models

import "strings"

// Chain identifies one supported blockchain.
type Chain string

const (
	Ethereum Chain = "Ethereum"
	Polygon  Chain = "Polygon"
	Arbitrum Chain = "Arbitrum"
	Solana   Chain = "Solana"
)

func (c Chain) String() string {
	return string(c)
}

// IsEVM reports whether the chain is reached through the account-model
// JSON-RPC provider.
func (c Chain) IsEVM() bool {
	return c != Solana
}

// Chains returns every supported chain in registry order.
func Chains() []Chain {
	return []Chain{Ethereum, Polygon, Arbitrum, Solana}
}

// aliases maps every accepted chain identifier to its canonical chain.
var aliases = map[string]Chain{
	"eth":      Ethereum,
	"ethereum": Ethereum,
	"polygon":  Polygon,
	"matic":    Polygon,
	"arbitrum": Arbitrum,
	"solana":   Solana,
}

// ParseChain resolves a user-supplied chain identifier, case-insensitively.
func ParseChain(s string) (Chain, bool) {
	c, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	return c, ok
}
