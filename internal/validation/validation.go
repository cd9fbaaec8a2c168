package validation

import (
	"errors"
	"regexp"

	"wallet-analyzer/internal/models"
)

var (
	evmAddressRegex    = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	solanaAddressRegex = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)
)

// ValidateAddress validates a wallet address format for the given chain.
// This is a syntax check only; Solana addresses additionally go through
// base58 decoding in the chain client.
func ValidateAddress(address string, chain models.Chain) error {
	if address == "" {
		return errors.New("address cannot be empty")
	}

	if chain == models.Solana {
		if !solanaAddressRegex.MatchString(address) {
			return errors.New("invalid Solana address format")
		}
		return nil
	}

	if !evmAddressRegex.MatchString(address) {
		return errors.New("invalid EVM address format")
	}
	return nil
}
