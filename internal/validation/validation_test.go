package validation

import (
	"testing"

	"wallet-analyzer/internal/models"
)

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		chain   models.Chain
		wantErr bool
	}{
		{"valid ethereum", "0x95222290DD7278Aa3Ddd389Cc1E1d165CC4BAfe5", models.Ethereum, false},
		{"valid polygon", "0x95222290DD7278Aa3Ddd389Cc1E1d165CC4BAfe5", models.Polygon, false},
		{"missing 0x prefix", "95222290DD7278Aa3Ddd389Cc1E1d165CC4BAfe5", models.Ethereum, true},
		{"too short", "0x1234", models.Ethereum, true},
		{"non-hex characters", "0xZZ222290DD7278Aa3Ddd389Cc1E1d165CC4BAfe5", models.Ethereum, true},
		{"empty", "", models.Ethereum, true},
		{"valid solana", "5guD4Uz462GT4Y4gEuqyGsHZ59JGxFN4a3rF6KWguMcJ", models.Solana, false},
		{"solana with invalid base58 chars", "0OIl4Uz462GT4Y4gEuqyGsHZ59JGxFN4a3rF6KWguMcJ", models.Solana, true},
		{"solana too short", "abc", models.Solana, true},
		{"evm address on solana", "0x95222290DD7278Aa3Ddd389Cc1E1d165CC4BAfe5", models.Solana, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddress(tt.address, tt.chain)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAddress(%q, %s) error = %v, wantErr %v", tt.address, tt.chain, err, tt.wantErr)
			}
		})
	}
}
