package models

import "errors"

// Sentinel errors for the two caller-visible failure modes that are not
// upstream failures. Their text is the exact error string the agent sees,
// so it is part of the tool contract.
var (
	ErrUnsupportedChain = errors.New("Unsupported chain")
	ErrInvalidAddress   = errors.New("Invalid wallet address")
)
