package domain

import (
	"errors"
	"time"
)

// ErrNotInitialized indicates that no authority has been recorded yet.
var ErrNotInitialized = errors.New("ledger is not initialized")

// Authority holds the single backend signer allowed to mutate balances.
// It is recorded once and never changes afterwards.
type Authority struct {
	Signer    Identity
	CreatedAt time.Time
}
