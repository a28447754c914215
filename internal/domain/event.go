package domain

import (
	"errors"
	"time"
)

// TopicBalanceUpdated is the audit topic of every committed balance change.
const TopicBalanceUpdated = "balance_updated"

// ErrInvalidPage indicates a page of balance changes beyond the addressable range.
var ErrInvalidPage = errors.New("page out of range")

// Operation names the transition that produced a balance change.
type Operation string

// Balance operations.
const (
	OpSetBalance  Operation = "set_balance"
	OpApplyDelta  Operation = "apply_delta"
	OpLockFunds   Operation = "lock_funds"
	OpUnlockFunds Operation = "unlock_funds"
)

// BalanceEvent holds one committed balance change of a user.
type BalanceEvent struct {
	ID        int64
	User      Identity
	Operation Operation
	Previous  Balance
	Updated   Balance
	CreatedAt time.Time
}

// CreateEventParams is the input data to record a balance change.
type CreateEventParams struct {
	User      Identity
	Operation Operation
	Previous  Balance
	Updated   Balance
}
