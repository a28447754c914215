package domain

import (
	"github.com/go-petr/balance-ledger/pkg/amountpkg"
)

// Balance holds the two buckets of a user balance.
//
// Both buckets are non-negative after every successful transition.
// A user without a stored record has the zero Balance.
type Balance struct {
	Withdrawable amountpkg.Int128 `json:"withdrawable"`
	Locked       amountpkg.Int128 `json:"locked"`
}

// Transition computes the next balance from the current one. It must not have side effects.
type Transition func(prev Balance) (Balance, error)

// NewBalance returns the balance with the given buckets. Each must be non-negative.
func NewBalance(withdrawable, locked amountpkg.Int128) (Balance, error) {
	if withdrawable.Sign() < 0 || locked.Sign() < 0 {
		return Balance{}, ErrInvalidAmount
	}

	return Balance{Withdrawable: withdrawable, Locked: locked}, nil
}

// ValidatePositive rejects zero and negative lock/unlock amounts.
func ValidatePositive(amount amountpkg.Int128) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	return nil
}

// Total returns withdrawable + locked.
func (b Balance) Total() (amountpkg.Int128, error) {
	total, err := b.Withdrawable.Add(b.Locked)
	if err != nil {
		return amountpkg.Zero, ErrOverflow
	}

	return total, nil
}

// ApplyDelta adds the deltas to both buckets at once.
// Either the complete next balance or an error is returned, never a partial result.
func (b Balance) ApplyDelta(withdrawableDelta, lockedDelta amountpkg.Int128) (Balance, error) {
	withdrawable, err := b.Withdrawable.Add(withdrawableDelta)
	if err != nil {
		return Balance{}, ErrOverflow
	}

	locked, err := b.Locked.Add(lockedDelta)
	if err != nil {
		return Balance{}, ErrOverflow
	}

	if withdrawable.Sign() < 0 {
		return Balance{}, ErrInsufficientWithdrawable
	}

	if locked.Sign() < 0 {
		return Balance{}, ErrInsufficientLocked
	}

	return Balance{Withdrawable: withdrawable, Locked: locked}, nil
}

// Lock moves amount from withdrawable to locked.
func (b Balance) Lock(amount amountpkg.Int128) (Balance, error) {
	if b.Withdrawable.Cmp(amount) < 0 {
		return Balance{}, ErrInsufficientWithdrawable
	}

	neg, err := amount.Neg()
	if err != nil {
		return Balance{}, ErrOverflow
	}

	return b.ApplyDelta(neg, amount)
}

// Unlock moves amount from locked back to withdrawable.
func (b Balance) Unlock(amount amountpkg.Int128) (Balance, error) {
	if b.Locked.Cmp(amount) < 0 {
		return Balance{}, ErrInsufficientLocked
	}

	neg, err := amount.Neg()
	if err != nil {
		return Balance{}, ErrOverflow
	}

	return b.ApplyDelta(amount, neg)
}
