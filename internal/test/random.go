package test

import (
	"github.com/go-petr/balance-ledger/internal/domain"
	"github.com/go-petr/balance-ledger/pkg/randompkg"
)

// RandomBalance returns a random non-negative balance.
func RandomBalance() domain.Balance {
	return domain.Balance{
		Withdrawable: randompkg.Amount(1000, 10_000),
		Locked:       randompkg.Amount(0, 1000),
	}
}
