// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"

	"github.com/go-petr/balance-ledger/internal/authorityrepo"
	"github.com/go-petr/balance-ledger/internal/balancerepo"
	"github.com/go-petr/balance-ledger/internal/domain"
	"github.com/go-petr/balance-ledger/internal/eventrepo"
	"github.com/go-petr/balance-ledger/pkg/dbpkg"
	"github.com/go-petr/balance-ledger/pkg/randompkg"
)

// SeedAuthority records a random authority inside a test transaction.
func SeedAuthority(t *testing.T, tx dbpkg.SQLInterface) domain.Authority {
	t.Helper()

	signer := randompkg.Identity()

	authority, err := authorityrepo.NewRepoPGS(tx).Create(context.Background(), signer)
	if err != nil {
		t.Fatalf("authorityRepo.Create(context.Background(), %v) returned error: %v", signer, err)
	}

	return authority
}

// SeedBalance stores the balance of the user inside a test transaction.
func SeedBalance(t *testing.T, tx dbpkg.SQLInterface, user domain.Identity, b domain.Balance) domain.Balance {
	t.Helper()

	balanceRepo := balancerepo.NewRepoPGS(tx)

	if _, err := balanceRepo.GetForUpdate(context.Background(), user); err != nil {
		t.Fatalf("balanceRepo.GetForUpdate(context.Background(), %v) returned error: %v", user, err)
	}

	stored, err := balanceRepo.Set(context.Background(), user, b)
	if err != nil {
		t.Fatalf("balanceRepo.Set(context.Background(), %v, %+v) returned error: %v", user, b, err)
	}

	return stored
}

// SeedRandomBalance stores a random balance for a random user inside a test transaction.
func SeedRandomBalance(t *testing.T, tx dbpkg.SQLInterface) (domain.Identity, domain.Balance) {
	t.Helper()

	user := randompkg.Identity()

	return user, SeedBalance(t, tx, user, RandomBalance())
}

// SeedEvents appends count apply_delta records for the user inside a test transaction.
// The user's balance record must exist.
func SeedEvents(t *testing.T, tx dbpkg.SQLInterface, user domain.Identity, count int) []domain.BalanceEvent {
	t.Helper()

	eventRepo := eventrepo.NewRepoPGS(tx)

	events := make([]domain.BalanceEvent, count)

	for i := range events {
		arg := domain.CreateEventParams{
			User:      user,
			Operation: domain.OpApplyDelta,
			Previous:  RandomBalance(),
			Updated:   RandomBalance(),
		}

		e, err := eventRepo.Create(context.Background(), arg)
		if err != nil {
			t.Fatalf("eventRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
		}

		events[i] = e
	}

	return events
}
