// Package ledgerrepo composes the authority, balance and event repositories
// into the storage the ledger service runs on.
package ledgerrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/balance-ledger/internal/authorityrepo"
	"github.com/go-petr/balance-ledger/internal/balancerepo"
	"github.com/go-petr/balance-ledger/internal/domain"
	"github.com/go-petr/balance-ledger/internal/eventrepo"
	"github.com/go-petr/balance-ledger/pkg/dbpkg"
	"github.com/go-petr/balance-ledger/pkg/errorspkg"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates ledger repository layer logic.
type RepoPGS struct {
	conn      *sql.DB
	authority *authorityrepo.RepoPGS
	balances  *balancerepo.RepoPGS
	events    *eventrepo.RepoPGS
}

// NewRepoPGS returns ledger RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		conn:      db,
		authority: authorityrepo.NewRepoPGS(db),
		balances:  balancerepo.NewRepoPGS(db),
		events:    eventrepo.NewRepoPGS(db),
	}
}

// CreateAuthority records the backend identity. It fails with
// domain.ErrAlreadyInitialized once a signer is stored.
func (r *RepoPGS) CreateAuthority(ctx context.Context, signer domain.Identity) (domain.Authority, error) {
	return r.authority.Create(ctx, signer)
}

// GetAuthority returns the recorded backend identity.
func (r *RepoPGS) GetAuthority(ctx context.Context) (domain.Authority, error) {
	return r.authority.Get(ctx)
}

// GetBalance returns the stored balance of the user.
func (r *RepoPGS) GetBalance(ctx context.Context, user domain.Identity) (domain.Balance, error) {
	return r.balances.Get(ctx, user)
}

// ListEvents returns a page of the user's audit log.
func (r *RepoPGS) ListEvents(ctx context.Context, user domain.Identity, limit, offset int32) ([]domain.BalanceEvent, error) {
	return r.events.List(ctx, user, limit, offset)
}

// UpdateBalance runs fn against the user's current balance and stores its result.
//
// The read, the write and the audit record happen within a single db transaction
// holding the row lock, so concurrent updates of one user are serialized.
// If fn fails nothing is written and its error is returned as is.
func (r *RepoPGS) UpdateBalance(ctx context.Context, user domain.Identity, op domain.Operation,
	fn domain.Transition,
) (domain.BalanceEvent, error) {
	l := zerolog.Ctx(ctx)

	var event domain.BalanceEvent

	err := dbpkg.ExecTx(ctx, r.conn, func(tx *sql.Tx) error {
		balanceRepo := balancerepo.NewRepoPGS(tx)
		eventRepo := eventrepo.NewRepoPGS(tx)

		prev, err := balanceRepo.GetForUpdate(ctx, user)
		if err != nil {
			return err
		}

		next, err := fn(prev)
		if err != nil {
			return err
		}

		stored, err := balanceRepo.Set(ctx, user, next)
		if err != nil {
			return err
		}

		event, err = eventRepo.Create(ctx, domain.CreateEventParams{
			User:      user,
			Operation: op,
			Previous:  prev,
			Updated:   stored,
		})

		return err
	})
	if err != nil {
		if domain.CodeOf(err) != 0 {
			return domain.BalanceEvent{}, err
		}

		l.Error().Err(err).Str("operation", string(op)).Send()

		return domain.BalanceEvent{}, errorspkg.ErrInternal
	}

	return event, nil
}
