// Package balancerepo manages repository layer of user balances.
package balancerepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-petr/balance-ledger/internal/domain"
	"github.com/go-petr/balance-ledger/pkg/dbpkg"
	"github.com/go-petr/balance-ledger/pkg/errorspkg"
	"github.com/lib/pq"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates balance repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns balance RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const getQuery = `
SELECT
	withdrawable, locked
FROM balances
WHERE owner = $1
`

// Get returns the balance of the user. A user without a record has the zero balance.
func (r *RepoPGS) Get(ctx context.Context, user domain.Identity) (domain.Balance, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, address.Uint160ToString(user))

	var b domain.Balance

	err := row.Scan(&b.Withdrawable, &b.Locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Balance{}, nil
		}

		l.Error().Err(err).Send()

		return domain.Balance{}, errorspkg.ErrInternal
	}

	return b, nil
}

const ensureQuery = `
INSERT INTO
    balances (owner)
VALUES
    ($1)
ON CONFLICT (owner) DO NOTHING
`

const getForUpdateQuery = `
SELECT
	withdrawable, locked
FROM balances
WHERE owner = $1
FOR UPDATE
`

// GetForUpdate materializes the user's record and locks it until the end of the
// surrounding transaction. It must be called on a repo built over *sql.Tx.
func (r *RepoPGS) GetForUpdate(ctx context.Context, user domain.Identity) (domain.Balance, error) {
	l := zerolog.Ctx(ctx)

	owner := address.Uint160ToString(user)

	if _, err := r.db.ExecContext(ctx, ensureQuery, owner); err != nil {
		l.Error().Err(err).Send()
		return domain.Balance{}, errorspkg.ErrInternal
	}

	row := r.db.QueryRowContext(ctx, getForUpdateQuery, owner)

	var b domain.Balance

	if err := row.Scan(&b.Withdrawable, &b.Locked); err != nil {
		l.Error().Err(err).Send()
		return domain.Balance{}, errorspkg.ErrInternal
	}

	return b, nil
}

const setQuery = `
UPDATE balances
SET withdrawable = $2, locked = $3, updated_at = now()
WHERE owner = $1
RETURNING withdrawable, locked
`

// Set overwrites the user's record and returns the stored balance.
func (r *RepoPGS) Set(ctx context.Context, user domain.Identity, b domain.Balance) (domain.Balance, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, setQuery, address.Uint160ToString(user), b.Withdrawable, b.Locked)

	var stored domain.Balance

	err := row.Scan(&stored.Withdrawable, &stored.Locked)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "balances_withdrawable_check":
				return domain.Balance{}, domain.ErrInsufficientWithdrawable
			case "balances_locked_check":
				return domain.Balance{}, domain.ErrInsufficientLocked
			}
		}

		return domain.Balance{}, errorspkg.ErrInternal
	}

	return stored, nil
}
