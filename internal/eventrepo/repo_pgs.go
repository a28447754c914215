// Package eventrepo manages repository layer of the balance audit log.
package eventrepo

import (
	"context"

	"github.com/go-petr/balance-ledger/internal/domain"
	"github.com/go-petr/balance-ledger/pkg/dbpkg"
	"github.com/go-petr/balance-ledger/pkg/errorspkg"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates event repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns event RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (domain.BalanceEvent, error) {
	var (
		e     domain.BalanceEvent
		owner string
		op    string
	)

	err := row.Scan(
		&e.ID,
		&owner,
		&op,
		&e.Previous.Withdrawable,
		&e.Previous.Locked,
		&e.Updated.Withdrawable,
		&e.Updated.Locked,
		&e.CreatedAt,
	)
	if err != nil {
		return e, err
	}

	e.User, err = address.StringToUint160(owner)
	if err != nil {
		return e, err
	}

	e.Operation = domain.Operation(op)

	return e, nil
}

const createQuery = `
INSERT INTO
    balance_events (owner, operation, prev_withdrawable, prev_locked, new_withdrawable, new_locked)
VALUES
    ($1, $2, $3, $4, $5, $6)
RETURNING id, owner, operation, prev_withdrawable, prev_locked, new_withdrawable, new_locked, created_at
`

// Create appends the balance change to the audit log and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateEventParams) (domain.BalanceEvent, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		address.Uint160ToString(arg.User),
		string(arg.Operation),
		arg.Previous.Withdrawable,
		arg.Previous.Locked,
		arg.Updated.Withdrawable,
		arg.Updated.Locked,
	)

	e, err := scanEvent(row)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx context.Context, %+v)", arg)
		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const listQuery = `
SELECT
	id, owner, operation, prev_withdrawable, prev_locked, new_withdrawable, new_locked, created_at
FROM balance_events
WHERE owner = $1
ORDER BY id
LIMIT $2 OFFSET $3
`

// List returns the specified number of balance changes of the user, oldest first.
func (r *RepoPGS) List(ctx context.Context, user domain.Identity, limit, offset int32) ([]domain.BalanceEvent, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, address.Uint160ToString(user), limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.BalanceEvent{}

	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, e)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
