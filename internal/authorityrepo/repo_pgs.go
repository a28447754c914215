// Package authorityrepo manages repository layer of the ledger authority.
package authorityrepo

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

// RepoPGS facilitates authority repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns authority RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    authority (signer)
VALUES
    ($1)
RETURNING signer, created_at
`

// Create records the authority. Only the first call can succeed.
func (r *RepoPGS) Create(ctx context.Context, signer domain.Identity) (domain.Authority, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, address.Uint160ToString(signer))

	a, err := scanAuthority(row)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code.Name() == "unique_violation" && pqErr.Constraint == "authority_pkey" {
				l.Info().Err(err).Send()
				return domain.Authority{}, domain.ErrAlreadyInitialized
			}
		}

		l.Error().Err(err).Send()

		return domain.Authority{}, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT
	signer, created_at
FROM authority
WHERE id
`

// Get returns the recorded authority or domain.ErrNotInitialized.
func (r *RepoPGS) Get(ctx context.Context) (domain.Authority, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery)

	a, err := scanAuthority(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Authority{}, domain.ErrNotInitialized
		}

		l.Error().Err(err).Send()

		return domain.Authority{}, errorspkg.ErrInternal
	}

	return a, nil
}

func scanAuthority(row *sql.Row) (domain.Authority, error) {
	var (
		a      domain.Authority
		signer string
	)

	if err := row.Scan(&signer, &a.CreatedAt); err != nil {
		return a, err
	}

	id, err := address.StringToUint160(signer)
	if err != nil {
		return a, err
	}

	a.Signer = id

	return a, nil
}
