// Package ledgerservice manages business logic layer of the balance ledger.
package ledgerservice

import (
	"context"
	"math"

	"github.com/go-petr/balance-ledger/internal/domain"
	"github.com/go-petr/balance-ledger/pkg/amountpkg"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by ledger service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type Repo interface {
	CreateAuthority(ctx context.Context, signer domain.Identity) (domain.Authority, error)
	GetAuthority(ctx context.Context) (domain.Authority, error)
	GetBalance(ctx context.Context, user domain.Identity) (domain.Balance, error)
	UpdateBalance(ctx context.Context, user domain.Identity, op domain.Operation, fn domain.Transition) (domain.BalanceEvent, error)
	ListEvents(ctx context.Context, user domain.Identity, limit, offset int32) ([]domain.BalanceEvent, error)
}

// Witness reports whether the current call is authorized by the given identity.
type Witness interface {
	CheckWitness(ctx context.Context, id domain.Identity) bool
}

// Service facilitates ledger service layer logic.
type Service struct {
	repo    Repo
	witness Witness
}

// New returns ledger service struct to manage balance ledger business logic.
func New(r Repo, w Witness) *Service {
	return &Service{
		repo:    r,
		witness: w,
	}
}

// Initialize records signer as the backend authority. Only the first call succeeds,
// later ones fail with domain.ErrAlreadyInitialized.
func (s *Service) Initialize(ctx context.Context, signer domain.Identity) (domain.Authority, error) {
	l := zerolog.Ctx(ctx)

	a, err := s.repo.CreateAuthority(ctx, signer)
	if err != nil {
		return domain.Authority{}, err
	}

	l.Info().Str("signer", address.Uint160ToString(signer)).Msg("ledger initialized")

	return a, nil
}

// Authority returns the recorded backend authority.
func (s *Service) Authority(ctx context.Context) (domain.Authority, error) {
	return s.repo.GetAuthority(ctx)
}

// requireBackendAuth must pass before any balance is read or written by a mutating call.
func (s *Service) requireBackendAuth(ctx context.Context) error {
	l := zerolog.Ctx(ctx)

	a, err := s.repo.GetAuthority(ctx)
	if err != nil {
		if err == domain.ErrNotInitialized {
			l.Info().Err(err).Send()
			return domain.ErrUnauthorized
		}

		return err
	}

	if !s.witness.CheckWitness(ctx, a.Signer) {
		l.Info().Msg("call is not witnessed by the authority")
		return domain.ErrUnauthorized
	}

	return nil
}

func (s *Service) update(ctx context.Context, user domain.Identity, op domain.Operation,
	fn domain.Transition,
) (domain.Balance, error) {
	l := zerolog.Ctx(ctx)

	e, err := s.repo.UpdateBalance(ctx, user, op, fn)
	if err != nil {
		l.Info().Err(err).Str("operation", string(op)).Send()
		return domain.Balance{}, err
	}

	l.Info().
		Str("topic", domain.TopicBalanceUpdated).
		Int64("event_id", e.ID).
		Str("user", address.Uint160ToString(e.User)).
		Str("operation", string(e.Operation)).
		Stringer("prev_withdrawable", e.Previous.Withdrawable).
		Stringer("prev_locked", e.Previous.Locked).
		Stringer("new_withdrawable", e.Updated.Withdrawable).
		Stringer("new_locked", e.Updated.Locked).
		Send()

	return e.Updated, nil
}

// SetBalance overwrites both buckets of the user. Each must be non-negative.
func (s *Service) SetBalance(ctx context.Context, user domain.Identity, withdrawable, locked amountpkg.Int128) (domain.Balance, error) {
	if err := s.requireBackendAuth(ctx); err != nil {
		return domain.Balance{}, err
	}

	next, err := domain.NewBalance(withdrawable, locked)
	if err != nil {
		return domain.Balance{}, err
	}

	return s.update(ctx, user, domain.OpSetBalance, func(domain.Balance) (domain.Balance, error) {
		return next, nil
	})
}

// ApplyDelta adds signed deltas to both buckets of the user at once.
func (s *Service) ApplyDelta(ctx context.Context, user domain.Identity, withdrawableDelta, lockedDelta amountpkg.Int128) (domain.Balance, error) {
	if err := s.requireBackendAuth(ctx); err != nil {
		return domain.Balance{}, err
	}

	return s.update(ctx, user, domain.OpApplyDelta, func(prev domain.Balance) (domain.Balance, error) {
		return prev.ApplyDelta(withdrawableDelta, lockedDelta)
	})
}

// LockFunds moves a positive amount from withdrawable to locked.
func (s *Service) LockFunds(ctx context.Context, user domain.Identity, amount amountpkg.Int128) (domain.Balance, error) {
	if err := s.requireBackendAuth(ctx); err != nil {
		return domain.Balance{}, err
	}

	if err := domain.ValidatePositive(amount); err != nil {
		return domain.Balance{}, err
	}

	return s.update(ctx, user, domain.OpLockFunds, func(prev domain.Balance) (domain.Balance, error) {
		return prev.Lock(amount)
	})
}

// UnlockFunds moves a positive amount from locked back to withdrawable.
func (s *Service) UnlockFunds(ctx context.Context, user domain.Identity, amount amountpkg.Int128) (domain.Balance, error) {
	if err := s.requireBackendAuth(ctx); err != nil {
		return domain.Balance{}, err
	}

	if err := domain.ValidatePositive(amount); err != nil {
		return domain.Balance{}, err
	}

	return s.update(ctx, user, domain.OpUnlockFunds, func(prev domain.Balance) (domain.Balance, error) {
		return prev.Unlock(amount)
	})
}

// GetBalance returns the balance of the user.
func (s *Service) GetBalance(ctx context.Context, user domain.Identity) (domain.Balance, error) {
	return s.repo.GetBalance(ctx, user)
}

// GetWithdrawable returns the withdrawable bucket of the user.
func (s *Service) GetWithdrawable(ctx context.Context, user domain.Identity) (amountpkg.Int128, error) {
	b, err := s.repo.GetBalance(ctx, user)
	if err != nil {
		return amountpkg.Zero, err
	}

	return b.Withdrawable, nil
}

// GetLocked returns the locked bucket of the user.
func (s *Service) GetLocked(ctx context.Context, user domain.Identity) (amountpkg.Int128, error) {
	b, err := s.repo.GetBalance(ctx, user)
	if err != nil {
		return amountpkg.Zero, err
	}

	return b.Locked, nil
}

// GetTotal returns withdrawable + locked of the user or domain.ErrOverflow.
func (s *Service) GetTotal(ctx context.Context, user domain.Identity) (amountpkg.Int128, error) {
	b, err := s.repo.GetBalance(ctx, user)
	if err != nil {
		return amountpkg.Zero, err
	}

	return b.Total()
}

// ListEvents returns the requested page of the user's balance changes, oldest first.
// Pages start at 1; a page whose offset does not fit into int32 is domain.ErrInvalidPage.
func (s *Service) ListEvents(ctx context.Context, user domain.Identity, pageSize, pageID int32) ([]domain.BalanceEvent, error) {
	if pageID < 1 || pageSize < 1 {
		return nil, domain.ErrInvalidPage
	}

	offset := (int64(pageID) - 1) * int64(pageSize)
	if offset > math.MaxInt32 {
		return nil, domain.ErrInvalidPage
	}

	return s.repo.ListEvents(ctx, user, pageSize, int32(offset))
}
