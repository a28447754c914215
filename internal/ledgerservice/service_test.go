package ledgerservice

import (
	"context"
	"math"
	"testing"

	"github.com/go-petr/balance-ledger/internal/domain"
	"github.com/go-petr/balance-ledger/pkg/amountpkg"
	"github.com/go-petr/balance-ledger/pkg/errorspkg"
	"github.com/go-petr/balance-ledger/pkg/randompkg"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func amount(v int64) amountpkg.Int128 {
	return amountpkg.FromInt64(v)
}

func balance(withdrawable, locked int64) domain.Balance {
	return domain.Balance{Withdrawable: amount(withdrawable), Locked: amount(locked)}
}

// runTransition makes the repo mock behave like storage holding prev.
func runTransition(user domain.Identity, op domain.Operation, prev domain.Balance) func(
	context.Context, domain.Identity, domain.Operation, domain.Transition) (domain.BalanceEvent, error) {
	return func(_ context.Context, _ domain.Identity, _ domain.Operation, fn domain.Transition) (domain.BalanceEvent, error) {
		next, err := fn(prev)
		if err != nil {
			return domain.BalanceEvent{}, err
		}

		return domain.BalanceEvent{ID: 1, User: user, Operation: op, Previous: prev, Updated: next}, nil
	}
}

func TestMutationsAuthGate(t *testing.T) {
	backend := randompkg.Identity()
	user := randompkg.Identity()

	mutations := map[string]func(s *Service) (domain.Balance, error){
		"SetBalance": func(s *Service) (domain.Balance, error) {
			return s.SetBalance(context.Background(), user, amount(1), amount(1))
		},
		"ApplyDelta": func(s *Service) (domain.Balance, error) {
			return s.ApplyDelta(context.Background(), user, amount(1), amount(1))
		},
		"LockFunds": func(s *Service) (domain.Balance, error) {
			return s.LockFunds(context.Background(), user, amount(1))
		},
		"UnlockFunds": func(s *Service) (domain.Balance, error) {
			return s.UnlockFunds(context.Background(), user, amount(1))
		},
	}

	testCases := []struct {
		name       string
		buildStubs func(repo *MockRepo, witness *MockWitness)
		wantErr    error
	}{
		{
			name: "NotInitialized",
			buildStubs: func(repo *MockRepo, witness *MockWitness) {
				repo.EXPECT().GetAuthority(gomock.Any()).Times(1).Return(domain.Authority{}, domain.ErrNotInitialized)
				witness.EXPECT().CheckWitness(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrUnauthorized,
		},
		{
			name: "NotWitnessed",
			buildStubs: func(repo *MockRepo, witness *MockWitness) {
				repo.EXPECT().GetAuthority(gomock.Any()).Times(1).Return(domain.Authority{Signer: backend}, nil)
				witness.EXPECT().CheckWitness(gomock.Any(), gomock.Eq(backend)).Times(1).Return(false)
			},
			wantErr: domain.ErrUnauthorized,
		},
		{
			name: "AuthorityRepoErr",
			buildStubs: func(repo *MockRepo, witness *MockWitness) {
				repo.EXPECT().GetAuthority(gomock.Any()).Times(1).Return(domain.Authority{}, errorspkg.ErrInternal)
				witness.EXPECT().CheckWitness(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: errorspkg.ErrInternal,
		},
	}

	for name, call := range mutations {
		for i := range testCases {
			tc := testCases[i]

			t.Run(name+"/"+tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				repo := NewMockRepo(ctrl)
				witness := NewMockWitness(ctrl)
				tc.buildStubs(repo, witness)

				repo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				repo.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Times(0)

				got, err := call(New(repo, witness))
				require.ErrorIs(t, err, tc.wantErr)
				require.Empty(t, got)
			})
		}
	}
}

func TestMutations(t *testing.T) {
	backend := randompkg.Identity()
	user := randompkg.Identity()

	testCases := []struct {
		name       string
		call       func(s *Service) (domain.Balance, error)
		buildStubs func(repo *MockRepo)
		want       domain.Balance
		wantErr    error
	}{
		{
			name: "SetBalanceOK",
			call: func(s *Service) (domain.Balance, error) {
				return s.SetBalance(context.Background(), user, amount(1000), amount(250))
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().UpdateBalance(gomock.Any(), gomock.Eq(user), gomock.Eq(domain.OpSetBalance), gomock.Any()).
					Times(1).
					DoAndReturn(runTransition(user, domain.OpSetBalance, balance(5, 5)))
			},
			want: balance(1000, 250),
		},
		{
			name: "SetBalanceNegative",
			call: func(s *Service) (domain.Balance, error) {
				return s.SetBalance(context.Background(), user, amount(-1), amount(10))
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "ApplyDeltaOK",
			call: func(s *Service) (domain.Balance, error) {
				return s.ApplyDelta(context.Background(), user, amount(-25), amount(125))
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().UpdateBalance(gomock.Any(), gomock.Eq(user), gomock.Eq(domain.OpApplyDelta), gomock.Any()).
					Times(1).
					DoAndReturn(runTransition(user, domain.OpApplyDelta, balance(200, 75)))
			},
			want: balance(175, 200),
		},
		{
			name: "ApplyDeltaInsufficient",
			call: func(s *Service) (domain.Balance, error) {
				return s.ApplyDelta(context.Background(), user, amount(-101), amount(0))
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().UpdateBalance(gomock.Any(), gomock.Eq(user), gomock.Eq(domain.OpApplyDelta), gomock.Any()).
					Times(1).
					DoAndReturn(runTransition(user, domain.OpApplyDelta, balance(100, 10)))
			},
			wantErr: domain.ErrInsufficientWithdrawable,
		},
		{
			name: "LockFundsOK",
			call: func(s *Service) (domain.Balance, error) {
				return s.LockFunds(context.Background(), user, amount(200))
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().UpdateBalance(gomock.Any(), gomock.Eq(user), gomock.Eq(domain.OpLockFunds), gomock.Any()).
					Times(1).
					DoAndReturn(runTransition(user, domain.OpLockFunds, balance(500, 100)))
			},
			want: balance(300, 300),
		},
		{
			name: "LockFundsZero",
			call: func(s *Service) (domain.Balance, error) {
				return s.LockFunds(context.Background(), user, amountpkg.Zero)
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "UnlockFundsOK",
			call: func(s *Service) (domain.Balance, error) {
				return s.UnlockFunds(context.Background(), user, amount(50))
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().UpdateBalance(gomock.Any(), gomock.Eq(user), gomock.Eq(domain.OpUnlockFunds), gomock.Any()).
					Times(1).
					DoAndReturn(runTransition(user, domain.OpUnlockFunds, balance(300, 300)))
			},
			want: balance(350, 250),
		},
		{
			name: "UnlockFundsNegative",
			call: func(s *Service) (domain.Balance, error) {
				return s.UnlockFunds(context.Background(), user, amount(-5))
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "RepoErr",
			call: func(s *Service) (domain.Balance, error) {
				return s.ApplyDelta(context.Background(), user, amount(1), amount(1))
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.BalanceEvent{}, errorspkg.ErrInternal)
			},
			wantErr: errorspkg.ErrInternal,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			witness := NewMockWitness(ctrl)

			repo.EXPECT().GetAuthority(gomock.Any()).Times(1).Return(domain.Authority{Signer: backend}, nil)
			witness.EXPECT().CheckWitness(gomock.Any(), gomock.Eq(backend)).Times(1).Return(true)
			tc.buildStubs(repo)

			got, err := tc.call(New(repo, witness))
			require.ErrorIs(t, err, tc.wantErr)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestInitialize(t *testing.T) {
	signer := randompkg.Identity()

	testCases := []struct {
		name       string
		buildStubs func(repo *MockRepo)
		wantErr    error
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().CreateAuthority(gomock.Any(), gomock.Eq(signer)).
					Times(1).
					Return(domain.Authority{Signer: signer}, nil)
			},
		},
		{
			name: "AlreadyInitialized",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().CreateAuthority(gomock.Any(), gomock.Eq(signer)).
					Times(1).
					Return(domain.Authority{}, domain.ErrAlreadyInitialized)
			},
			wantErr: domain.ErrAlreadyInitialized,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			witness := NewMockWitness(ctrl)
			tc.buildStubs(repo)

			// Initialization is the bootstrap of trust and is never witnessed.
			witness.EXPECT().CheckWitness(gomock.Any(), gomock.Any()).Times(0)

			got, err := New(repo, witness).Initialize(context.Background(), signer)
			require.ErrorIs(t, err, tc.wantErr)

			if tc.wantErr == nil {
				require.Equal(t, signer, got.Signer)
			}
		})
	}
}

func TestReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := randompkg.Identity()
	repo := NewMockRepo(ctrl)
	witness := NewMockWitness(ctrl)

	// Reads never consult the authority.
	repo.EXPECT().GetAuthority(gomock.Any()).Times(0)
	witness.EXPECT().CheckWitness(gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().GetBalance(gomock.Any(), gomock.Eq(user)).AnyTimes().Return(balance(1000, 250), nil)

	s := New(repo, witness)
	ctx := context.Background()

	b, err := s.GetBalance(ctx, user)
	require.NoError(t, err)
	require.Equal(t, balance(1000, 250), b)

	w, err := s.GetWithdrawable(ctx, user)
	require.NoError(t, err)
	require.Equal(t, amount(1000), w)

	l, err := s.GetLocked(ctx, user)
	require.NoError(t, err)
	require.Equal(t, amount(250), l)

	total, err := s.GetTotal(ctx, user)
	require.NoError(t, err)
	require.Equal(t, amount(1250), total)
}

func TestGetTotalOverflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := randompkg.Identity()
	repo := NewMockRepo(ctrl)

	repo.EXPECT().GetBalance(gomock.Any(), gomock.Eq(user)).
		Times(1).
		Return(domain.Balance{Withdrawable: amountpkg.Max, Locked: amount(1)}, nil)

	_, err := New(repo, NewMockWitness(ctrl)).GetTotal(context.Background(), user)
	require.ErrorIs(t, err, domain.ErrOverflow)
}

func TestListEventsPaging(t *testing.T) {
	user := randompkg.Identity()

	testCases := []struct {
		name       string
		pageSize   int32
		pageID     int32
		buildStubs func(repo *MockRepo)
		wantErr    error
	}{
		{
			name:     "ThirdPage",
			pageSize: 5,
			pageID:   3,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ListEvents(gomock.Any(), gomock.Eq(user), gomock.Eq(int32(5)), gomock.Eq(int32(10))).
					Times(1).
					Return([]domain.BalanceEvent{}, nil)
			},
		},
		{
			name:     "LastAddressablePage",
			pageSize: 1,
			pageID:   math.MaxInt32,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ListEvents(gomock.Any(), gomock.Eq(user), gomock.Eq(int32(1)), gomock.Eq(int32(math.MaxInt32-1))).
					Times(1).
					Return([]domain.BalanceEvent{}, nil)
			},
		},
		{
			name:     "OffsetBeyondInt32",
			pageSize: 100,
			pageID:   math.MaxInt32,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrInvalidPage,
		},
		{
			name:     "ZeroPage",
			pageSize: 5,
			pageID:   0,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrInvalidPage,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			got, err := New(repo, NewMockWitness(ctrl)).ListEvents(context.Background(), user, tc.pageSize, tc.pageID)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.Empty(t, got)
		})
	}
}
