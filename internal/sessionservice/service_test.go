package sessionservice

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/go-petr/balance-ledger/internal/domain"
	"github.com/go-petr/balance-ledger/pkg/configpkg"
	"github.com/go-petr/balance-ledger/pkg/randompkg"
	"github.com/go-petr/balance-ledger/pkg/tokenpkg"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/stretchr/testify/require"
)

func newKey(t *testing.T) *keys.PrivateKey {
	t.Helper()

	priv, err := keys.NewPrivateKey()
	require.NoError(t, err)

	return priv
}

func signedParams(priv *keys.PrivateKey, timestamp int64) domain.CreateSessionParams {
	addr := priv.PublicKey().Address()

	return domain.CreateSessionParams{
		PublicKey: hex.EncodeToString(priv.PublicKey().Bytes()),
		Timestamp: timestamp,
		Signature: priv.Sign([]byte(Challenge(addr, timestamp))),
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	config := configpkg.Config{
		TokenSymmetricKey:   randompkg.String(32),
		AccessTokenDuration: time.Minute,
		ChallengeWindow:     time.Minute,
	}

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	require.NoError(t, err)

	now := time.Unix(1_700_000_000, 0)
	priv := newKey(t)
	other := newKey(t)

	testCases := []struct {
		name    string
		arg     func() domain.CreateSessionParams
		wantErr error
	}{
		{
			name: "OK",
			arg:  func() domain.CreateSessionParams { return signedParams(priv, now.Unix()) },
		},
		{
			name: "SlightlyAhead",
			arg:  func() domain.CreateSessionParams { return signedParams(priv, now.Add(30*time.Second).Unix()) },
		},
		{
			name: "InvalidPublicKey",
			arg: func() domain.CreateSessionParams {
				arg := signedParams(priv, now.Unix())
				arg.PublicKey = "zz"

				return arg
			},
			wantErr: domain.ErrInvalidPublicKey,
		},
		{
			name:    "Expired",
			arg:     func() domain.CreateSessionParams { return signedParams(priv, now.Add(-2*time.Minute).Unix()) },
			wantErr: domain.ErrExpiredChallenge,
		},
		{
			name:    "TooFarAhead",
			arg:     func() domain.CreateSessionParams { return signedParams(priv, now.Add(2*time.Minute).Unix()) },
			wantErr: domain.ErrExpiredChallenge,
		},
		{
			name: "ForeignSignature",
			arg: func() domain.CreateSessionParams {
				arg := signedParams(priv, now.Unix())
				arg.Signature = signedParams(other, now.Unix()).Signature

				return arg
			},
			wantErr: domain.ErrInvalidSignature,
		},
		{
			name: "TimestampNotSigned",
			arg: func() domain.CreateSessionParams {
				arg := signedParams(priv, now.Unix())
				arg.Timestamp++

				return arg
			},
			wantErr: domain.ErrInvalidSignature,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := New(tokenMaker, config)
			s.now = func() time.Time { return now }

			got, err := s.Create(context.Background(), tc.arg())
			require.ErrorIs(t, err, tc.wantErr)

			if tc.wantErr != nil {
				require.Empty(t, got)
				return
			}

			require.Equal(t, priv.GetScriptHash(), got.Subject)
			require.NotEmpty(t, got.AccessToken)
			require.False(t, got.AccessTokenExpiresAt.IsZero())

			payload, err := tokenMaker.VerifyToken(got.AccessToken)
			require.NoError(t, err)
			require.Equal(t, address.Uint160ToString(got.Subject), payload.Subject)
		})
	}
}
