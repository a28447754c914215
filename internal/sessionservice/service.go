// Package sessionservice manages business logic layer of sessions.
package sessionservice

import (
	"context"
	"fmt"
	"time"

	"github.com/go-petr/balance-ledger/internal/domain"
	"github.com/go-petr/balance-ledger/pkg/configpkg"
	"github.com/go-petr/balance-ledger/pkg/errorspkg"
	"github.com/go-petr/balance-ledger/pkg/tokenpkg"
	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/rs/zerolog"
)

// Service facilitates session service layer logic.
type Service struct {
	tokenMaker tokenpkg.Maker
	config     configpkg.Config
	now        func() time.Time
}

// New returns session service struct to manage session business logic.
func New(tm tokenpkg.Maker, config configpkg.Config) *Service {
	return &Service{
		tokenMaker: tm,
		config:     config,
		now:        time.Now,
	}
}

// Challenge returns the message the owner of addr signs to open a session at the given unix time.
func Challenge(addr string, timestamp int64) string {
	return fmt.Sprintf("%s:%d", addr, timestamp)
}

// Create verifies the signed challenge and issues an access token to the address of the public key.
func (s *Service) Create(ctx context.Context, arg domain.CreateSessionParams) (domain.Session, error) {
	l := zerolog.Ctx(ctx)

	pub, err := keys.NewPublicKeyFromString(arg.PublicKey)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Session{}, domain.ErrInvalidPublicKey
	}

	issuedAt := time.Unix(arg.Timestamp, 0)
	if age := s.now().Sub(issuedAt); age > s.config.ChallengeWindow || age < -s.config.ChallengeWindow {
		l.Info().Dur("age", age).Msg("challenge is out of window")
		return domain.Session{}, domain.ErrExpiredChallenge
	}

	subject := pub.GetScriptHash()
	addr := address.Uint160ToString(subject)

	digest := hash.Sha256([]byte(Challenge(addr, arg.Timestamp)))
	if !pub.Verify(arg.Signature, digest.BytesBE()) {
		l.Info().Str("address", addr).Msg("challenge signature mismatch")
		return domain.Session{}, domain.ErrInvalidSignature
	}

	token, payload, err := s.tokenMaker.CreateToken(addr, s.config.AccessTokenDuration)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Session{}, errorspkg.ErrInternal
	}

	return domain.Session{
		Subject:              subject,
		AccessToken:          token,
		AccessTokenExpiresAt: payload.ExpiredAt,
	}, nil
}
