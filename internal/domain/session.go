package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidPublicKey indicates that the public key can't be decoded.
	ErrInvalidPublicKey = errors.New("invalid public key")
	// ErrInvalidSignature indicates that the challenge signature does not match the public key.
	ErrInvalidSignature = errors.New("invalid challenge signature")
	// ErrExpiredChallenge indicates that the challenge timestamp is outside the accepted window.
	ErrExpiredChallenge = errors.New("expired challenge")
)

// CreateSessionParams holds a signed challenge proving control of an identity.
type CreateSessionParams struct {
	PublicKey string
	Timestamp int64
	Signature []byte
}

// Session holds an access token issued for an identity.
type Session struct {
	Subject              Identity
	AccessToken          string
	AccessTokenExpiresAt time.Time
}
