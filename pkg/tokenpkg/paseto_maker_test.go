package tokenpkg

import (
	"testing"
	"time"

	"github.com/go-petr/balance-ledger/pkg/randompkg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
)

func TestPasetoMaker(t *testing.T) {
	t.Parallel()

	secretKey := randompkg.String(32)

	maker, err := NewPasetoMaker(secretKey)
	if err != nil {
		t.Fatalf("NewPasetoMaker(%v) returned error: %v", secretKey, err)
	}

	id := randompkg.Identity()
	subject := address.Uint160ToString(id)
	duration := time.Minute

	token, payload, err := maker.CreateToken(subject, duration)
	if err != nil {
		t.Errorf("maker.CreateToken(%v, %v) returned error: %v", subject, duration, err)
	}

	verified, err := maker.VerifyToken(token)
	if err != nil {
		t.Fatalf("maker.VerifyToken(%v) returned error: %v", token, err)
	}

	got, err := address.StringToUint160(verified.Subject)
	if err != nil || got != id {
		t.Errorf("verified subject %q decodes to %v, %v, want %v", verified.Subject, got, err, id)
	}

	want := &Payload{
		Subject:   subject,
		IssuedAt:  time.Now(),
		ExpiredAt: time.Now().Add(duration),
	}

	ignore := cmpopts.IgnoreFields(Payload{}, "ID")
	delta := cmpopts.EquateApproxTime(time.Minute)

	if diff := cmp.Diff(payload, want, ignore, delta); diff != "" {
		t.Errorf("maker.CreateToken(%v, %v) returned unexpected diff: %v", subject, duration, diff)
	}
}

func TestExpiredPasetoToken(t *testing.T) {
	t.Parallel()

	secretKey := randompkg.String(32)

	maker, err := NewPasetoMaker(secretKey)
	if err != nil {
		t.Fatalf("NewPasetoMaker(%v) returned error: %v", secretKey, err)
	}

	subject := address.Uint160ToString(randompkg.Identity())
	duration := -time.Minute

	token, _, err := maker.CreateToken(subject, duration)
	if err != nil {
		t.Errorf("maker.CreateToken(%v, %v) returned error: %v", subject, duration, err)
	}

	_, err = maker.VerifyToken(token)
	if err != ErrExpiredToken {
		t.Errorf("maker.VerifyToken(%v) returned unexpected error: %v", token, err)
	}
}
