package tokenpkg

import (
	"testing"
	"time"

	"github.com/go-petr/balance-ledger/pkg/randompkg"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
)

func TestNew(t *testing.T) {
	t.Parallel()

	key := randompkg.String(32)

	testCases := []struct {
		kind    string
		want    any
		wantErr bool
	}{
		{kind: "", want: &PasetoMaker{}},
		{kind: "paseto", want: &PasetoMaker{}},
		{kind: "jwt", want: &JWTMaker{}},
		{kind: "macaroon", wantErr: true},
	}

	for _, tc := range testCases {
		maker, err := New(tc.kind, key)
		if tc.wantErr {
			if err == nil {
				t.Errorf("New(%q) returned nil error, want non-nil", tc.kind)
			}

			continue
		}

		if err != nil {
			t.Fatalf("New(%q) returned error: %v", tc.kind, err)
		}

		switch tc.want.(type) {
		case *PasetoMaker:
			if _, ok := maker.(*PasetoMaker); !ok {
				t.Errorf("New(%q) = %T, want *PasetoMaker", tc.kind, maker)
			}
		case *JWTMaker:
			if _, ok := maker.(*JWTMaker); !ok {
				t.Errorf("New(%q) = %T, want *JWTMaker", tc.kind, maker)
			}
		}
	}
}

func TestForeignKeyRejected(t *testing.T) {
	t.Parallel()

	issuer, err := NewPasetoMaker(randompkg.String(32))
	if err != nil {
		t.Fatalf("NewPasetoMaker returned error: %v", err)
	}

	verifier, err := NewPasetoMaker(randompkg.String(32))
	if err != nil {
		t.Fatalf("NewPasetoMaker returned error: %v", err)
	}

	token, _, err := issuer.CreateToken(address.Uint160ToString(randompkg.Identity()), time.Minute)
	if err != nil {
		t.Fatalf("issuer.CreateToken returned error: %v", err)
	}

	if _, err := verifier.VerifyToken(token); err != ErrInvalidToken {
		t.Errorf("verifier.VerifyToken(%v) returned error %v, want %v", token, err, ErrInvalidToken)
	}
}
