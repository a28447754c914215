package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/balance-ledger/pkg/randompkg"
	"github.com/go-petr/balance-ledger/pkg/tokenpkg"
	"github.com/go-petr/balance-ledger/pkg/web"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
)

func TestAuthMiddleware(t *testing.T) {
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	subject := address.Uint160ToString(randompkg.Identity())

	testCases := []struct {
		name           string
		setupAuth      func(t *testing.T, r *http.Request) error
		wantStatusCode int
		wantError      string
		wantCode       uint32
	}{
		{
			name: "NoAuthorization",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return nil
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      ErrAuthHeaderNotFound.Error(),
			wantCode:       1,
		},
		{
			name: "InvalidAuthorizationHeader",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return AddAuthorization(r, tokenMaker, "", subject, time.Minute)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      ErrBadAuthHeaderFormat.Error(),
			wantCode:       1,
		},
		{
			name: "UnsupportedAuthorization",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return AddAuthorization(r, tokenMaker, "unsupported", subject, time.Minute)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      ErrUnsupportedAuthType.Error(),
			wantCode:       1,
		},
		{
			name: "ExpiredToken",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return AddAuthorization(r, tokenMaker, AuthTypeBearer, subject, -time.Minute)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      tokenpkg.ErrExpiredToken.Error(),
			wantCode:       1,
		},
		{
			name: "OK",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return AddAuthorization(r, tokenMaker, AuthTypeBearer, subject, time.Minute)
			},
			wantStatusCode: http.StatusOK,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gin.SetMode(gin.ReleaseMode)
			server := gin.New()

			authPath := "/auth"
			handler := func(c *gin.Context) {
				payload, ok := PayloadFromContext(c.Request.Context())
				if !ok || payload.Subject != subject {
					c.JSON(http.StatusInternalServerError, gin.H{})
					return
				}

				c.JSON(http.StatusOK, gin.H{})
			}
			server.GET(authPath, AuthMiddleware(tokenMaker), handler)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodGet, authPath, nil)
			if err != nil {
				t.Fatalf("http.NewRequest(%v, %v, nil) returned error: %v", http.MethodGet, authPath, err)
			}

			if err = tc.setupAuth(t, request); err != nil {
				t.Fatalf("tc.setupAuth(t, %v) returned error: %v", request, err)
			}

			server.ServeHTTP(recorder, request)

			if recorder.Code != tc.wantStatusCode {
				t.Errorf("recorder.Code = %v, tc.wantStatusCode = %v, want equal",
					recorder.Code, tc.wantStatusCode)
			}

			got := web.Response{}
			if err := json.NewDecoder(recorder.Body).Decode(&got); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if got.Error != tc.wantError {
				t.Errorf("got.Error = %v, tc.wantError = %v, want equal", got.Error, tc.wantError)
			}

			if got.Code != tc.wantCode {
				t.Errorf("got.Code = %v, tc.wantCode = %v, want equal", got.Code, tc.wantCode)
			}
		})
	}
}

func TestTokenWitness(t *testing.T) {
	t.Parallel()

	id := randompkg.Identity()
	payload := &tokenpkg.Payload{Subject: address.Uint160ToString(id)}
	ctx := context.WithValue(context.Background(), payloadKey{}, payload)

	var w TokenWitness

	if !w.CheckWitness(ctx, id) {
		t.Errorf("CheckWitness(ctx, %v) = false, want true", id)
	}

	other := randompkg.Identity()
	if w.CheckWitness(ctx, other) {
		t.Errorf("CheckWitness(ctx, %v) = true for a foreign identity, want false", other)
	}

	if w.CheckWitness(context.Background(), id) {
		t.Error("CheckWitness without a token payload = true, want false")
	}
}
