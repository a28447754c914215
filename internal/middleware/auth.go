package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/balance-ledger/internal/domain"
	"github.com/go-petr/balance-ledger/pkg/tokenpkg"
	"github.com/go-petr/balance-ledger/pkg/web"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
)

// Authorization header and context keys.
const (
	AuthHeaderKey  = "authorization"
	AuthTypeBearer = "bearer"
	AuthPayloadKey = "authorization_payload"
)

var (
	// ErrAuthHeaderNotFound indicates that the request has no authorization header.
	ErrAuthHeaderNotFound = errors.New("authorization header is not provided")
	// ErrBadAuthHeaderFormat indicates that the authorization header is malformed.
	ErrBadAuthHeaderFormat = errors.New("invalid authorization header format")
	// ErrUnsupportedAuthType indicates an authorization type other than bearer.
	ErrUnsupportedAuthType = errors.New("unsupported authorization type")
)

type payloadKey struct{}

// AddAuthorization creates a token for subject and sets it as the request authorization header.
func AddAuthorization(
	request *http.Request,
	tokenMaker tokenpkg.Maker,
	authorizationType string,
	subject string,
	duration time.Duration,
) error {
	token, _, err := tokenMaker.CreateToken(subject, duration)
	if err != nil {
		return err
	}

	authorizationHeader := fmt.Sprintf("%s %s", authorizationType, token)
	request.Header.Set(AuthHeaderKey, authorizationHeader)

	return nil
}

// AuthMiddleware rejects requests without a valid bearer token.
// The verified payload is stored both in the gin context and the request context.
func AuthMiddleware(tokenMaker tokenpkg.Maker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorizationHeader := c.GetHeader(AuthHeaderKey)
		if len(authorizationHeader) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, web.CodedError(ErrAuthHeaderNotFound, uint32(domain.CodeUnauthorized)))
			return
		}

		fields := strings.Fields(authorizationHeader)
		if len(fields) < 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, web.CodedError(ErrBadAuthHeaderFormat, uint32(domain.CodeUnauthorized)))
			return
		}

		authorizationType := strings.ToLower(fields[0])
		if authorizationType != AuthTypeBearer {
			c.AbortWithStatusJSON(http.StatusUnauthorized, web.CodedError(ErrUnsupportedAuthType, uint32(domain.CodeUnauthorized)))
			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, web.CodedError(err, uint32(domain.CodeUnauthorized)))
			return
		}

		c.Set(AuthPayloadKey, payload)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), payloadKey{}, payload))
		c.Next()
	}
}

// PayloadFromContext returns the token payload stored by AuthMiddleware.
func PayloadFromContext(ctx context.Context) (*tokenpkg.Payload, bool) {
	payload, ok := ctx.Value(payloadKey{}).(*tokenpkg.Payload)
	return payload, ok
}

// TokenWitness treats a call as authorized by an identity when the call carries
// a verified token issued to that identity's address.
type TokenWitness struct{}

// CheckWitness implements ledgerservice.Witness.
func (TokenWitness) CheckWitness(ctx context.Context, id domain.Identity) bool {
	payload, ok := PayloadFromContext(ctx)
	if !ok {
		return false
	}

	return payload.Subject == address.Uint160ToString(id)
}
