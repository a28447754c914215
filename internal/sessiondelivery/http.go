// Package sessiondelivery manages delivery layer of sessions.
package sessiondelivery

import (
	"context"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/balance-ledger/internal/domain"
	"github.com/go-petr/balance-ledger/pkg/errorspkg"
	"github.com/go-petr/balance-ledger/pkg/web"
	"github.com/go-playground/validator/v10"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/rs/zerolog"
)

// Service provides service layer interface needed by session delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package sessiondelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateSessionParams) (domain.Session, error)
}

// Handler facilitates session delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns session handler.
func NewHandler(ss Service) *Handler {
	return &Handler{
		service: ss,
	}
}

type createRequest struct {
	PublicKey string `json:"public_key" binding:"required,hexadecimal"`
	Timestamp int64  `json:"timestamp" binding:"required"`
	Signature string `json:"signature" binding:"required,hexadecimal"`
}

type data struct {
	Address string `json:"address"`
}

// Create handles http request to open a session with a signed challenge.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg = err.Error()
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	signature, err := hex.DecodeString(req.Signature)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidSignature))

		return
	}

	arg := domain.CreateSessionParams{
		PublicKey: req.PublicKey,
		Timestamp: req.Timestamp,
		Signature: signature,
	}

	sess, err := h.service.Create(ctx, arg)
	if err != nil {
		switch err {
		case domain.ErrInvalidPublicKey:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrInvalidSignature, domain.ErrExpiredChallenge:
			gctx.JSON(http.StatusUnauthorized, web.CodedError(err, uint32(domain.CodeUnauthorized)))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		AccessToken:          sess.AccessToken,
		AccessTokenExpiresAt: sess.AccessTokenExpiresAt.UTC().Format(time.RFC3339),
		Data:                 data{Address: address.Uint160ToString(sess.Subject)},
	}

	gctx.JSON(http.StatusOK, res)
}
