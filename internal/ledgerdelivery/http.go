// Package ledgerdelivery manages delivery layer of the balance ledger.
package ledgerdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/balance-ledger/internal/domain"
	"github.com/go-petr/balance-ledger/pkg/amountpkg"
	"github.com/go-petr/balance-ledger/pkg/errorspkg"
	"github.com/go-petr/balance-ledger/pkg/web"
	"github.com/go-playground/validator/v10"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/rs/zerolog"
)

// Service provides service layer interface needed by ledger delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ledgerdelivery
type Service interface {
	Initialize(ctx context.Context, signer domain.Identity) (domain.Authority, error)
	Authority(ctx context.Context) (domain.Authority, error)
	SetBalance(ctx context.Context, user domain.Identity, withdrawable, locked amountpkg.Int128) (domain.Balance, error)
	ApplyDelta(ctx context.Context, user domain.Identity, withdrawableDelta, lockedDelta amountpkg.Int128) (domain.Balance, error)
	LockFunds(ctx context.Context, user domain.Identity, amount amountpkg.Int128) (domain.Balance, error)
	UnlockFunds(ctx context.Context, user domain.Identity, amount amountpkg.Int128) (domain.Balance, error)
	GetBalance(ctx context.Context, user domain.Identity) (domain.Balance, error)
	GetWithdrawable(ctx context.Context, user domain.Identity) (amountpkg.Int128, error)
	GetLocked(ctx context.Context, user domain.Identity) (amountpkg.Int128, error)
	GetTotal(ctx context.Context, user domain.Identity) (amountpkg.Int128, error)
	ListEvents(ctx context.Context, user domain.Identity, pageSize, pageID int32) ([]domain.BalanceEvent, error)
}

// Handler facilitates ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns ledger handler.
func NewHandler(ls Service) *Handler {
	return &Handler{service: ls}
}

type authorityResponse struct {
	Signer    string    `json:"signer"`
	CreatedAt time.Time `json:"created_at"`
}

type eventResponse struct {
	ID        int64            `json:"id"`
	User      string           `json:"user"`
	Operation domain.Operation `json:"operation"`
	Previous  domain.Balance   `json:"previous"`
	Updated   domain.Balance   `json:"updated"`
	CreatedAt time.Time        `json:"created_at"`
}

func newAuthorityResponse(a domain.Authority) authorityResponse {
	return authorityResponse{
		Signer:    address.Uint160ToString(a.Signer),
		CreatedAt: a.CreatedAt,
	}
}

func newEventResponse(e domain.BalanceEvent) eventResponse {
	return eventResponse{
		ID:        e.ID,
		User:      address.Uint160ToString(e.User),
		Operation: e.Operation,
		Previous:  e.Previous,
		Updated:   e.Updated,
		CreatedAt: e.CreatedAt,
	}
}

// bindingError writes the response of a rejected request. Amounts outside the
// signed 128-bit range carry domain.CodeInvalidAmount.
func bindingError(gctx *gin.Context, err error) {
	var (
		ve     validator.ValidationErrors
		errMsg = err.Error()
		code   domain.Code
	)

	if errors.As(err, &ve) {
		field := ve[0]
		errMsg = field.Field() + web.GetErrorMsg(field)

		if field.Tag() == "int128" {
			code = domain.CodeInvalidAmount
		}
	}

	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
	gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg, Code: uint32(code)})
}

// ledgerError writes the response of a failed service call.
func ledgerError(gctx *gin.Context, err error) {
	code := domain.CodeOf(err)

	switch code {
	case domain.CodeUnauthorized:
		gctx.JSON(http.StatusUnauthorized, web.CodedError(err, uint32(code)))
	case domain.CodeAlreadyInitialized:
		gctx.JSON(http.StatusConflict, web.CodedError(err, uint32(code)))
	case domain.CodeInvalidAmount:
		gctx.JSON(http.StatusBadRequest, web.CodedError(err, uint32(code)))
	case domain.CodeInsufficientWithdrawable, domain.CodeInsufficientLocked, domain.CodeOverflow:
		gctx.JSON(http.StatusUnprocessableEntity, web.CodedError(err, uint32(code)))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

type initializeRequest struct {
	Signer string `json:"signer" binding:"required,address"`
}

// Initialize handles http request to record the backend authority.
func (h *Handler) Initialize(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req initializeRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingError(gctx, err)
		return
	}

	signer, ok := parseAddress(gctx, req.Signer)
	if !ok {
		return
	}

	a, err := h.service.Initialize(ctx, signer)
	if err != nil {
		ledgerError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{"authority": newAuthorityResponse(a)}})
}

// GetAuthority handles http request to get the backend authority.
func (h *Handler) GetAuthority(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	a, err := h.service.Authority(ctx)
	if err != nil {
		if err == domain.ErrNotInitialized {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		ledgerError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{"authority": newAuthorityResponse(a)}})
}

type userRequest struct {
	User string `uri:"user" binding:"required,address"`
}

func bindUser(gctx *gin.Context) (domain.Identity, bool) {
	var req userRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindingError(gctx, err)
		return domain.Identity{}, false
	}

	return parseAddress(gctx, req.User)
}

// parseAddress decodes an address that already passed the address validator.
func parseAddress(gctx *gin.Context, s string) (domain.Identity, bool) {
	id, err := address.StringToUint160(s)
	if err != nil {
		bindingError(gctx, err)
		return domain.Identity{}, false
	}

	return id, true
}

func writeBalance(gctx *gin.Context, b domain.Balance, err error) {
	if err != nil {
		ledgerError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{"balance": b}})
}

type setBalanceRequest struct {
	Withdrawable string `json:"withdrawable" binding:"required,int128"`
	Locked       string `json:"locked" binding:"required,int128"`
}

// SetBalance handles http request to overwrite a user balance.
func (h *Handler) SetBalance(gctx *gin.Context) {
	user, ok := bindUser(gctx)
	if !ok {
		return
	}

	var req setBalanceRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingError(gctx, err)
		return
	}

	b, err := h.service.SetBalance(gctx.Request.Context(), user,
		amountpkg.MustParse(req.Withdrawable), amountpkg.MustParse(req.Locked))
	writeBalance(gctx, b, err)
}

type applyDeltaRequest struct {
	WithdrawableDelta string `json:"withdrawable_delta" binding:"required,int128"`
	LockedDelta       string `json:"locked_delta" binding:"required,int128"`
}

// ApplyDelta handles http request to add signed deltas to a user balance.
func (h *Handler) ApplyDelta(gctx *gin.Context) {
	user, ok := bindUser(gctx)
	if !ok {
		return
	}

	var req applyDeltaRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingError(gctx, err)
		return
	}

	b, err := h.service.ApplyDelta(gctx.Request.Context(), user,
		amountpkg.MustParse(req.WithdrawableDelta), amountpkg.MustParse(req.LockedDelta))
	writeBalance(gctx, b, err)
}

type amountRequest struct {
	Amount string `json:"amount" binding:"required,int128"`
}

// LockFunds handles http request to move funds from withdrawable to locked.
func (h *Handler) LockFunds(gctx *gin.Context) {
	user, ok := bindUser(gctx)
	if !ok {
		return
	}

	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingError(gctx, err)
		return
	}

	b, err := h.service.LockFunds(gctx.Request.Context(), user, amountpkg.MustParse(req.Amount))
	writeBalance(gctx, b, err)
}

// UnlockFunds handles http request to move funds from locked back to withdrawable.
func (h *Handler) UnlockFunds(gctx *gin.Context) {
	user, ok := bindUser(gctx)
	if !ok {
		return
	}

	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingError(gctx, err)
		return
	}

	b, err := h.service.UnlockFunds(gctx.Request.Context(), user, amountpkg.MustParse(req.Amount))
	writeBalance(gctx, b, err)
}

// GetBalance handles http request to get a user balance.
func (h *Handler) GetBalance(gctx *gin.Context) {
	user, ok := bindUser(gctx)
	if !ok {
		return
	}

	b, err := h.service.GetBalance(gctx.Request.Context(), user)
	writeBalance(gctx, b, err)
}

func (h *Handler) getAmount(key string, get func(context.Context, domain.Identity) (amountpkg.Int128, error)) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		user, ok := bindUser(gctx)
		if !ok {
			return
		}

		v, err := get(gctx.Request.Context(), user)
		if err != nil {
			ledgerError(gctx, err)
			return
		}

		gctx.JSON(http.StatusOK, web.Response{Data: gin.H{key: v}})
	}
}

// GetWithdrawable handles http request to get the withdrawable bucket of a user.
func (h *Handler) GetWithdrawable(gctx *gin.Context) {
	h.getAmount("withdrawable", h.service.GetWithdrawable)(gctx)
}

// GetLocked handles http request to get the locked bucket of a user.
func (h *Handler) GetLocked(gctx *gin.Context) {
	h.getAmount("locked", h.service.GetLocked)(gctx)
}

// GetTotal handles http request to get withdrawable + locked of a user.
func (h *Handler) GetTotal(gctx *gin.Context) {
	h.getAmount("total", h.service.GetTotal)(gctx)
}

type listEventsRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=1,max=100"`
}

// ListEvents handles http request to list the balance changes of a user.
func (h *Handler) ListEvents(gctx *gin.Context) {
	user, ok := bindUser(gctx)
	if !ok {
		return
	}

	var req listEventsRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		bindingError(gctx, err)
		return
	}

	events, err := h.service.ListEvents(gctx.Request.Context(), user, req.PageSize, req.PageID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPage) {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		ledgerError(gctx, err)

		return
	}

	items := make([]eventResponse, len(events))
	for i := range events {
		items[i] = newEventResponse(events[i])
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{"events": items}})
}
