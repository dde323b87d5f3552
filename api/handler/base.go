package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskflow/backend/api/transport"
	"github.com/taskflow/backend/domain"
	"github.com/taskflow/backend/internal/middleware"
	"github.com/taskflow/backend/pkg/httpcontext"
)

const (
	msgValidationFailed = "Validation failed"
	msgInvalidPayload   = "Invalid request payload"
	msgInternalError    = "An unexpected error occurred"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
	debug   bool
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger, debug bool) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger, debug: debug}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h baseHandler) respondSuccess(ctx *fasthttp.RequestCtx, status int, message string, fields transport.Fields) {
	h.respondJSON(ctx, status, transport.NewSuccess(message, fields))
}

func (h baseHandler) respondValidation(ctx *fasthttp.RequestCtx, errs transport.FieldErrors) {
	h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(msgValidationFailed, errs))
}

func (h baseHandler) respondBadPayload(ctx *fasthttp.RequestCtx) {
	h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(msgInvalidPayload, nil))
}

// respondError maps a service failure to its HTTP status. Internal detail is
// surfaced only in debug configurations; it is always logged server-side.
func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, err error) {
	status := mapError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.ByteString("path", ctx.Path()),
			zap.Error(err),
		)
		if !h.debug {
			message = msgInternalError
		}
	}
	h.respondJSON(ctx, status, transport.NewError(message, nil))
}

// pathID extracts a UUID path parameter. A malformed id cannot match any row,
// so it is answered with the resource's not-found error before the id reaches
// storage, where the uuid column type would reject it.
func (h baseHandler) pathID(ctx *fasthttp.RequestCtx, key string, notFound error) (string, bool) {
	id, _ := ctx.UserValue(key).(string)
	if _, err := uuid.Parse(id); err != nil {
		h.respondError(ctx, notFound)
		return "", false
	}
	return id, true
}

// identity returns the caller resolved by the authentication gate, replying
// Unauthorized when it is absent.
func (h baseHandler) identity(ctx *fasthttp.RequestCtx) (domain.Identity, bool) {
	identity, ok := middleware.IdentityFromRequest(ctx)
	if !ok {
		h.respondJSON(ctx, http.StatusUnauthorized, transport.NewError("Authentication required", nil))
	}
	return identity, ok
}

func mapError(err error) int {
	switch {
	case domain.IsDomainError(err, domain.ErrCodeUnauthorized):
		return http.StatusUnauthorized
	case domain.IsDomainError(err, domain.ErrCodeForbidden):
		return http.StatusForbidden
	case domain.IsDomainError(err, domain.ErrCodeInvalid):
		return http.StatusBadRequest
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		return http.StatusNotFound
	case domain.IsDomainError(err, domain.ErrCodeConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
