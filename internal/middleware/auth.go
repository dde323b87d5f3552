package middleware

import (
	"net/http"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskflow/backend/api/transport"
	"github.com/taskflow/backend/domain"
	"github.com/taskflow/backend/pkg/httpcontext"
	appLogger "github.com/taskflow/backend/pkg/logger"
	"github.com/taskflow/backend/pkg/token"
	"github.com/taskflow/backend/repository"
)

const identityKey = "identity"

// IdentityFromRequest returns the caller attached by Authenticate.
func IdentityFromRequest(ctx *fasthttp.RequestCtx) (domain.Identity, bool) {
	identity, ok := ctx.UserValue(identityKey).(domain.Identity)
	return identity, ok
}

// Authenticate is the gate in front of every protected route: it extracts
// the bearer token, verifies it, and re-fetches the account so a deleted
// user is rejected even while holding a validly signed token. It never
// mutates state.
func Authenticate(
	tokens *token.Service,
	users repository.UserRepository,
	adapter *httpcontext.Adapter,
	logger *zap.Logger,
) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			tokenString := extractBearer(ctx)
			if tokenString == "" {
				respond(ctx, http.StatusUnauthorized, "Authentication required")
				return
			}

			identity, err := tokens.Verify(tokenString)
			if err != nil {
				logger.Warn("token rejected", zap.Error(err))
				respond(ctx, http.StatusUnauthorized, err.Error())
				return
			}

			stdCtx, cancel := adapter.Attach(ctx)
			defer cancel()

			if _, err := users.GetByID(stdCtx, identity.UserID); err != nil {
				if domain.IsDomainError(err, domain.ErrCodeNotFound) {
					respond(ctx, http.StatusUnauthorized, "User no longer exists")
					return
				}
				appLogger.WithRequestID(stdCtx, logger).Error("identity lookup failed", zap.Error(err))
				respond(ctx, http.StatusInternalServerError, "An error occurred during authentication")
				return
			}

			ctx.SetUserValue(identityKey, identity)
			next(ctx)
		}
	}
}

func extractBearer(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func respond(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBodyString(transport.NewError(message, nil).String())
}
