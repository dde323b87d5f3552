package middleware

import (
	"net/http"

	"github.com/valyala/fasthttp"

	"github.com/taskflow/backend/domain"
)

// RequireRoles gates a route to callers whose role is in the allowed set.
// An empty set admits any authenticated caller.
func RequireRoles(roles ...domain.Role) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			identity, ok := IdentityFromRequest(ctx)
			if !ok {
				respond(ctx, http.StatusUnauthorized, "Authentication required")
				return
			}
			if len(roles) > 0 && !roleAllowed(identity.Role, roles) {
				respond(ctx, http.StatusForbidden, "You do not have permission to access this resource")
				return
			}
			next(ctx)
		}
	}
}

// OwnerResolver resolves the resource targeted by a request to its owner id.
// It reports a NOT_FOUND domain error when the resource does not exist.
type OwnerResolver func(ctx *fasthttp.RequestCtx) (string, error)

// RequireOwner gates a route to the resource's owner. Admin callers bypass
// the check entirely. A missing resource is reported before the ownership
// comparison runs, so callers cannot distinguish "absent" from "not yours"
// by probing this gate with made-up ids.
func RequireOwner(resolve OwnerResolver) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			identity, ok := IdentityFromRequest(ctx)
			if !ok {
				respond(ctx, http.StatusUnauthorized, "Authentication required")
				return
			}
			if identity.IsAdmin() {
				next(ctx)
				return
			}

			ownerID, err := resolve(ctx)
			if err != nil {
				if domain.IsDomainError(err, domain.ErrCodeNotFound) {
					respond(ctx, http.StatusNotFound, "Resource not found")
					return
				}
				respond(ctx, http.StatusInternalServerError, "An error occurred while checking resource ownership")
				return
			}
			if ownerID != identity.UserID {
				respond(ctx, http.StatusForbidden, "You do not have permission to access this resource")
				return
			}
			next(ctx)
		}
	}
}

func roleAllowed(role domain.Role, allowed []domain.Role) bool {
	for _, candidate := range allowed {
		if candidate == role {
			return true
		}
	}
	return false
}
