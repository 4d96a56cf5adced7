package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/transport"
	"github.com/frahmantamala/budget-tracker/internal/user"
	"github.com/frahmantamala/budget-tracker/pkg/logger"
)

type TokenVerifier interface {
	Verify(token string) (int64, error)
}

type UserFinder interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

// Guard authenticates requests with a bearer token before they reach a domain handler.
type Guard struct {
	*transport.BaseHandler
	tokens TokenVerifier
	users  UserFinder
}

func NewGuard(tokens TokenVerifier, users UserFinder, base *transport.BaseHandler) *Guard {
	if base == nil {
		base = transport.NewBaseHandler(nil)
	}
	return &Guard{BaseHandler: base, tokens: tokens, users: users}
}

// Middleware rejects the request unless the token verifies and its subject still exists.
// The store is only consulted once the token itself is valid.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := g.ExtractTokenFromHeader(r)
		if token == "" {
			g.WriteAppError(w, internal.ErrMissingToken)
			return
		}

		userID, err := g.tokens.Verify(token)
		if err != nil {
			g.Log(r).Warn("auth guard: token rejected", "error", err)
			if errors.Is(err, ErrTokenExpired) {
				g.WriteAppError(w, internal.ErrTokenExpired)
				return
			}
			g.WriteAppError(w, internal.ErrInvalidToken)
			return
		}

		u, err := g.users.GetByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				g.Log(r).Warn("auth guard: token subject missing", "user_id", userID)
				g.WriteAppError(w, internal.ErrUserNotFound)
				return
			}
			g.Log(r).Error("auth guard: user lookup failed", "user_id", userID, "error", err)
			g.WriteError(w, http.StatusInternalServerError, "Server authentication error.")
			return
		}

		ctx := ContextWithUser(r.Context(), u)
		ctx = logger.With(ctx, "user_id", u.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
