package auth

import (
	"context"
	"errors"
	"time"

	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/user"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated user id. Subject holds the same id as a string.
type Claims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrMalformedToken = errors.New("malformed token")
)

type userCtxKey struct{}

// ContextWithUser stores the authenticated user and its id.
func ContextWithUser(ctx context.Context, u *user.User) context.Context {
	ctx = internal.ContextWithUserID(ctx, u.ID)
	return context.WithValue(ctx, userCtxKey{}, u)
}

// UserFromContext returns the user the auth guard resolved for this request.
func UserFromContext(ctx context.Context) (*user.User, bool) {
	if ctx == nil {
		return nil, false
	}
	u, ok := ctx.Value(userCtxKey{}).(*user.User)
	return u, ok && u != nil
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
