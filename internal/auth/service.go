package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/core/common/validation"
	"github.com/frahmantamala/budget-tracker/internal/user"
	"github.com/frahmantamala/budget-tracker/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	Create(ctx context.Context, u *user.User) error
	GetByID(ctx context.Context, id int64) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

type TokenIssuer interface {
	Issue(userID int64) (string, time.Time, error)
}

// Service is the main auth service with dependencies
type Service struct {
	users      UserStore
	tokens     TokenIssuer
	bcryptCost int
	logger     *slog.Logger
}

// NewService creates a new auth service
func NewService(users UserStore, tokens TokenIssuer, cfg internal.SecurityConfig, lg *slog.Logger) *Service {
	cost := cfg.BCryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if lg == nil {
		lg = logger.LoggerWrapper()
	}
	return &Service{
		users:      users,
		tokens:     tokens,
		bcryptCost: cost,
		logger:     lg,
	}
}

// Register creates an account and signs the caller in.
func (s *Service) Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error) {
	dto.Normalize()
	if appErr := validation.Struct(dto); appErr != nil {
		return nil, appErr
	}

	if _, err := s.users.GetByEmail(ctx, dto.Email); err == nil {
		return nil, internal.ErrEmailTaken
	} else if !errors.Is(err, user.ErrNotFound) {
		return nil, internal.NewInternalError("Server error during registration", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("Server error during registration", err)
	}

	u := user.NewUser(dto.Email, string(hash))
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return nil, internal.ErrEmailTaken
		}
		return nil, internal.NewInternalError("Server error during registration", err)
	}

	s.logger.Info("user registered", "user_id", u.ID)
	return s.issue(u, "Server error during registration")
}

// Login verifies credentials. Unknown emails and wrong passwords are indistinguishable.
func (s *Service) Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error) {
	dto.Normalize()
	if appErr := validation.Struct(dto); appErr != nil {
		return nil, appErr
	}

	u, err := s.users.GetByEmail(ctx, dto.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, internal.ErrInvalidCredentials
		}
		return nil, internal.NewInternalError("Server error during login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		s.logger.Warn("login rejected", "user_id", u.ID)
		return nil, internal.ErrInvalidCredentials
	}

	return s.issue(u, "Server error during login")
}

func (s *Service) issue(u *user.User, failure string) (*AuthResponse, error) {
	token, expiresAt, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, internal.NewInternalError(failure, err)
	}
	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      ToUserResponse(u),
	}, nil
}
