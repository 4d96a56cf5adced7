package category

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/core/common/validation"
	"github.com/frahmantamala/budget-tracker/pkg/logger"
)

type RepositoryAPI interface {
	ListByOwner(ctx context.Context, userID int64) ([]*Category, error)
	GetByID(ctx context.Context, userID, id int64) (*Category, error)
	GetByNameKey(ctx context.Context, userID int64, key string) (*Category, error)
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	// Delete removes the category and its budgets. It returns ErrNotFound when userID owns no such category.
	Delete(ctx context.Context, userID, id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, lg *slog.Logger) *Service {
	if lg == nil {
		lg = logger.LoggerWrapper()
	}
	return &Service{
		repo:   repo,
		logger: lg,
	}
}

// List returns the owner's categories ordered by name.
func (s *Service) List(ctx context.Context, userID int64) ([]*Category, error) {
	categories, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, internal.NewInternalError("Server error while fetching categories", err)
	}
	return categories, nil
}

// Owned returns the category when userID owns it, and internal.ErrCategoryNotFound otherwise.
func (s *Service) Owned(ctx context.Context, userID, id int64) (*Category, error) {
	c, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.ErrCategoryNotFound
		}
		return nil, internal.NewInternalError("Server error while fetching category", err)
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, userID int64, dto CreateCategoryDTO) (*Category, error) {
	dto.Normalize()
	if appErr := validation.Struct(dto); appErr != nil {
		return nil, appErr
	}

	if err := s.ensureNameFree(ctx, userID, dto.Name, 0); err != nil {
		return nil, err
	}

	c := NewCategory(userID, dto.Name, dto.Color)
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, ErrNameTaken) {
			return nil, internal.ErrCategoryNameTaken
		}
		return nil, internal.NewInternalError("Server error while creating category", err)
	}

	s.logger.Info("category created", "user_id", userID, "category_id", c.ID)
	return c, nil
}

func (s *Service) Update(ctx context.Context, userID, id int64, dto UpdateCategoryDTO) (*Category, error) {
	dto.Normalize()
	if appErr := validation.Struct(dto); appErr != nil {
		return nil, appErr
	}

	c, err := s.Owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil && *dto.Name != c.Name {
		if err := s.ensureNameFree(ctx, userID, *dto.Name, c.ID); err != nil {
			return nil, err
		}
		c.Rename(*dto.Name)
	}
	if dto.Color != nil {
		c.Recolor(*dto.Color)
	}

	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, ErrNameTaken) {
			return nil, internal.ErrCategoryNameTaken
		}
		return nil, internal.NewInternalError("Server error while updating category", err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return internal.ErrCategoryNotFound
		}
		return internal.NewInternalError("Server error while deleting category", err)
	}
	s.logger.Info("category deleted", "user_id", userID, "category_id", id)
	return nil
}

// ensureNameFree reports a conflict when another of the owner's categories already uses name.
func (s *Service) ensureNameFree(ctx context.Context, userID int64, name string, selfID int64) error {
	existing, err := s.repo.GetByNameKey(ctx, userID, NameKey(name))
	switch {
	case errors.Is(err, ErrNotFound):
		return nil
	case err != nil:
		return internal.NewInternalError("Server error while checking category name", err)
	case existing.ID != selfID:
		return internal.ErrCategoryNameTaken
	default:
		return nil
	}
}
