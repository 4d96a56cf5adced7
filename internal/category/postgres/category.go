package postgres

import (
	"context"
	"errors"

	"github.com/frahmantamala/budget-tracker/internal/category"
	budgetDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/budget"
	categoryDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/category"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.RepositoryAPI {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListByOwner(ctx context.Context, userID int64) ([]*category.Category, error) {
	var rows []*categoryDatamodel.Category
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	categories := make([]*category.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, category.FromDataModel(row))
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, userID, id int64) (*category.Category, error) {
	var row categoryDatamodel.Category
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrNotFound
		}
		return nil, err
	}
	return category.FromDataModel(&row), nil
}

func (r *CategoryRepository) GetByNameKey(ctx context.Context, userID int64, key string) (*category.Category, error) {
	var row categoryDatamodel.Category
	err := r.db.WithContext(ctx).Where("user_id = ? AND name_key = ?", userID, key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrNotFound
		}
		return nil, err
	}
	return category.FromDataModel(&row), nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	row := category.ToDataModel(c)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return category.ErrNameTaken
		}
		return err
	}
	c.ID = row.ID
	c.CreatedAt = row.CreatedAt
	c.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	row := category.ToDataModel(c)
	res := r.db.WithContext(ctx).
		Model(&categoryDatamodel.Category{}).
		Where("id = ? AND user_id = ?", c.ID, c.UserID).
		Updates(map[string]interface{}{
			"name":       row.Name,
			"name_key":   row.NameKey,
			"color":      row.Color,
			"updated_at": c.UpdatedAt,
		})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return category.ErrNameTaken
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return category.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, userID, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&categoryDatamodel.Category{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return category.ErrNotFound
		}
		return tx.Where("category_id = ? AND user_id = ?", id, userID).Delete(&budgetDatamodel.Budget{}).Error
	})
}
