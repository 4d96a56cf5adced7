package category

import (
	"errors"
	"strings"
	"time"

	categoryDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/category"
)

const DefaultColor = "#3B82F6"

type Category struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var (
	ErrNotFound  = errors.New("category not found")
	ErrNameTaken = errors.New("category name taken")
)

// NameKey is the case-insensitive identity of a category name within one owner.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func NewCategory(userID int64, name, color string) *Category {
	if color == "" {
		color = DefaultColor
	}
	now := time.Now().UTC()
	return &Category{
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *Category) Rename(name string) {
	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = time.Now().UTC()
}

func (c *Category) Recolor(color string) {
	c.Color = color
	c.UpdatedAt = time.Now().UTC()
}

func (c *Category) ToResponse() CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		User:      c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToDataModel(c *Category) *categoryDatamodel.Category {
	return &categoryDatamodel.Category{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		NameKey:   NameKey(c.Name),
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromDataModel(c *categoryDatamodel.Category) *Category {
	return &Category{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// RefFromDataModel is the embedded form used by expenses, budgets and reports. A nil row gives nil.
func RefFromDataModel(c *categoryDatamodel.Category) *CategoryRef {
	if c == nil || c.ID == 0 {
		return nil
	}
	return &CategoryRef{ID: c.ID, Name: c.Name, Color: c.Color}
}
