package category

import (
	"strings"
	"time"
)

type CreateCategoryDTO struct {
	Name  string `json:"name" validate:"required,notblank,max=100"`
	Color string `json:"color" validate:"omitempty,rgbhex"`
}

// UpdateCategoryDTO leaves absent fields unchanged.
type UpdateCategoryDTO struct {
	Name  *string `json:"name" validate:"omitempty,notblank,max=100"`
	Color *string `json:"color" validate:"omitempty,rgbhex"`
}

func (d *CreateCategoryDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Color = strings.TrimSpace(d.Color)
}

func (d *UpdateCategoryDTO) Normalize() {
	if d.Name != nil {
		name := strings.TrimSpace(*d.Name)
		d.Name = &name
	}
	if d.Color != nil {
		color := strings.TrimSpace(*d.Color)
		d.Color = &color
	}
}

type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	User      int64     `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryRef is a category as embedded in other resources.
type CategoryRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}
