package category

import "time"

// Category rows are unique per owner on the lowercased name held in NameKey.
type Category struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_categories_user_name_key,priority:1"`
	Name      string    `gorm:"column:name;size:100;not null"`
	NameKey   string    `gorm:"column:name_key;size:100;not null;uniqueIndex:idx_categories_user_name_key,priority:2"`
	Color     string    `gorm:"column:color;size:7;not null;default:'#3B82F6'"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
