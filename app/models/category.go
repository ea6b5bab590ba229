package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Slug      string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"`
	Articles  []Article `gorm:"many2many:article_categories;" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// FindOrCreate looks a category up by slug and creates it when missing.
func (c *Category) FindOrCreate(db *gorm.DB) error {
	result := db.Where("slug = ?", c.Slug).First(c)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return db.Create(c).Error
		}
		return result.Error
	}
	return nil
}
