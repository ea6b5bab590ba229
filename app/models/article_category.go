package models

import (
	"time"

	"gorm.io/gorm"
)

// ArticleCategory is the join row between articles and categories.
type ArticleCategory struct {
	ArticleID  uint      `gorm:"primaryKey;autoIncrement:false" json:"article_id"`
	CategoryID uint      `gorm:"primaryKey;autoIncrement:false" json:"category_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ArticleCategory) TableName() string {
	return "article_categories"
}

// SetupJoinTables registers ArticleCategory as the join model for both sides
// of the article/category relation so created_at is populated.
func SetupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Article{}, "Categories", &ArticleCategory{}); err != nil {
		return err
	}
	return db.SetupJoinTable(&Category{}, "Articles", &ArticleCategory{})
}
