package models

import (
	"time"

	"gorm.io/gorm"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
)

// Valid reports whether s is one of the enumerated statuses.
func (s ArticleStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Article is a blog post. Slug is only unique among live rows, so the index is
// not a unique index; the repository enforces uniqueness inside the write
// transaction.
type Article struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Title      string         `gorm:"type:varchar(255);not null" json:"title"`
	Slug       string         `gorm:"type:varchar(255);not null;index" json:"slug"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	Status     ArticleStatus  `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	AuthorID   uint           `gorm:"not null;index" json:"author_id"`
	Author     User           `gorm:"foreignKey:AuthorID" json:"author"`
	Categories []Category     `gorm:"many2many:article_categories;" json:"categories"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Article model
func (Article) TableName() string {
	return "articles"
}

// IsOwnedBy reports whether userID is the article's author.
func (a *Article) IsOwnedBy(userID uint) bool {
	return userID != 0 && a.AuthorID == userID
}

// CategoryIDs returns the ids of the loaded categories.
func (a *Article) CategoryIDs() []uint {
	ids := make([]uint, 0, len(a.Categories))
	for _, c := range a.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}
