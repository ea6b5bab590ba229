// Package testutil provides an in-memory database for package tests.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ManuelReschke/InkFox/app/models"
	"github.com/ManuelReschke/InkFox/internal/pkg/database"
)

// NewDB opens a migrated in-memory SQLite database private to the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is its own database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// CreateUser inserts a user whose password is "password123".
func CreateUser(t testing.TB, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	user, err := models.NewUser(name, email, "password123")
	require.NoError(t, err)
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateCategory inserts a category.
func CreateCategory(t testing.TB, db *gorm.DB, name, slug string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name, Slug: slug}
	require.NoError(t, db.Create(category).Error)
	return category
}

// CreateArticle inserts an article with the given status and categories.
func CreateArticle(t testing.TB, db *gorm.DB, author *models.User, title, slug string, status models.ArticleStatus, categories ...*models.Category) *models.Article {
	t.Helper()

	article := &models.Article{
		Title:    title,
		Slug:     slug,
		Content:  "Content of " + title,
		Status:   status,
		AuthorID: author.ID,
	}
	for _, c := range categories {
		article.Categories = append(article.Categories, *c)
	}
	require.NoError(t, db.Omit("Author", "Categories.*").Create(article).Error)
	return article
}
