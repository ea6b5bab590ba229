package categories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ManuelReschke/InkFox/app/models"
	"github.com/ManuelReschke/InkFox/app/repository"
	"github.com/ManuelReschke/InkFox/internal/pkg/apperror"
	"github.com/ManuelReschke/InkFox/internal/pkg/listing"
	"github.com/ManuelReschke/InkFox/internal/pkg/testutil"
)

func newRegistry(t *testing.T) (*Registry, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	return NewRegistry(
		repository.NewCategoryRepository(db, nil, time.Minute),
		repository.NewArticleRepository(db),
	), db
}

func TestGetBySlug(t *testing.T) {
	registry, db := newRegistry(t)
	tech := testutil.CreateCategory(t, db, "Technology", "technology")

	got, err := registry.GetBySlug(context.Background(), "technology")
	require.NoError(t, err)
	assert.Equal(t, tech.ID, got.ID)

	_, err = registry.GetBySlug(context.Background(), "gardening")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestList(t *testing.T) {
	registry, db := newRegistry(t)
	testutil.CreateCategory(t, db, "Science", "science")
	testutil.CreateCategory(t, db, "Lifestyle", "lifestyle")

	all, err := registry.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "lifestyle", all[0].Slug)
}

func TestListPublishedArticles(t *testing.T) {
	registry, db := newRegistry(t)
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "Ada", "ada@example.com")
	tech := testutil.CreateCategory(t, db, "Technology", "technology")
	science := testutil.CreateCategory(t, db, "Science", "science")

	older := testutil.CreateArticle(t, db, author, "Older", "older", models.StatusPublished, tech)
	newer := testutil.CreateArticle(t, db, author, "Newer", "newer", models.StatusPublished, tech, science)
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)
	testutil.CreateArticle(t, db, author, "Draft", "draft", models.StatusDraft, tech)
	testutil.CreateArticle(t, db, author, "Elsewhere", "elsewhere", models.StatusPublished, science)
	gone := testutil.CreateArticle(t, db, author, "Gone", "gone", models.StatusPublished, tech)
	require.NoError(t, db.Delete(gone).Error)

	result, err := registry.ListPublishedArticles(ctx, tech, listing.ParsePage("", ""))
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	require.Len(t, result.Data, 2)
	assert.Equal(t, newer.ID, result.Data[0].ID)
	assert.Equal(t, older.ID, result.Data[1].ID)
	assert.Equal(t, 1, result.CurrentPage)
	assert.Equal(t, 10, result.PerPage)
	assert.Equal(t, 1, result.LastPage)

	secondPage, err := registry.ListPublishedArticles(ctx, tech, listing.ParsePage("2", "1"))
	require.NoError(t, err)
	require.Len(t, secondPage.Data, 1)
	assert.Equal(t, older.ID, secondPage.Data[0].ID)
	assert.Equal(t, 2, secondPage.LastPage)
}
