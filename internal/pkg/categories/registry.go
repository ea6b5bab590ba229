// Package categories serves category lookups and category article listings.
package categories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ManuelReschke/InkFox/app/models"
	"github.com/ManuelReschke/InkFox/app/repository"
	"github.com/ManuelReschke/InkFox/internal/pkg/apperror"
	"github.com/ManuelReschke/InkFox/internal/pkg/listing"
)

const notFoundMessage = "Category not found."

type Registry struct {
	categories repository.CategoryRepository
	articles   repository.ArticleRepository
}

func NewRegistry(categories repository.CategoryRepository, articles repository.ArticleRepository) *Registry {
	return &Registry{categories: categories, articles: articles}
}

func (r *Registry) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category, err := r.categories.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(notFoundMessage)
		}
		return nil, fmt.Errorf("find category %q: %w", slug, err)
	}
	return category, nil
}

func (r *Registry) List(ctx context.Context) ([]models.Category, error) {
	categories, err := r.categories.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ListPublishedArticles returns the category's published articles, newest first.
func (r *Registry) ListPublishedArticles(ctx context.Context, category *models.Category, page listing.Page) (listing.Result[models.Article], error) {
	items, total, err := r.articles.List(ctx, listing.ForCategory(category.ID, page))
	if err != nil {
		return listing.Result[models.Article]{}, fmt.Errorf("list articles of category %d: %w", category.ID, err)
	}
	return listing.NewResult(items, total, page), nil
}
