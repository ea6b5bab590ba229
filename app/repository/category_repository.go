package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ManuelReschke/InkFox/app/models"
)

const categorySlugKeyPrefix = "category:slug:"

// categoryRepository implements the CategoryRepository interface. Lookups by
// slug read through Redis when a client is configured. Categories are only
// written by the seeder, so cached entries expire instead of being invalidated.
type categoryRepository struct {
	db    *gorm.DB
	cache redis.UniversalClient
	ttl   time.Duration
}

// NewCategoryRepository creates a new category repository instance. A nil
// cache disables the read-through cache.
func NewCategoryRepository(db *gorm.DB, cache redis.UniversalClient, ttl time.Duration) CategoryRepository {
	return &categoryRepository{db: db, cache: cache, ttl: ttl}
}

// CategorySlugKey returns the cache key of a category slug lookup.
func CategorySlugKey(slug string) string {
	return categorySlugKeyPrefix + slug
}

// GetBySlug retrieves a category by its slug
func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if category, ok := r.cached(ctx, slug); ok {
		return category, nil
	}

	var category models.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}

	r.store(ctx, &category)
	return &category, nil
}

// GetAll retrieves all categories ordered by name
func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) cached(ctx context.Context, slug string) (*models.Category, bool) {
	if r.cache == nil {
		return nil, false
	}

	raw, err := r.cache.Get(ctx, CategorySlugKey(slug)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warnf("category cache read failed for %q: %v", slug, err)
		}
		return nil, false
	}

	var category models.Category
	if err := json.Unmarshal(raw, &category); err != nil {
		log.Warnf("category cache entry for %q is corrupt: %v", slug, err)
		return nil, false
	}
	return &category, true
}

func (r *categoryRepository) store(ctx context.Context, category *models.Category) {
	if r.cache == nil {
		return
	}

	raw, err := json.Marshal(category)
	if err != nil {
		log.Warnf("category cache encode failed for %q: %v", category.Slug, err)
		return
	}
	if err := r.cache.Set(ctx, CategorySlugKey(category.Slug), raw, r.ttl).Err(); err != nil {
		log.Warnf("category cache write failed for %q: %v", category.Slug, err)
	}
}
