package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ManuelReschke/InkFox/app/models"
	"github.com/ManuelReschke/InkFox/internal/pkg/listing"
)

// articleRepository implements the ArticleRepository interface
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository instance
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Create inserts the article and its category links in one transaction.
func (r *articleRepository) Create(ctx context.Context, article *models.Article, categoryIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories, err := loadCategories(tx, categoryIDs)
		if err != nil {
			return err
		}
		if err := ensureSlugFree(tx, article.Slug, 0); err != nil {
			return err
		}

		article.Categories = categories
		// Only link existing categories, never upsert them.
		if err := tx.Omit("Author", "Categories.*").Create(article).Error; err != nil {
			return slugConflict(err)
		}
		return nil
	})
}

// GetByID retrieves a live article by its ID
func (r *articleRepository) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	err := r.withRelations(ctx).First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetBySlug retrieves a live article by its slug
func (r *articleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := r.withRelations(ctx).Where("slug = ?", slug).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Update writes title, slug, content and status. The author is never written.
// A nil categoryIDs leaves the links alone, an empty slice removes them all.
func (r *articleRepository) Update(ctx context.Context, article *models.Article, categoryIDs *[]uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureSlugFree(tx, article.Slug, article.ID); err != nil {
			return err
		}

		var categories []models.Category
		if categoryIDs != nil {
			var err error
			if categories, err = loadCategories(tx, *categoryIDs); err != nil {
				return err
			}
		}

		err := tx.Model(&models.Article{ID: article.ID}).
			Omit(clause.Associations).
			Updates(map[string]any{
				"title":   article.Title,
				"slug":    article.Slug,
				"content": article.Content,
				"status":  article.Status,
			}).Error
		if err != nil {
			return slugConflict(err)
		}

		if categoryIDs == nil {
			return nil
		}

		assoc := tx.Model(&models.Article{ID: article.ID}).Omit("Categories.*").Association("Categories")
		if len(categories) == 0 {
			if err := assoc.Clear(); err != nil {
				return err
			}
		} else if err := assoc.Replace(categories); err != nil {
			return err
		}
		article.Categories = categories
		return nil
	})
}

// Delete soft deletes an article by its ID. Category links are kept.
func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Article{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns one page of published articles and the total match count.
func (r *articleRepository) List(ctx context.Context, query listing.Query) ([]models.Article, int64, error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Article{}).Scopes(query.Filter)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := base().
		Preload("Author").
		Preload("Categories", orderByName).
		Scopes(query.Paginate).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *articleRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Author").Preload("Categories", orderByName)
}

func orderByName(db *gorm.DB) *gorm.DB {
	return db.Order("categories.name ASC")
}

// ensureSlugFree fails with ErrSlugTaken when a live article other than
// exceptID uses slug. Matching rows stay locked until the transaction ends.
func ensureSlugFree(tx *gorm.DB, slug string, exceptID uint) error {
	q := tx.Model(&models.Article{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("slug = ?", slug)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}

	var ids []uint
	if err := q.Limit(1).Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) > 0 {
		return ErrSlugTaken
	}
	return nil
}

// slugConflict maps a unique violation on the live-slug index to ErrSlugTaken.
func slugConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrSlugTaken
	}
	return err
}

// loadCategories fetches the categories for ids, failing with
// ErrUnknownCategory if any id does not exist.
func loadCategories(tx *gorm.DB, ids []uint) ([]models.Category, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	var categories []models.Category
	if err := tx.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, ErrUnknownCategory
	}
	return categories, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
