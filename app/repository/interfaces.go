package repository

import (
	"context"
	"errors"

	"github.com/ManuelReschke/InkFox/app/models"
	"github.com/ManuelReschke/InkFox/internal/pkg/listing"
)

var (
	// ErrSlugTaken is returned when a live article already uses the slug.
	ErrSlugTaken = errors.New("slug already taken")
	// ErrUnknownCategory is returned when a category id does not exist.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrEmailTaken is returned when a user with the email already exists.
	ErrEmailTaken = errors.New("email already taken")
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// ArticleRepository defines the interface for article-related database operations
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article, categoryIDs []uint) error
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	Update(ctx context.Context, article *models.Article, categoryIDs *[]uint) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query listing.Query) ([]models.Article, int64, error)
}

// CategoryRepository defines the interface for category lookups
type CategoryRepository interface {
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User     UserRepository
	Article  ArticleRepository
	Category CategoryRepository
}
