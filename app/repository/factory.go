package repository

import (
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// DefaultCategoryCacheTTL is used when Config.CategoryCacheTTL is zero.
const DefaultCategoryCacheTTL = 10 * time.Minute

// Config holds optional collaborators of the repositories.
type Config struct {
	// Cache enables the category read-through cache. Nil disables caching.
	Cache            redis.UniversalClient
	CategoryCacheTTL time.Duration
}

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	cfg   Config
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB, cfg Config) *Factory {
	return &Factory{
		db:  db,
		cfg: cfg,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db, f.cfg)
	})
	return f.repos
}

// GetUserRepository returns the user repository instance
func (f *Factory) GetUserRepository() UserRepository {
	return f.GetRepositories().User
}

// GetArticleRepository returns the article repository instance
func (f *Factory) GetArticleRepository() ArticleRepository {
	return f.GetRepositories().Article
}

// GetCategoryRepository returns the category repository instance
func (f *Factory) GetCategoryRepository() CategoryRepository {
	return f.GetRepositories().Category
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB, cfg Config) *Repositories {
	ttl := cfg.CategoryCacheTTL
	if ttl <= 0 {
		ttl = DefaultCategoryCacheTTL
	}

	return &Repositories{
		User:     NewUserRepository(db),
		Article:  NewArticleRepository(db),
		Category: NewCategoryRepository(db, cfg.Cache, ttl),
	}
}
