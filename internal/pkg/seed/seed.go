// Package seed fills an empty database with demo users, categories and
// articles. Running it twice leaves the data unchanged.
package seed

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/ManuelReschke/InkFox/app/models"
	"github.com/ManuelReschke/InkFox/internal/pkg/slug"
)

// DemoPassword is the password of every seeded user.
const DemoPassword = "password123"

var categoryNames = []string{"Technology", "Science", "Business", "Lifestyle"}

type demoUser struct {
	Name  string
	Email string
}

var demoUsers = []demoUser{
	{Name: "Alice Author", Email: "alice@example.com"},
	{Name: "Bob Blogger", Email: "bob@example.com"},
}

type demoArticle struct {
	Title    string
	Content  string
	Status   models.ArticleStatus
	Author   int
	Category string
}

var demoArticles = []demoArticle{
	{
		Title:    "Introduction to Laravel Framework",
		Content:  "Laravel is a powerful PHP framework that makes web development elegant and enjoyable. It provides a rich set of features including routing, authentication, and database management.",
		Status:   models.StatusPublished,
		Author:   0,
		Category: "Technology",
	},
	{
		Title:    "Understanding Quantum Computing",
		Content:  "Quantum computing represents a revolutionary approach to computation, leveraging quantum mechanical phenomena to process information in fundamentally new ways.",
		Status:   models.StatusPublished,
		Author:   1,
		Category: "Science",
	},
	{
		Title:    "Startup Success Strategies",
		Content:  "Building a successful startup requires careful planning, market research, and a strong team. This article explores key strategies for startup success in today's competitive market.",
		Status:   models.StatusPublished,
		Author:   0,
		Category: "Business",
	},
	{
		Title:    "Healthy Living Tips for 2024",
		Content:  "Maintaining a healthy lifestyle involves balanced nutrition, regular exercise, and mental well-being. Here are practical tips to improve your overall health and wellness.",
		Status:   models.StatusPublished,
		Author:   1,
		Category: "Lifestyle",
	},
	{
		Title:    "Advanced PHP Techniques",
		Content:  "Explore advanced PHP programming techniques including design patterns, dependency injection, and performance optimization strategies for modern web applications.",
		Status:   models.StatusPublished,
		Author:   0,
		Category: "Technology",
	},
	{
		Title:    "Climate Change and Global Impact",
		Content:  "Climate change is one of the most pressing issues of our time. This article examines the scientific evidence and global efforts to address environmental challenges.",
		Status:   models.StatusPublished,
		Author:   1,
		Category: "Science",
	},
	{
		Title:    "Draft Article - Not Published",
		Content:  "This is a draft article that should not appear in published listings.",
		Status:   models.StatusDraft,
		Author:   0,
		Category: "Technology",
	},
}

// Run seeds categories, users and articles.
func Run(db *gorm.DB) error {
	categories, err := Categories(db)
	if err != nil {
		return err
	}
	users, err := Users(db)
	if err != nil {
		return err
	}
	return Articles(db, users, categories)
}

// Categories creates the fixed category set and returns it keyed by name.
func Categories(db *gorm.DB) (map[string]*models.Category, error) {
	out := make(map[string]*models.Category, len(categoryNames))
	for _, name := range categoryNames {
		category := &models.Category{Name: name, Slug: slug.Make(name)}
		if err := category.FindOrCreate(db); err != nil {
			return nil, fmt.Errorf("seed category %q: %w", name, err)
		}
		out[name] = category
	}
	log.Infof("Seeded %d categories", len(out))
	return out, nil
}

// Users creates the demo users. Existing users keep their password.
func Users(db *gorm.DB) ([]*models.User, error) {
	out := make([]*models.User, 0, len(demoUsers))
	for _, u := range demoUsers {
		var user models.User
		err := db.Where("email = ?", models.NormalizeEmail(u.Email)).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created, err := models.NewUser(u.Name, u.Email, DemoPassword)
			if err != nil {
				return nil, err
			}
			if err := db.Create(created).Error; err != nil {
				return nil, fmt.Errorf("seed user %q: %w", u.Email, err)
			}
			out = append(out, created)
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, &user)
	}
	log.Infof("Seeded %d users", len(out))
	return out, nil
}

// Articles creates the demo articles whose slug is not taken by a live row.
func Articles(db *gorm.DB, users []*models.User, categories map[string]*models.Category) error {
	if len(users) < 2 || len(categories) == 0 {
		log.Warn("Skipping article seed: users or categories missing")
		return nil
	}

	created := 0
	for _, a := range demoArticles {
		s := slug.Make(a.Title)

		var count int64
		if err := db.Model(&models.Article{}).Where("slug = ?", s).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		article := &models.Article{
			Title:    a.Title,
			Slug:     s,
			Content:  a.Content,
			Status:   a.Status,
			AuthorID: users[a.Author].ID,
		}
		if c, ok := categories[a.Category]; ok {
			article.Categories = []models.Category{*c}
		}
		if err := db.Omit("Author", "Categories.*").Create(article).Error; err != nil {
			return fmt.Errorf("seed article %q: %w", a.Title, err)
		}
		created++
	}
	log.Infof("Seeded %d articles", created)
	return nil
}
