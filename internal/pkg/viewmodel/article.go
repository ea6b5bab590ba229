package viewmodel

import (
	"time"

	"github.com/ManuelReschke/InkFox/app/models"
)

// Author is the public part of an article's author.
type Author struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Article is the JSON shape of an article.
type Article struct {
	ID         uint                 `json:"id"`
	Title      string               `json:"title"`
	Slug       string               `json:"slug"`
	Content    string               `json:"content"`
	Status     models.ArticleStatus `json:"status"`
	AuthorID   uint                 `json:"author_id"`
	Author     Author               `json:"author"`
	Categories []Category           `json:"categories"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

func NewArticle(a models.Article) Article {
	categories := make([]Category, 0, len(a.Categories))
	for _, c := range a.Categories {
		categories = append(categories, NewCategory(c))
	}

	return Article{
		ID:         a.ID,
		Title:      a.Title,
		Slug:       a.Slug,
		Content:    a.Content,
		Status:     a.Status,
		AuthorID:   a.AuthorID,
		Author:     Author{ID: a.Author.ID, Name: a.Author.Name},
		Categories: categories,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
