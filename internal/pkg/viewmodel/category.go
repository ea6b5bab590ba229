package viewmodel

import "github.com/ManuelReschke/InkFox/app/models"

type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func NewCategory(c models.Category) Category {
	return Category{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

func NewCategories(cs []models.Category) []Category {
	out := make([]Category, 0, len(cs))
	for _, c := range cs {
		out = append(out, NewCategory(c))
	}
	return out
}
