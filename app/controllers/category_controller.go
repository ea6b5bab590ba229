package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/InkFox/internal/pkg/categories"
	"github.com/ManuelReschke/InkFox/internal/pkg/listing"
	"github.com/ManuelReschke/InkFox/internal/pkg/viewmodel"
)

// CategoryController handles category HTTP requests
type CategoryController struct {
	registry *categories.Registry
}

func NewCategoryController(registry *categories.Registry) *CategoryController {
	return &CategoryController{registry: registry}
}

func (cc *CategoryController) HandleIndex(c *fiber.Ctx) error {
	all, err := cc.registry.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": viewmodel.NewCategories(all)})
}

// HandleShow returns the category and one page of its published articles.
func (cc *CategoryController) HandleShow(c *fiber.Ctx) error {
	category, err := cc.registry.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}

	page := listing.ParsePage(c.Query("page"), c.Query("perPage"))
	articles, err := cc.registry.ListPublishedArticles(c.UserContext(), category, page)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"category": viewmodel.NewCategory(*category),
		"articles": listing.Map(articles, viewmodel.NewArticle),
	})
}
