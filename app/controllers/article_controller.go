package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/InkFox/internal/pkg/authoring"
	"github.com/ManuelReschke/InkFox/internal/pkg/listing"
	"github.com/ManuelReschke/InkFox/internal/pkg/usercontext"
	"github.com/ManuelReschke/InkFox/internal/pkg/viewmodel"
)

const articleNotFoundMessage = "Article not found."

// ArticleController handles article HTTP requests
type ArticleController struct {
	workflow *authoring.Workflow
}

func NewArticleController(workflow *authoring.Workflow) *ArticleController {
	return &ArticleController{workflow: workflow}
}

// HandleIndex lists published articles with search, sort and pagination.
func (ac *ArticleController) HandleIndex(c *fiber.Ctx) error {
	query, err := listing.Parse(listing.Params{
		Q:         c.Query("q"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		PerPage:   c.Query("perPage"),
		Page:      c.Query("page"),
	})
	if err != nil {
		return err
	}

	result, err := ac.workflow.ListPublished(c.UserContext(), query)
	if err != nil {
		return err
	}
	return c.JSON(listing.Map(result, viewmodel.NewArticle))
}

func (ac *ArticleController) HandleShow(c *fiber.Ctx) error {
	article, err := ac.workflow.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(viewmodel.NewArticle(*article))
}

func (ac *ArticleController) HandleStore(c *fiber.Ctx) error {
	var in authoring.CreateInput
	if err := parseJSON(c, &in); err != nil {
		return err
	}

	article, err := ac.workflow.Create(c.UserContext(), in, usercontext.GetUserID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(viewmodel.NewArticle(*article))
}

func (ac *ArticleController) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramID(c, "id", articleNotFoundMessage)
	if err != nil {
		return err
	}

	var patch authoring.Patch
	if err := parseJSON(c, &patch); err != nil {
		return err
	}

	article, err := ac.workflow.Update(c.UserContext(), id, patch, usercontext.GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(viewmodel.NewArticle(*article))
}

func (ac *ArticleController) HandleDestroy(c *fiber.Ctx) error {
	id, err := paramID(c, "id", articleNotFoundMessage)
	if err != nil {
		return err
	}

	if err := ac.workflow.Delete(c.UserContext(), id, usercontext.GetUserID(c)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Article deleted successfully"})
}
