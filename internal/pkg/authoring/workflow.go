// Package authoring implements article creation and the author-only edit and
// delete workflow.
package authoring

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/ManuelReschke/InkFox/app/models"
	"github.com/ManuelReschke/InkFox/app/repository"
	"github.com/ManuelReschke/InkFox/internal/pkg/apperror"
	"github.com/ManuelReschke/InkFox/internal/pkg/listing"
	"github.com/ManuelReschke/InkFox/internal/pkg/slug"
	"github.com/ManuelReschke/InkFox/internal/pkg/validation"
)

const (
	notFoundMessage      = "Article not found."
	updateDeniedMessage  = "Unauthorized. You can only update your own articles."
	deleteDeniedMessage  = "Unauthorized. You can only delete your own articles."
	slugTakenMessage     = "The slug has already been taken."
	unknownCategoryMsg   = "The selected category ids are invalid."
	emptySlugMessage     = "The title must contain at least one letter or number."
	invalidStatusMessage = "The selected status is invalid."
)

type CreateInput struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Slug        *string `json:"slug" validate:"omitnil,max=255,slug"`
	Content     string  `json:"content" validate:"required"`
	Status      *string `json:"status" validate:"omitnil,oneof=draft published"`
	CategoryIDs []uint  `json:"category_ids" validate:"omitempty,dive,gt=0"`
}

// Patch is a partial update. A nil field is left unchanged. A non-nil
// CategoryIDs replaces the whole category set.
type Patch struct {
	Title       *string `json:"title" validate:"omitnil,required,max=255"`
	Slug        *string `json:"slug" validate:"omitnil,max=255,slug"`
	Content     *string `json:"content" validate:"omitnil,required"`
	Status      *string `json:"status" validate:"omitnil,oneof=draft published"`
	CategoryIDs *[]uint `json:"category_ids" validate:"omitnil,dive,gt=0"`
}

type Workflow struct {
	articles repository.ArticleRepository
}

func NewWorkflow(articles repository.ArticleRepository) *Workflow {
	return &Workflow{articles: articles}
}

// Create stores a new article owned by authorID. The slug is derived from the
// title unless supplied and the status defaults to draft.
func (w *Workflow) Create(ctx context.Context, in CreateInput, authorID uint) (*models.Article, error) {
	if authorID == 0 {
		return nil, apperror.Unauthenticated()
	}

	in.Slug = blankToNil(in.Slug)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	articleSlug := slug.Make(in.Title)
	if in.Slug != nil {
		articleSlug = *in.Slug
	}
	if articleSlug == "" {
		return nil, apperror.Field("title", emptySlugMessage)
	}

	status := models.StatusDraft
	if in.Status != nil {
		status = models.ArticleStatus(*in.Status)
	}

	article := &models.Article{
		Title:    in.Title,
		Slug:     articleSlug,
		Content:  in.Content,
		Status:   status,
		AuthorID: authorID,
	}
	if err := w.articles.Create(ctx, article, in.CategoryIDs); err != nil {
		return nil, translate(err, "create article")
	}

	return w.GetByID(ctx, article.ID)
}

// Update applies a partial update. The requester must be the author.
func (w *Workflow) Update(ctx context.Context, id uint, patch Patch, requesterID uint) (*models.Article, error) {
	article, err := w.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !article.IsOwnedBy(requesterID) {
		return nil, apperror.Forbidden(updateDeniedMessage)
	}

	patch.Slug = blankToNil(patch.Slug)
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}

	next := article.Status
	if patch.Status != nil {
		next = models.ArticleStatus(*patch.Status)
	}
	if err := Transition(article.Status, next); err != nil {
		return nil, apperror.Field("status", invalidStatusMessage)
	}

	if patch.Title != nil {
		article.Title = *patch.Title
		if patch.Slug == nil {
			article.Slug = slug.Make(*patch.Title)
			if article.Slug == "" {
				return nil, apperror.Field("title", emptySlugMessage)
			}
		}
	}
	if patch.Slug != nil {
		article.Slug = *patch.Slug
	}
	if patch.Content != nil {
		article.Content = *patch.Content
	}
	article.Status = next

	if err := w.articles.Update(ctx, article, patch.CategoryIDs); err != nil {
		return nil, translate(err, "update article")
	}

	return w.GetByID(ctx, id)
}

// Delete soft deletes the article. The requester must be the author.
func (w *Workflow) Delete(ctx context.Context, id uint, requesterID uint) error {
	article, err := w.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !article.IsOwnedBy(requesterID) {
		return apperror.Forbidden(deleteDeniedMessage)
	}
	if err := Transition(article.Status, StateDeleted); err != nil {
		return err
	}

	if err := w.articles.Delete(ctx, id); err != nil {
		return translate(err, "delete article")
	}
	return nil
}

func (w *Workflow) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	article, err := w.articles.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "find article")
	}
	return article, nil
}

// GetBySlug looks up a live article regardless of its status.
func (w *Workflow) GetBySlug(ctx context.Context, articleSlug string) (*models.Article, error) {
	article, err := w.articles.GetBySlug(ctx, articleSlug)
	if err != nil {
		return nil, translate(err, "find article")
	}
	return article, nil
}

// ListPublished returns one page of published articles.
func (w *Workflow) ListPublished(ctx context.Context, query listing.Query) (listing.Result[models.Article], error) {
	items, total, err := w.articles.List(ctx, query)
	if err != nil {
		return listing.Result[models.Article]{}, fmt.Errorf("list articles: %w", err)
	}
	return listing.NewResult(items, total, query.Page), nil
}

func translate(err error, op string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.NotFound(notFoundMessage)
	case errors.Is(err, repository.ErrSlugTaken):
		return apperror.Field("slug", slugTakenMessage)
	case errors.Is(err, repository.ErrUnknownCategory):
		return apperror.Field("category_ids", unknownCategoryMsg)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
