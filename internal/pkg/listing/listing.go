package listing

import (
	"math"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ManuelReschke/InkFox/app/models"
	"github.com/ManuelReschke/InkFox/internal/pkg/apperror"
)

const (
	DefaultPerPage   = 10
	MaxPerPage       = 100
	DefaultSortBy    = "created_at"
	DefaultSortOrder = "desc"

	// MaxPage keeps (page-1)*perPage inside an int32 offset.
	MaxPage = math.MaxInt32 / MaxPerPage
)

// sortColumns is the allow-list of columns a caller may sort by. Caller input
// never reaches the ORDER BY clause unless it is a key of this map.
var sortColumns = map[string]struct{}{
	"title":      {},
	"created_at": {},
	"status":     {},
}

// Params are the raw query string values of a listing request.
type Params struct {
	Q         string
	SortBy    string
	SortOrder string
	PerPage   string
	Page      string
}

// Page is a bounded page request.
type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Query is a validated listing request for published articles.
type Query struct {
	Search     string
	SortBy     string
	Desc       bool
	Page       Page
	CategoryID uint
}

// Parse validates and normalizes listing parameters.
func Parse(p Params) (Query, error) {
	fields := map[string][]string{}

	sortBy := strings.TrimSpace(p.SortBy)
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	if _, ok := sortColumns[sortBy]; !ok {
		fields["sortBy"] = []string{"The selected sortBy is invalid."}
	}

	sortOrder := strings.ToLower(strings.TrimSpace(p.SortOrder))
	if sortOrder == "" {
		sortOrder = DefaultSortOrder
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		fields["sortOrder"] = []string{"The selected sortOrder is invalid."}
	}

	if len(fields) > 0 {
		return Query{}, apperror.Validation(fields)
	}

	return Query{
		Search: strings.TrimSpace(p.Q),
		SortBy: sortBy,
		Desc:   sortOrder == "desc",
		Page:   ParsePage(p.Page, p.PerPage),
	}, nil
}

// ParsePage reads page and perPage, falling back to defaults for missing or
// malformed values and clamping them to MaxPage and MaxPerPage.
func ParsePage(page, perPage string) Page {
	return Page{
		Number: min(parsePositiveInt(page, 1), MaxPage),
		Size:   min(parsePositiveInt(perPage, DefaultPerPage), MaxPerPage),
	}
}

// ForCategory returns the default listing of a category: newest first.
func ForCategory(categoryID uint, page Page) Query {
	return Query{SortBy: DefaultSortBy, Desc: true, Page: page, CategoryID: categoryID}
}

// Filter restricts articles to published rows matching the search term and
// category. Soft-deleted rows are excluded by GORM.
func (q Query) Filter(db *gorm.DB) *gorm.DB {
	db = db.Where("articles.status = ?", models.StatusPublished)

	if q.Search != "" {
		op := "LIKE"
		if db.Dialector.Name() == "postgres" {
			op = "ILIKE"
		}
		pattern := "%" + q.Search + "%"
		db = db.Where("(articles.title "+op+" ? OR articles.content "+op+" ?)", pattern, pattern)
	}

	if q.CategoryID != 0 {
		db = db.Where("articles.id IN (SELECT article_id FROM article_categories WHERE category_id = ?)", q.CategoryID)
	}

	return db
}

// Paginate applies ordering and the page window.
func (q Query) Paginate(db *gorm.DB) *gorm.DB {
	column := q.SortBy
	if _, ok := sortColumns[column]; !ok {
		column = DefaultSortBy
	}

	return db.
		Order(clause.OrderByColumn{Column: clause.Column{Table: "articles", Name: column}, Desc: q.Desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "articles", Name: "id"}, Desc: q.Desc}).
		Offset(q.Page.Offset()).
		Limit(q.Page.Size)
}

// Result is a page of items plus paging metadata.
type Result[T any] struct {
	Data        []T   `json:"data"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

func NewResult[T any](items []T, total int64, page Page) Result[T] {
	if items == nil {
		items = []T{}
	}
	lastPage := 1
	if page.Size > 0 && total > 0 {
		lastPage = int((total + int64(page.Size) - 1) / int64(page.Size))
	}
	return Result[T]{
		Data:        items,
		CurrentPage: page.Number,
		PerPage:     page.Size,
		Total:       total,
		LastPage:    lastPage,
	}
}

// Map converts the items of a result while keeping its metadata.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	out := make([]U, 0, len(r.Data))
	for _, item := range r.Data {
		out = append(out, fn(item))
	}
	return Result[U]{
		Data:        out,
		CurrentPage: r.CurrentPage,
		PerPage:     r.PerPage,
		Total:       r.Total,
		LastPage:    r.LastPage,
	}
}

func parsePositiveInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
