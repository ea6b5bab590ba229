package listing

import (
	"math"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ManuelReschke/InkFox/app/models"
	"github.com/ManuelReschke/InkFox/internal/pkg/apperror"
)

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	q, err := Parse(Params{})
	require.NoError(t, err)
	assert.Equal(t, "created_at", q.SortBy)
	assert.True(t, q.Desc)
	assert.Equal(t, Page{Number: 1, Size: 10}, q.Page)
	assert.Empty(t, q.Search)
}

func TestParseSortAllowList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		wantErr   []string
		wantDesc  bool
	}{
		{name: "title asc", sortBy: "title", sortOrder: "asc"},
		{name: "status desc", sortBy: "status", sortOrder: "DESC", wantDesc: true},
		{name: "unknown column", sortBy: "password", sortOrder: "asc", wantErr: []string{"sortBy"}},
		{name: "injection attempt", sortBy: "title; DROP TABLE users", wantErr: []string{"sortBy"}},
		{name: "bad order", sortBy: "title", sortOrder: "sideways", wantErr: []string{"sortOrder"}},
		{name: "both bad", sortBy: "id", sortOrder: "up", wantErr: []string{"sortBy", "sortOrder"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q, err := Parse(Params{SortBy: tt.sortBy, SortOrder: tt.sortOrder})
			if tt.wantErr != nil {
				appErr, ok := apperror.As(err)
				require.True(t, ok)
				assert.Equal(t, apperror.KindValidation, appErr.Kind)
				assert.Equal(t, tt.wantErr, appErr.FieldNames())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.sortBy, q.SortBy)
			assert.Equal(t, tt.wantDesc, q.Desc)
		})
	}
}

func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page, perPage string
		want          Page
	}{
		{page: "", perPage: "", want: Page{Number: 1, Size: 10}},
		{page: "3", perPage: "25", want: Page{Number: 3, Size: 25}},
		{page: "1", perPage: "500", want: Page{Number: 1, Size: 100}},
		{page: "0", perPage: "0", want: Page{Number: 1, Size: 10}},
		{page: "-2", perPage: "-5", want: Page{Number: 1, Size: 10}},
		{page: "abc", perPage: "ten", want: Page{Number: 1, Size: 10}},
		{page: "9223372036854775807", perPage: "100", want: Page{Number: MaxPage, Size: 100}},
		{page: "99999999999999999999", perPage: "10", want: Page{Number: 1, Size: 10}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePage(tt.page, tt.perPage), "page=%q perPage=%q", tt.page, tt.perPage)
	}
}

func TestPageOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Page{Number: 1, Size: 10}.Offset())
	assert.Equal(t, 40, Page{Number: 3, Size: 20}.Offset())

	last := ParsePage("9223372036854775807", "100")
	assert.Positive(t, last.Offset())
	assert.LessOrEqual(t, last.Offset(), math.MaxInt32)
}

func TestNewResult(t *testing.T) {
	t.Parallel()

	r := NewResult([]int{1, 2}, 12, Page{Number: 2, Size: 5})
	assert.Equal(t, []int{1, 2}, r.Data)
	assert.Equal(t, 2, r.CurrentPage)
	assert.Equal(t, 5, r.PerPage)
	assert.Equal(t, int64(12), r.Total)
	assert.Equal(t, 3, r.LastPage)

	empty := NewResult[int](nil, 0, Page{Number: 1, Size: 10})
	assert.NotNil(t, empty.Data)
	assert.Equal(t, 1, empty.LastPage)
}

func TestMap(t *testing.T) {
	t.Parallel()

	r := Map(NewResult([]int{1, 2, 3}, 3, Page{Number: 1, Size: 10}), func(i int) string {
		return string(rune('a' + i - 1))
	})
	assert.Equal(t, []string{"a", "b", "c"}, r.Data)
	assert.Equal(t, int64(3), r.Total)
}

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		DryRun: true,
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestFilterAndPaginateSQL(t *testing.T) {
	t.Parallel()

	q, err := Parse(Params{Q: "go", SortBy: "title", SortOrder: "asc", PerPage: "5", Page: "2"})
	require.NoError(t, err)
	q.CategoryID = 7

	var articles []models.Article
	stmt := dryRunDB(t).Model(&models.Article{}).Scopes(q.Filter, q.Paginate).Find(&articles).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, "articles.status = ?")
	assert.Contains(t, sql, "(articles.title LIKE ? OR articles.content LIKE ?)")
	assert.Contains(t, sql, "articles.id IN (SELECT article_id FROM article_categories WHERE category_id = ?)")
	assert.Contains(t, sql, "ORDER BY `articles`.`title`,`articles`.`id`")
	assert.Contains(t, sql, "LIMIT")
	assert.Contains(t, sql, "OFFSET")
	assert.Contains(t, sql, "`articles`.`deleted_at` IS NULL")
	assert.Contains(t, stmt.Vars, any("%go%"))
	assert.Contains(t, stmt.Vars, any(models.StatusPublished))
}

func TestPaginateFallsBackForUnknownColumn(t *testing.T) {
	t.Parallel()

	q := Query{SortBy: "password", Desc: true, Page: Page{Number: 1, Size: 10}}
	var articles []models.Article
	sql := dryRunDB(t).Model(&models.Article{}).Scopes(q.Paginate).Find(&articles).Statement.SQL.String()

	assert.Contains(t, sql, "ORDER BY `articles`.`created_at` DESC")
	assert.NotContains(t, sql, "password")
}
