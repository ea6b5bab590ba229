package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/InkFox/internal/pkg/apperror"
)

type signup struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type patch struct {
	Title       *string `json:"title" validate:"omitnil,required,max=255"`
	Status      *string `json:"status" validate:"omitnil,oneof=draft published"`
	CategoryIDs *[]uint `json:"category_ids" validate:"omitnil,dive,gt=0"`
}

func strPtr(s string) *string { return &s }

func TestStructValid(t *testing.T) {
	assert.NoError(t, Struct(signup{Name: "Ada", Email: "ada@example.com", Password: "password123"}))
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	err := Struct(signup{Name: "Ada", Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, []string{"email", "password"}, appErr.FieldNames())
	assert.Equal(t, []string{"The email field must be a valid email address."}, appErr.Fields["email"])
	assert.Equal(t, []string{"The password field must be at least 8 characters."}, appErr.Fields["password"])
}

func TestStructMissingFields(t *testing.T) {
	err := Struct(signup{Name: "Ada"})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, []string{"email", "password"}, appErr.FieldNames())
	assert.Equal(t, "The email field is required.", appErr.Fields["email"][0])
}

func TestPointerFieldsAbsentAreSkipped(t *testing.T) {
	assert.NoError(t, Struct(patch{}))
	empty := []uint{}
	assert.NoError(t, Struct(patch{CategoryIDs: &empty}))
}

func TestPointerFieldsPresentButEmptyAreChecked(t *testing.T) {
	err := Struct(patch{Title: strPtr(""), Status: strPtr("archived")})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, []string{"status", "title"}, appErr.FieldNames())
	assert.Equal(t, "The selected status is invalid.", appErr.Fields["status"][0])
}

func TestSliceIndexesCollapseToFieldName(t *testing.T) {
	ids := []uint{3, 0}
	err := Struct(patch{CategoryIDs: &ids})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, []string{"category_ids"}, appErr.FieldNames())
	assert.Equal(t, "The category ids field must contain valid ids.", appErr.Fields["category_ids"][0])
}

type slugged struct {
	Slug *string `json:"slug" validate:"omitnil,slug"`
}

func TestSlugRule(t *testing.T) {
	assert.NoError(t, Struct(slugged{Slug: strPtr("my-article")}))

	err := Struct(slugged{Slug: strPtr("My Article")})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, []string{"slug"}, appErr.FieldNames())
}

func TestNewValidatorRegistersSlugRule(t *testing.T) {
	var v *validator.Validate
	require.NotPanics(t, func() { v = newValidator() })

	assert.NoError(t, v.Struct(slugged{Slug: strPtr("cafe-uber-strasse")}))
	assert.Error(t, v.Struct(slugged{Slug: strPtr("Café")}))
}
