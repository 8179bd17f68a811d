package service

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

func TestCreateCategoryDerivesSlug(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())

	c, err := svc.Create(&CreateCategoryRequest{Name: "Summer Dresses"})
	require.NoError(t, err)
	assert.Equal(t, "summer-dresses", c.Slug)
	assert.True(t, c.IsActive)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())

	_, err := svc.Create(&CreateCategoryRequest{Name: "Shoes"})
	require.NoError(t, err)

	_, err = svc.Create(&CreateCategoryRequest{Name: "Shoes"})
	require.Error(t, err)

	appErr, ok := utils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestUpdateCategoryRenameDerivesSlug(t *testing.T) {
	store := newFakeCategoryStore()
	svc := NewCategoryService(store)

	c, err := svc.Create(&CreateCategoryRequest{Name: "Old"})
	require.NoError(t, err)

	updated, err := svc.Update(c.ID, &UpdateCategoryRequest{Name: "Brand New"})
	require.NoError(t, err)
	assert.Equal(t, "Brand New", updated.Name)
	assert.Equal(t, "brand-new", updated.Slug)
}

func TestUpdateCategoryPartialKeepsFields(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())

	image := "https://cdn.example.com/shoes.png"
	c, err := svc.Create(&CreateCategoryRequest{Name: "Shoes", Image: &image})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(c.ID, &UpdateCategoryRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Shoes", updated.Name)
	require.NotNil(t, updated.Image)
	assert.Equal(t, image, *updated.Image)
	assert.False(t, updated.IsActive)
}

func TestGetCategoryBySlug(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())

	created, err := svc.Create(&CreateCategoryRequest{Name: "Winter Coats"})
	require.NoError(t, err)

	found, err := svc.GetBySlug("winter-coats")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestGetCategoryNotFound(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())

	_, err := svc.GetByID(uuid.New().String())
	require.Error(t, err)

	appErr, ok := utils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}
