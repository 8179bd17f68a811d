package service

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhiHoang41/lumina-backend/internal/models"
	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

type productFixture struct {
	products   *fakeProductStore
	variants   *fakeVariantStore
	categories *fakeCategoryStore
	svc        *ProductService
	categoryID string
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()
	f := &productFixture{
		products:   newFakeProductStore(),
		variants:   newFakeVariantStore(),
		categories: newFakeCategoryStore(),
	}
	f.svc = NewProductService(f.products, f.variants, f.categories, NewStockService(f.products, f.variants))

	f.categoryID = uuid.New().String()
	require.NoError(t, f.categories.Create(&models.Category{
		ID:       f.categoryID,
		Name:     "Dresses",
		Slug:     "dresses",
		IsActive: true,
	}))
	return f
}

func variantInput(size, color string, price int64, stock int) VariantInput {
	return VariantInput{
		Size:  size,
		Color: ColorInput{Name: color},
		Price: decimal.NewFromInt(price),
		Stock: stock,
	}
}

func TestCreateProductWithVariants(t *testing.T) {
	f := newProductFixture(t)

	p, err := f.svc.Create(&CreateProductRequest{
		Name:       "Linen Shirt",
		CategoryID: f.categoryID,
		Variants: []VariantInput{
			variantInput("M", "White", 49, 5),
			variantInput("L", "White", 49, 3),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "linen-shirt", p.Slug)
	assert.Equal(t, 8, p.TotalStock)
	assert.Len(t, p.Variants, 2)
	require.NotNil(t, p.Category)
	assert.Equal(t, "Dresses", p.Category.Name)
	assert.True(t, p.IsActive)
}

func TestCreateProductWithoutVariantsStartsAtZeroStock(t *testing.T) {
	f := newProductFixture(t)

	p, err := f.svc.Create(&CreateProductRequest{Name: "Bare", CategoryID: f.categoryID})
	require.NoError(t, err)
	assert.Equal(t, 0, p.TotalStock)
	assert.Empty(t, p.Variants)
}

func TestCreateProductDuplicateName(t *testing.T) {
	f := newProductFixture(t)

	_, err := f.svc.Create(&CreateProductRequest{Name: "Dup", CategoryID: f.categoryID})
	require.NoError(t, err)

	_, err = f.svc.Create(&CreateProductRequest{Name: "Dup", CategoryID: f.categoryID})
	require.Error(t, err)

	appErr, ok := utils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	f := newProductFixture(t)

	_, err := f.svc.Create(&CreateProductRequest{Name: "Orphan", CategoryID: uuid.New().String()})
	require.Error(t, err)

	appErr, ok := utils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestCreateProductDuplicateVariantInPayload(t *testing.T) {
	f := newProductFixture(t)

	_, err := f.svc.Create(&CreateProductRequest{
		Name:       "Twice",
		CategoryID: f.categoryID,
		Variants: []VariantInput{
			variantInput("M", "Red", 10, 1),
			variantInput("M", "red", 10, 1),
		},
	})
	require.Error(t, err)

	appErr, ok := utils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestGetProductIncludesRelated(t *testing.T) {
	f := newProductFixture(t)

	first, err := f.svc.Create(&CreateProductRequest{Name: "First", CategoryID: f.categoryID})
	require.NoError(t, err)
	_, err = f.svc.Create(&CreateProductRequest{Name: "Second", CategoryID: f.categoryID})
	require.NoError(t, err)

	detail, err := f.svc.Get(first.ID)
	require.NoError(t, err)
	require.Len(t, detail.Related, 1)
	assert.Equal(t, "Second", detail.Related[0].Name)
}

func TestGetProductNotFound(t *testing.T) {
	f := newProductFixture(t)

	_, err := f.svc.Get(uuid.New().String())
	require.Error(t, err)

	appErr, ok := utils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestUpdateProductRenameDerivesSlug(t *testing.T) {
	f := newProductFixture(t)

	p, err := f.svc.Create(&CreateProductRequest{Name: "Old Name", CategoryID: f.categoryID})
	require.NoError(t, err)

	updated, err := f.svc.Update(p.ID, &UpdateProductRequest{Name: "New Summer Name"})
	require.NoError(t, err)
	assert.Equal(t, "New Summer Name", updated.Name)
	assert.Equal(t, "new-summer-name", updated.Slug)
}

func TestUpdateProductPartialKeepsFields(t *testing.T) {
	f := newProductFixture(t)

	p, err := f.svc.Create(&CreateProductRequest{
		Name:        "Keeper",
		Description: "original description",
		CategoryID:  f.categoryID,
	})
	require.NoError(t, err)

	inactive := false
	updated, err := f.svc.Update(p.ID, &UpdateProductRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Keeper", updated.Name)
	assert.Equal(t, "original description", updated.Description)
	assert.False(t, updated.IsActive)
}

func TestUpdateProductReplacesVariantSet(t *testing.T) {
	f := newProductFixture(t)

	p, err := f.svc.Create(&CreateProductRequest{
		Name:       "Replace Me",
		CategoryID: f.categoryID,
		Variants: []VariantInput{
			variantInput("S", "Blue", 20, 4),
			variantInput("M", "Blue", 20, 6),
		},
	})
	require.NoError(t, err)
	require.Equal(t, 10, p.TotalStock)

	newSet := []VariantInput{variantInput("XL", "Black", 25, 2)}
	updated, err := f.svc.Update(p.ID, &UpdateProductRequest{Variants: &newSet})
	require.NoError(t, err)

	require.Len(t, updated.Variants, 1)
	assert.Equal(t, "XL", updated.Variants[0].Size)
	assert.Equal(t, 2, updated.TotalStock)
}

func TestUpdateProductEmptyVariantSetZeroesStock(t *testing.T) {
	f := newProductFixture(t)

	p, err := f.svc.Create(&CreateProductRequest{
		Name:       "Emptied",
		CategoryID: f.categoryID,
		Variants:   []VariantInput{variantInput("S", "Blue", 20, 4)},
	})
	require.NoError(t, err)

	empty := []VariantInput{}
	updated, err := f.svc.Update(p.ID, &UpdateProductRequest{Variants: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.Variants)
	assert.Equal(t, 0, updated.TotalStock)
}

func TestDeleteProductRemovesVariants(t *testing.T) {
	f := newProductFixture(t)

	p, err := f.svc.Create(&CreateProductRequest{
		Name:       "Doomed",
		CategoryID: f.categoryID,
		Variants:   []VariantInput{variantInput("S", "Blue", 20, 4)},
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(p.ID))

	remaining, err := f.variants.GetByProductID(p.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestToggleActiveFlips(t *testing.T) {
	f := newProductFixture(t)

	p, err := f.svc.Create(&CreateProductRequest{Name: "Flip", CategoryID: f.categoryID})
	require.NoError(t, err)
	require.True(t, p.IsActive)

	toggled, err := f.svc.ToggleActive(p.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = f.svc.ToggleActive(p.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)
}
