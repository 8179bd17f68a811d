package service

import (
	"database/sql"
	"strings"

	"github.com/PhiHoang41/lumina-backend/internal/models"
	"github.com/PhiHoang41/lumina-backend/internal/repository"
)

// In-memory store fakes. They mirror the repository contracts, including the
// sql.ErrNoRows convention for missing rows.

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (s *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *fakeUserStore) GetByID(id string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) Count() (int, error) {
	return len(s.users), nil
}

func (s *fakeUserStore) Create(u *models.User) error {
	copied := *u
	s.users[u.ID] = &copied
	return nil
}

type fakeCategoryStore struct {
	categories map[string]*models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: map[string]*models.Category{}}
}

func (s *fakeCategoryStore) GetByID(id string) (*models.Category, error) {
	c, ok := s.categories[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *c
	return &copied, nil
}

func (s *fakeCategoryStore) GetBySlug(categorySlug string) (*models.Category, error) {
	for _, c := range s.categories {
		if c.Slug == categorySlug {
			copied := *c
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *fakeCategoryStore) ExistsByName(name, excludeID string) (bool, error) {
	for _, c := range s.categories {
		if c.Name == name && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCategoryStore) List(isActive *bool, page, limit int) ([]models.Category, int, error) {
	out := []models.Category{}
	for _, c := range s.categories {
		if isActive != nil && c.IsActive != *isActive {
			continue
		}
		out = append(out, *c)
	}
	return out, len(out), nil
}

func (s *fakeCategoryStore) Create(c *models.Category) error {
	copied := *c
	s.categories[c.ID] = &copied
	return nil
}

func (s *fakeCategoryStore) Update(c *models.Category) error {
	if _, ok := s.categories[c.ID]; !ok {
		return sql.ErrNoRows
	}
	copied := *c
	s.categories[c.ID] = &copied
	return nil
}

func (s *fakeCategoryStore) Delete(id string) error {
	delete(s.categories, id)
	return nil
}

type fakeProductStore struct {
	products map[string]*models.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[string]*models.Product{}}
}

func (s *fakeProductStore) GetByID(id string) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *p
	return &copied, nil
}

func (s *fakeProductStore) ExistsByName(name, excludeID string) (bool, error) {
	for _, p := range s.products {
		if p.Name == name && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeProductStore) List(f *repository.ProductFilter) ([]models.Product, int, error) {
	out := []models.Product{}
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out, len(out), nil
}

func (s *fakeProductStore) GetRelated(categoryID, excludeID string, limit int) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range s.products {
		if p.CategoryID != categoryID || p.ID == excludeID || !p.IsActive {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *fakeProductStore) Create(p *models.Product) error {
	copied := *p
	s.products[p.ID] = &copied
	return nil
}

func (s *fakeProductStore) Update(p *models.Product) error {
	existing, ok := s.products[p.ID]
	if !ok {
		return sql.ErrNoRows
	}
	copied := *p
	copied.TotalStock = existing.TotalStock
	s.products[p.ID] = &copied
	return nil
}

func (s *fakeProductStore) UpdateTotalStock(id string, totalStock int) error {
	p, ok := s.products[id]
	if !ok {
		return sql.ErrNoRows
	}
	p.TotalStock = totalStock
	return nil
}

func (s *fakeProductStore) Delete(id string) error {
	delete(s.products, id)
	return nil
}

type fakeVariantStore struct {
	variants map[string]*models.ProductVariant
}

func newFakeVariantStore() *fakeVariantStore {
	return &fakeVariantStore{variants: map[string]*models.ProductVariant{}}
}

func (s *fakeVariantStore) GetByID(id string) (*models.ProductVariant, error) {
	v, ok := s.variants[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *v
	return &copied, nil
}

func (s *fakeVariantStore) GetByProductID(productID string) ([]models.ProductVariant, error) {
	out := []models.ProductVariant{}
	for _, v := range s.variants {
		if v.ProductID == productID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (s *fakeVariantStore) ExistsSizeColor(productID, size, colorName, excludeID string) (bool, error) {
	for _, v := range s.variants {
		if v.ProductID == productID && v.Size == size &&
			strings.EqualFold(v.Color.Name, colorName) && v.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeVariantStore) SumActiveStock(productID string) (int, error) {
	sum := 0
	for _, v := range s.variants {
		if v.ProductID == productID && v.IsActive {
			sum += v.Stock
		}
	}
	return sum, nil
}

func (s *fakeVariantStore) Create(v *models.ProductVariant) error {
	copied := *v
	s.variants[v.ID] = &copied
	return nil
}

func (s *fakeVariantStore) Update(v *models.ProductVariant) error {
	if _, ok := s.variants[v.ID]; !ok {
		return sql.ErrNoRows
	}
	copied := *v
	s.variants[v.ID] = &copied
	return nil
}

func (s *fakeVariantStore) Delete(id string) error {
	delete(s.variants, id)
	return nil
}

func (s *fakeVariantStore) DeleteByProductID(productID string) error {
	for id, v := range s.variants {
		if v.ProductID == productID {
			delete(s.variants, id)
		}
	}
	return nil
}

type fakeCouponStore struct {
	coupons map[string]*models.Coupon
}

func newFakeCouponStore() *fakeCouponStore {
	return &fakeCouponStore{coupons: map[string]*models.Coupon{}}
}

func (s *fakeCouponStore) GetByID(id string) (*models.Coupon, error) {
	c, ok := s.coupons[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *c
	return &copied, nil
}

func (s *fakeCouponStore) ExistsByCode(code, excludeID string) (bool, error) {
	for _, c := range s.coupons {
		if c.Code == code && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCouponStore) List(f *repository.CouponFilter) ([]models.Coupon, int, error) {
	out := []models.Coupon{}
	for _, c := range s.coupons {
		if f.Status != "" && string(c.Status) != f.Status {
			continue
		}
		if f.Type != "" && string(c.Type) != f.Type {
			continue
		}
		out = append(out, *c)
	}
	return out, len(out), nil
}

func (s *fakeCouponStore) Create(c *models.Coupon) error {
	copied := *c
	s.coupons[c.ID] = &copied
	return nil
}

func (s *fakeCouponStore) Update(c *models.Coupon) error {
	if _, ok := s.coupons[c.ID]; !ok {
		return sql.ErrNoRows
	}
	copied := *c
	s.coupons[c.ID] = &copied
	return nil
}

func (s *fakeCouponStore) UpdateStatus(id string, status models.CouponStatus) error {
	c, ok := s.coupons[id]
	if !ok {
		return sql.ErrNoRows
	}
	c.Status = status
	return nil
}

func (s *fakeCouponStore) Delete(id string) error {
	delete(s.coupons, id)
	return nil
}
