package service

import (
	"github.com/PhiHoang41/lumina-backend/internal/models"
	"github.com/PhiHoang41/lumina-backend/internal/repository"
)

// Store interfaces consumed by the services. The sqlx repositories satisfy
// them; tests substitute in-memory fakes.

type UserStore interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	Count() (int, error)
	Create(user *models.User) error
}

type CategoryStore interface {
	GetByID(id string) (*models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	ExistsByName(name, excludeID string) (bool, error)
	List(isActive *bool, page, limit int) ([]models.Category, int, error)
	Create(c *models.Category) error
	Update(c *models.Category) error
	Delete(id string) error
}

type ProductStore interface {
	GetByID(id string) (*models.Product, error)
	ExistsByName(name, excludeID string) (bool, error)
	List(f *repository.ProductFilter) ([]models.Product, int, error)
	GetRelated(categoryID, excludeID string, limit int) ([]models.Product, error)
	Create(p *models.Product) error
	Update(p *models.Product) error
	UpdateTotalStock(id string, totalStock int) error
	Delete(id string) error
}

type VariantStore interface {
	GetByID(id string) (*models.ProductVariant, error)
	GetByProductID(productID string) ([]models.ProductVariant, error)
	ExistsSizeColor(productID, size, colorName, excludeID string) (bool, error)
	SumActiveStock(productID string) (int, error)
	Create(v *models.ProductVariant) error
	Update(v *models.ProductVariant) error
	Delete(id string) error
	DeleteByProductID(productID string) error
}

type CouponStore interface {
	GetByID(id string) (*models.Coupon, error)
	ExistsByCode(code, excludeID string) (bool, error)
	List(f *repository.CouponFilter) ([]models.Coupon, int, error)
	Create(c *models.Coupon) error
	Update(c *models.Coupon) error
	UpdateStatus(id string, status models.CouponStatus) error
	Delete(id string) error
}
