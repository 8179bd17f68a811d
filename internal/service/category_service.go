package service

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/PhiHoang41/lumina-backend/internal/models"
	"github.com/PhiHoang41/lumina-backend/internal/repository"
	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

// CategoryService handles category CRUD operations.
type CategoryService struct {
	categories CategoryStore
}

// NewCategoryService constructs a CategoryService.
func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

// CreateCategoryRequest represents the request to create a category.
type CreateCategoryRequest struct {
	Name     string  `json:"name" binding:"required"`
	Image    *string `json:"image"`
	IsActive *bool   `json:"isActive"`
}

// UpdateCategoryRequest represents a partial category update. Absent fields
// must not overwrite existing values.
type UpdateCategoryRequest struct {
	Name     string  `json:"name"`
	Image    *string `json:"image"`
	IsActive *bool   `json:"isActive"`
}

// List returns categories with an optional isActive filter.
func (s *CategoryService) List(isActive *bool, page, limit int) ([]models.Category, int, error) {
	categories, total, err := s.categories.List(isActive, page, limit)
	if err != nil {
		return nil, 0, utils.InternalError(err)
	}
	return categories, total, nil
}

// GetByID returns a category by id.
func (s *CategoryService) GetByID(id string) (*models.Category, error) {
	c, err := s.categories.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NotFoundError("Category not found")
		}
		return nil, utils.InternalError(err)
	}
	return c, nil
}

// GetBySlug returns a category by slug.
func (s *CategoryService) GetBySlug(categorySlug string) (*models.Category, error) {
	c, err := s.categories.GetBySlug(categorySlug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NotFoundError("Category not found")
		}
		return nil, utils.InternalError(err)
	}
	return c, nil
}

// Create validates name uniqueness, derives the slug and persists the category.
func (s *CategoryService) Create(req *CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, utils.ValidationError("Category name is required")
	}

	exists, err := s.categories.ExistsByName(name, "")
	if err != nil {
		return nil, utils.InternalError(err)
	}
	if exists {
		return nil, utils.ConflictError("Category name already exists")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	c := &models.Category{
		ID:       uuid.New().String(),
		Name:     name,
		Slug:     slug.Make(name),
		Image:    req.Image,
		IsActive: isActive,
	}

	if err := s.categories.Create(c); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, utils.ConflictError("Category name already exists")
		}
		return nil, utils.InternalError(err)
	}
	return c, nil
}

// Update applies only the supplied fields; a rename re-derives the slug and
// re-checks uniqueness excluding the category itself.
func (s *CategoryService) Update(id string, req *UpdateCategoryRequest) (*models.Category, error) {
	c, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" && req.Name != c.Name {
		exists, err := s.categories.ExistsByName(req.Name, id)
		if err != nil {
			return nil, utils.InternalError(err)
		}
		if exists {
			return nil, utils.ConflictError("Category name already exists")
		}
		c.Name = strings.TrimSpace(req.Name)
		c.Slug = slug.Make(c.Name)
	}
	if req.Image != nil {
		c.Image = req.Image
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.categories.Update(c); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, utils.ConflictError("Category name already exists")
		}
		return nil, utils.InternalError(err)
	}
	return c, nil
}

// Delete removes a category after confirming it exists.
func (s *CategoryService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.categories.Delete(id); err != nil {
		return utils.InternalError(err)
	}
	return nil
}
