package service

import (
	"database/sql"
	"errors"

	"github.com/PhiHoang41/lumina-backend/internal/models"
	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

// UserService exposes account lookups for authenticated users.
type UserService struct {
	users UserStore
}

// NewUserService constructs a UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// GetByID returns the user for the given id.
func (s *UserService) GetByID(id string) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NotFoundError("User not found")
		}
		return nil, utils.InternalError(err)
	}
	return user, nil
}
