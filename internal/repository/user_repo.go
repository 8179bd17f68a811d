package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/PhiHoang41/lumina-backend/internal/models"
)

// UserRepository handles data access for users.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail returns a single user by email.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Get(&user, `SELECT * FROM users WHERE email = $1 LIMIT 1`, email)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns a single user by id.
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Get(&user, `SELECT * FROM users WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Count returns the total number of users.
func (r *UserRepository) Count() (int, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(1) FROM users`); err != nil {
		return 0, err
	}
	return n, nil
}

// Create inserts a new user.
func (r *UserRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users (id, full_name, email, phone, avatar, password_hash, address, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	return r.db.QueryRowx(q,
		user.ID,
		user.FullName,
		user.Email,
		user.Phone,
		user.Avatar,
		user.PasswordHash,
		user.Address,
		user.Role,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}
