package service

import (
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/PhiHoang41/lumina-backend/internal/models"
	"github.com/PhiHoang41/lumina-backend/internal/repository"
	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

// Validation patterns carried over from the catalog's original schema.
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^0\d{9}$`)
)

// AuthService handles registration and login.
type AuthService struct {
	users      UserStore
	jwtSecret  string
	jwtExpiry  time.Duration
	bcryptCost int
}

// NewAuthService constructs an AuthService.
func NewAuthService(users UserStore, jwtSecret string, jwtExpiry time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		jwtSecret:  jwtSecret,
		jwtExpiry:  jwtExpiry,
		bcryptCost: bcryptCost,
	}
}

// RegisterRequest represents the request to create an account.
type RegisterRequest struct {
	FullName string  `json:"fullName" binding:"required"`
	Email    string  `json:"email" binding:"required"`
	Phone    *string `json:"phone"`
	Avatar   *string `json:"avatar"`
	Password string  `json:"password" binding:"required"`
	Address  *string `json:"address"`
}

// Register creates a new account. The very first account in the store becomes
// ADMIN; everyone after that is a regular USER. The count-then-create sequence
// is not transactional; under concurrent first registrations the unique email
// index still prevents duplicates but both could observe count == 0.
func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(email) {
		return nil, utils.ValidationError("Email format is invalid")
	}
	if len(req.Password) < 6 {
		return nil, utils.ValidationError("Password must be at least 6 characters")
	}
	if req.Phone != nil && *req.Phone != "" && !phonePattern.MatchString(*req.Phone) {
		return nil, utils.ValidationError("Phone number must start with 0 and have 10 digits")
	}

	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, utils.ConflictError("Email already registered")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, utils.InternalError(err)
	}

	count, err := s.users.Count()
	if err != nil {
		return nil, utils.InternalError(err)
	}
	role := models.RoleUser
	if count == 0 {
		role = models.RoleAdmin
	}

	hash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, utils.InternalError(err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		Phone:        req.Phone,
		Avatar:       req.Avatar,
		PasswordHash: hash,
		Address:      req.Address,
		Role:         role,
	}

	if err := s.users.Create(user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, utils.ConflictError("Email already registered")
		}
		return nil, utils.InternalError(err)
	}

	log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	return user, nil
}

// Login verifies credentials and issues an access token.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, utils.AuthenticationError("Invalid email or password")
		}
		return "", nil, utils.InternalError(err)
	}

	if !utils.VerifyPassword(user.PasswordHash, password) {
		log.Warn().Str("email", user.Email).Msg("password verification failed")
		return "", nil, utils.AuthenticationError("Invalid email or password")
	}

	token, err := utils.GenerateJWT(s.jwtSecret, user.ID, user.Email, string(user.Role), s.jwtExpiry)
	if err != nil {
		return "", nil, utils.InternalError(err)
	}

	log.Info().Str("user_id", user.ID).Msg("login successful")
	return token, user, nil
}
