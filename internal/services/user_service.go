package services

import (
	"errors"

	"github.com/ovenline/pizza-order-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken is returned on signup when the email is already registered
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for every failed login, whether the
	// email is unknown or the password is wrong. Callers must not distinguish
	// the two cases, so login failures cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserService interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	// Authenticate verifies an email/password pair and returns the matching user
	Authenticate(email, password string) (*models.User, error)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) CreateUser(user *models.User) error {
	var existing models.User
	if err := s.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrEmailTaken
	}

	return s.db.Create(user).Error
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.GetUserByEmail(email)
	if err != nil || !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
