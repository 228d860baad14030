package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kariqs/storefront-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Default cost for bcrypt password hashing
const bcryptCost = 10

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Register(ctx context.Context, data models.RegisterData) (models.User, error) {
	db := s.db.WithContext(ctx)
	user := models.User{
		Username:  data.Username,
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		IsActive:  true,
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", data.Username).Count(&count).Error; err != nil {
		return user, fmt.Errorf("check user: %w", err)
	}
	if count > 0 {
		return user, ErrUserExists
	}

	hashedPassword, err := hashPassword(data.Password)
	if err != nil {
		return user, fmt.Errorf("hash password: %w", err)
	}
	user.Password = hashedPassword

	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user, ErrUserExists
		}
		return user, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate returns the active user matching the credentials. Unknown
// users, wrong passwords and inactive accounts all yield ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, ErrInvalidCredentials
	}
	if err != nil {
		return user, fmt.Errorf("find user: %w", err)
	}
	if comparePasswords(user.Password, password) != nil || !user.IsActive {
		return user, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, userID uint) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, ErrUserNotFound
	}
	if err != nil {
		return user, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
