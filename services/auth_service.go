package services

import (
	"errors"
	"fmt"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

const resetTokenTTL = 15 * time.Minute

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates the account and returns a signed session token.
func (s *AuthService) Register(email, password, fullName string) (*models.User, string, error) {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, "", fmt.Errorf("%w: email already registered", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{Email: email, Password: hashed, FullName: fullName}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("%w: invalid credentials", ErrInvalidInput)
	}
	if err != nil {
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", fmt.Errorf("%w: invalid credentials", ErrInvalidInput)
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) UpdatePhotoURL(userID uint, url string) error {
	return s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("photo_url", url).Error
}

// ForgotPassword issues a short-lived reset code and mails it. An unknown
// email returns nil so the endpoint does not reveal which accounts exist.
func (s *AuthService) ForgotPassword(email string) error {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(resetTokenTTL)
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}

	return utils.SendResetEmail(user.Email, token)
}

func (s *AuthService) ResetPassword(email, token, newPassword string) error {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: invalid reset token", ErrInvalidInput)
	}
	if err != nil {
		return err
	}

	if user.ResetToken == "" || user.ResetToken != token || time.Now().After(user.ResetTokenExp) {
		return fmt.Errorf("%w: invalid reset token", ErrInvalidInput)
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(&user).Error
}
