package service

import (
	"BookShelf/internal/repo"
	"BookShelf/model"
	"BookShelf/utils"
	"errors"

	"gorm.io/gorm"
)

// UserService is the credential store: user identities and password
// hashes. Plaintext passwords never leave this package's call stack.
type UserService struct {
	db *gorm.DB
}

// NewUserService builds a UserService.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register hashes the password and creates a user. Returns
// ErrDuplicateUsername when the name is already taken, including when
// a concurrent registration wins the unique-index race.
func (s *UserService) Register(username, password string) (uint64, error) {
	var existing model.User
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return 0, ErrDuplicateUsername
	}

	hash, err := utils.GetPwd(password)
	if err != nil {
		return 0, err
	}
	user := model.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if repo.IsDuplicateKeyError(err) {
			return 0, ErrDuplicateUsername
		}
		return 0, err
	}
	return user.ID, nil
}

// Authenticate verifies credentials. Unknown user and wrong password
// both return ErrInvalidCredentials so usernames cannot be enumerated.
func (s *UserService) Authenticate(username, password string) (*model.User, error) {
	var user model.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPwd(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// FindByUsername returns the user with the given name.
func (s *UserService) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListOtherUsernames returns every username except the caller's own.
func (s *UserService) ListOtherUsernames(excludeID uint64) ([]string, error) {
	var names []string
	err := s.db.Model(&model.User{}).
		Where("id <> ?", excludeID).
		Order("id").
		Pluck("username", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
