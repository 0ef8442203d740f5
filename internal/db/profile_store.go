package db

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/javiermh/jornada/internal/models"
)

// ActiveProfile returns the signed-in profile, or nil when nobody is
// logged in.
func (s *Store) ActiveProfile() (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Where("is_active = ?", true).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// LoginProfile finds or creates a profile by name and marks it as the
// single active one.
func (s *Store) LoginProfile(name, timezone string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("full_name = ?", name).First(&profile).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			profile = models.Profile{
				ID:       uuid.New().String(),
				FullName: name,
				Role:     "employee",
				Timezone: timezone,
			}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&models.Profile{}).Where("is_active = ?", true).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&profile).Update("is_active", true).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	profile.IsActive = true
	return &profile, nil
}

// LogoutProfiles clears the active flag on every profile.
func (s *Store) LogoutProfiles() error {
	return s.db.Model(&models.Profile{}).Where("is_active = ?", true).Update("is_active", false).Error
}
