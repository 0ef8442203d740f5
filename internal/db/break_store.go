package db

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/javiermh/jornada/internal/models"
)

// CreateBreak persists a new break, assigning its id.
func (s *Store) CreateBreak(brk *models.Break) error {
	if brk.ID == "" {
		brk.ID = uuid.New().String()
	}
	if err := s.db.Create(brk).Error; err != nil {
		return fmt.Errorf("failed to create break: %w", err)
	}
	return nil
}

// UpdateBreak applies a partial update to a break and returns the
// updated record.
func (s *Store) UpdateBreak(id string, fields map[string]any) (*models.Break, error) {
	result := s.db.Model(&models.Break{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update break: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("break %s not found", id)
	}
	var brk models.Break
	if err := s.db.First(&brk, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &brk, nil
}

// ListBreaks returns the breaks of a session in chronological start order.
func (s *Store) ListBreaks(sessionID string) ([]models.Break, error) {
	var breaks []models.Break
	err := s.db.
		Where("session_id = ?", sessionID).
		Order("started_at ASC").
		Find(&breaks).Error
	if err != nil {
		return nil, err
	}
	return breaks, nil
}
