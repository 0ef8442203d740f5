package db

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/javiermh/jornada/internal/models"
)

// CreateAuditLog records an administrative edit.
func (s *Store) CreateAuditLog(entry *models.AuditLog) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if err := s.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}
	return nil
}

// ListAuditLogs returns the audit entries for a session, oldest first.
func (s *Store) ListAuditLogs(targetID string) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := s.db.
		Where("target_id = ?", targetID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
