package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/javiermh/jornada/internal/models"
)

// CreateSession persists a new work session, assigning its id.
func (s *Store) CreateSession(session *models.WorkSession) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if err := s.db.Create(session).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// UpdateSession applies a partial update to a session and returns the
// updated record.
func (s *Store) UpdateSession(id string, fields map[string]any) (*models.WorkSession, error) {
	result := s.db.Model(&models.WorkSession{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("session %s not found", id)
	}
	return s.GetSessionByID(id)
}

// GetSessionByID retrieves a session by id.
func (s *Store) GetSessionByID(id string) (*models.WorkSession, error) {
	var session models.WorkSession
	if err := s.db.First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session %s not found", id)
		}
		return nil, err
	}
	return &session, nil
}

// FindActiveSession returns the most recent active session for the user
// checked in at or after since, or nil when there is none.
func (s *Store) FindActiveSession(userID string, since time.Time) (*models.WorkSession, error) {
	return s.findSession(userID, models.SessionActive, since)
}

// FindCompletedSession returns the most recent completed session for the
// user checked in at or after since, or nil when there is none.
func (s *Store) FindCompletedSession(userID string, since time.Time) (*models.WorkSession, error) {
	return s.findSession(userID, models.SessionCompleted, since)
}

func (s *Store) findSession(userID, status string, since time.Time) (*models.WorkSession, error) {
	var session models.WorkSession
	err := s.db.
		Where("user_id = ? AND status = ? AND check_in >= ?", userID, status, since).
		Order("check_in DESC").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no matching session is not an error
		}
		return nil, err
	}
	return &session, nil
}

// ListCompletedSessions returns up to limit completed sessions for the
// user, most recent first.
func (s *Store) ListCompletedSessions(userID string, limit int) ([]models.WorkSession, error) {
	var sessions []models.WorkSession
	err := s.db.
		Where("user_id = ? AND status IN ?", userID, []string{models.SessionCompleted, models.SessionEdited}).
		Order("check_in DESC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListSessionsInRange returns the user's closed sessions whose check-in
// falls inside [from, to), oldest first. Used by the report command.
func (s *Store) ListSessionsInRange(userID string, from, to time.Time) ([]models.WorkSession, error) {
	var sessions []models.WorkSession
	err := s.db.
		Where("user_id = ? AND check_in >= ? AND check_in < ? AND check_out IS NOT NULL", userID, from, to).
		Order("check_in ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
