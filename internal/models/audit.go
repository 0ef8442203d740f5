package models

import (
	"time"
)

// Audit action values
const (
	AuditUpdate = "update"
)

// AuditLog records an administrative edit to a work session
type AuditLog struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	EditorID  string `gorm:"not null" json:"editor_id"`
	TargetID  string `gorm:"not null;index" json:"target_id"` // edited session id
	TableName string `gorm:"not null" json:"table_name"`
	Action    string `gorm:"not null" json:"action"`
	OldData   string `json:"old_data"` // JSON snapshot before the edit
	NewData   string `json:"new_data"` // JSON snapshot after the edit
	Reason    string `json:"reason"`
}
