package models

import "time"

// BackupInfo describes one vault archive in object storage.
type BackupInfo struct {
	ProfileID string    `json:"profile_id"`
	ObjectKey string    `json:"object_key"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}
