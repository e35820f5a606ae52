package models

// LockRequest asks a profile vault to lock the folder at FolderPath.
type LockRequest struct {
	ProfileID  string `json:"profile_id"`
	FolderPath string `json:"folder_path"`
}

// UnlockRequest asks a profile vault to unlock the folder with FolderID.
type UnlockRequest struct {
	ProfileID string        `json:"profile_id"`
	FolderID  string        `json:"folder_id"`
	Mode      UnlockMode    `json:"mode"`
	Trigger   UnlockTrigger `json:"trigger,omitempty"`
}
