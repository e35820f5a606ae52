// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RecoveryEventKind is the kind of event delivered to the recovery
// collaborator.
type RecoveryEventKind string

const (
	EventIntegrityError     RecoveryEventKind = "IntegrityError"
	EventCorruptionDetected RecoveryEventKind = "CorruptionDetected"
)

// RecoveryEvent carries enough context to drive a user-facing recovery flow.
type RecoveryEvent struct {
	ID        int64              `json:"id,omitempty"`
	Kind      RecoveryEventKind  `json:"kind"`
	ProfileID string             `json:"profile_id"`
	FolderID  string             `json:"folder_id,omitempty"`
	Issue     IntegrityIssueKind `json:"issue,omitempty"`
	Detail    string             `json:"detail"`
	CreatedAt time.Time          `json:"created_at"`
	Resolved  bool               `json:"resolved"`
}

// UnlockTrigger names the mechanism that requested an unlock. The engine
// does not branch on it; it only travels into logs and the recovery journal.
type UnlockTrigger string

const (
	TriggerNotification UnlockTrigger = "notification"
	TriggerContextMenu  UnlockTrigger = "context_menu"
	TriggerCommandLine  UnlockTrigger = "command_line"
	TriggerGUI          UnlockTrigger = "gui"
)

// Valid reports whether t is one of the known triggers.
func (t UnlockTrigger) Valid() bool {
	switch t {
	case TriggerNotification, TriggerContextMenu, TriggerCommandLine, TriggerGUI:
		return true
	}
	return false
}
