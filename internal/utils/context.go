// Package utils provides general-purpose helper utilities
// used across different parts of the engine.
// Includes tools for working with context, type-safe keys and
// identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ProfileIDCtxKey is the key used to store the profile identifier in the
// context. Used together with GetProfileIDFromContext for type-safe
// retrieval of the profile ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ProfileIDCtxKey, "alice")
var ProfileIDCtxKey = contextKey("profileID")

// OperationIDCtxKey is the key used to store the identifier of the vault
// operation (lock, unlock, relock) that is currently running.
var OperationIDCtxKey = contextKey("operationID")

// GetProfileIDFromContext retrieves the profile identifier from the context.
//
// Returns the profile ID and an ok flag:
//   - ok == true: value is found, is a string and is not empty
//   - ok == false: value is missing or has an unexpected type
func GetProfileIDFromContext(ctx context.Context) (string, bool) {
	profileID, ok := ctx.Value(ProfileIDCtxKey).(string)
	return profileID, ok && profileID != ""
}

// GetOperationIDFromContext retrieves the operation identifier from the
// context.
func GetOperationIDFromContext(ctx context.Context) (string, bool) {
	opID, ok := ctx.Value(OperationIDCtxKey).(string)
	return opID, ok && opID != ""
}

// WithProfileID returns a copy of ctx carrying profileID.
func WithProfileID(ctx context.Context, profileID string) context.Context {
	return context.WithValue(ctx, ProfileIDCtxKey, profileID)
}

// WithOperationID returns a copy of ctx carrying opID.
func WithOperationID(ctx context.Context, opID string) context.Context {
	return context.WithValue(ctx, OperationIDCtxKey, opID)
}
