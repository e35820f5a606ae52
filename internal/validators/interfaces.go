// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault requests before they reach the engine.
//
// Lock and unlock requests carry caller supplied profile ids, folder ids and
// filesystem paths. A [Validator] rejects the ones that would name a
// directory outside the vault or an allowed root, so services can trust
// what they receive. Callers may pass field names to Validate to check only
// part of a request, for example only the profile id of a listing call.
package validators

import "context"

// Validator validates one request value. With no fields every known field
// is checked; otherwise only the named ones are, and an unknown name yields
// ErrUnknownField.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
