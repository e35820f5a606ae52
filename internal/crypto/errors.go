// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameters is returned when a key, IV, salt or KDF parameter
	// has the wrong length or is out of range.
	ErrInvalidParameters = errors.New("invalid crypto parameters")

	// ErrDecryptionFailed is returned for corrupted, truncated or
	// wrongly-keyed ciphertext. No plaintext is returned alongside it.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrRandomSource is returned when the OS CSPRNG cannot be read.
	ErrRandomSource = errors.New("random source unavailable")

	// ErrUnsupportedAlgorithm is returned for an unknown KDF or compression
	// algorithm name.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrChecksumMismatch is returned when a computed checksum differs from
	// the recorded one.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrInvalidChecksum is returned when a recorded checksum cannot be parsed.
	ErrInvalidChecksum = errors.New("invalid checksum")

	// ErrSelfTestFailed is returned by SelfTest when any primitive misbehaves.
	ErrSelfTestFailed = errors.New("crypto self-test failed")
)

// CryptoError wraps a failure of a crypto primitive with the operation that
// produced it. Every error returned by the engine is either a CryptoError or
// one of the sentinels above.
type CryptoError struct {
	Op  string // "derive", "encrypt", "decrypt", "random", "seal", "open"
	Err error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("crypto %s: %v", e.Op, e.Err)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

func opError(op string, err error) error {
	if err == nil {
		return nil
	}
	var ce *CryptoError
	if errors.As(err, &ce) {
		return err
	}
	return &CryptoError{Op: op, Err: err}
}
