// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the AES-256 key length.
	KeySize = 32
	// SaltSize is the length of every salt the engine generates.
	SaltSize = 32
	// IVSize is the AES block size.
	IVSize = 16
	// ChunkSize is the streaming granularity of EncryptStream/DecryptStream.
	ChunkSize = 1 << 20

	// DefaultIterations is the PBKDF2 work factor used when none is configured.
	DefaultIterations = 100_000
	// MinIterations is the lowest accepted PBKDF2 work factor.
	MinIterations = 1000
)

// KDF algorithm names recorded in KeyVerifier.Algorithm.
const (
	KDFPBKDF2SHA256 = "pbkdf2-sha256"
	KDFArgon2ID     = "argon2id"
)

// engine is the private implementation of [Engine].
type engine struct {
	pool   *BufferPool
	random io.Reader

	// Argon2id cost parameters, used only for the vault verifier when it is
	// configured with argon2id.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// Option tunes a new engine.
type Option func(*engine)

// WithBufferPool makes the engine use pool for chunk buffers.
func WithBufferPool(pool *BufferPool) Option {
	return func(e *engine) {
		if pool != nil {
			e.pool = pool
		}
	}
}

// WithRandom replaces the CSPRNG. Only tests should use it.
func WithRandom(r io.Reader) Option {
	return func(e *engine) {
		if r != nil {
			e.random = r
		}
	}
}

// WithArgon2Params overrides the Argon2id cost parameters.
func WithArgon2Params(time, memoryKiB uint32, threads uint8) Option {
	return func(e *engine) {
		e.argonTime = time
		e.argonMemory = memoryKiB
		e.argonThreads = threads
	}
}

// NewEngine constructs an [Engine]. Argon2id defaults follow the OWASP
// recommendation of 1 pass over 64 MiB with 4 lanes.
func NewEngine(opts ...Option) Engine {
	e := &engine{
		random:       rand.Reader,
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.pool == nil {
		e.pool = NewBufferPool(ChunkSize)
	}
	return e
}

func (e *engine) Pool() *BufferPool {
	return e.pool
}

// DeriveKey implements [Engine].
func (e *engine) DeriveKey(password, salt []byte, iterations, keyLength int) ([]byte, error) {
	if iterations < MinIterations {
		return nil, opError("derive", fmt.Errorf("%w: iterations %d below %d", ErrInvalidParameters, iterations, MinIterations))
	}
	if keyLength <= 0 {
		return nil, opError("derive", fmt.Errorf("%w: key length %d", ErrInvalidParameters, keyLength))
	}
	if len(salt) == 0 {
		return nil, opError("derive", fmt.Errorf("%w: empty salt", ErrInvalidParameters))
	}
	return pbkdf2.Key(password, salt, iterations, keyLength, sha256.New), nil
}

// DeriveKeyWith implements [Engine].
func (e *engine) DeriveKeyWith(algorithm string, password, salt []byte, iterations, keyLength int) ([]byte, error) {
	switch algorithm {
	case KDFPBKDF2SHA256, "":
		return e.DeriveKey(password, salt, iterations, keyLength)
	case KDFArgon2ID:
		if keyLength <= 0 || len(salt) == 0 {
			return nil, opError("derive", ErrInvalidParameters)
		}
		return argon2.IDKey(password, salt, e.argonTime, e.argonMemory, e.argonThreads, uint32(keyLength)), nil
	default:
		return nil, opError("derive", fmt.Errorf("%w: kdf %q", ErrUnsupportedAlgorithm, algorithm))
	}
}

// DeriveSubkey implements [Engine].
func (e *engine) DeriveSubkey(key, salt []byte, info string) ([]byte, error) {
	if len(key) != KeySize {
		return nil, opError("derive", fmt.Errorf("%w: key length %d", ErrInvalidParameters, len(key)))
	}
	sub := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, salt, []byte(info)), sub); err != nil {
		return nil, opError("derive", err)
	}
	return sub, nil
}

// GenerateRandomBytes implements [Engine].
func (e *engine) GenerateRandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, opError("random", fmt.Errorf("%w: length %d", ErrInvalidParameters, n))
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(e.random, b); err != nil {
		return nil, opError("random", fmt.Errorf("%w: %v", ErrRandomSource, err))
	}
	return b, nil
}

func (e *engine) GenerateSalt() ([]byte, error) {
	return e.GenerateRandomBytes(SaltSize)
}

func (e *engine) GenerateIV() ([]byte, error) {
	return e.GenerateRandomBytes(IVSize)
}

// VerificationToken implements [Engine]. The purpose string
// domain-separates the token from the key it is computed from.
func (e *engine) VerificationToken(key []byte, purpose string) []byte {
	h := sha256.New()
	h.Write(key)
	h.Write([]byte(purpose))
	return h.Sum(nil)
}

// VerifyToken implements [Engine].
func (e *engine) VerifyToken(key []byte, purpose string, expected []byte) bool {
	got := e.VerificationToken(key, purpose)
	defer SecureWipe(got)
	return subtle.ConstantTimeCompare(got, expected) == 1
}
