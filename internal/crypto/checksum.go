// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"hash"
	"io"

	mh "github.com/multiformats/go-multihash"
)

// Checksum is a hex-encoded sha2-256 multihash. The multihash prefix makes
// the stored value self-describing should the digest ever change.
type Checksum string

// Hasher accumulates a Checksum over everything written to it.
type Hasher struct {
	h hash.Hash
	n int64
}

// NewHasher returns an empty sha2-256 Hasher.
func NewHasher() *Hasher {
	return &Hasher{h: sha256.New()}
}

func (h *Hasher) Write(p []byte) (int, error) {
	n, err := h.h.Write(p)
	h.n += int64(n)
	return n, err
}

// Size is the number of bytes hashed so far.
func (h *Hasher) Size() int64 {
	return h.n
}

// Sum returns the checksum of everything written so far.
func (h *Hasher) Sum() (Checksum, error) {
	encoded, err := mh.Encode(h.h.Sum(nil), mh.SHA2_256)
	if err != nil {
		return "", fmt.Errorf("encode multihash: %w", err)
	}
	m, err := mh.Cast(encoded)
	if err != nil {
		return "", fmt.Errorf("cast multihash: %w", err)
	}
	return Checksum(m.HexString()), nil
}

// ChecksumBytes returns the checksum of data.
func ChecksumBytes(data []byte) (Checksum, error) {
	h := NewHasher()
	_, _ = h.Write(data)
	return h.Sum()
}

// ChecksumReader returns the checksum of everything read from r.
func ChecksumReader(r io.Reader) (Checksum, int64, error) {
	h := NewHasher()
	n, err := io.Copy(h, r)
	if err != nil {
		return "", n, err
	}
	sum, err := h.Sum()
	return sum, n, err
}

// Validate checks that c parses as a sha2-256 multihash.
func (c Checksum) Validate() error {
	m, err := mh.FromHexString(string(c))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidChecksum, err)
	}
	decoded, err := mh.Decode(m)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidChecksum, err)
	}
	if decoded.Code != mh.SHA2_256 {
		return fmt.Errorf("%w: unexpected hash %s", ErrInvalidChecksum, decoded.Name)
	}
	return nil
}

// Equal compares two checksums in constant time.
func (c Checksum) Equal(other Checksum) bool {
	return subtle.ConstantTimeCompare([]byte(c), []byte(other)) == 1
}

// Verify returns ErrChecksumMismatch unless got equals c.
func (c Checksum) Verify(got Checksum) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.Equal(got) {
		return ErrChecksumMismatch
	}
	return nil
}

func (c Checksum) String() string {
	return string(c)
}
