// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BlobAlgorithm is the fixed blob algorithm of schema version 1.0.
const BlobAlgorithm = "AES-256-CBC-PKCS7/HKDF-SHA256"

const (
	// BlobSaltSize is the length of the per-blob key salt.
	BlobSaltSize = 32
	// BlobIVSize is the AES block size.
	BlobIVSize = 16
	// BlobHeaderSize is the length of salt || iv preceding the ciphertext.
	BlobHeaderSize = BlobSaltSize + BlobIVSize
)

// EncryptedBlob is the in-memory form of a stored blob:
// salt(32) || iv(16) || ciphertext.
type EncryptedBlob struct {
	Ciphertext []byte
	IV         []byte
	Salt       []byte
	Algorithm  string
}

// Bytes serializes the blob in its on-disk layout.
func (b EncryptedBlob) Bytes() []byte {
	out := make([]byte, 0, len(b.Salt)+len(b.IV)+len(b.Ciphertext))
	out = append(out, b.Salt...)
	out = append(out, b.IV...)
	return append(out, b.Ciphertext...)
}
