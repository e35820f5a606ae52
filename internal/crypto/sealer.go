// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/MKhiriev/phantom-vault/models"
)

// Compression algorithms applied to plaintext before encryption.
const (
	CompressionNone = "none"
	CompressionZstd = "zstd"
)

// ValidCompression reports whether name is a supported compression.
func ValidCompression(name string) bool {
	return name == CompressionNone || name == CompressionZstd || name == ""
}

type sealer struct {
	engine Engine
}

// NewSealer returns a [Sealer] backed by engine.
func NewSealer(engine Engine) Sealer {
	return &sealer{engine: engine}
}

// Seal implements [Sealer].
func (s *sealer) Seal(dst io.Writer, src io.Reader, folderKey []byte, info string, compression string) (SealResult, error) {
	if !ValidCompression(compression) {
		return SealResult{}, opError("seal", fmt.Errorf("%w: compression %q", ErrUnsupportedAlgorithm, compression))
	}

	salt, err := s.engine.GenerateSalt()
	if err != nil {
		return SealResult{}, opError("seal", err)
	}
	iv, err := s.engine.GenerateIV()
	if err != nil {
		return SealResult{}, opError("seal", err)
	}
	fileKey, err := s.engine.DeriveSubkey(folderKey, salt, info)
	if err != nil {
		return SealResult{}, opError("seal", err)
	}
	defer SecureWipe(fileKey)

	cipherHash := NewHasher()
	out := io.MultiWriter(dst, cipherHash)
	if _, err = out.Write(salt); err != nil {
		return SealResult{}, opError("seal", err)
	}
	if _, err = out.Write(iv); err != nil {
		return SealResult{}, opError("seal", err)
	}

	plainHash := NewHasher()
	plain := io.TeeReader(src, plainHash)

	if compression == CompressionZstd {
		pr, pw := io.Pipe()
		go func() {
			enc, zerr := zstd.NewWriter(pw, zstd.WithEncoderConcurrency(1))
			if zerr != nil {
				pw.CloseWithError(zerr)
				return
			}
			if _, zerr = io.Copy(enc, plain); zerr != nil {
				enc.Close()
				pw.CloseWithError(zerr)
				return
			}
			pw.CloseWithError(enc.Close())
		}()
		_, err = s.engine.EncryptStream(out, pr, fileKey, iv)
		pr.CloseWithError(io.ErrClosedPipe)
	} else {
		_, err = s.engine.EncryptStream(out, plain, fileKey, iv)
	}
	if err != nil {
		return SealResult{}, opError("seal", err)
	}

	plainSum, err := plainHash.Sum()
	if err != nil {
		return SealResult{}, opError("seal", err)
	}
	cipherSum, err := cipherHash.Sum()
	if err != nil {
		return SealResult{}, opError("seal", err)
	}

	return SealResult{
		Blob: models.EncryptedBlob{
			IV:        iv,
			Salt:      salt,
			Algorithm: models.BlobAlgorithm,
		},
		PlainSize:      plainHash.Size(),
		BlobSize:       cipherHash.Size(),
		PlainChecksum:  plainSum,
		CipherChecksum: cipherSum,
	}, nil
}

// Open implements [Sealer].
func (s *sealer) Open(dst io.Writer, src io.Reader, folderKey []byte, info string, compression string) (OpenResult, error) {
	if !ValidCompression(compression) {
		return OpenResult{}, opError("open", fmt.Errorf("%w: compression %q", ErrUnsupportedAlgorithm, compression))
	}

	cipherHash := NewHasher()
	blob := io.TeeReader(src, cipherHash)

	header := make([]byte, models.BlobHeaderSize)
	if _, err := io.ReadFull(blob, header); err != nil {
		return OpenResult{}, opError("open", fmt.Errorf("%w: blob header: %v", ErrDecryptionFailed, err))
	}
	salt, iv := header[:models.BlobSaltSize], header[models.BlobSaltSize:]

	fileKey, err := s.engine.DeriveSubkey(folderKey, salt, info)
	if err != nil {
		return OpenResult{}, opError("open", err)
	}
	defer SecureWipe(fileKey)

	plainHash := NewHasher()
	out := io.MultiWriter(dst, plainHash)

	if compression == CompressionZstd {
		pr, pw := io.Pipe()
		decErr := make(chan error, 1)
		go func() {
			_, derr := s.engine.DecryptStream(pw, blob, fileKey, iv)
			decErr <- derr
			pw.CloseWithError(derr)
		}()

		dec, zerr := zstd.NewReader(pr, zstd.WithDecoderConcurrency(1))
		if zerr == nil {
			_, zerr = io.Copy(out, dec)
			dec.Close()
		}
		pr.CloseWithError(io.ErrClosedPipe)
		if derr := <-decErr; derr != nil && !errors.Is(derr, io.ErrClosedPipe) {
			return OpenResult{}, opError("open", derr)
		}
		if zerr != nil {
			return OpenResult{}, opError("open", fmt.Errorf("%w: decompress: %v", ErrDecryptionFailed, zerr))
		}
	} else if _, err = s.engine.DecryptStream(out, blob, fileKey, iv); err != nil {
		return OpenResult{}, opError("open", err)
	}

	plainSum, err := plainHash.Sum()
	if err != nil {
		return OpenResult{}, opError("open", err)
	}
	cipherSum, err := cipherHash.Sum()
	if err != nil {
		return OpenResult{}, opError("open", err)
	}
	return OpenResult{
		PlainSize:      plainHash.Size(),
		PlainChecksum:  plainSum,
		CipherChecksum: cipherSum,
	}, nil
}
