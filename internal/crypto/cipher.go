// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"
)

func newBlock(key, iv []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key length %d, want %d", ErrInvalidParameters, len(key), KeySize)
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: iv length %d, want %d", ErrInvalidParameters, len(iv), IVSize)
	}
	return aes.NewCipher(key)
}

// Encrypt implements [Engine].
func (e *engine) Encrypt(data, key, iv []byte) ([]byte, error) {
	var out bytes.Buffer
	out.Grow(len(data) + aes.BlockSize)
	if _, err := e.EncryptStream(&out, bytes.NewReader(data), key, iv); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Decrypt implements [Engine].
func (e *engine) Decrypt(data, key, iv []byte) ([]byte, error) {
	var out bytes.Buffer
	out.Grow(len(data))
	if _, err := e.DecryptStream(&out, bytes.NewReader(data), key, iv); err != nil {
		SecureWipe(out.Bytes())
		return nil, err
	}
	return out.Bytes(), nil
}

// EncryptStream implements [Engine]. Every full chunk is encrypted in place;
// the final short chunk (possibly empty) receives PKCS#7 padding.
func (e *engine) EncryptStream(dst io.Writer, src io.Reader, key, iv []byte) (int64, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return 0, opError("encrypt", err)
	}
	mode := cipher.NewCBCEncrypter(block, iv)

	buf := e.pool.Get()
	defer e.pool.Put(buf)

	var written int64
	for {
		n, rerr := io.ReadFull(src, buf[:e.pool.Size()])
		final := false
		switch {
		case rerr == nil:
		case errors.Is(rerr, io.EOF), errors.Is(rerr, io.ErrUnexpectedEOF):
			final = true
		default:
			return written, opError("encrypt", rerr)
		}

		chunk := buf[:n]
		if final {
			chunk = pad(buf, n)
		}
		if len(chunk) > 0 {
			mode.CryptBlocks(chunk, chunk)
			w, werr := dst.Write(chunk)
			written += int64(w)
			if werr != nil {
				return written, opError("encrypt", werr)
			}
		}
		if final {
			return written, nil
		}
	}
}

// DecryptStream implements [Engine]. The last plaintext block is held back
// until EOF so the padding can be checked before it is written.
func (e *engine) DecryptStream(dst io.Writer, src io.Reader, key, iv []byte) (int64, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return 0, opError("decrypt", err)
	}
	mode := cipher.NewCBCDecrypter(block, iv)

	buf := e.pool.Get()
	defer e.pool.Put(buf)

	var (
		held    [aes.BlockSize]byte
		hasHeld bool
		written int64
	)
	defer SecureWipe(held[:])

	for {
		n, rerr := io.ReadFull(src, buf[:e.pool.Size()])
		final := false
		switch {
		case rerr == nil:
		case errors.Is(rerr, io.EOF), errors.Is(rerr, io.ErrUnexpectedEOF):
			final = true
		default:
			return written, opError("decrypt", rerr)
		}
		if n%aes.BlockSize != 0 {
			return written, opError("decrypt", fmt.Errorf("%w: ciphertext not block aligned", ErrDecryptionFailed))
		}

		if n > 0 {
			chunk := buf[:n]
			mode.CryptBlocks(chunk, chunk)
			if hasHeld {
				w, werr := dst.Write(held[:])
				written += int64(w)
				if werr != nil {
					return written, opError("decrypt", werr)
				}
			}
			w, werr := dst.Write(chunk[:n-aes.BlockSize])
			written += int64(w)
			if werr != nil {
				return written, opError("decrypt", werr)
			}
			copy(held[:], chunk[n-aes.BlockSize:])
			hasHeld = true
		}

		if final {
			if !hasHeld {
				return written, opError("decrypt", fmt.Errorf("%w: empty ciphertext", ErrDecryptionFailed))
			}
			last, uerr := unpad(held[:])
			if uerr != nil {
				return written, opError("decrypt", uerr)
			}
			w, werr := dst.Write(last)
			written += int64(w)
			if werr != nil {
				return written, opError("decrypt", werr)
			}
			return written, nil
		}
	}
}

// pad appends PKCS#7 padding to buf[:n]. buf must have at least one spare
// block of capacity.
func pad(buf []byte, n int) []byte {
	padLen := aes.BlockSize - n%aes.BlockSize
	out := buf[:n+padLen]
	for i := n; i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out
}

func unpad(block []byte) ([]byte, error) {
	padLen := int(block[len(block)-1])
	if padLen == 0 || padLen > aes.BlockSize {
		return nil, fmt.Errorf("%w: bad padding", ErrDecryptionFailed)
	}
	var bad byte
	for _, b := range block[len(block)-padLen:] {
		bad |= b ^ byte(padLen)
	}
	if bad != 0 {
		return nil, fmt.Errorf("%w: bad padding", ErrDecryptionFailed)
	}
	return block[:len(block)-padLen], nil
}
