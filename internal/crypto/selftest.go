package crypto

import (
	"bytes"
	"fmt"
)

// SelfTest implements [Engine]. It runs when a profile vault is opened.
func (e *engine) SelfTest() error {
	password := []byte("phantom-vault self-test")
	salt := bytes.Repeat([]byte{0x5a}, SaltSize)

	k1, err := e.DeriveKey(password, salt, MinIterations, KeySize)
	if err != nil {
		return fmt.Errorf("%w: derive: %v", ErrSelfTestFailed, err)
	}
	defer SecureWipe(k1)
	k2, err := e.DeriveKey(password, salt, MinIterations, KeySize)
	if err != nil {
		return fmt.Errorf("%w: derive: %v", ErrSelfTestFailed, err)
	}
	defer SecureWipe(k2)
	if !bytes.Equal(k1, k2) {
		return fmt.Errorf("%w: key derivation is not deterministic", ErrSelfTestFailed)
	}

	iv, err := e.GenerateIV()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSelfTestFailed, err)
	}
	iv2, err := e.GenerateIV()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSelfTestFailed, err)
	}
	if bytes.Equal(iv, iv2) {
		return fmt.Errorf("%w: random source repeated output", ErrSelfTestFailed)
	}

	plain := []byte("the quick brown fox jumps over the lazy dog")
	ct, err := e.Encrypt(plain, k1, iv)
	if err != nil {
		return fmt.Errorf("%w: encrypt: %v", ErrSelfTestFailed, err)
	}
	if bytes.Contains(ct, plain) {
		return fmt.Errorf("%w: ciphertext contains plaintext", ErrSelfTestFailed)
	}
	pt, err := e.Decrypt(ct, k1, iv)
	if err != nil {
		return fmt.Errorf("%w: decrypt: %v", ErrSelfTestFailed, err)
	}
	if !bytes.Equal(pt, plain) {
		return fmt.Errorf("%w: round trip mismatch", ErrSelfTestFailed)
	}
	return nil
}
