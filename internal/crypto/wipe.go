package crypto

import "runtime"

// SecureWipe zeroes b. Call it on every exit path that held key material or
// plaintext.
func SecureWipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// SecureWipeAll zeroes every buffer in bs.
func SecureWipeAll(bs ...[]byte) {
	for _, b := range bs {
		SecureWipe(b)
	}
}

// BytesFromString copies a password string into a buffer the caller can
// wipe. Go strings are immutable, so the string itself cannot be zeroed.
func BytesFromString(s string) []byte {
	b := make([]byte, len(s))
	copy(b, s)
	return b
}
