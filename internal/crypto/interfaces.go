package crypto

import (
	"io"

	"github.com/MKhiriev/phantom-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_engine_mock.go -package=mock

// Engine is the vault's crypto core. It knows nothing about folders,
// profiles or the filesystem; it derives keys, encrypts and decrypts
// streams and produces randomness.
//
// Key hierarchy used by the vault:
//
//	verifierKey = KDF(masterKey, verifierSalt)             (vault verifier)
//	folderKey   = PBKDF2(masterKey, folderSalt)            (per lock)
//	fileKey     = HKDF(folderKey, blobSalt, info=profile)  (per file)
type Engine interface {
	// DeriveKey runs PBKDF2-HMAC-SHA-256. iterations must be at least
	// MinIterations and keyLength must be positive.
	DeriveKey(password, salt []byte, iterations, keyLength int) ([]byte, error)

	// DeriveKeyWith runs the named KDF ("pbkdf2-sha256" or "argon2id").
	// For argon2id iterations is ignored and the engine's Argon2 cost
	// parameters apply.
	DeriveKeyWith(algorithm string, password, salt []byte, iterations, keyLength int) ([]byte, error)

	// DeriveSubkey expands key into a 32-byte subkey with HKDF-SHA-256.
	DeriveSubkey(key, salt []byte, info string) ([]byte, error)

	// Encrypt encrypts data with AES-256-CBC and PKCS#7 padding.
	Encrypt(data, key, iv []byte) ([]byte, error)

	// Decrypt reverses Encrypt. On any failure it returns ErrDecryptionFailed
	// and no plaintext.
	Decrypt(data, key, iv []byte) ([]byte, error)

	// EncryptStream encrypts src into dst in ChunkSize pieces and returns
	// the number of ciphertext bytes written.
	EncryptStream(dst io.Writer, src io.Reader, key, iv []byte) (int64, error)

	// DecryptStream decrypts src into dst and returns the number of
	// plaintext bytes written. dst may have received a prefix of the
	// plaintext when an error is returned; callers write into scratch
	// space and discard it on failure.
	DecryptStream(dst io.Writer, src io.Reader, key, iv []byte) (int64, error)

	// GenerateRandomBytes reads n bytes from the OS CSPRNG.
	GenerateRandomBytes(n int) ([]byte, error)

	// GenerateSalt returns SaltSize random bytes.
	GenerateSalt() ([]byte, error)

	// GenerateIV returns IVSize random bytes.
	GenerateIV() ([]byte, error)

	// VerificationToken computes SHA-256(key ‖ purpose).
	VerificationToken(key []byte, purpose string) []byte

	// VerifyToken compares a freshly computed token with expected in
	// constant time.
	VerifyToken(key []byte, purpose string, expected []byte) bool

	// Pool returns the chunk buffer pool shared with callers.
	Pool() *BufferPool

	// SelfTest checks KDF determinism, a CBC round trip and RNG output.
	SelfTest() error
}

// Sealer turns plaintext streams into stored blobs and back.
type Sealer interface {
	// Seal writes salt || iv || AES-CBC(compress(src)) to dst, keyed by a
	// subkey of folderKey. It returns the blob description and the
	// plaintext and blob checksums.
	Seal(dst io.Writer, src io.Reader, folderKey []byte, info string, compression string) (SealResult, error)

	// Open reads a blob from src and writes the plaintext to dst. It returns
	// the plaintext checksum.
	Open(dst io.Writer, src io.Reader, folderKey []byte, info string, compression string) (OpenResult, error)
}

// SealResult describes one sealed blob.
type SealResult struct {
	Blob           models.EncryptedBlob // Ciphertext is left empty; it went to dst.
	PlainSize      int64
	BlobSize       int64
	PlainChecksum  Checksum
	CipherChecksum Checksum
}

// OpenResult describes one opened blob.
type OpenResult struct {
	PlainSize      int64
	PlainChecksum  Checksum
	CipherChecksum Checksum
}
