// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package obfuscation

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/MKhiriev/phantom-vault/internal/crypto"
)

// IdentifierLength is the length of a base32-encoded SHA-256 digest
// without padding.
const IdentifierLength = 52

// ArtifactKind names the temporary siblings of an original path.
type ArtifactKind string

const (
	// ArtifactInflight holds the original tree between the vault commit and
	// its secure removal.
	ArtifactInflight ArtifactKind = "inflight"
	// ArtifactRestore receives decrypted files before they are moved to the
	// original path.
	ArtifactRestore ArtifactKind = "restore"
)

const artifactPrefix = ".pv-"

var (
	identifierEncoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)
	identifierPattern  = regexp.MustCompile(`^[a-z2-7]{52}$`)
)

type namer struct {
	engine     crypto.Engine
	wipePasses int
}

// NewNamer returns a [Namer]. wipePasses is the number of random overwrite
// passes applied by SecureRemoveAll; zero removes without overwriting.
func NewNamer(engine crypto.Engine, wipePasses int) Namer {
	if wipePasses < 0 {
		wipePasses = 0
	}
	return &namer{engine: engine, wipePasses: wipePasses}
}

// GenerateIdentifier implements [Namer]. The identifier is
// base32(HMAC-SHA-256(vaultSalt, salt ‖ path)).
func (n *namer) GenerateIdentifier(originalPath string, vaultSalt []byte) (string, []byte, error) {
	if originalPath == "" {
		return "", nil, ErrInvalidPath
	}
	if len(vaultSalt) == 0 {
		return "", nil, ErrInvalidSalt
	}
	salt, err := n.engine.GenerateSalt()
	if err != nil {
		return "", nil, fmt.Errorf("generate identifier salt: %w", err)
	}

	mac := hmac.New(sha256.New, vaultSalt)
	mac.Write(salt)
	mac.Write([]byte(filepath.Clean(originalPath)))
	return identifierEncoding.EncodeToString(mac.Sum(nil)), salt, nil
}

func (n *namer) IsValidIdentifier(id string) bool {
	return identifierPattern.MatchString(id)
}

// CreateDecoyStructure implements [Namer]. Decoy names share the identifier
// alphabet and length so they are indistinguishable from real entries.
func (n *namer) CreateDecoyStructure(foldersDir, identifier string, count int) ([]string, error) {
	decoys := make([]string, 0, count)
	var errs []error
	for i := 0; i < count; i++ {
		raw, err := n.engine.GenerateRandomBytes(sha256.Size)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		name := identifierEncoding.EncodeToString(raw)
		if name == identifier {
			continue
		}
		if err = os.Mkdir(filepath.Join(foldersDir, name), 0o700); err != nil {
			errs = append(errs, err)
			continue
		}
		decoys = append(decoys, name)
	}
	return decoys, errors.Join(errs...)
}

// ArtifactPath implements [Namer]. The name carries a short tag of the
// original path so EliminatePathTraces can find artifacts of that path
// without touching those of its siblings.
func (n *namer) ArtifactPath(originalPath string, kind ArtifactKind) (string, error) {
	if !filepath.IsAbs(originalPath) {
		return "", ErrInvalidPath
	}
	raw, err := n.engine.GenerateRandomBytes(6)
	if err != nil {
		return "", fmt.Errorf("generate artifact name: %w", err)
	}
	clean := filepath.Clean(originalPath)
	name := fmt.Sprintf("%s%s-%s-%s", artifactPrefix, kind, pathTag(clean), hex.EncodeToString(raw))
	return filepath.Join(filepath.Dir(clean), name), nil
}

// EliminatePathTraces implements [Namer].
func (n *namer) EliminatePathTraces(originalPath string) error {
	if !filepath.IsAbs(originalPath) {
		return ErrInvalidPath
	}
	clean := filepath.Clean(originalPath)

	var errs []error
	if entries, err := os.ReadDir(clean); err == nil && len(entries) == 0 {
		if err = os.Remove(clean); err != nil {
			errs = append(errs, err)
		}
	}

	siblings, err := os.ReadDir(filepath.Dir(clean))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.Join(errs...)
		}
		return errors.Join(append(errs, err)...)
	}
	tag := "-" + pathTag(clean) + "-"
	for _, entry := range siblings {
		name := entry.Name()
		if !strings.HasPrefix(name, artifactPrefix) || !strings.Contains(name, tag) {
			continue
		}
		if err = n.SecureRemoveAll(filepath.Join(filepath.Dir(clean), name)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func pathTag(clean string) string {
	sum := sha256.Sum256([]byte(clean))
	return hex.EncodeToString(sum[:4])
}
