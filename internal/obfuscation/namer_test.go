package obfuscation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/phantom-vault/internal/crypto"
)

func newTestNamer(t *testing.T) Namer {
	t.Helper()
	return NewNamer(crypto.NewEngine(crypto.WithBufferPool(crypto.NewBufferPool(64))), 2)
}

func TestGenerateIdentifier_ShapeAndUnlinkability(t *testing.T) {
	n := newTestNamer(t)
	vaultSalt := []byte("vault-salt-vault-salt-vault-salt")

	id1, salt1, err := n.GenerateIdentifier("/home/alice/docs/taxes", vaultSalt)
	require.NoError(t, err)
	id2, salt2, err := n.GenerateIdentifier("/home/alice/docs/taxes", vaultSalt)
	require.NoError(t, err)

	assert.Len(t, id1, IdentifierLength)
	assert.True(t, n.IsValidIdentifier(id1))
	assert.True(t, n.IsValidIdentifier(id2))
	assert.NotEqual(t, id1, id2)
	assert.NotEqual(t, salt1, salt2)
	assert.NotContains(t, id1, "taxes")
	assert.Equal(t, strings.ToLower(id1), id1)
}

func TestGenerateIdentifier_Uniqueness(t *testing.T) {
	n := newTestNamer(t)
	vaultSalt := []byte("salt")
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id, _, err := n.GenerateIdentifier("/data/same", vaultSalt)
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestGenerateIdentifier_InvalidInput(t *testing.T) {
	n := newTestNamer(t)

	_, _, err := n.GenerateIdentifier("", []byte("salt"))
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, _, err = n.GenerateIdentifier("/a", nil)
	assert.ErrorIs(t, err, ErrInvalidSalt)
}

func TestIsValidIdentifier(t *testing.T) {
	n := newTestNamer(t)

	assert.False(t, n.IsValidIdentifier(""))
	assert.False(t, n.IsValidIdentifier("../../etc"))
	assert.False(t, n.IsValidIdentifier(strings.Repeat("A", IdentifierLength)))
	assert.False(t, n.IsValidIdentifier(strings.Repeat("a", IdentifierLength-1)))
	assert.True(t, n.IsValidIdentifier(strings.Repeat("a7", IdentifierLength/2)))
}

func TestCreateDecoyStructure(t *testing.T) {
	n := newTestNamer(t)
	dir := t.TempDir()

	decoys, err := n.CreateDecoyStructure(dir, "real", 3)
	require.NoError(t, err)
	require.Len(t, decoys, 3)

	for _, d := range decoys {
		assert.True(t, n.IsValidIdentifier(d))
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		entries, _ := os.ReadDir(filepath.Join(dir, d))
		assert.Empty(t, entries)
	}
}

func TestCreateDecoyStructure_MissingDirIsBestEffort(t *testing.T) {
	n := newTestNamer(t)

	decoys, err := n.CreateDecoyStructure(filepath.Join(t.TempDir(), "missing"), "real", 2)
	assert.Error(t, err)
	assert.Empty(t, decoys)
}

func TestArtifactPath(t *testing.T) {
	n := newTestNamer(t)
	base := t.TempDir()
	original := filepath.Join(base, "taxes")

	p1, err := n.ArtifactPath(original, ArtifactInflight)
	require.NoError(t, err)
	p2, err := n.ArtifactPath(original, ArtifactInflight)
	require.NoError(t, err)

	assert.Equal(t, base, filepath.Dir(p1))
	assert.True(t, strings.HasPrefix(filepath.Base(p1), ".pv-inflight-"))
	assert.NotEqual(t, p1, p2)

	_, err = n.ArtifactPath("relative/path", ArtifactRestore)
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestEliminatePathTraces(t *testing.T) {
	n := newTestNamer(t)
	base := t.TempDir()
	original := filepath.Join(base, "taxes")
	sibling := filepath.Join(base, "photos")

	require.NoError(t, os.Mkdir(original, 0o700))

	inflight, err := n.ArtifactPath(original, ArtifactInflight)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(inflight, "2023"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(inflight, "2023", "return.pdf"), []byte("secret"), 0o600))

	otherArtifact, err := n.ArtifactPath(sibling, ArtifactRestore)
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(otherArtifact, 0o700))

	require.NoError(t, n.EliminatePathTraces(original))

	assert.NoDirExists(t, original)
	assert.NoDirExists(t, inflight)
	assert.DirExists(t, otherArtifact)
}

func TestEliminatePathTraces_KeepsNonEmptyDirectory(t *testing.T) {
	n := newTestNamer(t)
	original := filepath.Join(t.TempDir(), "taxes")
	require.NoError(t, os.MkdirAll(original, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(original, "new.txt"), []byte("x"), 0o600))

	require.NoError(t, n.EliminatePathTraces(original))
	assert.FileExists(t, filepath.Join(original, "new.txt"))

	assert.ErrorIs(t, n.EliminatePathTraces("taxes"), ErrInvalidPath)
}

func TestSecureRemoveAll(t *testing.T) {
	n := newTestNamer(t)
	root := filepath.Join(t.TempDir(), "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "b", "big.bin"), make([]byte, 300), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "empty.txt"), nil, 0o600))
	require.NoError(t, os.Symlink("/etc/hostname", filepath.Join(root, "link")))

	require.NoError(t, n.SecureRemoveAll(root))
	assert.NoDirExists(t, root)

	assert.NoError(t, n.SecureRemoveAll(filepath.Join(t.TempDir(), "missing")))
}
