package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/phantom-vault/models"
)

func TestBuildManifest(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root)

	m, err := buildManifest(root)
	require.NoError(t, err)

	kinds := map[string]models.EntryKind{}
	for _, e := range m.entries {
		kinds[e.Path] = e.Kind
	}
	assert.Equal(t, map[string]models.EntryKind{
		"empty.bin":              models.EntryFile,
		"link":                   models.EntrySymlink,
		"notes":                  models.EntryDir,
		"notes/archive":          models.EntryDir,
		"notes/archive/2024.txt": models.EntryFile,
		"notes/today.md":         models.EntryFile,
		"readme.txt":             models.EntryFile,
	}, kinds)

	for _, e := range m.entries {
		if e.Kind == models.EntrySymlink {
			assert.Equal(t, "readme.txt", e.LinkTarget)
		}
	}

	files, size := totals(m.entries)
	assert.Equal(t, 4, files)
	assert.Equal(t, int64(len("top level file")+len("old notes")+18*200), size)
}

func TestDeepestFirst(t *testing.T) {
	entries := []models.ManifestEntry{
		{Path: "a", Kind: models.EntryDir},
		{Path: "a/b", Kind: models.EntryDir},
		{Path: "a/b/file", Kind: models.EntryFile},
		{Path: "c", Kind: models.EntryDir},
		{Path: "a/b/c", Kind: models.EntryDir},
	}

	var got []string
	for _, e := range deepestFirst(entries) {
		got = append(got, e.Path)
	}
	assert.Equal(t, []string{"a/b/c", "a/b", "a", "c"}, got)
}

func TestSafeJoin(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "vault", "folders", "x")

	got, err := safeJoin(root, "notes/today.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "notes", "today.md"), got)

	got, err = safeJoin(root, "notes/../readme.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "readme.txt"), got)

	for _, rel := range []string{"", "..", "../escape", "notes/../../escape", "/etc/passwd", "a\x00b"} {
		_, err = safeJoin(root, rel)
		assert.ErrorIs(t, err, ErrIntegrity, rel)
	}
}
