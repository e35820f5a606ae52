package service

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MKhiriev/phantom-vault/models"
)

// manifest is the walk of a plaintext tree taken before it is sealed.
type manifest struct {
	root    models.FileAttributes
	entries []models.ManifestEntry
}

// buildManifest walks root without following symlinks. Entries are ordered
// parents first. Devices, sockets and pipes fail with ErrUnsupportedFile.
func buildManifest(root string) (*manifest, error) {
	m := &manifest{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		attrs, err := captureAttributes(path, info)
		if err != nil {
			return err
		}
		if path == root {
			m.root = attrs
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		entry := models.ManifestEntry{Path: filepath.ToSlash(rel), Attrs: attrs}

		switch mode := info.Mode(); {
		case mode.IsDir():
			entry.Kind = models.EntryDir
		case mode.IsRegular():
			entry.Kind = models.EntryFile
			entry.Size = info.Size()
		case mode&fs.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return err
			}
			entry.Kind = models.EntrySymlink
			entry.LinkTarget = target
		default:
			return fmt.Errorf("%w: %s (%s)", ErrUnsupportedFile, rel, mode.Type())
		}
		m.entries = append(m.entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// totals counts regular files and their plaintext bytes.
func totals(entries []models.ManifestEntry) (files int, size int64) {
	for _, e := range entries {
		if e.Kind == models.EntryFile {
			files++
			size += e.Size
		}
	}
	return files, size
}

// entryIndexes returns the indexes of entries of kind.
func entryIndexes(entries []models.ManifestEntry, kind models.EntryKind) []int {
	var idx []int
	for i, e := range entries {
		if e.Kind == kind {
			idx = append(idx, i)
		}
	}
	return idx
}

// deepestFirst returns the directory entries ordered so that children come
// before their parents.
func deepestFirst(entries []models.ManifestEntry) []models.ManifestEntry {
	var dirs []models.ManifestEntry
	for _, e := range entries {
		if e.Kind == models.EntryDir {
			dirs = append(dirs, e)
		}
	}
	sort.SliceStable(dirs, func(i, j int) bool {
		return strings.Count(dirs[i].Path, "/") > strings.Count(dirs[j].Path, "/")
	})
	return dirs
}

// safeJoin resolves a manifest path under root and refuses paths that would
// escape it.
func safeJoin(root, rel string) (string, error) {
	if rel == "" || filepath.IsAbs(rel) || strings.ContainsRune(rel, 0) {
		return "", fmt.Errorf("%w: bad manifest path %q", ErrIntegrity, rel)
	}
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: bad manifest path %q", ErrIntegrity, rel)
	}
	return filepath.Join(root, clean), nil
}
