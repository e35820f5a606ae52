package obfuscation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SecureRemoveAll implements [Namer]. Every regular file is overwritten
// wipePasses times and synced before the tree is removed. The tree is
// removed even when an overwrite fails; the failure is reported wrapped in
// ErrWipeFailed.
func (n *namer) SecureRemoveAll(path string) error {
	var wipeErrs []error
	if n.wipePasses > 0 {
		walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return nil
				}
				wipeErrs = append(wipeErrs, err)
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if err = n.overwrite(p); err != nil {
				wipeErrs = append(wipeErrs, fmt.Errorf("%s: %w", p, err))
			}
			return nil
		})
		if walkErr != nil {
			wipeErrs = append(wipeErrs, walkErr)
		}
	}

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	if len(wipeErrs) > 0 {
		return fmt.Errorf("%w: %w", ErrWipeFailed, errors.Join(wipeErrs...))
	}
	return nil
}

func (n *namer) overwrite(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	chunk := int64(n.engine.Pool().Size())

	for pass := 0; pass < n.wipePasses; pass++ {
		if _, err = f.Seek(0, 0); err != nil {
			return err
		}
		for remaining := size; remaining > 0; {
			step := min(remaining, chunk)
			noise, rerr := n.engine.GenerateRandomBytes(int(step))
			if rerr != nil {
				return rerr
			}
			if _, err = f.Write(noise); err != nil {
				return err
			}
			remaining -= step
		}
		if err = f.Sync(); err != nil {
			return err
		}
	}
	return nil
}
