//go:build linux

package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"github.com/MKhiriev/phantom-vault/models"
)

// captureAttributes records mode, ownership, birth/access/modify times and
// extended attributes of path without following symlinks.
func captureAttributes(path string, info fs.FileInfo) (models.FileAttributes, error) {
	attrs := baseAttributes(info)

	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BASIC_STATS|unix.STATX_BTIME, &stx)
	switch {
	case err == nil:
		attrs.UID, attrs.GID = int(stx.Uid), int(stx.Gid)
		attrs.AccessedAt = statxTime(stx.Atime)
		attrs.ModifiedAt = statxTime(stx.Mtime)
		attrs.CreatedAt = statxTime(stx.Ctime)
		if stx.Mask&unix.STATX_BTIME != 0 {
			attrs.CreatedAt = statxTime(stx.Btime)
		}
	default:
		var st unix.Stat_t
		if err = unix.Lstat(path, &st); err != nil {
			return attrs, &fs.PathError{Op: "lstat", Path: path, Err: err}
		}
		attrs.UID, attrs.GID = int(st.Uid), int(st.Gid)
		attrs.AccessedAt = time.Unix(st.Atim.Unix())
		attrs.ModifiedAt = time.Unix(st.Mtim.Unix())
		attrs.CreatedAt = time.Unix(st.Ctim.Unix())
	}

	xattrs, err := listXattrs(path)
	if err != nil {
		return attrs, err
	}
	attrs.Xattrs = xattrs
	return attrs, nil
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}

func listXattrs(path string) (map[string][]byte, error) {
	size, err := unix.Llistxattr(path, nil)
	if err != nil {
		if xattrUnsupported(err) {
			return nil, nil
		}
		return nil, &fs.PathError{Op: "listxattr", Path: path, Err: err}
	}
	if size == 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	if size, err = unix.Llistxattr(path, buf); err != nil {
		return nil, &fs.PathError{Op: "listxattr", Path: path, Err: err}
	}

	out := make(map[string][]byte)
	for _, name := range strings.Split(strings.TrimRight(string(buf[:size]), "\x00"), "\x00") {
		if name == "" {
			continue
		}
		vsize, err := unix.Lgetxattr(path, name, nil)
		if err != nil {
			if errors.Is(err, unix.ENODATA) {
				continue
			}
			return nil, &fs.PathError{Op: "getxattr " + name, Path: path, Err: err}
		}
		val := make([]byte, vsize)
		if vsize > 0 {
			if vsize, err = unix.Lgetxattr(path, name, val); err != nil {
				return nil, &fs.PathError{Op: "getxattr " + name, Path: path, Err: err}
			}
		}
		out[name] = val[:vsize]
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func xattrUnsupported(err error) bool {
	return errors.Is(err, unix.ENOTSUP) || errors.Is(err, unix.EOPNOTSUPP)
}

// applyAttributes re-applies attrs to path. Ownership is restored only when
// running as root. Every failure is collected; the caller decides whether
// they are fatal.
func applyAttributes(path string, attrs models.FileAttributes, symlink bool) error {
	var errs []error

	for name, val := range attrs.Xattrs {
		if err := unix.Lsetxattr(path, name, val, 0); err != nil && !xattrUnsupported(err) {
			errs = append(errs, fmt.Errorf("setxattr %s %s: %w", path, name, err))
		}
	}

	if os.Geteuid() == 0 {
		if err := os.Lchown(path, attrs.UID, attrs.GID); err != nil {
			errs = append(errs, err)
		}
	}

	if !symlink {
		if err := os.Chmod(path, restorableMode(attrs.Mode)); err != nil {
			errs = append(errs, err)
		}
	}

	ts := []unix.Timespec{
		unix.NsecToTimespec(attrs.AccessedAt.UnixNano()),
		unix.NsecToTimespec(attrs.ModifiedAt.UnixNano()),
	}
	if err := unix.UtimesNanoAt(unix.AT_FDCWD, path, ts, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		errs = append(errs, &fs.PathError{Op: "utimensat", Path: path, Err: err})
	}

	return errors.Join(errs...)
}
