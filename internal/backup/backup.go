// Package backup preserves an original file next to itself before it is
// overwritten.
//
// A backup lives at the original path plus Suffix. It is made at most once:
// an existing backup is treated as the authoritative copy of the original
// and is never replaced. Making a backup first tries an atomic rename and
// falls back to a byte copy when the rename is rejected.
package backup

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Suffix is appended to the original path to form the backup path.
const Suffix = ".bak"

// rename is swapped out in tests to force the copy fallback.
var rename = os.Rename

// Backup describes the backup file for one original.
type Backup struct {
	// Path is the backup path as derived from the caller's path.
	Path string

	// AbsPath is Path resolved to an absolute path, for reporting.
	AbsPath string

	// Existed is true when the backup was already on disk and left alone.
	Existed bool

	// Copied is true when the rename was rejected and the original was
	// copied instead. The original still holds its bytes in that case.
	Copied bool
}

// Path returns the backup path for original.
func Path(original string) string {
	return original + Suffix
}

// Acquire makes sure a backup of original exists and returns where it is.
//
// If the backup already exists it is returned untouched with Existed set.
// Otherwise original is renamed to the backup path; if the rename fails the
// original's bytes are copied there instead. A failed copy removes the
// partial backup so a later run does not mistake it for a complete one.
//
// Parameters:
//   - original: Path of the file to preserve. Must exist unless a backup is
//     already on disk.
//
// Returns:
//   - *Backup: Where the backup is and how it was obtained.
//   - error: Non-nil if no backup exists and none could be made.
//
// # Errors
//
//   - Returns error if the backup path exists but cannot be stat'd
//   - Returns error if the rename fails and the copy then fails to open the
//     original, create the backup, copy the bytes, or close the backup. The
//     message carries both the rename and the copy failure.
func Acquire(original string) (*Backup, error) {
	bak := &Backup{Path: Path(original)}
	bak.AbsPath = absOrSelf(bak.Path)

	if _, err := os.Lstat(bak.Path); err == nil {
		bak.Existed = true
		return bak, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat backup: %w", err)
	}

	renameErr := rename(original, bak.Path)
	if renameErr == nil {
		return bak, nil
	}

	if err := copyFile(original, bak.Path); err != nil {
		return nil, fmt.Errorf("rename failed (%v) and copy failed: %w", renameErr, err)
	}
	bak.Copied = true
	return bak, nil
}

// copyFile copies src to dst, refusing to overwrite an existing dst.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open original: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat original: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close backup: %w", cerr)
		}
		if err != nil {
			os.Remove(dst)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy original: %w", err)
	}
	return nil
}

func absOrSelf(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
