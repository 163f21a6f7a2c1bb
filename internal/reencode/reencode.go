// Package reencode re-encodes image files in place, keeping a backup of each
// original.
//
// Paths are handled strictly in order, one at a time. For every path the
// Reencoder makes sure a backup exists, decodes the backup, and writes the
// codec's encoding of the raster over the original path. A failure on one
// path is reported and the run moves on to the next.
package reencode

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/image-reencode/internal/backup"
	"github.com/ironsheep/image-reencode/internal/imaging"
)

// Reencoder drives the backup, decode and overwrite steps for a list of paths
// and prints one line per event.
type Reencoder struct {
	codec  imaging.Codec
	stdout io.Writer
	stderr io.Writer

	// Debug enables diagnostic output through the standard logger.
	Debug bool
}

// New creates a Reencoder writing progress lines to stdout and failures to
// stderr. A nil codec selects PNG.
func New(codec imaging.Codec, stdout, stderr io.Writer) *Reencoder {
	if codec == nil {
		codec = imaging.NewPNGCodec()
	}
	return &Reencoder{
		codec:  codec,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run processes every path in order and returns the totals.
//
// Parameters:
//   - paths: Files to re-encode, handled one at a time in the given order.
//
// Returns:
//   - *RunStats: Counts of each outcome plus byte totals for the files that
//     were re-encoded. Never nil, even for an empty list.
//
// A failure on one path never stops the run; every path gets exactly one
// call to Process.
func (r *Reencoder) Run(paths []string) *RunStats {
	stats := &RunStats{}
	for _, path := range paths {
		stats.Add(r.Process(path))
	}
	if r.Debug {
		log.Printf("Run complete: %d files, %d re-encoded, %d not found, %d failed, %d bytes saved",
			stats.Total, stats.Reencoded, stats.NotFound, stats.Failed, stats.SpaceSaved())
	}
	return stats
}

// Process re-encodes a single path and reports the outcome.
//
// The steps are, in order: existence check, backup acquisition, decode of
// the backup, encode and overwrite of path. Each event prints one line:
// success and "backup already exists" to stdout, failures to stderr.
//
// Parameters:
//   - path: The file to re-encode. Its backup is path + ".bak".
//
// Returns:
//   - Result: The outcome, the absolute backup path, and the error that ended
//     processing (nil on success).
//
// # Errors
//
// Errors are carried in Result.Err rather than returned:
//   - NotFound: path does not exist or is a directory; nothing is touched
//   - BackupFailed: rename and copy both failed; path is unchanged
//   - DecodeFailed: the backup is unreadable or not an image (wraps
//     imaging.ErrDecode); path is not written
//   - EncodeFailed: encoding failed (wraps imaging.ErrEncode) or path could
//     not be opened, written or closed; the backup is left intact
func (r *Reencoder) Process(path string) Result {
	res := Result{Path: path}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		err = fmt.Errorf("%s is a directory", path)
	}
	if err != nil {
		res.Outcome = NotFound
		res.Err = err
		fmt.Fprintf(r.stderr, "Not found: %s\n", path)
		return res
	}

	bak, err := backup.Acquire(path)
	if err != nil {
		res.Outcome = BackupFailed
		res.Err = err
		fmt.Fprintf(r.stderr, "Failed to back up %s: %v\n", path, err)
		return res
	}
	res.BackupPath = bak.AbsPath
	res.BackupExisted = bak.Existed
	res.BackupCopied = bak.Copied
	if bak.Existed {
		fmt.Fprintf(r.stdout, "Backup already exists: %s\n", bak.AbsPath)
	}
	if r.Debug && bak.Copied {
		log.Printf("Rename to %s rejected, copied instead", bak.Path)
	}

	data, err := os.ReadFile(bak.Path)
	if err != nil {
		res.Outcome = DecodeFailed
		res.Err = err
		fmt.Fprintf(r.stderr, "Failed to read image from %s: %v\n", bak.AbsPath, err)
		return res
	}
	res.InputBytes = int64(len(data))

	img, err := r.codec.Decode(data)
	if err != nil {
		res.Outcome = DecodeFailed
		res.Err = err
		fmt.Fprintf(r.stderr, "Failed to read image from %s: %v\n", bak.AbsPath, err)
		return res
	}
	if r.Debug {
		b := img.Bounds()
		log.Printf("Decoded %s: %dx%d (%d bytes)", bak.Path, b.Dx(), b.Dy(), len(data))
	}

	out, err := r.codec.Encode(img)
	if err == nil {
		err = writeFile(path, out)
	}
	if err != nil {
		res.Outcome = EncodeFailed
		res.Err = err
		fmt.Fprintf(r.stderr, "Failed to write: %s: %v\n", path, err)
		return res
	}

	res.Outcome = Reencoded
	res.OutputBytes = int64(len(out))
	fmt.Fprintf(r.stdout, "Re-encoded: %s\n", path)
	return res
}

// writeFile creates or truncates path and writes data to it.
func writeFile(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
