package reencode

// Outcome is the final state of one path after Process.
type Outcome int

const (
	Reencoded    Outcome = iota // Original path now holds the re-encoded image.
	NotFound                    // Path did not exist; nothing was touched.
	BackupFailed                // Neither rename nor copy could create the backup.
	DecodeFailed                // Backup bytes were not a usable image.
	EncodeFailed                // Encoding or writing the original path failed.
)

func (o Outcome) String() string {
	switch o {
	case Reencoded:
		return "reencoded"
	case NotFound:
		return "not-found"
	case BackupFailed:
		return "backup-failed"
	case DecodeFailed:
		return "decode-failed"
	case EncodeFailed:
		return "encode-failed"
	default:
		return "unknown"
	}
}

// Result records what happened to one input path.
type Result struct {
	Path    string
	Outcome Outcome

	// BackupPath is the absolute backup path, empty for NotFound.
	BackupPath string

	// BackupExisted is set when a backup from an earlier run was reused.
	BackupExisted bool

	// BackupCopied is set when the rename was rejected and the original was copied.
	BackupCopied bool

	InputBytes  int64 // Size of the backup that was decoded.
	OutputBytes int64 // Size of the PNG written to Path.

	Err error
}

// OK reports whether the path was re-encoded.
func (r Result) OK() bool { return r.Outcome == Reencoded }
