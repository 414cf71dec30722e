package session

import (
	"encoding/json"
	"os"

	"github.com/wayscriber/wayscriber/internal/wyerr"
)

// Save writes snap to disk following the original 7-step atomic save
// protocol: lock, serialize, maybe-gzip, write to a temp file, rename
// the existing file to .bak, rename the temp file into place, unlock.
func Save(opts Options, snap Snapshot) error {
	lock, err := LockExclusive(opts.LockFilePath())
	if err != nil {
		return wyerr.Wrap(wyerr.IO, err, "acquire session lock")
	}
	defer lock.Unlock()

	data, err := json.Marshal(snap)
	if err != nil {
		return wyerr.Wrap(wyerr.RuntimeInvariant, err, "serialize session snapshot")
	}

	if shouldCompress(opts, len(data)) {
		data, err = CompressBytes(data)
		if err != nil {
			return wyerr.Wrap(wyerr.IO, err, "gzip session snapshot")
		}
	}

	target := opts.SessionFilePath()
	tmp, err := TempPath(target)
	if err != nil {
		return wyerr.Wrap(wyerr.IO, err, "reserve temp path")
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return wyerr.Wrap(wyerr.IO, err, "write temp session file")
	}

	if _, err := os.Stat(target); err == nil {
		if err := os.Rename(target, opts.BackupFilePath()); err != nil {
			os.Remove(tmp)
			return wyerr.Wrap(wyerr.IO, err, "rotate session backup")
		}
	}

	if err := os.Rename(tmp, target); err != nil {
		return wyerr.Wrap(wyerr.IO, err, "finalize session file")
	}
	return nil
}

func shouldCompress(opts Options, size int) bool {
	switch opts.Compression {
	case CompressionOn:
		return true
	case CompressionOff:
		return false
	default: // CompressionAuto
		return int64(size) >= opts.AutoCompressThresholdBytes
	}
}

// Load reads the session file, falling back to the .bak file if the
// primary is missing or unreadable, transparently gunzipping when the
// gzip magic bytes are present.
func Load(opts Options) (Snapshot, error) {
	data, err := os.ReadFile(opts.SessionFilePath())
	if err != nil {
		data, err = os.ReadFile(opts.BackupFilePath())
		if err != nil {
			return Snapshot{}, wyerr.Wrap(wyerr.IO, err, "read session file and backup")
		}
	}
	data, _, err = MaybeDecompress(data)
	if err != nil {
		return Snapshot{}, wyerr.Wrap(wyerr.IO, err, "decompress session file")
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, wyerr.Wrap(wyerr.RuntimeInvariant, err, "parse session snapshot")
	}
	return snap, nil
}
