package session

import (
	"os"
	"path/filepath"
	"strings"
)

// ClearOutcome reports which of a session's files were actually
// present and removed by Clear.
type ClearOutcome struct {
	RemovedSession bool
	RemovedBackup  bool
	RemovedLock    bool
}

// Clear removes a session's json/bak/lock files. When opts is
// per-output with no specific output selected, it additionally sweeps
// every "session-{display}*" file in BaseDir matching the json/bak/lock
// suffixes, covering the "clear all per-output sessions" case.
func Clear(opts Options) (ClearOutcome, error) {
	out := ClearOutcome{}
	var firstErr error
	removeIfExists := func(path string) bool {
		err := os.Remove(path)
		if err == nil {
			return true
		}
		if !os.IsNotExist(err) && firstErr == nil {
			firstErr = err
		}
		return false
	}

	out.RemovedSession = removeIfExists(opts.SessionFilePath())
	out.RemovedBackup = removeIfExists(opts.BackupFilePath())
	out.RemovedLock = removeIfExists(opts.LockFilePath())

	if opts.PerOutput && opts.OutputIdentity == nil {
		for _, suffix := range []string{".json", ".json.bak", ".lock"} {
			if err := removeMatchingFiles(opts.BaseDir, opts.FilePrefix(), suffix); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}

	return out, firstErr
}

func removeMatchingFiles(dir, prefix, suffix string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, suffix) {
			if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
				return err
			}
		}
	}
	return nil
}
