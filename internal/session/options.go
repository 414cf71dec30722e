// Package session implements session snapshot persistence: the on-disk
// file layout, atomic save protocol, autosave scheduling, locking, and
// clear/inspect maintenance operations.
package session

import (
	"path/filepath"
	"time"
)

// CompressionMode selects whether save output is gzip-compressed.
type CompressionMode int

const (
	CompressionOff CompressionMode = iota
	CompressionOn
	CompressionAuto
)

const (
	DefaultAutoCompressThresholdBytes = 100 * 1024
	DefaultAutosaveEnabled            = true
	DefaultAutosaveIdle               = 5 * time.Second
	DefaultAutosaveInterval           = 45 * time.Second
	DefaultAutosaveFailureBackoff     = 5 * time.Second
	DefaultMaxShapesPerFrame          = 10000
	DefaultMaxFileSizeBytes           = 10 * 1024 * 1024
	DefaultBackupRetention            = 1
)

// Options configures where and how a session is persisted.
type Options struct {
	BaseDir string

	PersistTransparent bool
	PersistWhiteboard  bool
	PersistBlackboard  bool
	PersistHistory     bool
	RestoreToolState   bool

	AutosaveEnabled        bool
	AutosaveIdle           time.Duration
	AutosaveInterval       time.Duration
	AutosaveFailureBackoff time.Duration

	MaxShapesPerFrame      int
	MaxPersistedUndoDepth  *int
	MaxFileSizeBytes       int64
	Compression            CompressionMode
	AutoCompressThresholdBytes int64

	DisplayId        string
	BackupRetention  int
	OutputIdentity   *string
	PerOutput        bool
}

// NewOptions returns Options with the original project's documented
// defaults for baseDir/displayId.
func NewOptions(baseDir, displayId string) Options {
	return Options{
		BaseDir:                    baseDir,
		PersistTransparent:         false,
		PersistWhiteboard:          false,
		PersistBlackboard:          false,
		PersistHistory:             true,
		RestoreToolState:           true,
		AutosaveEnabled:            DefaultAutosaveEnabled,
		AutosaveIdle:               DefaultAutosaveIdle,
		AutosaveInterval:           DefaultAutosaveInterval,
		AutosaveFailureBackoff:     DefaultAutosaveFailureBackoff,
		MaxShapesPerFrame:          DefaultMaxShapesPerFrame,
		MaxFileSizeBytes:           DefaultMaxFileSizeBytes,
		Compression:                CompressionAuto,
		AutoCompressThresholdBytes: DefaultAutoCompressThresholdBytes,
		DisplayId:                  displayId,
		BackupRetention:            DefaultBackupRetention,
		PerOutput:                  true,
	}
}

// AnyEnabled reports whether any board kind is configured to persist.
func (o Options) AnyEnabled() bool {
	return o.PersistTransparent || o.PersistWhiteboard || o.PersistBlackboard
}

// EffectiveHistoryLimit returns the undo/redo depth to persist given the
// runtime limit currently in effect.
func (o Options) EffectiveHistoryLimit(runtimeLimit int) int {
	if !o.PersistHistory {
		return 0
	}
	if o.MaxPersistedUndoDepth == nil {
		return runtimeLimit
	}
	if *o.MaxPersistedUndoDepth < runtimeLimit {
		return *o.MaxPersistedUndoDepth
	}
	return runtimeLimit
}

// FilePrefix is the shared "session-{display}" prefix used by every
// file this session writes.
func (o Options) FilePrefix() string {
	return "session-" + o.DisplayId
}

func (o Options) sessionFileStem() string {
	if o.PerOutput && o.OutputIdentity != nil {
		return o.FilePrefix() + "-" + *o.OutputIdentity
	}
	return o.FilePrefix()
}

// SessionFilePath returns the primary JSON session file path.
func (o Options) SessionFilePath() string {
	return filepath.Join(o.BaseDir, o.sessionFileStem()+".json")
}

// BackupFilePath returns the rotated backup path.
func (o Options) BackupFilePath() string {
	return filepath.Join(o.BaseDir, o.sessionFileStem()+".json.bak")
}

// LockFilePath returns the advisory lock file path.
func (o Options) LockFilePath() string {
	return filepath.Join(o.BaseDir, o.sessionFileStem()+".lock")
}

// SetOutputIdentity sanitizes and records identity as the active output,
// reporting whether it changed anything. A no-op when PerOutput is
// false.
func (o *Options) SetOutputIdentity(identity string, sanitize func(string) string) bool {
	if !o.PerOutput {
		return false
	}
	sanitized := sanitize(identity)
	if o.OutputIdentity != nil && *o.OutputIdentity == sanitized {
		return false
	}
	o.OutputIdentity = &sanitized
	return true
}
