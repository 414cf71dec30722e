package session

import (
	"os"
	"time"
)

// FrameCounts is the shape count per board kind reported by Inspect.
// Inspect adds the shapes of every page of every board to Transparent;
// Whiteboard and Blackboard stay zero.
type FrameCounts struct {
	Transparent, Whiteboard, Blackboard int
}

// HistoryDepth counts undo and redo entries; Inspect sums them over
// every page of every board.
type HistoryDepth struct {
	Undo, Redo int
}

// HasHistory reports whether either stack is non-empty.
func (h HistoryDepth) HasHistory() bool { return h.Undo > 0 || h.Redo > 0 }

// HistoryCounts is the HistoryDepth per board kind reported by Inspect.
// Inspect adds every page's entries to Transparent; Whiteboard and
// Blackboard stay zero.
type HistoryCounts struct {
	Transparent, Whiteboard, Blackboard HistoryDepth
}

// HasHistory reports whether any board kind has history.
func (h HistoryCounts) HasHistory() bool {
	return h.Transparent.HasHistory() || h.Whiteboard.HasHistory() || h.Blackboard.HasHistory()
}

// Inspection summarizes a session's on-disk state, for diagnostics and
// CLI status output.
type Inspection struct {
	SessionPath       string
	Exists            bool
	SizeBytes         int64
	Modified          time.Time
	BackupPath        string
	BackupExists      bool
	BackupSizeBytes   int64
	ActiveIdentity    string
	PerOutput         bool
	PersistTransparent bool
	PersistWhiteboard  bool
	PersistBlackboard  bool
	RestoreToolState  bool
	HistoryLimit      int
	FrameCounts       FrameCounts
	HistoryCounts     HistoryCounts
	HistoryPresent    bool
	ToolStatePresent  bool
	Compressed        bool
	FileVersion       int
}

// Inspect reports a session's on-disk state without mutating anything.
// When the session file exists it is fully loaded and decoded through
// Load to report the version, tool-state presence and counts.
func Inspect(opts Options) (Inspection, error) {
	insp := Inspection{
		SessionPath:        opts.SessionFilePath(),
		BackupPath:         opts.BackupFilePath(),
		PerOutput:          opts.PerOutput,
		PersistTransparent: opts.PersistTransparent,
		PersistWhiteboard:  opts.PersistWhiteboard,
		PersistBlackboard:  opts.PersistBlackboard,
		RestoreToolState:   opts.RestoreToolState,
		HistoryLimit:       opts.EffectiveHistoryLimit(1 << 30),
	}
	if opts.OutputIdentity != nil {
		insp.ActiveIdentity = *opts.OutputIdentity
	}

	if st, err := os.Stat(insp.SessionPath); err == nil {
		insp.Exists = true
		insp.SizeBytes = st.Size()
		insp.Modified = st.ModTime()
	}
	if st, err := os.Stat(insp.BackupPath); err == nil {
		insp.BackupExists = true
		insp.BackupSizeBytes = st.Size()
	}
	if !insp.Exists {
		return insp, nil
	}

	raw, err := os.ReadFile(insp.SessionPath)
	if err != nil {
		return insp, err
	}
	insp.Compressed = IsGzip(raw)
	snap, err := Load(opts)
	if err != nil {
		return insp, err
	}
	insp.FileVersion = snap.Version
	insp.ToolStatePresent = snap.ToolState != nil
	for _, b := range snap.Boards {
		for _, p := range b.Pages {
			insp.FrameCounts.Transparent += len(p.Shapes)
			if len(p.Undo) > 0 || len(p.Redo) > 0 {
				insp.HistoryPresent = true
				insp.HistoryCounts.Transparent.Undo += len(p.Undo)
				insp.HistoryCounts.Transparent.Redo += len(p.Redo)
			}
		}
	}
	return insp, nil
}
