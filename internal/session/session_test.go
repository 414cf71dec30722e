package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsGzipMagic(t *testing.T) {
	require.True(t, IsGzip([]byte{0x1f, 0x8b, 0x08}))
	require.False(t, IsGzip([]byte{0x00, 0x01}))
	require.False(t, IsGzip([]byte{0x1f}))
}

func TestCompressRoundTrip(t *testing.T) {
	orig := []byte(`{"hello":"world"}`)
	compressed, err := CompressBytes(orig)
	require.NoError(t, err)
	require.True(t, IsGzip(compressed))
	out, wasGzip, err := MaybeDecompress(compressed)
	require.NoError(t, err)
	require.True(t, wasGzip)
	require.Equal(t, orig, out)
}

func TestTempPathAvoidsCollision(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "session-foo.json")
	p1, err := TempPath(target)
	require.NoError(t, err)
	require.Equal(t, target+".tmp", p1)

	require.NoError(t, os.WriteFile(p1, []byte("x"), 0o644))
	p2, err := TempPath(target)
	require.NoError(t, err)
	require.Equal(t, target+".tmp1", p2)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	opts := NewOptions(dir, "default")
	snap := Snapshot{Version: CurrentVersion, ActiveBoardId: "board-1"}
	require.NoError(t, Save(opts, snap))

	loaded, err := Load(opts)
	require.NoError(t, err)
	require.Equal(t, snap.ActiveBoardId, loaded.ActiveBoardId)

	require.FileExists(t, opts.SessionFilePath())
}

func TestSaveRotatesBackup(t *testing.T) {
	dir := t.TempDir()
	opts := NewOptions(dir, "default")
	require.NoError(t, Save(opts, Snapshot{Version: 1, ActiveBoardId: "a"}))
	require.NoError(t, Save(opts, Snapshot{Version: 1, ActiveBoardId: "b"}))
	require.FileExists(t, opts.BackupFilePath())
}

func TestClearRemovesAllFiles(t *testing.T) {
	dir := t.TempDir()
	opts := NewOptions(dir, "default")
	require.NoError(t, Save(opts, Snapshot{Version: 1}))
	lock, err := LockExclusive(opts.LockFilePath())
	require.NoError(t, err)
	require.NoError(t, lock.Unlock())

	outcome, err := Clear(opts)
	require.NoError(t, err)
	require.True(t, outcome.RemovedSession)
	require.True(t, outcome.RemovedLock)
}

func TestAutosaveSchedulerIdleTrigger(t *testing.T) {
	opts := NewOptions(t.TempDir(), "default")
	opts.AutosaveIdle = 10 * time.Millisecond
	opts.AutosaveInterval = time.Hour
	now := time.Now()
	s := NewAutosaveScheduler(opts, now)
	s.NoteActivity(now)
	require.False(t, s.Due(now))
	require.True(t, s.Due(now.Add(20*time.Millisecond)))
}

func TestAutosaveSchedulerBackoff(t *testing.T) {
	opts := NewOptions(t.TempDir(), "default")
	opts.AutosaveFailureBackoff = 50 * time.Millisecond
	opts.AutosaveInterval = time.Millisecond
	now := time.Now()
	s := NewAutosaveScheduler(opts, now)
	s.NoteFailed(now)
	require.False(t, s.Due(now.Add(10*time.Millisecond)))
	require.True(t, s.Due(now.Add(60*time.Millisecond)))
}
