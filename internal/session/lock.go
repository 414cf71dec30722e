package session

import (
	"os"

	"golang.org/x/sys/unix"
)

// FileLock wraps an advisory flock on an open file, grounded on the
// lock/unlock discipline the save protocol needs around each write.
type FileLock struct {
	f *os.File
}

// LockShared opens path (creating it if necessary) and takes a shared
// (read) lock.
func LockShared(path string) (*FileLock, error) {
	return lockWith(path, unix.LOCK_SH)
}

// LockExclusive opens path and takes an exclusive (write) lock,
// blocking until it is available.
func LockExclusive(path string) (*FileLock, error) {
	return lockWith(path, unix.LOCK_EX)
}

// TryLockExclusive attempts a non-blocking exclusive lock, returning
// (nil, nil) if it is currently held elsewhere.
func TryLockExclusive(path string) (*FileLock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		if err == unix.EWOULDBLOCK {
			return nil, nil
		}
		return nil, err
	}
	return &FileLock{f: f}, nil
}

func lockWith(path string, op int) (*FileLock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), op); err != nil {
		f.Close()
		return nil, err
	}
	return &FileLock{f: f}, nil
}

// Unlock releases the lock and closes the underlying file.
func (l *FileLock) Unlock() error {
	if l == nil || l.f == nil {
		return nil
	}
	err := unix.Flock(int(l.f.Fd()), unix.LOCK_UN)
	closeErr := l.f.Close()
	if err != nil {
		return err
	}
	return closeErr
}
