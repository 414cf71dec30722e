// Package wlclient is the single-threaded cooperative Wayland client:
// one dispatch loop owns the connection, surfaces, and shm pools, and
// the handful of permitted background workers (signal handling,
// clipboard write, portal screenshot) hand results back over channels rather
// than touching protocol objects directly, matching spec.md §5's
// concurrency contract.
package wlclient

import (
	"os"
	"syscall"

	"github.com/wayscriber/wayscriber/internal/wyerr"
)

// createShmTempFile allocates an anonymous, already-unlinked file in
// XDG_RUNTIME_DIR sized for one shm pool, the same tmpfile dance the
// teacher's wayland.go createTmpfile performs.
func createShmTempFile(size int64) (*os.File, error) {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		return nil, wyerr.New(wyerr.IO, "XDG_RUNTIME_DIR is not set")
	}
	f, err := os.CreateTemp(dir, "wayscriber-shm-*")
	if err != nil {
		return nil, wyerr.Wrap(wyerr.IO, err, "create shm tempfile")
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, wyerr.Wrap(wyerr.IO, err, "truncate shm tempfile")
	}
	if err := os.Remove(f.Name()); err != nil {
		f.Close()
		return nil, wyerr.Wrap(wyerr.IO, err, "unlink shm tempfile")
	}
	return f, nil
}

// mmapShmFile maps size bytes of f read/write/shared, the layout a
// wl_shm_pool buffer is backed by.
func mmapShmFile(f *os.File, size int) ([]byte, error) {
	buf, err := syscall.Mmap(int(f.Fd()), 0, size, syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		return nil, wyerr.Wrap(wyerr.IO, err, "mmap shm pool")
	}
	return buf, nil
}

func munmapShmFile(buf []byte) error {
	if err := syscall.Munmap(buf); err != nil {
		return wyerr.Wrap(wyerr.IO, err, "munmap shm pool")
	}
	return nil
}
