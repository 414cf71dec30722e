package wlclient

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/wayscriber/wayscriber/internal/wlproto"
)

// Loop is the single-threaded cooperative dispatch loop from spec.md
// §4.I: one goroutine drains the Wayland event queue via
// dispatch_pending/flush/poll, while a small fixed set of permitted
// background workers (signal handling, clipboard write, portal
// screenshot) communicate back only through channels and atomics,
// never by touching a protocol object directly.
type Loop struct {
	conn *wlproto.Conn

	shouldExit atomic.Bool
	trayAction atomic.Bool

	// Deadline reports the next animation/frame deadline so Run's poll
	// can wake in time for caret blink, click-highlight fade, and
	// delayed-undo ticks; nil means "nothing animating".
	Deadline func() *time.Time
	// OnIteration runs once per loop iteration after dispatch, the
	// caller's hook to redraw and re-submit a frame.
	OnIteration func()
}

// New wires a Loop to conn. It starts no worker; Run starts the
// signal-handling worker (SIGTERM/SIGINT set ShouldExit, SIGUSR2 sets
// TrayAction).
func New(conn *wlproto.Conn) *Loop {
	l := &Loop{conn: conn}
	return l
}

// ShouldExit reports whether the loop has been asked to stop, set
// either by the signal worker or by the input layer.
func (l *Loop) ShouldExit() bool { return l.shouldExit.Load() }

// RequestExit sets the exit flag; the loop breaks on its next
// iteration, never mid-dispatch.
func (l *Loop) RequestExit() { l.shouldExit.Store(true) }

// TrayAction reports and clears a pending SIGUSR2-triggered action.
func (l *Loop) TrayAction() bool { return l.trayAction.CompareAndSwap(true, false) }

// Run starts the signal worker and the main dispatch loop, blocking
// until ShouldExit is set or ctx is cancelled. The errgroup runs two
// goroutines, the signal worker and the dispatch loop; clipboard and
// portal workers are neither started nor supervised here.
func (l *Loop) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return l.runSignalWorker(ctx)
	})

	g.Go(func() error {
		return l.runDispatch(ctx)
	})

	return g.Wait()
}

func (l *Loop) runSignalWorker(ctx context.Context) error {
	sigCh := make(chan os.Signal, 4)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGUSR2)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig := <-sigCh:
			switch sig {
			case syscall.SIGTERM, syscall.SIGINT:
				l.RequestExit()
				return nil
			case syscall.SIGUSR2:
				l.trayAction.Store(true)
			}
		}
	}
}

// runDispatch is the cooperative poll(fd, timeout) -> dispatch loop
// from spec.md §4.I: it never blocks inside the Wayland binding
// itself, instead polling the display's raw fd with a timeout taken
// from Deadline.
func (l *Loop) runDispatch(ctx context.Context) error {
	fd := l.conn.DisplayFD()
	for !l.ShouldExit() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		timeoutMs := l.pollTimeoutMillis()
		pfd := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Poll(pfd, timeoutMs)
		if err != nil && err != unix.EINTR {
			return err
		}
		if n > 0 {
			if err := l.conn.Display.Context().Dispatch(); err != nil {
				return err
			}
		}

		if l.OnIteration != nil {
			l.OnIteration()
		}
	}
	return nil
}

// pollTimeoutMillis is the minimum of the next animation deadline and
// -1 ("block indefinitely") when nothing is animating, per spec.md
// §4.I.
func (l *Loop) pollTimeoutMillis() int {
	if l.Deadline == nil {
		return -1
	}
	d := l.Deadline()
	if d == nil {
		return -1
	}
	until := time.Until(*d)
	if until < 0 {
		return 0
	}
	return int(until.Milliseconds())
}
