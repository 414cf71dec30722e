// Command wayscriber is the Wayland overlay annotation compositor
// client. It binds the session-wide compositor globals, restores any
// persisted session, and runs the cooperative dispatch loop until
// asked to exit.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/wayscriber/wayscriber/internal/canvas"
	"github.com/wayscriber/wayscriber/internal/capture"
	"github.com/wayscriber/wayscriber/internal/config"
	"github.com/wayscriber/wayscriber/internal/config/keybindings"
	"github.com/wayscriber/wayscriber/internal/geom"
	"github.com/wayscriber/wayscriber/internal/input"
	"github.com/wayscriber/wayscriber/internal/logging"
	"github.com/wayscriber/wayscriber/internal/raster"
	"github.com/wayscriber/wayscriber/internal/render"
	"github.com/wayscriber/wayscriber/internal/session"
	"github.com/wayscriber/wayscriber/internal/toolbar"
	"github.com/wayscriber/wayscriber/internal/wlclient"
	"github.com/wayscriber/wayscriber/internal/wlproto"
	"github.com/wayscriber/wayscriber/internal/xdgpaths"
)

// exit codes per spec.md §6.
const (
	exitOK              = 0
	exitError           = 1
	exitAlreadyRunning  = 2
)

type flags struct {
	daemon             bool
	active             bool
	mode               string
	freeze             bool
	exitAfterCapture   bool
	noExitAfterCapture bool
	resumeSession      bool
	noResumeSession    bool
	clearSession       bool
	sessionInfo        bool
	about              bool
	noTray             bool
	display            string
	configPath         string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var f flags
	log := logging.New()

	root := &cobra.Command{
		Use:           "wayscriber",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return execute(cmd.Context(), f, log)
		},
	}
	root.Flags().BoolVarP(&f.daemon, "daemon", "d", false, "run as a background service awaiting toggle")
	root.Flags().BoolVarP(&f.active, "active", "a", false, "show the overlay immediately (one-shot)")
	root.Flags().StringVarP(&f.mode, "mode", "m", "", "initial board id")
	root.Flags().BoolVar(&f.freeze, "freeze", false, "start with frozen mode active")
	root.Flags().BoolVar(&f.exitAfterCapture, "exit-after-capture", false, "exit once a capture is saved")
	root.Flags().BoolVar(&f.noExitAfterCapture, "no-exit-after-capture", false, "keep running after a capture is saved")
	root.Flags().BoolVar(&f.resumeSession, "resume-session", false, "restore the persisted session")
	root.Flags().BoolVar(&f.noResumeSession, "no-resume-session", false, "start with an empty session")
	root.Flags().BoolVar(&f.clearSession, "clear-session", false, "delete the persisted session and exit")
	root.Flags().BoolVar(&f.sessionInfo, "session-info", false, "print a summary of the persisted session and exit")
	root.Flags().BoolVar(&f.about, "about", false, "print version information and exit")
	root.Flags().BoolVar(&f.noTray, "no-tray", false, "disable the tray icon when running as daemon")
	root.Flags().StringVar(&f.display, "display", "", "override WAYLAND_DISPLAY")
	root.Flags().StringVar(&f.configPath, "config", "", "override the config file path")

	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if code, ok := exitCodeOf(err); ok {
			return code
		}
		log.Error("wayscriber exiting", "error", err)
		return exitError
	}
	return exitOK
}

type exitCodeErr struct {
	code int
	err  error
}

func (e *exitCodeErr) Error() string { return e.err.Error() }
func (e *exitCodeErr) Unwrap() error { return e.err }

func exitCodeOf(err error) (int, bool) {
	var e *exitCodeErr
	if ok := asExitCodeErr(err, &e); ok {
		return e.code, true
	}
	return 0, false
}

func asExitCodeErr(err error, target **exitCodeErr) bool {
	for err != nil {
		if e, ok := err.(*exitCodeErr); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

func execute(ctx context.Context, f flags, log interface {
	Info(string, ...any)
	Error(string, ...any)
	Warn(string, ...any)
}) error {
	if f.about {
		fmt.Println("wayscriber — Wayland overlay annotation compositor client")
		return nil
	}

	cfgPath := f.configPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Warn("config load failed, using defaults", "error", err)
		cfg = config.Default()
	}

	displayId := xdgpaths.ResolveDisplayId(f.display)
	opts := session.NewOptions(filepath.Join(xdgpaths.DataDir(), "wayscriber"), displayId)

	if f.clearSession {
		outcome, err := session.Clear(opts)
		if err != nil {
			return err
		}
		log.Info("session cleared", "files_removed", outcome)
		return nil
	}
	if f.sessionInfo {
		snap, err := session.Load(opts)
		if err != nil {
			return err
		}
		fmt.Printf("boards=%d active=%s\n", len(snap.Boards), snap.ActiveBoardId)
		return nil
	}

	runtimeDir := filepath.Join(xdgpaths.RuntimeRoot(), "wayscriber")
	if err := os.MkdirAll(runtimeDir, 0o755); err != nil {
		return &exitCodeErr{exitError, err}
	}
	lockPath := filepath.Join(runtimeDir, "wayscriber.lock")
	lock, err := session.TryLockExclusive(lockPath)
	if err != nil {
		return &exitCodeErr{exitError, err}
	}
	if lock == nil {
		return &exitCodeErr{exitAlreadyRunning, fmt.Errorf("wayscriber is already running (lock held at %s)", lockPath)}
	}
	defer lock.Unlock()

	resume := opts.RestoreToolState
	if f.resumeSession {
		resume = true
	}
	if f.noResumeSession {
		resume = false
	}

	cs := canvas.NewCanvasSet(8)
	if resume {
		if snap, err := session.Load(opts); err == nil && len(snap.Boards) > 0 {
			boards, activeId := session.ApplySnapshot(snap)
			cs.Boards = boards
			if idx, ok := indexOfBoard(boards, activeId); ok {
				cs.ActiveBoard = idx
			}
		}
	}

	st := input.NewState(cs)
	st.SetThickness(cfg.Performance.DefaultThickness)
	st.SetFontSize(cfg.Performance.DefaultFontSize)
	if f.mode != "" {
		cs.SwitchBoardForce(f.mode)
	}

	bindings, err := keybindings.BuildActionMap(cfg.Keybindings)
	if err != nil {
		log.Warn("keybinding table invalid, using defaults", "error", err)
		bindings, _ = keybindings.BuildActionMap(nil)
	}

	conn, err := wlproto.Connect(f.display)
	if err != nil {
		return &exitCodeErr{exitError, err}
	}

	seatState := wlclient.NewSeatState(bindings)
	if conn.Seat != nil {
		if err := seatState.BindSeat(conn.Seat); err != nil {
			log.Warn("seat binding failed", "error", err)
		}
	}

	var output *wlclient.Output
	if conn.Output != nil {
		output = wlclient.TrackOutput(conn.Output)
	}
	screencopySrc := wlclient.NewScreencopy(conn, output)

	capturePipe := capture.NewPipeline(2.0)
	if f.freeze && screencopySrc.Supported() && output != nil {
		if err := capturePipe.BeginCapture(ctx, screencopySrc, output.Bounds()); err != nil {
			log.Warn("initial freeze capture failed", "error", err)
		}
	}

	width, height := 1920, 1080
	if output != nil && output.Size.X > 0 && output.Size.Y > 0 {
		width, height = output.Size.X, output.Size.Y
	}
	surface, err := wlclient.NewCanvasSurface(conn, "com.devmobasa.wayscriber", width, height)
	if err != nil {
		return &exitCodeErr{exitError, err}
	}
	defer surface.Close()
	if err := surface.Surface.WaitConfigured(); err != nil {
		return &exitCodeErr{exitError, err}
	}

	orch := &render.Orchestrator{}
	loop := wlclient.New(conn)
	loop.OnIteration = func() {
		drainSeatEvents(seatState, st, loop)
		st.AdvanceClickHighlights(time.Now())
		if err := capturePipe.PollPortal(); err != nil {
			log.Warn("portal capture failed", "error", err)
		}
		ctxRaster := &raster.Context{Dst: surface.PixBuffer()}
		orch.Paint(ctxRaster, st, capturePipe, buildOverlay(st, width), time.Now())
		if err := surface.Submit(ctxRaster.Dst.Rect); err != nil {
			log.Warn("submit failed", "error", err)
		}
		if !f.active && !f.daemon {
			loop.RequestExit()
		}
	}

	autosave := session.NewAutosaveScheduler(opts, time.Now())
	loop.Deadline = func() *time.Time {
		d := autosave.NextDeadline()
		return &d
	}

	if err := loop.Run(ctx); err != nil {
		return &exitCodeErr{exitError, err}
	}

	if opts.PersistTransparent || opts.PersistWhiteboard || opts.PersistBlackboard {
		snap := session.SnapshotFromBoards(cs.Boards, cs.Boards[cs.ActiveBoard].Spec.Id, opts, nil, func(*canvas.BoardState) string { return "transparent" })
		if err := session.Save(opts, snap); err != nil {
			log.Warn("final autosave failed", "error", err)
		}
	}
	return nil
}

// drainSeatEvents applies every seat event queued since the last
// iteration to st, non-blocking: an idle seat (nothing typed or
// moved) costs one non-blocking select over its four channels.
func drainSeatEvents(seat *wlclient.SeatState, st *input.State, loop *wlclient.Loop) {
	for {
		select {
		case a := <-seat.Actions:
			st.ModCtrl, st.ModShift, st.ModAlt = seat.ModCtrl, seat.ModShift, seat.ModAlt
			if st.Dispatch(a) {
				loop.RequestExit()
			}
			continue
		case r := <-seat.TextInput:
			if st.Drawing.Kind == input.StateTextInput {
				st.Drawing.TextBufferAppend(r)
			}
			continue
		case p := <-seat.PointerMotion:
			st.Drawing.DragLast = geom.ToPoint(p)
			if st.Drawing.Kind == input.StateDrawing {
				st.UpdateDraw(geom.ToPoint(p))
			}
			continue
		case b := <-seat.PointerButton:
			const btnLeft = 0x110
			if b.Button == btnLeft {
				at := geom.ToPoint(b.At)
				if b.Pressed {
					if st.ShowClickHighlight {
						st.PushClickHighlight(st.NewClickHighlight(at, time.Now()))
					}
					st.BeginDraw(at)
				} else {
					st.CommitDraw()
				}
			}
			continue
		default:
		}
		return
	}
}

// buildOverlay derives the top toolbar's layout and hit regions from
// st each frame, the generalized form of menu.go building one Menu[T]
// per invocation from its config-file item list.
func buildOverlay(st *input.State, surfaceWidth int) render.Overlay {
	snap := toolbar.ToolbarSnapshot{
		Tool:      st.Tool,
		Color:     st.Color,
		Thickness: st.Thickness,
		FontSize:  st.FontSize,
		Mode:      toolbar.LayoutRegular,
	}
	rows := toolbar.BuildToolRows(snap)
	layout := toolbar.ComputeLayout(toolbar.PanelTop, rows, 0, surfaceWidth)
	regions := toolbar.EnumerateHitRegions(layout, geom.Point{})
	return render.Overlay{
		TopLayout:  layout,
		TopRegions: regions,
		ShowHelp:   st.ShowHelp,
	}
}

func indexOfBoard(boards []*canvas.BoardState, id string) (int, bool) {
	for i, b := range boards {
		if b.Spec.Id == id {
			return i, true
		}
	}
	return 0, false
}
