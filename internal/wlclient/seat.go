package wlclient

import (
	"github.com/rajveermalviya/go-wayland/wayland/client"

	"github.com/wayscriber/wayscriber/internal/geom"
	"github.com/wayscriber/wayscriber/internal/input"
)

// SeatState tracks the single keyboard/pointer pair spec.md §4.I
// requests ("at most one keyboard and one pointer"), translating raw
// protocol events into the input package's Action/modifier vocabulary
// so callers never see wl_keyboard keycodes directly.
type SeatState struct {
	Keyboard *client.Keyboard
	Pointer  *client.Pointer

	Cursor geom.PointF

	ModCtrl, ModShift, ModAlt bool

	Bindings *input.BindingMap

	// Actions receives one Action per matched key press; unmatched
	// keys and all releases are dropped.
	Actions chan input.Action
	// PointerMotion receives the new absolute cursor position on every
	// wl_pointer.motion event.
	PointerMotion chan geom.PointF
	// PointerButton receives (button, pressed) on every wl_pointer.button
	// event; button numbers are the Linux evdev BTN_* codes.
	PointerButton chan PointerButtonEvent
	// TextInput receives one rune per wl_keyboard.key press that does
	// not resolve to a bound Action, for the text/sticky-note tools'
	// free-form typing.
	TextInput chan rune
}

// PointerButtonEvent is one wl_pointer.button event reduced to the
// fields input handling needs.
type PointerButtonEvent struct {
	Button  uint32
	Pressed bool
	At      geom.PointF
}

// NewSeatState allocates a SeatState with buffered channels sized
// generously enough that one dispatch iteration never blocks on a
// slow consumer.
func NewSeatState(bindings *input.BindingMap) *SeatState {
	return &SeatState{
		Bindings:      bindings,
		Actions:       make(chan input.Action, 64),
		PointerMotion: make(chan geom.PointF, 64),
		PointerButton: make(chan PointerButtonEvent, 64),
		TextInput:     make(chan rune, 64),
	}
}

// BindSeat requests the keyboard/pointer capabilities seat advertises
// and wires listeners into s.
func (s *SeatState) BindSeat(seat *client.Seat) error {
	seat.SetCapabilitiesHandler(func(ev client.SeatCapabilitiesEvent) {
		const capPointer = 1
		const capKeyboard = 2
		if ev.Capabilities&capPointer != 0 && s.Pointer == nil {
			if p, err := seat.GetPointer(); err == nil {
				s.Pointer = p
				s.bindPointer(p)
			}
		}
		if ev.Capabilities&capKeyboard != 0 && s.Keyboard == nil {
			if k, err := seat.GetKeyboard(); err == nil {
				s.Keyboard = k
				s.bindKeyboard(k)
			}
		}
	})
	return nil
}

func (s *SeatState) bindPointer(p *client.Pointer) {
	p.SetMotionHandler(func(ev client.PointerMotionEvent) {
		s.Cursor = geom.PointF{X: fixedToFloat(ev.SurfaceX), Y: fixedToFloat(ev.SurfaceY)}
		select {
		case s.PointerMotion <- s.Cursor:
		default:
		}
	})
	p.SetButtonHandler(func(ev client.PointerButtonEvent) {
		const stateReleased = 0
		select {
		case s.PointerButton <- PointerButtonEvent{Button: ev.Button, Pressed: ev.State != stateReleased, At: s.Cursor}:
		default:
		}
	})
}

func (s *SeatState) bindKeyboard(k *client.Keyboard) {
	k.SetModifiersHandler(func(ev client.KeyboardModifiersEvent) {
		const (
			modCtrl  = 1 << 2
			modShift = 1 << 0
			modAlt   = 1 << 3
		)
		s.ModCtrl = ev.ModsDepressed&modCtrl != 0
		s.ModShift = ev.ModsDepressed&modShift != 0
		s.ModAlt = ev.ModsDepressed&modAlt != 0
	})
	k.SetKeyHandler(func(ev client.KeyboardKeyEvent) {
		const stateReleased = 0
		if ev.State == stateReleased {
			return
		}
		name := KeyName(ev.Key)
		if s.Bindings != nil {
			if action, ok := s.Bindings.Resolve(name, s.ModCtrl, s.ModShift, s.ModAlt); ok {
				select {
				case s.Actions <- action:
				default:
				}
				return
			}
		}
		if r, ok := printableRune(name); ok {
			select {
			case s.TextInput <- r:
			default:
			}
		}
	})
}

// fixedToFloat converts a wl_fixed_t (24.8 fixed-point) to float64.
func fixedToFloat(v int32) float64 {
	return float64(v) / 256.0
}

// printableRune reports the single-rune text a key name represents,
// for single-letter/digit/space keys; multi-character names (e.g.
// "escape", "f1") never produce text input.
func printableRune(name string) (rune, bool) {
	if len(name) == 1 {
		return rune(name[0]), true
	}
	if name == "space" {
		return ' ', true
	}
	return 0, false
}
