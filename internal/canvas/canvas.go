// Package canvas implements the multi-board, multi-page canvas model:
// BoardSpec, BoardState, and CanvasSet.
package canvas

import (
	"github.com/google/uuid"
	"github.com/wayscriber/wayscriber/internal/frame"
	"github.com/wayscriber/wayscriber/internal/geom"
)

// BoardSpec is the identity and static configuration of one board.
type BoardSpec struct {
	Id               string
	Name             string
	Pinned           bool
	Background       geom.Color
	PenColorOverride *geom.Color
}

// NewBoardSpec returns a BoardSpec with a freshly generated id.
func NewBoardSpec(name string, background geom.Color) BoardSpec {
	return BoardSpec{Id: uuid.NewString(), Name: name, Background: background}
}

// PageDeleteOutcome reports what DeletePage actually did.
type PageDeleteOutcome int

const (
	PageRemoved PageDeleteOutcome = iota
	PageCleared
)

// BoardState is a board's identity plus its ordered pages and the
// currently active page index. A BoardState always has at least one
// page; deleting the last page clears it rather than removing it.
type BoardState struct {
	Spec       BoardSpec
	Pages      []*frame.Frame
	ActivePage int
}

// NewBoardState returns a BoardState with a single empty page.
func NewBoardState(spec BoardSpec) *BoardState {
	return &BoardState{Spec: spec, Pages: []*frame.Frame{frame.New()}}
}

// FromPages builds a BoardState from existing pages (e.g. on session
// load), pushing an empty page if pages is empty and clamping active
// into range.
func FromPages(spec BoardSpec, pages []*frame.Frame, active int) *BoardState {
	if len(pages) == 0 {
		pages = []*frame.Frame{frame.New()}
	}
	if active < 0 {
		active = 0
	}
	if active >= len(pages) {
		active = len(pages) - 1
	}
	return &BoardState{Spec: spec, Pages: pages, ActivePage: active}
}

// PageCount returns the number of pages.
func (b *BoardState) PageCount() int { return len(b.Pages) }

// ActiveFrame returns the currently active page's Frame.
func (b *BoardState) ActiveFrame() *frame.Frame { return b.Pages[b.ActivePage] }

// NextPage advances to the next page, reporting whether it moved.
func (b *BoardState) NextPage() bool {
	if b.ActivePage+1 >= len(b.Pages) {
		return false
	}
	b.ActivePage++
	return true
}

// PrevPage moves to the previous page, reporting whether it moved.
func (b *BoardState) PrevPage() bool {
	if b.ActivePage == 0 {
		return false
	}
	b.ActivePage--
	return true
}

// NewPage appends an empty page and activates it.
func (b *BoardState) NewPage() {
	b.Pages = append(b.Pages, frame.New())
	b.ActivePage = len(b.Pages) - 1
}

// DuplicatePage appends a shapes-only copy of the active page (no
// history) and activates it.
func (b *BoardState) DuplicatePage() {
	dup := b.ActiveFrame().CloneWithoutHistory()
	b.Pages = append(b.Pages, dup)
	b.ActivePage = len(b.Pages) - 1
}

// DeletePage removes the active page, or if it is the only page,
// clears it in place instead.
func (b *BoardState) DeletePage() PageDeleteOutcome {
	if len(b.Pages) == 1 {
		b.Pages[0] = frame.New()
		return PageCleared
	}
	idx := b.ActivePage
	b.Pages = append(b.Pages[:idx], b.Pages[idx+1:]...)
	if b.ActivePage >= len(b.Pages) {
		b.ActivePage = len(b.Pages) - 1
	}
	return PageRemoved
}

// TrimTrailingEmptyPages pops trailing pages with no persistable data,
// always leaving at least one page, and re-clamps ActivePage.
func (b *BoardState) TrimTrailingEmptyPages() {
	for len(b.Pages) > 1 && !b.Pages[len(b.Pages)-1].HasPersistableData() {
		b.Pages = b.Pages[:len(b.Pages)-1]
	}
	if b.ActivePage >= len(b.Pages) {
		b.ActivePage = len(b.Pages) - 1
	}
}

// CanvasSet owns the collection of boards in a process, their MRU
// order, and which one is active. It never allows the last board to be
// deleted.
type CanvasSet struct {
	Boards      []*BoardState
	ActiveBoard int
	mru         []string
	MaxBoards   int
}

// NewCanvasSet returns a CanvasSet with one default board.
func NewCanvasSet(maxBoards int) *CanvasSet {
	spec := NewBoardSpec("Board 1", geom.Color{A: 0})
	b := NewBoardState(spec)
	cs := &CanvasSet{Boards: []*BoardState{b}, MaxBoards: maxBoards}
	cs.touchMru(spec.Id)
	return cs
}

func (cs *CanvasSet) touchMru(id string) {
	filtered := cs.mru[:0:0]
	for _, x := range cs.mru {
		if x != id {
			filtered = append(filtered, x)
		}
	}
	cs.mru = append([]string{id}, filtered...)
}

// Active returns the currently active board.
func (cs *CanvasSet) Active() *BoardState { return cs.Boards[cs.ActiveBoard] }

func (cs *CanvasSet) indexOf(id string) (int, bool) {
	for i, b := range cs.Boards {
		if b.Spec.Id == id {
			return i, true
		}
	}
	return 0, false
}

// SwitchBoardForce switches to the board with the given id if present,
// updating MRU, and reports success.
func (cs *CanvasSet) SwitchBoardForce(id string) bool {
	idx, ok := cs.indexOf(id)
	if !ok {
		return false
	}
	cs.ActiveBoard = idx
	cs.touchMru(id)
	return true
}

// SwitchBoardSlot switches to the nth board (0-based) in creation order,
// used for the Board1..Board9 shortcuts.
func (cs *CanvasSet) SwitchBoardSlot(slot int) bool {
	if slot < 0 || slot >= len(cs.Boards) {
		return false
	}
	cs.ActiveBoard = slot
	cs.touchMru(cs.Boards[slot].Spec.Id)
	return true
}

// SwitchRecent switches to the most-recently-used board other than the
// active one, reporting success.
func (cs *CanvasSet) SwitchRecent() bool {
	active := cs.Active().Spec.Id
	for _, id := range cs.mru {
		if id != active {
			return cs.SwitchBoardForce(id)
		}
	}
	return false
}

// NewBoard creates and activates a new board, enforcing MaxBoards if
// set; reports whether it was created.
func (cs *CanvasSet) NewBoard(name string) bool {
	if cs.MaxBoards > 0 && len(cs.Boards) >= cs.MaxBoards {
		return false
	}
	spec := NewBoardSpec(name, geom.Color{A: 0})
	cs.Boards = append(cs.Boards, NewBoardState(spec))
	cs.ActiveBoard = len(cs.Boards) - 1
	cs.touchMru(spec.Id)
	return true
}

// DeleteBoard removes the board with id, refusing to remove the only
// remaining board. Reports success.
func (cs *CanvasSet) DeleteBoard(id string) bool {
	if len(cs.Boards) <= 1 {
		return false
	}
	idx, ok := cs.indexOf(id)
	if !ok {
		return false
	}
	cs.Boards = append(cs.Boards[:idx], cs.Boards[idx+1:]...)
	filtered := cs.mru[:0:0]
	for _, x := range cs.mru {
		if x != id {
			filtered = append(filtered, x)
		}
	}
	cs.mru = filtered
	if cs.ActiveBoard >= len(cs.Boards) {
		cs.ActiveBoard = len(cs.Boards) - 1
	}
	return true
}

// PickerOrder returns board indices sorted pinned-before-unpinned,
// preserving insertion order within each group.
func (cs *CanvasSet) PickerOrder() []int {
	var pinned, unpinned []int
	for i, b := range cs.Boards {
		if b.Spec.Pinned {
			pinned = append(pinned, i)
		} else {
			unpinned = append(unpinned, i)
		}
	}
	return append(pinned, unpinned...)
}
