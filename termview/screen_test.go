package termview

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

type screenCell struct {
	r     rune
	style tcell.Style
}

// mockScreen records what gets drawn, everything else panics.
type mockScreen struct {
	tcell.Screen

	mu            sync.Mutex
	width, height int
	content       map[[2]int]screenCell
	shows         int
	syncs         int

	events chan tcell.Event
}

func newMockScreen(w, h int) *mockScreen {
	return &mockScreen{
		width:   w,
		height:  h,
		content: make(map[[2]int]screenCell),
		events:  make(chan tcell.Event, 10),
	}
}

func (m *mockScreen) Size() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

func (m *mockScreen) setSize(w, h int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width, m.height = w, h
}

func (m *mockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content[[2]int{x, y}] = screenCell{mainc, style}
}

func (m *mockScreen) get(x, y int) screenCell {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.content[[2]int{x, y}]
}

func (m *mockScreen) Show() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shows++
}

func (m *mockScreen) showCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shows
}

func (m *mockScreen) Sync() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncs++
}

func (m *mockScreen) PollEvent() tcell.Event {
	ev, ok := <-m.events
	if !ok {
		return nil
	}
	return ev
}
