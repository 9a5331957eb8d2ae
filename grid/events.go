package grid

type ListenerID uint64

type ResizeListener func()

type PointerListener func(x, y float64)

// EventTarget is where the grid listens for window events.
type EventTarget interface {
	AddResizeListener(fn ResizeListener) ListenerID
	AddPointerListener(fn PointerListener) ListenerID
	RemoveListener(id ListenerID)
}

// Events is an EventTarget hosts feed by hand.
type Events struct {
	nextID ListenerID

	resize  map[ListenerID]ResizeListener
	pointer map[ListenerID]PointerListener
}

func NewEvents() *Events {
	e := new(Events)
	e.resize = make(map[ListenerID]ResizeListener)
	e.pointer = make(map[ListenerID]PointerListener)
	return e
}

func (e *Events) AddResizeListener(fn ResizeListener) ListenerID {
	e.nextID++
	e.resize[e.nextID] = fn
	return e.nextID
}

func (e *Events) AddPointerListener(fn PointerListener) ListenerID {
	e.nextID++
	e.pointer[e.nextID] = fn
	return e.nextID
}

func (e *Events) RemoveListener(id ListenerID) {
	delete(e.resize, id)
	delete(e.pointer, id)
}

// Listeners returns number of registered listeners.
func (e *Events) Listeners() int {
	return len(e.resize) + len(e.pointer)
}

func (e *Events) DispatchResize() {
	for _, fn := range e.resize {
		fn()
	}
}

// DispatchPointerMove takes viewport coordinates in logical pixels.
func (e *Events) DispatchPointerMove(x, y float64) {
	for _, fn := range e.pointer {
		fn(x, y)
	}
}
