// Package overlay models the partnership detail overlay and its image lightbox.
//
// The overlay is Closed, Open on a selected partnership, or zoomed into one
// image (Lightbox). Page scrolling is suspended for as long as it is not Closed.
package overlay

type State int

const (
	Closed State = iota
	Open
	Lightbox
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case Lightbox:
		return "lightbox"
	default:
		return "unknown"
	}
}

// ScrollLock suspends page scrolling. Release must be safe to call when the lock
// is not held.
type ScrollLock interface {
	Acquire()
	Release()
}

type Overlay struct {
	lock     ScrollLock
	state    State
	selected string
	image    int
}

func New(lock ScrollLock) *Overlay {
	return &Overlay{lock: lock, image: -1}
}

func (o *Overlay) State() State { return o.state }

// Selected is the id of the partnership shown, empty when Closed.
func (o *Overlay) Selected() string { return o.selected }

// Image is the index of the zoomed image, -1 outside the lightbox.
func (o *Overlay) Image() int { return o.image }

// Select opens the overlay on a partnership. Selecting while open switches to
// the new partnership and leaves the lightbox.
func (o *Overlay) Select(id string) {
	if id == "" {
		return
	}
	if o.state == Closed {
		o.lock.Acquire()
	}
	o.selected = id
	o.image = -1
	o.state = Open
}

// Zoom opens the lightbox on image i. It does nothing while Closed.
func (o *Overlay) Zoom(i int) bool {
	if o.state == Closed || i < 0 {
		return false
	}
	o.image = i
	o.state = Lightbox
	return true
}

// Unzoom leaves the lightbox, back to the open overlay.
func (o *Overlay) Unzoom() {
	if o.state != Lightbox {
		return
	}
	o.image = -1
	o.state = Open
}

// Backdrop handles a click outside the content: it leaves the lightbox when
// zoomed, otherwise closes the overlay.
func (o *Overlay) Backdrop() {
	switch o.state {
	case Lightbox:
		o.Unzoom()
	case Open:
		o.Close()
	}
}

// Close returns to Closed and always releases the scroll lock, so it doubles as
// teardown.
func (o *Overlay) Close() {
	o.state = Closed
	o.selected = ""
	o.image = -1
	o.lock.Release()
}
