package overlay

// LockedClass is put on the root element while scrolling is suspended. The
// stylesheet pairs it with overflow: hidden and a stable scrollbar gutter so the
// page does not shift when the scrollbar disappears.
const LockedClass = "scroll-locked"

// PageLock is the ScrollLock for a server-rendered page. It only records whether
// the page must render with scrolling suspended.
type PageLock struct {
	held bool
}

func (l *PageLock) Acquire() { l.held = true }

func (l *PageLock) Release() { l.held = false }

func (l *PageLock) Held() bool { return l.held }

// Class is the root element class for the current lock state.
func (l *PageLock) Class() string {
	if l.held {
		return LockedClass
	}
	return ""
}
