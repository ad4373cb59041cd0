package navigator

import "sync"

// Viewport is the scrollable content region the navigator drives.
type Viewport interface {
	// ScrollTop is the current vertical scroll position of the region.
	ScrollTop() float64
	// OffsetTop is the vertical offset of the heading with the given id.
	OffsetTop(id string) (float64, bool)
	// ScrollToTop smoothly scrolls the region to its top.
	ScrollToTop()
	// ScrollIntoView smoothly scrolls the heading to the top of the viewport.
	ScrollIntoView(id string)
}

// StaticViewport is a Viewport with fixed metrics that records scroll
// requests instead of performing them. It backs views with no live page
// behind them, such as the JSON API and the CLI.
type StaticViewport struct {
	mu      sync.Mutex
	top     float64
	offsets map[string]float64
	scrolls []string
}

// NewStaticViewport returns a viewport scrolled to top with the given heading offsets.
func NewStaticViewport(top float64, offsets map[string]float64) *StaticViewport {
	return &StaticViewport{top: top, offsets: offsets}
}

func (v *StaticViewport) ScrollTop() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.top
}

func (v *StaticViewport) OffsetTop(id string) (float64, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	off, ok := v.offsets[id]
	return off, ok
}

func (v *StaticViewport) ScrollToTop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.top = 0
	v.scrolls = append(v.scrolls, "")
}

func (v *StaticViewport) ScrollIntoView(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if off, ok := v.offsets[id]; ok {
		v.top = off
	}
	v.scrolls = append(v.scrolls, id)
}

// SetScrollTop moves the scroll position, as a user scrolling would.
func (v *StaticViewport) SetScrollTop(top float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.top = top
}

// Scrolls returns the scroll requests received so far; "" means top.
func (v *StaticViewport) Scrolls() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.scrolls...)
}
