package viewer

import "sync"

// ClientViewport is a navigator.Viewport backed by a remote page: scroll
// metrics arrive with client events and scroll requests are sent back.
type ClientViewport struct {
	send func(target string)

	mu      sync.Mutex
	top     float64
	offsets map[string]float64
}

// NewClientViewport returns a viewport that forwards scroll requests to
// send; an empty target means the top of the content region.
func NewClientViewport(send func(target string)) *ClientViewport {
	return &ClientViewport{send: send, offsets: make(map[string]float64)}
}

// Update stores the latest metrics reported by the client. A nil offsets
// map keeps the previous heading offsets.
func (v *ClientViewport) Update(top float64, offsets map[string]float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.top = top
	if offsets != nil {
		v.offsets = offsets
	}
}

func (v *ClientViewport) ScrollTop() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.top
}

func (v *ClientViewport) OffsetTop(id string) (float64, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	off, ok := v.offsets[id]
	return off, ok
}

func (v *ClientViewport) ScrollToTop() { v.send("") }

func (v *ClientViewport) ScrollIntoView(id string) { v.send(id) }
