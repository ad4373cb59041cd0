package navigator

// ShowAll scrolls back to the top of the document and resets the sidebar:
// no active entry, empty query, everything visible, search closed.
func (n *Navigator) ShowAll() {
	n.viewport.ScrollToTop()

	n.mu.Lock()
	n.sidebar.SetActive("")
	n.query = ""
	n.sidebar.Filter("")
	n.searchOpen = false
	n.mu.Unlock()

	n.notify()
}

// ScrollToSection scrolls the heading with id into view and marks its entry
// active, then re-evaluates the active section once the scroll has settled.
// It reports false if no heading has that id.
func (n *Navigator) ScrollToSection(id string) bool {
	n.mu.Lock()
	ok := n.hasHeading(id)
	n.mu.Unlock()
	if !ok {
		return false
	}

	n.viewport.ScrollIntoView(id)

	n.mu.Lock()
	n.sidebar.SetActive(id)
	n.mu.Unlock()
	n.notify()

	n.opts.Schedule(n.opts.ClickSettleDelay, func() { n.HighlightActiveSection() })
	return true
}

// HighlightActiveSection determines which heading is in view: scanning
// from the last heading backwards, the first whose offset is at or above
// the scroll position plus the scroll offset. It returns "" if none is.
// The marker is moved only when Options.SpyAppliesMarker is set.
func (n *Navigator) HighlightActiveSection() string {
	n.mu.Lock()
	active := n.activeSectionLocked()
	changed := false
	if n.opts.SpyAppliesMarker && n.sidebar.Active() != active {
		n.sidebar.SetActive(active)
		changed = true
	}
	n.mu.Unlock()

	if changed {
		n.notify()
	}
	return active
}

func (n *Navigator) activeSectionLocked() string {
	pos := n.viewport.ScrollTop() + n.opts.ScrollOffset
	for i := len(n.headings) - 1; i >= 0; i-- {
		off, ok := n.viewport.OffsetTop(n.headings[i].ID)
		if !ok {
			continue
		}
		if pos >= off {
			return n.headings[i].ID
		}
	}
	return ""
}

// OnScroll handles a scroll of the content region.
func (n *Navigator) OnScroll() { n.HighlightActiveSection() }

// OnResize handles a window resize.
func (n *Navigator) OnResize() { n.HighlightActiveSection() }
