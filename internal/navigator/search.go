package navigator

import "github.com/zopdev/chartdoc/internal/sidebar"

// Filter applies a live search query to the sidebar. The heading index and
// the content are not affected.
func (n *Navigator) Filter(query string) {
	n.mu.Lock()
	n.query = query
	n.sidebar.Filter(query)
	n.mu.Unlock()
	n.notify()
}

// ToggleSearch opens or closes the search box and reports whether it is
// now open. Closing clears the query and shows every entry again.
func (n *Navigator) ToggleSearch() bool {
	n.mu.Lock()
	n.searchOpen = !n.searchOpen
	open := n.searchOpen
	if !open {
		n.query = ""
		n.sidebar.Filter("")
	}
	n.mu.Unlock()

	n.notify()
	return open
}

// Query returns the current search query.
func (n *Navigator) Query() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.query
}

// SearchOpen reports whether the search box is open.
func (n *Navigator) SearchOpen() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.searchOpen
}

// Visible returns the sidebar entries not hidden by the current query.
func (n *Navigator) Visible() []sidebar.Entry {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sidebar.Visible()
}
