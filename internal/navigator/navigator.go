// Package navigator indexes the headings of a rendered README, builds the
// sidebar from them and keeps the active-section marker in sync with
// clicks and scrolling.
package navigator

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/zopdev/chartdoc/internal/sidebar"
)

// HeadingSelector matches the headings that get sidebar entries.
const HeadingSelector = "h1, h2"

// Heading is one indexed heading of the rendered document.
type Heading struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// Scheduler runs fn once after d.
type Scheduler func(d time.Duration, fn func())

// Options configures a Navigator.
type Options struct {
	ScrollOffset     float64
	InitialSpyDelay  time.Duration
	ClickSettleDelay time.Duration
	SpyAppliesMarker bool
	Schedule         Scheduler
}

// DefaultOptions mirrors the page defaults: an 80px offset, a 100ms delay
// after building and a 300ms settle delay after a click.
func DefaultOptions() Options {
	return Options{
		ScrollOffset:     80,
		InitialSpyDelay:  100 * time.Millisecond,
		ClickSettleDelay: 300 * time.Millisecond,
		SpyAppliesMarker: true,
	}
}

// State is a snapshot of everything the sidebar displays.
type State struct {
	Headings   []Heading       `json:"headings"`
	Entries    []sidebar.Entry `json:"entries"`
	Active     string          `json:"active"`
	Query      string          `json:"query"`
	SearchOpen bool            `json:"search_open"`
}

// Navigator owns the heading index, the sidebar and the search state of
// one page. Methods are safe for concurrent use; scheduled re-evaluations
// run on timer goroutines.
type Navigator struct {
	opts     Options
	viewport Viewport

	mu         sync.Mutex
	headings   []Heading
	sidebar    sidebar.Sidebar
	query      string
	searchOpen bool
	listeners  []func(State)
}

// New creates a Navigator driving viewport.
func New(opts Options, viewport Viewport) *Navigator {
	if opts.Schedule == nil {
		opts.Schedule = func(d time.Duration, fn func()) { time.AfterFunc(d, fn) }
	}
	return &Navigator{opts: opts, viewport: viewport}
}

// Subscribe registers fn to receive a snapshot after every state change.
// Listeners may run on any goroutine and in any order.
func (n *Navigator) Subscribe(fn func(State)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

// Build replaces the heading index and sidebar with those of src and
// returns src with every indexed heading carrying its id. Headings without
// an id get "section-<i>", i being the position among all matched headings.
// src is parsed as the children of the content region, so nothing in it is
// moved out into a document head.
func (n *Navigator) Build(src string) (string, error) {
	region := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(src), region)
	if err != nil {
		return "", fmt.Errorf("parsing rendered html: %w", err)
	}
	for _, node := range nodes {
		region.AppendChild(node)
	}
	doc := goquery.NewDocumentFromNode(region)

	var headings []Heading
	doc.Find(HeadingSelector).Each(func(i int, sel *goquery.Selection) {
		id, _ := sel.Attr("id")
		if id == "" {
			id = fmt.Sprintf("section-%d", i)
		}
		sel.SetAttr("id", id)

		level := 1
		if sel.Nodes[0].DataAtom == atom.H2 {
			level = 2
		}
		headings = append(headings, Heading{ID: id, Text: sel.Text(), Level: level})
	})

	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("serializing html: %w", err)
	}

	n.mu.Lock()
	n.headings = headings
	n.sidebar.Reset()
	n.sidebar.AppendShowAll()
	for _, h := range headings {
		n.sidebar.Append(h.ID, h.Text, h.Level)
	}
	n.sidebar.Filter(n.query)
	n.mu.Unlock()

	n.notify()
	n.opts.Schedule(n.opts.InitialSpyDelay, func() { n.HighlightActiveSection() })
	return out, nil
}

// Clear drops the heading index and every sidebar entry.
func (n *Navigator) Clear() {
	n.mu.Lock()
	n.headings = nil
	n.sidebar.Reset()
	n.mu.Unlock()
	n.notify()
}

// Headings returns the current heading index.
func (n *Navigator) Headings() []Heading {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Heading(nil), n.headings...)
}

// Snapshot returns the current state.
func (n *Navigator) Snapshot() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.snapshotLocked()
}

func (n *Navigator) snapshotLocked() State {
	return State{
		Headings:   append([]Heading(nil), n.headings...),
		Entries:    n.sidebar.Entries(),
		Active:     n.sidebar.Active(),
		Query:      n.query,
		SearchOpen: n.searchOpen,
	}
}

func (n *Navigator) notify() {
	n.mu.Lock()
	state := n.snapshotLocked()
	listeners := append([]func(State){}, n.listeners...)
	n.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}

func (n *Navigator) hasHeading(id string) bool {
	for _, h := range n.headings {
		if h.ID == id {
			return true
		}
	}
	return false
}
