package viewer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zopdev/chartdoc/internal/fetcher"
	"github.com/zopdev/chartdoc/internal/navigator"
	"github.com/zopdev/chartdoc/internal/progress"
	"github.com/zopdev/chartdoc/internal/render"
)

// Message types sent to the client.
const (
	MsgLoading = "loading"
	MsgContent = "content"
	MsgState   = "state"
	MsgScroll  = "scroll"
	MsgError   = "error"
)

// Event types received from the client.
const (
	EventMetrics      = "metrics"
	EventScroll       = "scroll"
	EventResize       = "resize"
	EventClick        = "click"
	EventShowAll      = "show_all"
	EventSearch       = "search"
	EventToggleSearch = "toggle_search"
)

// Message is pushed from a session to its client.
type Message struct {
	Type    string           `json:"type"`
	Loading bool             `json:"loading,omitempty"`
	Text    string           `json:"text,omitempty"`
	Found   bool             `json:"found,omitempty"`
	HTML    string           `json:"html,omitempty"`
	State   *navigator.State `json:"state,omitempty"`
	Target  string           `json:"target,omitempty"`
}

// Event is a user interaction reported by the client. Scroll and resize
// events carry the current metrics of the content region.
type Event struct {
	Type      string             `json:"type"`
	ScrollTop float64            `json:"scroll_top"`
	Offsets   map[string]float64 `json:"offsets,omitempty"`
	Target    string             `json:"target,omitempty"`
	Query     string             `json:"query,omitempty"`
}

// Factory builds pages and sessions sharing one source and renderer.
type Factory struct {
	Source     Source
	Renderer   *render.Renderer
	NavOptions navigator.Options
}

// NewPage builds a page driving vp.
func (f Factory) NewPage(vp navigator.Viewport, indicator progress.Indicator) *Page {
	return NewPage(f.Source, f.Renderer, navigator.New(f.NavOptions, vp), indicator)
}

// Session is a live page bound to one client connection.
type Session struct {
	ID       string
	page     *Page
	viewport *ClientViewport
	send     func(Message)
}

// NewSession creates a session whose messages are delivered through send.
// send may be called from several goroutines and must serialize itself.
func (f Factory) NewSession(send func(Message)) *Session {
	s := &Session{ID: uuid.New().String(), send: send}
	s.viewport = NewClientViewport(func(target string) {
		s.send(Message{Type: MsgScroll, Target: target})
	})
	s.page = f.NewPage(s.viewport, s)

	s.page.Navigator().Subscribe(func(st navigator.State) {
		s.send(Message{Type: MsgState, State: &st})
	})
	s.page.OnContent(func(res Result) {
		s.send(Message{Type: MsgContent, Found: res.Found, HTML: res.HTML})
	})
	return s
}

// Start implements progress.Indicator by telling the client to show its
// loading bar.
func (s *Session) Start(message string) {
	s.send(Message{Type: MsgLoading, Loading: true, Text: message})
}

// Stop implements progress.Indicator.
func (s *Session) Stop() {
	s.send(Message{Type: MsgLoading, Loading: false})
}

// Page returns the session's page.
func (s *Session) Page() *Page { return s.page }

// Load loads the README for id into the session's page.
func (s *Session) Load(ctx context.Context, id string) Result {
	return s.page.Load(fetcher.WithSession(ctx, s.ID), id)
}

// Dispatch applies a client event to the session.
func (s *Session) Dispatch(ev Event) error {
	nav := s.page.Navigator()
	switch ev.Type {
	case EventMetrics:
		// Offsets first arrive after the content is displayed, which can
		// be later than the initial delayed evaluation.
		s.viewport.Update(ev.ScrollTop, ev.Offsets)
		nav.HighlightActiveSection()
	case EventScroll:
		s.viewport.Update(ev.ScrollTop, ev.Offsets)
		nav.OnScroll()
	case EventResize:
		s.viewport.Update(ev.ScrollTop, ev.Offsets)
		nav.OnResize()
	case EventClick:
		if !nav.ScrollToSection(ev.Target) {
			return fmt.Errorf("unknown section %q", ev.Target)
		}
	case EventShowAll:
		nav.ShowAll()
	case EventSearch:
		nav.Filter(ev.Query)
	case EventToggleSearch:
		nav.ToggleSearch()
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	return nil
}
