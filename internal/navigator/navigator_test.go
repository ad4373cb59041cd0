package navigator

import (
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/zopdev/chartdoc/internal/sidebar"
)

// manualScheduler queues scheduled functions until run is called.
type manualScheduler struct {
	mu      sync.Mutex
	delays  []time.Duration
	pending []func()
}

func (s *manualScheduler) schedule(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays = append(s.delays, d)
	s.pending = append(s.pending, fn)
}

func (s *manualScheduler) run() {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
}

const sampleHTML = `<h1>Intro</h1>
<p>Helm chart.</p>
<h2>Setup</h2>
<p>Install it.</p>
<h3>Details</h3>
<h2>Usage</h2>
<p>Use it.</p>`

func newTestNavigator(t *testing.T, vp Viewport) (*Navigator, *manualScheduler) {
	t.Helper()
	sched := &manualScheduler{}
	opts := DefaultOptions()
	opts.Schedule = sched.schedule
	return New(opts, vp), sched
}

func entryLabels(entries []sidebar.Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Label)
	}
	return out
}

func TestBuildSidebarOrder(t *testing.T) {
	nav, _ := newTestNavigator(t, NewStaticViewport(0, nil))
	if _, err := nav.Build(sampleHTML); err != nil {
		t.Fatalf("Build: %v", err)
	}

	entries := nav.Snapshot().Entries
	want := []string{"Show All", "Intro", "Setup", "Usage"}
	if got := entryLabels(entries); !reflect.DeepEqual(got, want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	if !entries[0].ShowAll || entries[0].Href != "#" {
		t.Errorf("first entry should be Show All with href #, got %+v", entries[0])
	}

	level2 := map[string]bool{}
	for _, e := range entries {
		for _, c := range e.Classes() {
			if c == sidebar.ClassLevel2 {
				level2[e.Label] = true
			}
		}
	}
	if !level2["Setup"] || !level2["Usage"] || level2["Intro"] || len(level2) != 2 {
		t.Errorf("level-2 marker on %v, want Setup and Usage only", level2)
	}
}

func TestBuildAssignsPositionalIDs(t *testing.T) {
	nav, _ := newTestNavigator(t, NewStaticViewport(0, nil))
	out, err := nav.Build(`<h1 id="intro">Intro</h1><h2>Setup</h2><h2 id="">Usage</h2>`)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	headings := nav.Headings()
	wantIDs := []string{"intro", "section-1", "section-2"}
	for i, h := range headings {
		if h.ID != wantIDs[i] {
			t.Errorf("heading %d id = %q, want %q", i, h.ID, wantIDs[i])
		}
	}
	if !strings.Contains(out, `<h2 id="section-1">Setup</h2>`) {
		t.Errorf("generated id not written back into html: %q", out)
	}
	if !strings.Contains(out, `<h1 id="intro">Intro</h1>`) {
		t.Errorf("existing id should be preserved: %q", out)
	}

	entries := nav.Snapshot().Entries
	if entries[2].Href != "#section-1" {
		t.Errorf("entry href = %q, want #section-1", entries[2].Href)
	}
}

func TestBuildIgnoresDeeperHeadings(t *testing.T) {
	nav, _ := newTestNavigator(t, NewStaticViewport(0, nil))
	nav.Build(sampleHTML)
	for _, h := range nav.Headings() {
		if h.Text == "Details" {
			t.Error("h3 headings must not be indexed")
		}
	}
	if len(nav.Headings()) != 3 {
		t.Errorf("indexed %d headings, want 3", len(nav.Headings()))
	}
}

func TestRebuildDiscardsPreviousIndex(t *testing.T) {
	nav, _ := newTestNavigator(t, NewStaticViewport(0, nil))
	nav.Build(sampleHTML)
	nav.ScrollToSection("section-1")

	if _, err := nav.Build(`<h1>Other</h1><h2>Values</h2>`); err != nil {
		t.Fatalf("Build: %v", err)
	}

	state := nav.Snapshot()
	want := []string{"Show All", "Other", "Values"}
	if got := entryLabels(state.Entries); !reflect.DeepEqual(got, want) {
		t.Errorf("entries after rebuild = %v, want %v", got, want)
	}
	if len(state.Headings) != 2 {
		t.Errorf("headings after rebuild = %d, want 2", len(state.Headings))
	}
	if state.Active != "" {
		t.Errorf("active marker should not survive a rebuild, got %q", state.Active)
	}
}

func TestBuildSchedulesInitialSpy(t *testing.T) {
	vp := NewStaticViewport(0, map[string]float64{"section-0": 0, "section-1": 400, "section-2": 900})
	nav, sched := newTestNavigator(t, vp)
	nav.Build(sampleHTML)

	if len(sched.delays) != 1 || sched.delays[0] != 100*time.Millisecond {
		t.Fatalf("scheduled delays = %v, want [100ms]", sched.delays)
	}
	if nav.Snapshot().Active != "" {
		t.Error("marker should not move before the delay elapses")
	}
	sched.run()
	if got := nav.Snapshot().Active; got != "section-0" {
		t.Errorf("active after initial spy = %q, want section-0", got)
	}
}

func TestClear(t *testing.T) {
	nav, _ := newTestNavigator(t, NewStaticViewport(0, nil))
	nav.Build(sampleHTML)
	nav.Clear()
	state := nav.Snapshot()
	if len(state.Entries) != 0 || len(state.Headings) != 0 {
		t.Errorf("Clear left %d entries and %d headings", len(state.Entries), len(state.Headings))
	}
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	nav, _ := newTestNavigator(t, NewStaticViewport(0, nil))

	var mu sync.Mutex
	var states []State
	nav.Subscribe(func(s State) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, s)
	})

	nav.Build(sampleHTML)
	nav.Filter("set")

	mu.Lock()
	defer mu.Unlock()
	if len(states) != 2 {
		t.Fatalf("received %d snapshots, want 2", len(states))
	}
	if states[1].Query != "set" {
		t.Errorf("second snapshot query = %q, want set", states[1].Query)
	}
}

func TestNotifyReachesEveryListener(t *testing.T) {
	nav, _ := newTestNavigator(t, NewStaticViewport(0, nil))

	var mu sync.Mutex
	counts := make([]int, 3)
	for i := range counts {
		nav.Subscribe(func(State) {
			mu.Lock()
			defer mu.Unlock()
			counts[i]++
		})
	}

	nav.Build(sampleHTML)
	nav.ToggleSearch()

	mu.Lock()
	defer mu.Unlock()
	for i, c := range counts {
		if c != 2 {
			t.Errorf("listener %d notified %d times, want 2", i, c)
		}
	}
}

func TestBuildKeepsLeadingRawHTML(t *testing.T) {
	nav, _ := newTestNavigator(t, NewStaticViewport(0, nil))

	src := "<!-- chart -->\n<style>h1 { color: red; }</style>\n<link rel=\"stylesheet\" href=\"x.css\">\n<h1 id=\"intro\">Intro</h1>\n<p>text</p>\n"
	out, err := nav.Build(src)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, want := range []string{
		"<!-- chart -->",
		"<style>h1 { color: red; }</style>",
		`<link rel="stylesheet" href="x.css"/>`,
		`<h1 id="intro">Intro</h1>`,
		"<p>text</p>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Build output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<body>") || strings.Contains(out, "<div>") {
		t.Errorf("Build output should be the bare fragment, got:\n%s", out)
	}
	if got := nav.Headings(); len(got) != 1 || got[0].ID != "intro" {
		t.Errorf("headings = %+v", got)
	}
}
