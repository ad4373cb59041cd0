// Package viewer ties fetching, rendering and navigation together into a
// page, and exposes page sessions driven by client events.
package viewer

import (
	"context"
	"log"
	"sync"

	"github.com/zopdev/chartdoc/internal/navigator"
	"github.com/zopdev/chartdoc/internal/progress"
	"github.com/zopdev/chartdoc/internal/render"
)

// LoadingMessage is shown by the loading indicator.
const LoadingMessage = "Loading README..."

// Source resolves a document identifier to markdown.
type Source interface {
	Fetch(ctx context.Context, id string) (string, bool)
}

// Result is the outcome of loading a page.
type Result struct {
	DocID string          `json:"doc_id"`
	Found bool            `json:"found"`
	HTML  string          `json:"html"`
	State navigator.State `json:"state"`
}

// Page is one README view: a content region plus its navigator.
type Page struct {
	source    Source
	renderer  *render.Renderer
	nav       *navigator.Navigator
	indicator progress.Indicator

	mu        sync.Mutex
	region    render.Region
	onContent []func(Result)
}

// NewPage assembles a page. A nil indicator shows nothing.
func NewPage(source Source, renderer *render.Renderer, nav *navigator.Navigator, indicator progress.Indicator) *Page {
	if indicator == nil {
		indicator = progress.Nop{}
	}
	return &Page{source: source, renderer: renderer, nav: nav, indicator: indicator}
}

// Navigator returns the page's navigator.
func (p *Page) Navigator() *navigator.Navigator { return p.nav }

// Region returns the current content region.
func (p *Page) Region() render.Region {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.region
}

// OnContent registers fn to receive the result of every Load once the
// content region has been replaced, before the loading indicator hides.
func (p *Page) OnContent(fn func(Result)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onContent = append(p.onContent, fn)
}

// Load fetches the README for id, renders it into the content region and
// rebuilds the navigator. The loading indicator is shown for the whole
// operation and hidden afterwards whatever the outcome.
func (p *Page) Load(ctx context.Context, id string) Result {
	p.indicator.Start(LoadingMessage)
	defer p.indicator.Stop()

	markdown, ok := p.source.Fetch(ctx, id)

	var region render.Region
	p.renderer.Display(&region, markdown, ok)

	if region.Failed {
		p.nav.Clear()
	} else {
		html, err := p.nav.Build(region.HTML)
		if err != nil {
			log.Printf("viewer: indexing headings for %q: %v", id, err)
			region = render.Region{HTML: render.ErrorHTML, Failed: true}
			p.nav.Clear()
		} else {
			region.HTML = html
		}
	}

	p.mu.Lock()
	p.region = region
	listeners := append([]func(Result){}, p.onContent...)
	p.mu.Unlock()

	res := Result{
		DocID: id,
		Found: !region.Failed,
		HTML:  region.HTML,
		State: p.nav.Snapshot(),
	}
	for _, fn := range listeners {
		fn(res)
	}
	return res
}
