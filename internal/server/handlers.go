package server

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zopdev/chartdoc/internal/navigator"
	"github.com/zopdev/chartdoc/internal/sidebar"
	"github.com/zopdev/chartdoc/internal/viewer"
)

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// pageData feeds pageTemplate.
type pageData struct {
	DocID          string
	LoadingMessage string
}

// readmeResponse is the body of GET /api/readme/{id}.
type readmeResponse struct {
	DocID    string              `json:"doc_id"`
	Found    bool                `json:"found"`
	HTML     string              `json:"html"`
	Entries  []sidebar.Entry     `json:"entries"`
	Headings []navigator.Heading `json:"headings"`
}

// tocResponse is the body of GET /api/readme/{id}/toc.
type tocResponse struct {
	DocID   string          `json:"doc_id"`
	Found   bool            `json:"found"`
	Query   string          `json:"query"`
	Entries []sidebar.Entry `json:"entries"`
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		DocID:          r.URL.Query().Get("id"),
		LoadingMessage: viewer.LoadingMessage,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		log.Printf("server: rendering page: %v", err)
	}
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

func (s *Server) handleReadme(w http.ResponseWriter, r *http.Request) {
	page := s.oneShotPage()
	res := page.Load(r.Context(), chi.URLParam(r, "id"))

	writeJSON(w, http.StatusOK, readmeResponse{
		DocID:    res.DocID,
		Found:    res.Found,
		HTML:     res.HTML,
		Entries:  nonNilEntries(res.State.Entries),
		Headings: nonNilHeadings(res.State.Headings),
	})
}

func (s *Server) handleTOC(w http.ResponseWriter, r *http.Request) {
	page := s.oneShotPage()
	res := page.Load(r.Context(), chi.URLParam(r, "id"))

	q := r.URL.Query().Get("q")
	nav := page.Navigator()
	nav.Filter(q)

	writeJSON(w, http.StatusOK, tocResponse{
		DocID:   res.DocID,
		Found:   res.Found,
		Query:   q,
		Entries: nonNilEntries(nav.Visible()),
	})
}

// oneShotPage builds a page for a single request. There is no client to
// scroll, so scheduled re-evaluations are dropped.
func (s *Server) oneShotPage() *viewer.Page {
	f := s.factory
	f.NavOptions.Schedule = func(time.Duration, func()) {}
	return f.NewPage(navigator.NewStaticViewport(0, nil), nil)
}

func nonNilEntries(e []sidebar.Entry) []sidebar.Entry {
	if e == nil {
		return []sidebar.Entry{}
	}
	return e
}

func nonNilHeadings(h []navigator.Heading) []navigator.Heading {
	if h == nil {
		return []navigator.Heading{}
	}
	return h
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: encoding response: %v", err)
	}
}
