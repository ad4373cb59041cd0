// Package fetcher downloads chart README files, trying an ordered list of
// candidate locations until one succeeds.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Outcome classifies a single download attempt.
type Outcome string

const (
	OutcomeOK     Outcome = "ok"
	OutcomeStatus Outcome = "status" // server answered with a non-2xx status
	OutcomeError  Outcome = "error"  // the request could not complete
)

// Attempt describes one request made while resolving a document.
type Attempt struct {
	SessionID string
	DocID     string
	URL       string
	Status    int
	Outcome   Outcome
	Err       string
	Duration  time.Duration
}

// Recorder receives every attempt. Recording failures never affect the fetch.
type Recorder interface {
	RecordAttempt(ctx context.Context, a Attempt) error
}

// Options configures a Fetcher.
type Options struct {
	BaseURL   string   // location template containing Placeholder
	Filenames []string // candidates, tried in order
	UserAgent string
	Client    *http.Client // nil = a client with Timeout
	Timeout   time.Duration
	Recorder  Recorder
}

// Placeholder is replaced by the document identifier in Options.BaseURL.
const Placeholder = "{id}"

// Fetcher resolves document identifiers into README text.
type Fetcher struct {
	baseURL   string
	filenames []string
	userAgent string
	client    *http.Client
	recorder  Recorder
}

// New creates a Fetcher from opts.
func New(opts Options) *Fetcher {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &Fetcher{
		baseURL:   opts.BaseURL,
		filenames: append([]string(nil), opts.Filenames...),
		userAgent: opts.UserAgent,
		client:    client,
		recorder:  opts.Recorder,
	}
}

// BaseLocation returns the directory location for id. The identifier is
// substituted verbatim; it is not escaped or validated.
func (f *Fetcher) BaseLocation(id string) string {
	return strings.ReplaceAll(f.baseURL, Placeholder, id)
}

// Locations returns the candidate URLs for id in the order they are tried.
func (f *Fetcher) Locations(id string) []string {
	base := f.BaseLocation(id)
	urls := make([]string, len(f.filenames))
	for i, name := range f.filenames {
		urls[i] = base + name
	}
	return urls
}

// Fetch returns the content of the first candidate location that answers
// successfully. The boolean is false when every candidate failed; missing
// files and transport failures are not distinguished.
func (f *Fetcher) Fetch(ctx context.Context, id string) (string, bool) {
	for _, url := range f.Locations(id) {
		if content, ok := f.fetchMarkdown(ctx, id, url); ok {
			return content, true
		}
		if ctx.Err() != nil {
			break
		}
	}
	return "", false
}

// fetchMarkdown performs a single GET. Any failure is logged and reported
// as absence.
func (f *Fetcher) fetchMarkdown(ctx context.Context, id, url string) (string, bool) {
	start := time.Now()
	attempt := Attempt{SessionID: SessionFrom(ctx), DocID: id, URL: url}

	content, err := f.get(ctx, url, &attempt)
	attempt.Duration = time.Since(start)

	switch {
	case err != nil:
		attempt.Outcome = OutcomeError
		attempt.Err = err.Error()
		log.Printf("fetcher: error fetching %s: %v", url, err)
	case attempt.Status < 200 || attempt.Status > 299:
		attempt.Outcome = OutcomeStatus
		log.Printf("fetcher: warning: failed to fetch markdown from %s: status %d", url, attempt.Status)
	default:
		attempt.Outcome = OutcomeOK
	}

	f.record(ctx, attempt)
	if attempt.Outcome != OutcomeOK {
		return "", false
	}
	return content, true
}

func (f *Fetcher) get(ctx context.Context, url string, attempt *Attempt) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	attempt.Status = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(body), nil
}

func (f *Fetcher) record(ctx context.Context, a Attempt) {
	if f.recorder == nil {
		return
	}
	// The request context may already be cancelled; the log entry should still land.
	if err := f.recorder.RecordAttempt(context.WithoutCancel(ctx), a); err != nil {
		log.Printf("fetcher: recording attempt for %s: %v", a.URL, err)
	}
}
