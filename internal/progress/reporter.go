package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// Indicator is a loading indicator shown while a README is fetched and
// rendered. Stop must be safe to call whether or not Start succeeded.
type Indicator interface {
	Start(message string)
	Stop()
}

// NewIndicator returns a TerminalIndicator when running interactively, or
// a CIIndicator if the CI environment variable is set.
func NewIndicator(w io.Writer) Indicator {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIIndicator{w: w}
	}
	return &TerminalIndicator{w: w}
}

// TerminalIndicator displays a spinner in the terminal.
type TerminalIndicator struct {
	w   io.Writer
	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

func (t *TerminalIndicator) Start(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(t.w),
		progressbar.OptionSetDescription(message),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	_ = t.bar.Add(1)
}

func (t *TerminalIndicator) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.bar != nil {
		_ = t.bar.Finish()
		t.bar = nil
	}
}

// CIIndicator prints plain lines suitable for CI logs.
type CIIndicator struct {
	w      io.Writer
	mu     sync.Mutex
	active bool
}

func (c *CIIndicator) Start(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = true
	fmt.Fprintln(c.w, message)
}

func (c *CIIndicator) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		c.active = false
		fmt.Fprintln(c.w, "done")
	}
}

// Nop is an Indicator that shows nothing.
type Nop struct{}

func (Nop) Start(string) {}
func (Nop) Stop()        {}
