package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestCIIndicator(t *testing.T) {
	var buf bytes.Buffer
	ind := &CIIndicator{w: &buf}

	ind.Stop()
	if buf.Len() != 0 {
		t.Errorf("Stop before Start should print nothing, got %q", buf.String())
	}

	ind.Start("Loading README...")
	ind.Stop()
	ind.Stop()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || lines[0] != "Loading README..." || lines[1] != "done" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNewIndicatorInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewIndicator(&bytes.Buffer{}).(*CIIndicator); !ok {
		t.Error("expected CIIndicator when CI is set")
	}
}

func TestNewIndicatorInteractive(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewIndicator(&bytes.Buffer{}).(*TerminalIndicator); !ok {
		t.Error("expected TerminalIndicator outside CI")
	}
}

func TestTerminalIndicatorStopWithoutStart(t *testing.T) {
	ind := &TerminalIndicator{w: &bytes.Buffer{}}
	ind.Stop()
	ind.Start("Loading")
	ind.Stop()
	ind.Stop()
}
