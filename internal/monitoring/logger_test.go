package monitoring

import (
	"fmt"
	"testing"
)

// capture redirects Logf into a slice for the duration of a test.
func capture(t *testing.T) *[]string {
	t.Helper()
	original := Logf
	t.Cleanup(func() { Logf = original })

	var lines []string
	SetLogger(func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})
	return &lines
}

func TestSetLogger_Nil(t *testing.T) {
	lines := capture(t)
	SetLogger(nil)
	Logf("dropped")
	if len(*lines) != 0 {
		t.Errorf("nil logger should mute output, got %v", *lines)
	}
}

func TestWarnf(t *testing.T) {
	lines := capture(t)
	Warnf("no points read from %s", "in.txt")

	if len(*lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(*lines))
	}
	if (*lines)[0] != "Warning: no points read from in.txt" {
		t.Errorf("unexpected warning text %q", (*lines)[0])
	}
}

func TestDebugf_RespectsVerbose(t *testing.T) {
	lines := capture(t)
	t.Cleanup(func() { SetVerbose(false) })

	SetVerbose(false)
	Debugf("hidden")
	if len(*lines) != 0 {
		t.Errorf("Debugf logged while quiet: %v", *lines)
	}

	SetVerbose(true)
	if !Verbose() {
		t.Fatal("Verbose() = false after SetVerbose(true)")
	}
	Debugf("shown %d", 1)
	if len(*lines) != 1 || (*lines)[0] != "shown 1" {
		t.Errorf("Debugf output = %v, want [shown 1]", *lines)
	}
}

func TestLogf_Default(t *testing.T) {
	if Logf == nil {
		t.Error("Logf should not be nil by default")
	}
}
