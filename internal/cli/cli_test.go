package cli

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew(t *testing.T) {
	c := New(io.Discard, LogInfo)
	if c.Logger == nil {
		t.Fatal("New() should set a logger")
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level: got %v, want debug", c.Logger.GetLevel())
	}
}

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("use: got %q, want %q", root.Use, appName)
	}

	want := map[string]bool{"solve": false, "table": false, "serve": false, "plan": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}
