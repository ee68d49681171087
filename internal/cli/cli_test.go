package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/ElijahMwambazi/clipb/internal/clipboard/mockboard"
	"github.com/ElijahMwambazi/clipb/internal/clipfs"
	"github.com/ElijahMwambazi/clipb/internal/config"
	"github.com/ElijahMwambazi/clipb/internal/history"
)

// newTestCLI builds a CLI over a temp state directory seeded with the given
// contents, oldest first, with captured output and a mock clipboard.
func newTestCLI(t *testing.T, contents ...string) (*CLI, *bytes.Buffer, *mockboard.MockClipboard) {
	t.Helper()
	fsys := clipfs.NewWithRoot(t.TempDir())
	store := history.Open(fsys, 100)
	for i, content := range contents {
		entry := history.Entry{
			Timestamp: fmt.Sprintf("2026-08-31 12:00:%02d", i),
			Content:   content,
		}
		if err := store.Append(entry); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	out := &bytes.Buffer{}
	clip := mockboard.New()
	c := &CLI{
		fsys:  fsys,
		cfg:   config.Default(),
		store: store,
		clip:  clip,
		out:   out,
		in:    strings.NewReader(""),
	}
	return c, out, clip
}

func TestNew_CustomDir(t *testing.T) {
	dir := t.TempDir()
	args := &Args{Dir: dir, LogLevel: "info", LogFormat: "json"}

	c, err := New(args)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if c.fsys.Root() != dir {
		t.Errorf("State root = %s, want %s", c.fsys.Root(), dir)
	}
	if c.cfg.MaxHistory != config.DefaultMaxHistory {
		t.Errorf("MaxHistory = %d, want default %d", c.cfg.MaxHistory, config.DefaultMaxHistory)
	}
}

func TestNew_ReadsConfigFromDir(t *testing.T) {
	dir := t.TempDir()
	fsys := clipfs.NewWithRoot(dir)
	if err := fsys.WriteFile(config.FileName, []byte("max_history: 7\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	c, err := New(&Args{Dir: dir, LogFormat: "json"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if c.cfg.MaxHistory != 7 {
		t.Errorf("MaxHistory = %d, want 7", c.cfg.MaxHistory)
	}
}

func TestExecuteList(t *testing.T) {
	c, out, _ := newTestCLI(t, "oldest", "newest")

	if err := c.Execute(&Args{List: &ListCmd{}}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Got %d lines, want 2:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "0\t") || !strings.Contains(lines[0], "newest") {
		t.Errorf("First line should be row 0 with the newest entry: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1\t") || !strings.Contains(lines[1], "oldest") {
		t.Errorf("Second line should be row 1 with the oldest entry: %q", lines[1])
	}
}

func TestExecuteList_Empty(t *testing.T) {
	c, out, _ := newTestCLI(t)

	if err := c.Execute(&Args{List: &ListCmd{}}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out.String(), "empty") {
		t.Errorf("Expected empty-history message, got %q", out.String())
	}
}

func TestExecuteGet_Stdout(t *testing.T) {
	c, out, _ := newTestCLI(t, "oldest", "middle", "newest")

	if err := c.Execute(&Args{Get: &GetCmd{Index: 2}}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.String() != "oldest" {
		t.Errorf("Output = %q, want %q", out.String(), "oldest")
	}
}

func TestExecuteGet_Clipboard(t *testing.T) {
	c, _, clip := newTestCLI(t, "older", "latest")

	if err := c.Execute(&Args{Get: &GetCmd{Index: 0, Clipboard: true}}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if clip.Text() != "latest" {
		t.Errorf("Clipboard = %q, want %q", clip.Text(), "latest")
	}
}

func TestExecuteGet_OutOfRange(t *testing.T) {
	c, _, _ := newTestCLI(t, "only")

	if err := c.Execute(&Args{Get: &GetCmd{Index: 5}}); err == nil {
		t.Error("Expected out-of-range error")
	}
}

func TestExecuteGet_NegativeIndex(t *testing.T) {
	c, _, _ := newTestCLI(t, "only")

	if err := c.Execute(&Args{Get: &GetCmd{Index: -1}}); err == nil {
		t.Error("Expected validation error for negative index")
	}
}

func TestExecuteClear_Force(t *testing.T) {
	c, out, _ := newTestCLI(t, "a", "b")

	if err := c.Execute(&Args{Clear: &ClearCmd{Force: true}}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if c.store.Len() != 0 {
		t.Errorf("Store has %d entries after clear, want 0", c.store.Len())
	}
	if !strings.Contains(out.String(), "Cleared 2 entries") {
		t.Errorf("Output = %q", out.String())
	}
}

func TestExecuteClear_Declined(t *testing.T) {
	c, out, _ := newTestCLI(t, "keep me")
	c.in = strings.NewReader("n\n")

	if err := c.Execute(&Args{Clear: &ClearCmd{}}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if c.store.Len() != 1 {
		t.Errorf("Store has %d entries, want 1 (clear was declined)", c.store.Len())
	}
	if !strings.Contains(out.String(), "Cancelled") {
		t.Errorf("Output = %q", out.String())
	}
}

func TestExecuteClear_Confirmed(t *testing.T) {
	c, _, _ := newTestCLI(t, "gone")
	c.in = strings.NewReader("y\n")

	if err := c.Execute(&Args{Clear: &ClearCmd{}}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if c.store.Len() != 0 {
		t.Errorf("Store has %d entries, want 0", c.store.Len())
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "short text", "short text"},
		{"newlines flattened", "a\nb\r\nc", "a b  c"},
		{"long content truncated", strings.Repeat("x", 100), strings.Repeat("x", 77) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preview(tt.in); got != tt.want {
				t.Errorf("preview = %q, want %q", got, tt.want)
			}
		})
	}
}
