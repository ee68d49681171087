// Package cli wires the clipb components together and executes the parsed
// command: the watch-and-browse session by default, or one of the
// non-interactive history subcommands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ElijahMwambazi/clipb/internal/clipboard"
	"github.com/ElijahMwambazi/clipb/internal/clipboard/sysboard"
	"github.com/ElijahMwambazi/clipb/internal/clipfs"
	"github.com/ElijahMwambazi/clipb/internal/config"
	"github.com/ElijahMwambazi/clipb/internal/history"
	"github.com/ElijahMwambazi/clipb/internal/logging"
	"github.com/ElijahMwambazi/clipb/internal/sampler"
	"github.com/ElijahMwambazi/clipb/internal/tui"
)

// CLI handles the command-line interface.
type CLI struct {
	fsys  *clipfs.ClipFS
	cfg   config.Config
	store *history.Store
	clip  clipboard.Clipboard
	out   io.Writer
	in    io.Reader
}

// New creates a CLI instance: state directory from --dir or the per-user
// default, config loaded once, history opened against the configured bound,
// logging configured globally.
func New(args *Args) (*CLI, error) {
	logging.Setup(args.LogFormat, logging.ParseLevel(args.LogLevel))

	var fsys *clipfs.ClipFS
	if args.Dir != "" {
		fsys = clipfs.NewWithRoot(args.Dir)
	} else {
		var err error
		fsys, err = clipfs.New()
		if err != nil {
			return nil, fmt.Errorf("failed to locate state directory: %w", err)
		}
	}

	cfg := config.Load(fsys)

	return &CLI{
		fsys:  fsys,
		cfg:   cfg,
		store: history.Open(fsys, cfg.MaxHistory),
		clip:  sysboard.New(),
		out:   os.Stdout,
		in:    os.Stdin,
	}, nil
}

// Execute runs the command selected by the parsed arguments.
func (c *CLI) Execute(args *Args) error {
	if err := args.Validate(); err != nil {
		return err
	}

	switch {
	case args.List != nil:
		return c.executeList()
	case args.Get != nil:
		return c.executeGet(args.Get)
	case args.Clear != nil:
		return c.executeClear(args.Clear)
	default:
		return c.watchAndBrowse()
	}
}

// watchAndBrowse is the default session: the sampler polls the clipboard on
// a background goroutine while the browser owns the terminal. Sampler
// diagnostics surface in the browser's status line. Closing the browser
// cancels the sampler before the process exits.
func (c *CLI) watchAndBrowse() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	program := tui.NewProgram(c.store, c.clip)
	notify := func(msg string) {
		program.Send(tui.FlashMsg{Text: msg})
	}

	smp := sampler.New(c.clip, c.store, c.cfg.PollInterval(), notify)
	go smp.Run(ctx)

	_, err := program.Run()
	return err
}

// executeList prints history entries newest first, one line each.
func (c *CLI) executeList() error {
	entries := c.store.Snapshot()
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "History is empty.")
		return nil
	}

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		fmt.Fprintf(c.out, "%d\t[%s] %s\n", len(entries)-1-i, e.Timestamp, preview(e.Content))
	}
	return nil
}

// executeGet prints the raw content of one entry (0 = newest) to stdout, or
// restores it to the clipboard with -c.
func (c *CLI) executeGet(cmd *GetCmd) error {
	entries := c.store.Snapshot()
	if cmd.Index >= len(entries) {
		return fmt.Errorf("index %d out of range (history has %d entries)", cmd.Index, len(entries))
	}

	entry := entries[len(entries)-1-cmd.Index]

	if cmd.Clipboard {
		if err := c.clip.WriteText(entry.Content); err != nil {
			return fmt.Errorf("failed to write to clipboard: %w", err)
		}
		fmt.Fprintf(c.out, "Restored to clipboard: %s\n", preview(entry.Content))
		return nil
	}

	_, err := io.WriteString(c.out, entry.Content)
	return err
}

// executeClear wipes the history after confirmation.
func (c *CLI) executeClear(cmd *ClearCmd) error {
	count := c.store.Len()
	if count == 0 {
		fmt.Fprintln(c.out, "History is already empty.")
		return nil
	}

	if !cmd.Force {
		fmt.Fprintf(c.out, "This will delete %d entr%s from history. Continue? [y/N]: ",
			count, plural(count))
		var response string
		fmt.Fscanln(c.in, &response)
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(c.out, "Cancelled.")
			return nil
		}
	}

	if err := c.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	fmt.Fprintf(c.out, "Cleared %d entr%s from history.\n", count, plural(count))
	return nil
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

// preview flattens content to a single display line of at most 80 characters.
func preview(content string) string {
	const maxLength = 80

	p := strings.ReplaceAll(content, "\n", " ")
	p = strings.ReplaceAll(p, "\r", " ")
	p = strings.TrimSpace(p)

	if runes := []rune(p); len(runes) > maxLength {
		return string(runes[:maxLength-3]) + "..."
	}
	return p
}
