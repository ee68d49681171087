// Package sysboard implements the system clipboard. It prefers the native
// backend from golang.design/x/clipboard and falls back to platform commands
// (pbpaste/pbcopy on macOS, xclip or xsel on Linux) when the display
// environment rejects native initialization, e.g. over SSH without X11.
package sysboard

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"

	"golang.design/x/clipboard"
)

// SystemClipboard implements clipboard.Clipboard against the OS clipboard.
type SystemClipboard struct {
	native bool
}

// New creates a SystemClipboard. Native initialization failure is not an
// error; reads and writes go through the command fallback instead.
func New() *SystemClipboard {
	return &SystemClipboard{native: clipboard.Init() == nil}
}

// IsSupported returns true if any clipboard backend is usable on this system.
func (s *SystemClipboard) IsSupported() bool {
	if s.native {
		return true
	}

	switch runtime.GOOS {
	case "darwin":
		_, errCopy := exec.LookPath("pbcopy")
		_, errPaste := exec.LookPath("pbpaste")
		return errCopy == nil && errPaste == nil
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return true
		}
		_, err := exec.LookPath("xsel")
		return err == nil
	default:
		return false
	}
}

// ReadText returns the current clipboard text.
func (s *SystemClipboard) ReadText() (string, error) {
	if s.native {
		return string(clipboard.Read(clipboard.FmtText)), nil
	}

	switch runtime.GOOS {
	case "darwin":
		return readWithCommand("pbpaste")
	case "linux":
		return readLinux()
	default:
		return "", fmt.Errorf("clipboard operations not supported on %s", runtime.GOOS)
	}
}

// WriteText replaces the clipboard contents with text.
func (s *SystemClipboard) WriteText(text string) error {
	if s.native {
		clipboard.Write(clipboard.FmtText, []byte(text))
		return nil
	}

	switch runtime.GOOS {
	case "darwin":
		return writeWithCommand(text, "pbcopy")
	case "linux":
		return writeLinux(text)
	default:
		return fmt.Errorf("clipboard operations not supported on %s", runtime.GOOS)
	}
}

// readLinux reads from the clipboard using xclip or xsel.
func readLinux() (string, error) {
	if text, err := readWithCommand("xclip", "-selection", "clipboard", "-o"); err == nil {
		return text, nil
	}

	text, err := readWithCommand("xsel", "--clipboard", "--output")
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard (tried xclip and xsel): %w", err)
	}

	return text, nil
}

// writeLinux writes to the clipboard using xclip or xsel.
func writeLinux(text string) error {
	if err := writeWithCommand(text, "xclip", "-selection", "clipboard"); err == nil {
		return nil
	}

	if err := writeWithCommand(text, "xsel", "--clipboard", "--input"); err != nil {
		return fmt.Errorf("failed to write clipboard (tried xclip and xsel): %w", err)
	}

	return nil
}

// readWithCommand executes a command and returns its output.
func readWithCommand(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return out.String(), nil
}

// writeWithCommand executes a command with text as stdin.
func writeWithCommand(text string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = bytes.NewBufferString(text)

	return cmd.Run()
}
