package cli

import "fmt"

// Args represents the top-level command structure. With no subcommand, clipb
// starts the background sampler and the interactive history browser.
type Args struct {
	List  *ListCmd  `arg:"subcommand:list" help:"Print history entries, newest first"`
	Get   *GetCmd   `arg:"subcommand:get" help:"Print one entry's raw content"`
	Clear *ClearCmd `arg:"subcommand:clear" help:"Delete all history entries"`

	Dir       string `arg:"--dir,env:CLIPB_DIR" help:"State directory (default: per-user config dir)"`
	LogLevel  string `arg:"--log-level,env:CLIPB_LOG_LEVEL" default:"info" help:"Log level (debug, info, warn, error)"`
	LogFormat string `arg:"--log-format" default:"auto" help:"Log format (auto, text, json)"`
}

// ListCmd represents the 'clipb list' command.
type ListCmd struct{}

// GetCmd represents the 'clipb get' command.
type GetCmd struct {
	Index     int  `arg:"positional" help:"Display row to retrieve (0 = newest, default 0)"`
	Clipboard bool `arg:"-c,--clipboard" help:"Write the entry to the clipboard instead of stdout"`
}

// ClearCmd represents the 'clipb clear' command.
type ClearCmd struct {
	Force bool `arg:"-f,--force" help:"Skip the confirmation prompt"`
}

// Description returns the program description.
func (Args) Description() string {
	return "clipb - clipboard watcher with a persistent, browsable history"
}

// Version returns the program version.
func (Args) Version() string {
	return "clipb 0.1.0"
}

// Epilogue returns additional help text.
func (Args) Epilogue() string {
	return `Examples:
  clipb                            # Watch the clipboard and browse history
  clipb list                       # Print history, newest first
  clipb get 2                      # Print the third-newest capture to stdout
  clipb get -c                     # Restore the newest capture to the clipboard
  clipb clear --force              # Wipe history without confirmation

Configuration is read from config.yaml in the state directory
(max_history, poll_interval_ms).`
}

// Validate performs validation on the parsed arguments.
func (args *Args) Validate() error {
	if args.Get != nil && args.Get.Index < 0 {
		return fmt.Errorf("index must be non-negative")
	}
	return nil
}
