// Package clipboard defines the text clipboard interface shared by the
// sampler and the browser. The system clipboard is treated as an unreliable
// external service: reads and writes can fail transiently and callers decide
// how to degrade.
package clipboard

// Clipboard provides text access to a clipboard.
type Clipboard interface {
	// ReadText returns the current clipboard text. An empty clipboard
	// yields an empty string; a backend failure yields an error.
	ReadText() (string, error)

	// WriteText replaces the clipboard contents with text.
	WriteText(text string) error
}
