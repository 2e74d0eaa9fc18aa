package automation

import (
	"time"
)

// Backend abstracts the OS automation primitives the steps call into. All
// operations are synchronous and fallible; implementations must be safe to
// call from whichever goroutine drives a run.
type Backend interface {
	// Click moves the pointer to (x, y) and clicks the given button the
	// requested number of times, pausing interval between clicks.
	Click(x, y int, button string, clicks int, interval time.Duration) error

	// TypeText injects the text as keystrokes, pausing interval between
	// characters when non-zero.
	TypeText(text string, interval time.Duration) error

	// Hotkey presses the combination, e.g. ["ctrl", "shift", "p"]. The last
	// element is the key, the rest are modifiers.
	Hotkey(keys []string) error

	// PointerPosition returns the current pointer coordinates.
	PointerPosition() (x, y int)

	// MovePointer shifts the pointer relative to its current position.
	MovePointer(dx, dy int) error

	// MovePointerTo places the pointer at absolute coordinates.
	MovePointerTo(x, y int) error

	// ActiveWindowTitle returns the title of the focused window, or "" when
	// it cannot be determined.
	ActiveWindowTitle() string

	// FocusWindow activates the first window whose title contains the given
	// substring and returns its title.
	FocusWindow(title string) (string, error)

	// ReadClipboard returns the current clipboard text.
	ReadClipboard() (string, error)

	// WriteClipboard replaces the clipboard text.
	WriteClipboard(text string) error

	// OpenURL opens the URL with the system handler.
	OpenURL(url string) error

	// OpenPath opens a filesystem path with its default application.
	OpenPath(path string) error

	// StartCommand spawns a shell command without waiting for it to exit.
	StartCommand(command string) error

	// MoveFile moves src to dest, crossing filesystems if needed.
	MoveFile(src, dest string) error

	// PathExists reports whether the path exists on disk.
	PathExists(path string) bool
}
