package automation

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// FakeBackend records every primitive invocation instead of touching the OS.
// Tests assert against Calls to verify ordering and dry-run behaviour, and
// inject failures per operation name via Fail.
type FakeBackend struct {
	mu sync.Mutex

	Calls       []string
	Clipboard   string
	ActiveTitle string
	Windows     []string
	Paths       map[string]bool
	Fail        map[string]error

	x, y int
}

// NewFakeBackend returns an empty recording backend.
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{
		Paths: make(map[string]bool),
		Fail:  make(map[string]error),
	}
}

var _ Backend = (*FakeBackend)(nil)

func (f *FakeBackend) record(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

func (f *FakeBackend) failure(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Fail[op]
}

// CallCount returns how many recorded calls start with the given prefix.
func (f *FakeBackend) CallCount(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (f *FakeBackend) Click(x, y int, button string, clicks int, interval time.Duration) error {
	f.record("click %s (%d,%d) x%d", button, x, y, clicks)
	return f.failure("click")
}

func (f *FakeBackend) TypeText(text string, interval time.Duration) error {
	f.record("type %q", text)
	return f.failure("type")
}

func (f *FakeBackend) Hotkey(keys []string) error {
	f.record("hotkey %s", strings.Join(keys, "+"))
	return f.failure("hotkey")
}

func (f *FakeBackend) PointerPosition() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.x, f.y
}

// SetPointerPosition simulates user mouse movement between polls.
func (f *FakeBackend) SetPointerPosition(x, y int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.x, f.y = x, y
}

func (f *FakeBackend) MovePointer(dx, dy int) error {
	f.mu.Lock()
	f.x += dx
	f.y += dy
	f.mu.Unlock()
	f.record("move %+d%+d", dx, dy)
	return f.failure("move")
}

func (f *FakeBackend) MovePointerTo(x, y int) error {
	f.mu.Lock()
	f.x, f.y = x, y
	f.mu.Unlock()
	f.record("moveto (%d,%d)", x, y)
	return f.failure("move")
}

func (f *FakeBackend) ActiveWindowTitle() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ActiveTitle
}

func (f *FakeBackend) FocusWindow(title string) (string, error) {
	f.record("focus %q", title)
	if err := f.failure("focus"); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.Windows {
		if strings.Contains(strings.ToLower(w), strings.ToLower(title)) {
			f.ActiveTitle = w
			return w, nil
		}
	}
	return "", fmt.Errorf("no window found containing %q", title)
}

func (f *FakeBackend) ReadClipboard() (string, error) {
	if err := f.failure("clipboard_read"); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Clipboard, nil
}

func (f *FakeBackend) WriteClipboard(text string) error {
	f.record("clipboard %q", text)
	if err := f.failure("clipboard_write"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Clipboard = text
	return nil
}

func (f *FakeBackend) OpenURL(url string) error {
	f.record("open_url %s", url)
	return f.failure("open_url")
}

func (f *FakeBackend) OpenPath(path string) error {
	f.record("open_path %s", path)
	return f.failure("open_path")
}

func (f *FakeBackend) StartCommand(command string) error {
	f.record("start %s", command)
	return f.failure("start")
}

func (f *FakeBackend) MoveFile(src, dest string) error {
	f.record("move_file %s -> %s", src, dest)
	return f.failure("move_file")
}

func (f *FakeBackend) PathExists(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Paths[path]
}
