package automation

import (
	"fmt"
	"time"

	"github.com/go-vgo/robotgo"
)

// robotBackend implements Backend on top of robotgo for real pointer,
// keyboard, window, and clipboard access.
type robotBackend struct{}

// NewRobotBackend returns the production automation backend.
func NewRobotBackend() Backend {
	return &robotBackend{}
}

var _ Backend = (*robotBackend)(nil)

func (b *robotBackend) Click(x, y int, button string, clicks int, interval time.Duration) error {
	if button == "" {
		button = "left"
	}
	robotgo.Move(x, y)
	if clicks < 1 {
		clicks = 1
	}
	for i := 0; i < clicks; i++ {
		if i > 0 && interval > 0 {
			time.Sleep(interval)
		}
		robotgo.Click(button, false)
	}
	return nil
}

func (b *robotBackend) TypeText(text string, interval time.Duration) error {
	if interval <= 0 {
		robotgo.TypeStr(text)
		return nil
	}
	for _, r := range text {
		robotgo.TypeStr(string(r))
		time.Sleep(interval)
	}
	return nil
}

func (b *robotBackend) Hotkey(keys []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("hotkey requires at least one key")
	}
	key := keys[len(keys)-1]
	mods := make([]interface{}, 0, len(keys)-1)
	for _, m := range keys[:len(keys)-1] {
		mods = append(mods, m)
	}
	return robotgo.KeyTap(key, mods...)
}

func (b *robotBackend) PointerPosition() (int, int) {
	return robotgo.Location()
}

func (b *robotBackend) MovePointer(dx, dy int) error {
	robotgo.MoveRelative(dx, dy)
	return nil
}

func (b *robotBackend) MovePointerTo(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

func (b *robotBackend) ActiveWindowTitle() string {
	return robotgo.GetTitle()
}

func (b *robotBackend) FocusWindow(title string) (string, error) {
	if err := robotgo.ActiveName(title); err != nil {
		return "", fmt.Errorf("activate window %q: %w", title, err)
	}
	return robotgo.GetTitle(), nil
}

func (b *robotBackend) ReadClipboard() (string, error) {
	return robotgo.ReadAll()
}

func (b *robotBackend) WriteClipboard(text string) error {
	return robotgo.WriteAll(text)
}

func (b *robotBackend) OpenURL(url string) error {
	return openWithSystemHandler(url)
}

func (b *robotBackend) OpenPath(path string) error {
	return openWithSystemHandler(path)
}

func (b *robotBackend) StartCommand(command string) error {
	return startShellCommand(command)
}

func (b *robotBackend) MoveFile(src, dest string) error {
	return moveFile(src, dest)
}

func (b *robotBackend) PathExists(path string) bool {
	return pathExists(path)
}
