package automation

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// openWithSystemHandler opens a URL or filesystem path with the platform's
// default handler.
func openWithSystemHandler(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %q: %w", target, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// startShellCommand spawns the command through the platform shell without
// waiting for completion.
func startShellCommand(command string) error {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", command)
	} else {
		cmd = exec.Command("sh", "-c", command)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command %q: %w", command, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// moveFile renames src to dest, falling back to copy-and-delete when the
// rename crosses filesystems. A dest that is an existing directory receives
// the file under its original base name.
func moveFile(src, dest string) error {
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		dest = filepath.Join(dest, filepath.Base(src))
	}

	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("move %q: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("move %q: %w", src, err)
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("move to %q: %w", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dest)
		return fmt.Errorf("move %q to %q: %w", src, dest, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("move to %q: %w", dest, err)
	}

	return os.Remove(src)
}
