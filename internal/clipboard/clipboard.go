// Package clipboard puts summarizer output on the system clipboard so
// it can be pasted outside the viewer.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

var ErrToolNotFound = errors.New("no clipboard tool available")

// writerArgv resolves the platform's clipboard-writer invocation: the
// tool path followed by its arguments. The injected lookPath keeps the
// resolution testable.
func writerArgv(goos string, lookPath func(string) (string, error)) ([]string, error) {
	switch goos {
	case "darwin":
		if path, err := lookPath("pbcopy"); err == nil {
			return []string{path}, nil
		}
	case "linux":
		// Wayland first, X11 fallback.
		if path, err := lookPath("wl-copy"); err == nil {
			return []string{path}, nil
		}
		if path, err := lookPath("xclip"); err == nil {
			return []string{path, "-selection", "clipboard"}, nil
		}
	}
	return nil, ErrToolNotFound
}

// Copy pipes text into the platform clipboard writer.
func Copy(ctx context.Context, text string) error {
	argv, err := writerArgv(runtime.GOOS, exec.LookPath)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		tool := filepath.Base(argv[0])
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s failed: %w: %s", tool, err, msg)
		}
		return fmt.Errorf("%s failed: %w", tool, err)
	}
	return nil
}
