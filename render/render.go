package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/mullikine/graphviz/dot"
)

// DefaultTimeout bounds a layout engine run when the caller's context
// carries no deadline of its own.
const DefaultTimeout = 30 * time.Second

// Render pipes the printed form of g to the layout engine's stdin and
// returns the bytes the engine wrote to stdout. The engine binary must be
// on PATH. Engine stderr is folded into the returned error.
func Render(ctx context.Context, g dot.Graph, engine Engine, format Format) ([]byte, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, engine.String(), "-T"+format.Selector())
	cmd.Stdin = strings.NewReader(dot.Print(g))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%s timed out", engine)
		}
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%s failed: %w: %s", engine, err, strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("%s failed: %w", engine, err)
	}
	return stdout.Bytes(), nil
}

// RenderToFile renders g and writes the output to path. An empty path
// selects a unique temp file; a path without the format's extension gets
// it appended. Returns the path written.
func RenderToFile(ctx context.Context, g dot.Graph, engine Engine, format Format, path string) (string, error) {
	if path == "" {
		path = TempOutputPath(format)
	} else {
		path = OutputPath(path, format)
	}

	out, err := Render(ctx, g, engine, format)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "", fmt.Errorf("writing render output: %w", err)
	}
	return path, nil
}
