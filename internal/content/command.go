// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/content/command.go
// Summary: Captures a command's terminal output as effect base content.
// Usage: FromCommand(ctx, []string{"ls", "-l"}, w, h) runs ls in a pty of that size.
// Notes: Escape sequences are stripped; colors from the command are not kept.

package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/creack/pty"
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelfx/internal/effects"
)

// ErrNoCommand is returned when FromCommand is given an empty argv.
var ErrNoCommand = errors.New("content: empty command")

// drainTimeout bounds how long output is read after the command exits, in
// case a background child keeps the pty open.
const drainTimeout = 500 * time.Millisecond

// FromCommand runs argv in a pty sized to the grid and lays out whatever it
// printed. When ctx is cancelled the command is killed and the partial output
// is returned together with the context error. A non-zero exit is logged but
// not treated as an error.
func FromCommand(ctx context.Context, argv []string, width, height int, style tcell.Style) (effects.Grid, error) {
	if len(argv) == 0 {
		return nil, ErrNoCommand
	}
	if width <= 0 || height <= 0 {
		return effects.NewGrid(width, height), nil
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"COLUMNS="+strconv.Itoa(width),
		"LINES="+strconv.Itoa(height),
	)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(height),
		Cols: uint16(width),
	})
	if err != nil {
		log.Printf("Content: failed to start pty for %q: %v", argv[0], err)
		return nil, fmt.Errorf("content: start %q: %w", argv[0], err)
	}
	defer ptmx.Close()

	var out bytes.Buffer
	copied := make(chan struct{})
	go func() {
		defer close(copied)
		// Reads end with EIO once the last writer on the pty goes away.
		_, _ = io.Copy(&out, ptmx)
	}()

	waitErr := cmd.Wait()
	select {
	case <-copied:
	case <-time.After(drainTimeout):
		ptmx.Close()
		<-copied
	}

	grid := FromText(StripEscapes(out.String()), width, height, style)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return grid, ctxErr
	}
	if waitErr != nil {
		log.Printf("Content: %q exited: %v", argv[0], waitErr)
	}
	return grid, nil
}
