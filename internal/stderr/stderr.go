//go:build !windows

// Package stderr captures output that C libraries (libmpv, ALSA) write
// directly to file descriptor 2, bypassing Go's os.Stderr.
// This prevents raw messages from corrupting the TUI layout.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// Capture redirects fd 2 into a pipe until Stop is called.
type Capture struct {
	orig      int
	pipeRead  *os.File
	pipeWrite *os.File
	done      chan struct{}
}

// Start begins capturing stderr output, handing every non-blank line to
// sink from a background goroutine.
// Must be called early in main(), before any C library initialization.
// On error the program can continue without capture.
func Start(sink func(line string)) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{orig: orig, pipeRead: r, pipeWrite: w, done: make(chan struct{})}
	go func() {
		defer close(c.done)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				sink(line)
			}
		}
	}()
	return c, nil
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
// Useful for fatal errors that must be visible even if TUI is running.
func (c *Capture) WriteOriginal(msg string) {
	if c == nil {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = syscall.Write(c.orig, []byte(msg))
}

// Stop restores the original stderr and waits for the reader to finish.
func (c *Capture) Stop() {
	if c == nil {
		return
	}
	_ = syscall.Dup2(c.orig, int(os.Stderr.Fd()))
	_ = syscall.Close(c.orig)

	// fd 2 no longer references the pipe, so closing our end delivers EOF.
	c.pipeWrite.Close()
	<-c.done
	c.pipeRead.Close()
}
