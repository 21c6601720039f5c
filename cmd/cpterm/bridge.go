//go:build !windows

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/stlalpha/codepage/internal/logging"
	"github.com/stlalpha/codepage/internal/session"
	"github.com/stlalpha/codepage/internal/terminalio"
)

// runBridge runs cmd on a pty and translates between it and the local
// terminal until the child's output ends.
func runBridge(cmd *exec.Cmd, s *session.Session) error {
	log.Printf("INFO: Session %s: starting %q with codepage %s", s.ID, cmd.Path, s.Codepage())

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("failed to start pty for %q: %w", cmd.Path, err)
	}
	defer func() { _ = ptmx.Close() }()

	stdinFd := int(os.Stdin.Fd())
	if term.IsTerminal(stdinFd) {
		// Handle window size changes
		winch := make(chan os.Signal, 1)
		signal.Notify(winch, syscall.SIGWINCH)
		defer signal.Stop(winch)
		go func() {
			for range winch {
				resize(stdinFd, ptmx)
			}
		}()
		resize(stdinFd, ptmx)

		originalState, err := term.MakeRaw(stdinFd)
		if err != nil {
			log.Printf("WARN: Session %s: Failed to put terminal into raw mode: %v", s.ID, err)
		} else {
			defer func() {
				if restoreErr := term.Restore(stdinFd, originalState); restoreErr != nil {
					log.Printf("ERROR: Session %s: Failed to restore terminal state: %v", s.ID, restoreErr)
				}
			}()
		}
	}

	// Keyboard side: stays blocked on stdin until the process exits.
	go func() {
		_, copyErr := io.Copy(terminalio.NewKeyboardWriter(ptmx, s), os.Stdin)
		if copyErr != nil && !errors.Is(copyErr, os.ErrClosed) {
			log.Printf("WARN: Session %s: Error copying stdin to child: %v", s.ID, copyErr)
		}
		logging.Debug("Session %s: Finished copying stdin to child", s.ID)
	}()

	// Display side: ends when the child closes the pty.
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, copyErr := io.Copy(terminalio.NewDisplayWriter(os.Stdout, s), ptmx)
		// Linux reports EIO on the master once the child side is gone.
		if copyErr != nil && !errors.Is(copyErr, syscall.EIO) && !errors.Is(copyErr, os.ErrClosed) {
			log.Printf("WARN: Session %s: Error copying child output: %v", s.ID, copyErr)
		}
		logging.Debug("Session %s: Finished copying child output", s.ID)
	}()

	<-done
	if n := s.Rejected(); n > 0 {
		log.Printf("INFO: Session %s: replaced %d malformed UTF-8 sequences", s.ID, n)
	}
	return cmd.Wait()
}

func resize(fd int, ptmx *os.File) {
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		logging.Debug("Failed to read terminal size: %v", err)
		return
	}
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)}); err != nil {
		log.Printf("WARN: Failed to resize pty: %v", err)
	}
}
