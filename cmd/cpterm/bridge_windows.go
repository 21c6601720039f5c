//go:build windows

package main

import (
	"errors"
	"os/exec"

	"github.com/stlalpha/codepage/internal/session"
)

func runBridge(cmd *exec.Cmd, s *session.Session) error {
	return errors.New("cpterm needs a Unix pty; not supported on Windows")
}
