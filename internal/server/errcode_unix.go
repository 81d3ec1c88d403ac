//go:build unix

package server

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

// errorCode returns the symbolic errno name behind err (e.g. "EACCES"),
// falling back to the error text when there is none.
func errorCode(err error) string {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		if name := unix.ErrnoName(errno); name != "" {
			return name
		}
	}
	return rootCause(err).Error()
}
