//go:build !unix

package server

import (
	"errors"
	"fmt"
	"syscall"
)

func errorCode(err error) string {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return fmt.Sprintf("ERRNO_%d", uintptr(errno))
	}
	return rootCause(err).Error()
}
