//go:build windows

package resguard

import "syscall"

func closeFD(fd int) error {
	return syscall.Close(syscall.Handle(fd))
}
