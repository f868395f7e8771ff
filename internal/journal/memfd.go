//go:build linux

package journal

import (
	"os"

	"golang.org/x/sys/unix"
)

const allSeals = unix.F_SEAL_SHRINK | unix.F_SEAL_GROW | unix.F_SEAL_WRITE | unix.F_SEAL_SEAL

// newMemfd allocates an anonymous, initially writable memory-backed
// file that can be sealed later. Fails when the kernel facility is
// unavailable or resource limits are exhausted.
func newMemfd() (*os.File, error) {
	fd, err := unix.MemfdCreate("journalship", unix.MFD_ALLOW_SEALING|unix.MFD_CLOEXEC)
	if err != nil {
		return nil, os.NewSyscallError("memfd_create", err)
	}
	return os.NewFile(uintptr(fd), "journalship-memfd"), nil
}

// sealFully makes f immutable: no further writes, growth, shrink or
// seal changes. journald relies on the seal to mmap the contents
// without racing against the sender.
func sealFully(f *os.File) error {
	_, err := unix.FcntlInt(f.Fd(), unix.F_ADD_SEALS, allSeals)
	if err != nil {
		return os.NewSyscallError("fcntl", err)
	}
	return nil
}
