//go:build linux

package journal

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// StderrIsJournal reports whether stderr is connected to the systemd
// journal. systemd sets JOURNAL_STREAM to "<dev>:<ino>" of the stream
// it attached to stdout/stderr; the value matches only if the process
// did not redirect stderr since.
func StderrIsJournal() bool {
	stream := os.Getenv("JOURNAL_STREAM")
	if stream == "" {
		return false
	}
	dev, ino, ok := strings.Cut(stream, ":")
	if !ok {
		return false
	}
	var stat unix.Stat_t
	if err := unix.Fstat(int(os.Stderr.Fd()), &stat); err != nil {
		return false
	}
	return dev == strconv.FormatUint(uint64(stat.Dev), 10) &&
		ino == strconv.FormatUint(stat.Ino, 10)
}
