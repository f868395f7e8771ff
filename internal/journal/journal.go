package journal

import "errors"

// DefaultSocketPath is journald's well-known datagram socket.
// See https://systemd.io/JOURNAL_NATIVE_PROTOCOL/.
const DefaultSocketPath = "/run/systemd/journal/socket"

// ErrNotSupported is returned by constructors on platforms without a
// systemd journal.
var ErrNotSupported = errors.New("journalship: journal not supported on this platform")
