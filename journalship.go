// Package journalship provides structured logging to the systemd
// journal over its native datagram protocol, including the sealed
// memory-file fallback for payloads that exceed the kernel's datagram
// size limit.
//
// Example usage:
//
//	err := journalship.Init(journalship.Options{
//	    Identifier:  "myservice",
//	    ExtraFields: []log.Field{log.String("deployment", "prod")},
//	})
//	if err != nil {
//	    // journal unreachable; pick a fallback
//	}
//	journalship.Default().Info("service starting")
//
// For low-level access, NewClient returns the datagram transport and
// AppendRecord produces the wire payload for a single record.
package journalship

import (
	"github.com/bft-labs/journalship/internal/journal"
	"github.com/bft-labs/journalship/pkg/log"
)

// DefaultSocketPath is journald's well-known datagram socket.
const DefaultSocketPath = journal.DefaultSocketPath

// Client is the datagram transport to the journal. It sends small
// payloads directly and falls back to a sealed memory file passed via
// an ancillary message when the kernel reports the datagram as too
// large.
type Client = journal.Client

// Record is one log record ready for serialization.
type Record = journal.Record

// Level is the severity of a log record.
type Level = journal.Level

// Severity levels, mapped to journal priorities 3 through 7.
const (
	LevelError = journal.LevelError
	LevelWarn  = journal.LevelWarn
	LevelInfo  = journal.LevelInfo
	LevelDebug = journal.LevelDebug
	LevelTrace = journal.LevelTrace
)

// Options configures a journal-backed logger.
type Options = log.Options

// Logger is the façade interface implemented by the journal logger.
type Logger = log.Logger

// NewClient opens the transport to the journal socket at path and
// probes it. An empty path selects the system journal.
func NewClient(path string) (*Client, error) {
	return journal.NewClient(path)
}

// NewLogger connects to the journal and returns a structured logger.
func NewLogger(opts Options) (*log.JournalLogger, error) {
	return log.NewJournalLogger(opts)
}

// Init installs a process-wide journal logger. It can succeed at most
// once; a second call fails with log.ErrAlreadyInitialized.
func Init(opts Options) error {
	return log.Init(opts)
}

// Default returns the logger installed by Init, or a no-op logger.
func Default() Logger {
	return log.Default()
}

// AppendRecord appends the journal wire payload for rec to buf.
func AppendRecord(buf []byte, identifier string, extra []byte, rec *Record) []byte {
	return journal.AppendRecord(buf, identifier, extra, rec)
}

// StderrIsJournal reports whether stderr is connected to the systemd
// journal via the JOURNAL_STREAM handshake.
func StderrIsJournal() bool {
	return journal.StderrIsJournal()
}
