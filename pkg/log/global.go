package log

import (
	"errors"
	"sync"
)

// ErrAlreadyInitialized is returned when Init is called twice.
var ErrAlreadyInitialized = errors.New("journalship: logger already initialized")

var (
	globalMu    sync.Mutex
	global      Logger
	initialized bool
)

// Init constructs a journal-backed logger from opts and installs it as
// the process-wide logger returned by Default. It can succeed at most
// once for the lifetime of the process; a second call fails with
// ErrAlreadyInitialized, whether or not the first call configured the
// same options.
func Init(opts Options) error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if initialized {
		return ErrAlreadyInitialized
	}
	logger, err := NewJournalLogger(opts)
	if err != nil {
		return err
	}
	global = logger
	initialized = true
	return nil
}

// Default returns the logger installed by Init, or a no-op logger when
// Init has not run.
func Default() Logger {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		return NoopLogger{}
	}
	return global
}
