// Package log provides the logging façade over the journalship core.
//
// This package defines a Logger interface plus a journal-backed
// implementation that serializes each record and sends it to journald
// over the native datagram protocol. A zerolog adapter serves as a
// stderr fallback, and a no-op logger is available for testing.
//
// # Usage
//
// Install the journal logger once, early in main:
//
//	if err := log.Init(log.Options{Identifier: "myservice"}); err != nil {
//	    // no journal available; fall back or bail out
//	}
//	log.Default().Info("service starting", log.String("version", version))
//
// Or construct an instance explicitly:
//
//	logger, err := log.NewJournalLogger(log.Options{
//	    Identifier:  "myservice",
//	    ExtraFields: []log.Field{log.String("deployment", "prod")},
//	})
//
// # Failure policy
//
// A failed send is reported to Options.OnError and the record is
// dropped; the core never retries or buffers. Install a panicking
// OnError handler to make send failures fatal.
//
// # Custom Loggers
//
// Implement the Logger interface to integrate with your existing
// logging infrastructure:
//
//	type MyLogger struct { ... }
//
//	func (l *MyLogger) Trace(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Debug(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Info(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Warn(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Error(msg string, fields ...log.Field) { ... }
package log
