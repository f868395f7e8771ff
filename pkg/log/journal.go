package log

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/bft-labs/journalship/internal/journal"
)

// Options configures a journal-backed logger.
type Options struct {
	// Identifier is the SYSLOG_IDENTIFIER field. Defaults to the
	// base name of the running executable.
	Identifier string

	// Target is the TARGET field attached to every record.
	// Defaults to the identifier.
	Target string

	// SocketPath overrides the journal socket path. Leave empty for
	// the system journal.
	SocketPath string

	// ExtraFields are appended to every record after its own fields.
	// They are encoded once at construction time.
	ExtraFields []Field

	// OnError receives send failures. The journal socket is local
	// and sends either complete or fail immediately; there is no
	// retry. Defaults to a single line on stderr. Callers wanting
	// panic-on-failure install a panicking handler here.
	OnError func(error)
}

// JournalLogger sends records to the systemd journal over its native
// datagram protocol. Safe for concurrent use.
type JournalLogger struct {
	mu         sync.Mutex
	client     *journal.Client
	identifier string
	target     string
	extra      []byte
	onError    func(error)
}

// NewJournalLogger connects to the journal and returns a logger.
// Construction fails if the journal socket is missing or unreachable.
func NewJournalLogger(opts Options) (*JournalLogger, error) {
	if opts.Identifier == "" {
		if exe, err := os.Executable(); err == nil {
			opts.Identifier = filepath.Base(exe)
		}
	}
	if opts.Target == "" {
		opts.Target = opts.Identifier
	}
	if opts.OnError == nil {
		opts.OnError = func(err error) {
			fmt.Fprintf(os.Stderr, "journalship: dropped record: %v\n", err)
		}
	}
	client, err := journal.NewClient(opts.SocketPath)
	if err != nil {
		return nil, err
	}
	return &JournalLogger{
		client:     client,
		identifier: opts.Identifier,
		target:     opts.Target,
		extra:      journal.EncodeExtraFields(convertFields(opts.ExtraFields)),
		onError:    opts.OnError,
	}, nil
}

// Trace logs a trace-level message.
func (l *JournalLogger) Trace(msg string, fields ...Field) {
	l.log(journal.LevelTrace, msg, fields)
}

// Debug logs a debug-level message.
func (l *JournalLogger) Debug(msg string, fields ...Field) {
	l.log(journal.LevelDebug, msg, fields)
}

// Info logs an info-level message.
func (l *JournalLogger) Info(msg string, fields ...Field) {
	l.log(journal.LevelInfo, msg, fields)
}

// Warn logs a warning-level message.
func (l *JournalLogger) Warn(msg string, fields ...Field) {
	l.log(journal.LevelWarn, msg, fields)
}

// Error logs an error-level message.
func (l *JournalLogger) Error(msg string, fields ...Field) {
	l.log(journal.LevelError, msg, fields)
}

// Log sends an explicit record, bypassing caller-location capture.
// Send failures are returned rather than routed to OnError, so callers
// can apply their own policy per record.
func (l *JournalLogger) Log(rec *journal.Record) error {
	payload := journal.AppendRecord(nil, l.identifier, l.extra, rec)
	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := l.client.Send(payload)
	return err
}

// Close releases the journal socket.
func (l *JournalLogger) Close() error {
	return l.client.Close()
}

func (l *JournalLogger) log(level journal.Level, msg string, fields []Field) {
	rec := journal.Record{
		Level:   level,
		Message: msg,
		Target:  l.target,
		Fields:  convertFields(fields),
	}
	rec.File, rec.Line, rec.Module = callerLocation(3)
	if err := l.Log(&rec); err != nil {
		l.onError(err)
	}
}

// callerLocation resolves the source file, line and package path of
// the frame skip levels up the stack. Missing information stays zero
// and the corresponding fields are omitted from the record.
func callerLocation(skip int) (file string, line int, module string) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", 0, ""
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		module = packagePath(fn.Name())
	}
	return file, line, module
}

// packagePath strips the function and receiver from a runtime function
// name such as "example.com/pkg.(*T).Method".
func packagePath(name string) string {
	slash := strings.LastIndexByte(name, '/')
	dot := strings.IndexByte(name[slash+1:], '.')
	if dot < 0 {
		return name
	}
	return name[:slash+1+dot]
}

// convertFields maps façade fields onto the journal's closed value
// variants.
func convertFields(fields []Field) []journal.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]journal.Field, len(fields))
	for i, f := range fields {
		out[i] = journal.Field{Key: f.Key, Value: convertValue(f.Value)}
	}
	return out
}

func convertValue(v interface{}) journal.Value {
	switch v := v.(type) {
	case string:
		return journal.Text(v)
	case []byte:
		return journal.Binary(v)
	case int:
		return journal.Int(int64(v))
	case int64:
		return journal.Int(v)
	case uint64:
		return journal.Uint(v)
	case float64:
		return journal.Float(v)
	case bool:
		return journal.Bool(v)
	case time.Duration:
		return journal.Text(v.String())
	case error:
		return journal.Text(v.Error())
	default:
		return journal.Text(fmt.Sprint(v))
	}
}
