package journal

import "fmt"

// Priority is a syslog severity as carried in the PRIORITY journal
// field.
type Priority int

const (
	PriEmerg Priority = iota
	PriAlert
	PriCrit
	PriErr
	PriWarning
	PriNotice
	PriInfo
	PriDebug
)

// digit returns the single ASCII digit journald expects for the
// PRIORITY field.
func (p Priority) digit() []byte {
	return []byte{'0' + byte(p)}
}

// Level is the severity of a log record.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// Priority maps a record level to the journal priority used for the
// PRIORITY field: Error→3, Warn→4, Info→5, Debug→6, Trace→7.
func (l Level) Priority() Priority {
	switch l {
	case LevelError:
		return PriErr
	case LevelWarn:
		return PriWarning
	case LevelInfo:
		return PriNotice
	case LevelDebug:
		return PriInfo
	default:
		return PriDebug
	}
}

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel parses a level name as used in configuration files and
// on the command line.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}
	return LevelInfo, fmt.Errorf("journalship: unknown level %q", s)
}
