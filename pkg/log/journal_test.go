//go:build linux

package log

import (
	"bytes"
	"encoding/binary"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fakeJournal binds a datagram socket standing in for journald.
func fakeJournal(t *testing.T) (*net.UnixConn, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.sock")
	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		t.Fatalf("bind fake journal: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatalf("set deadline: %v", err)
	}
	return conn, path
}

func recvPayload(t *testing.T, conn *net.UnixConn) []byte {
	t.Helper()
	buf := make([]byte, 1<<20)
	n, _, err := conn.ReadFromUnix(buf)
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	return buf[:n]
}

// decodePayload turns an encoded payload into a key→value map,
// understanding both the compact and the length-prefixed form.
func decodePayload(t *testing.T, payload []byte) map[string]string {
	t.Helper()
	fields := map[string]string{}
	for len(payload) > 0 {
		nl := bytes.IndexByte(payload, '\n')
		if nl < 0 {
			t.Fatalf("truncated payload: %q", payload)
		}
		line := payload[:nl]
		if eq := bytes.IndexByte(line, '='); eq >= 0 {
			if _, dup := fields[string(line[:eq])]; !dup {
				fields[string(line[:eq])] = string(line[eq+1:])
			}
			payload = payload[nl+1:]
			continue
		}
		key := string(line)
		rest := payload[nl+1:]
		if len(rest) < 8 {
			t.Fatalf("truncated length tag for %q", key)
		}
		n := binary.LittleEndian.Uint64(rest[:8])
		rest = rest[8:]
		if uint64(len(rest)) < n+1 {
			t.Fatalf("truncated value for %q", key)
		}
		if _, dup := fields[key]; !dup {
			fields[key] = string(rest[:n])
		}
		payload = rest[n+1:]
	}
	return fields
}

func TestJournalLoggerSendsRecord(t *testing.T) {
	conn, path := fakeJournal(t)
	logger, err := NewJournalLogger(Options{
		Identifier:  "log-test",
		Target:      "app",
		SocketPath:  path,
		ExtraFields: []Field{String("deployment", "ci")},
	})
	if err != nil {
		t.Fatalf("NewJournalLogger: %v", err)
	}
	defer logger.Close()
	recvPayload(t, conn) // probe

	logger.Info("hello journal", String("request id", "abc"), Int("attempt", 2))

	fields := decodePayload(t, recvPayload(t, conn))
	checks := map[string]string{
		"PRIORITY":          "5",
		"MESSAGE":           "hello journal",
		"SYSLOG_IDENTIFIER": "log-test",
		"TARGET":            "app",
		"REQUEST_ID":        "abc",
		"ATTEMPT":           "2",
		"DEPLOYMENT":        "ci",
	}
	for key, want := range checks {
		if got := fields[key]; got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
	if fields["CODE_FILE"] == "" || fields["CODE_LINE"] == "" {
		t.Error("caller location missing from record")
	}
	if fields["CODE_MODULE"] != "github.com/bft-labs/journalship/pkg/log" {
		t.Errorf("CODE_MODULE = %q", fields["CODE_MODULE"])
	}
}

func TestJournalLoggerLevels(t *testing.T) {
	conn, path := fakeJournal(t)
	logger, err := NewJournalLogger(Options{Identifier: "log-test", SocketPath: path})
	if err != nil {
		t.Fatalf("NewJournalLogger: %v", err)
	}
	defer logger.Close()
	recvPayload(t, conn) // probe

	tests := []struct {
		emit func(string, ...Field)
		want string
	}{
		{logger.Error, "3"},
		{logger.Warn, "4"},
		{logger.Info, "5"},
		{logger.Debug, "6"},
		{logger.Trace, "7"},
	}
	for _, tt := range tests {
		tt.emit("m")
		fields := decodePayload(t, recvPayload(t, conn))
		if got := fields["PRIORITY"]; got != tt.want {
			t.Errorf("PRIORITY = %q, want %q", got, tt.want)
		}
	}
}

func TestJournalLoggerUnreachable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.sock")
	if _, err := NewJournalLogger(Options{SocketPath: path}); err == nil {
		t.Fatal("NewJournalLogger succeeded without a journal")
	}
}

func TestJournalLoggerOnError(t *testing.T) {
	conn, path := fakeJournal(t)
	var got error
	logger, err := NewJournalLogger(Options{
		Identifier: "log-test",
		SocketPath: path,
		OnError:    func(err error) { got = err },
	})
	if err != nil {
		t.Fatalf("NewJournalLogger: %v", err)
	}
	defer logger.Close()
	recvPayload(t, conn) // probe

	conn.Close()
	os.Remove(path)

	logger.Info("going nowhere")
	if got == nil {
		t.Fatal("OnError not invoked for failed send")
	}
}

func TestInitOnce(t *testing.T) {
	conn, path := fakeJournal(t)
	if err := Init(Options{Identifier: "log-test", SocketPath: path}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	recvPayload(t, conn) // probe

	if _, ok := Default().(*JournalLogger); !ok {
		t.Errorf("Default() = %T, want *JournalLogger", Default())
	}

	err := Init(Options{Identifier: "log-test", SocketPath: path})
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second Init = %v, want ErrAlreadyInitialized", err)
	}
}
