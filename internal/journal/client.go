//go:build linux

package journal

import (
	"errors"
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

// Client owns the unix datagram socket used for every send. It is
// opened once and reused for the lifetime of the logger. A single
// Send is not atomic against interleaving from another goroutine at
// the buffer level; callers that share a Client must serialize Send
// themselves.
type Client struct {
	conn *net.UnixConn
	addr *net.UnixAddr
}

// NewClient opens an unbound datagram socket and probes the journal
// at path by sending an empty payload, which journald discards. A
// missing or unreachable journal therefore fails construction instead
// of the first real log call. An empty path selects
// DefaultSocketPath.
func NewClient(path string) (*Client, error) {
	if path == "" {
		path = DefaultSocketPath
	}
	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Net: "unixgram"})
	if err != nil {
		return nil, fmt.Errorf("journalship: open socket: %w", err)
	}
	c := &Client{conn: conn, addr: &net.UnixAddr{Name: path, Net: "unixgram"}}
	if _, err := c.Send(nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("journalship: probe %s: %w", path, err)
	}
	return c, nil
}

// Send delivers one encoded payload to the journal and returns the
// number of bytes the kernel accepted for the datagram body. Payloads
// the kernel rejects with EMSGSIZE are retried through a sealed
// memory file whose descriptor rides in the ancillary data of a
// zero-length datagram, so the returned count says nothing about the
// logical payload size. Every other error propagates unchanged; there
// are no retries and no buffering.
func (c *Client) Send(payload []byte) (int, error) {
	n, _, err := c.conn.WriteMsgUnix(payload, nil, c.addr)
	if err == nil {
		return n, nil
	}
	if !errors.Is(err, unix.EMSGSIZE) {
		return 0, err
	}
	return c.sendLarge(payload)
}

// sendLarge writes payload into a fresh memfd, seals it, and passes
// the descriptor to journald via SCM_RIGHTS. The memfd is closed on
// return; journald has its own copy of the descriptor by then.
func (c *Client) sendLarge(payload []byte) (int, error) {
	mem, err := newMemfd()
	if err != nil {
		return 0, fmt.Errorf("journalship: create memfd: %w", err)
	}
	defer mem.Close()
	if _, err := mem.Write(payload); err != nil {
		return 0, fmt.Errorf("journalship: write memfd: %w", err)
	}
	if err := sealFully(mem); err != nil {
		return 0, fmt.Errorf("journalship: seal memfd: %w", err)
	}
	rights := unix.UnixRights(int(mem.Fd()))
	n, _, err := c.conn.WriteMsgUnix(nil, rights, c.addr)
	if err != nil {
		return 0, fmt.Errorf("journalship: send memfd: %w", err)
	}
	return n, nil
}

// Close releases the socket. The Client must not be used afterwards.
func (c *Client) Close() error {
	return c.conn.Close()
}
