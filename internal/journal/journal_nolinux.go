//go:build !linux

package journal

// Client is a placeholder on platforms without a systemd journal.
type Client struct{}

// NewClient always fails with ErrNotSupported.
func NewClient(path string) (*Client, error) {
	return nil, ErrNotSupported
}

// Send always fails with ErrNotSupported.
func (c *Client) Send(payload []byte) (int, error) {
	return 0, ErrNotSupported
}

// Close is a no-op.
func (c *Client) Close() error { return nil }

// StderrIsJournal always reports false.
func StderrIsJournal() bool { return false }
