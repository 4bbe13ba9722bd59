package session

import (
	"errors"
	"sync"

	"github.com/ytget/ytfetch/internal/model"
)

// ErrChannelClosed is returned when delivering to a closed channel
var ErrChannelClosed = errors.New("progress channel closed")

// Sender is the transport behind a channel, e.g. a websocket connection
type Sender interface {
	Send(model.ProgressEvent) error
	Close() error
}

// Channel is the live send endpoint of one session
type Channel struct {
	id     string
	sender Sender

	sendMu sync.Mutex // serializes writes to sender

	mu        sync.Mutex
	closed    bool
	done      chan struct{}
	qualities model.QualityMap
}

func newChannel(id string, sender Sender) *Channel {
	return &Channel{
		id:     id,
		sender: sender,
		done:   make(chan struct{}),
	}
}

// ID returns the session id
func (c *Channel) ID() string {
	return c.id
}

// Deliver sends ev through the channel's transport
func (c *Channel) Deliver(ev model.ProgressEvent) error {
	if c.IsClosed() {
		return ErrChannelClosed
	}
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.IsClosed() {
		return ErrChannelClosed
	}
	return c.sender.Send(ev)
}

// Done is closed when the channel is closed
func (c *Channel) Done() <-chan struct{} {
	return c.done
}

// IsClosed reports whether Close was called
func (c *Channel) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Close shuts the transport down. Calling it again is a no-op.
func (c *Channel) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.done)
	c.mu.Unlock()

	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	return c.sender.Close()
}

// SetQualityMap stores the map from the session's last format fetch
func (c *Channel) SetQualityMap(qm model.QualityMap) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.qualities = qm
}

// QualityMap returns the stored map, or nil if formats were not fetched
// through this session
func (c *Channel) QualityMap() model.QualityMap {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.qualities
}
