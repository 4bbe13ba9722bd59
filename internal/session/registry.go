package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/ytget/ytfetch/internal/model"
)

// Registry maps session ids to live channels
type Registry struct {
	channels map[string]*Channel
	mutex    sync.RWMutex
	logger   hclog.Logger
}

// NewRegistry creates an empty registry
func NewRegistry(logger hclog.Logger) *Registry {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Registry{
		channels: make(map[string]*Channel),
		logger:   logger.Named("sessions"),
	}
}

// Register opens a channel for id. An empty id gets a generated one.
// It fails with DuplicateSessionError while another channel is live for id.
func (r *Registry) Register(id string, sender Sender) (*Channel, error) {
	if id == "" {
		id = uuid.NewString()
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if existing, ok := r.channels[id]; ok && !existing.IsClosed() {
		return nil, &model.DuplicateSessionError{SessionID: id}
	}

	ch := newChannel(id, sender)
	r.channels[id] = ch
	r.logger.Debug("session registered", "session_id", id, "active", len(r.channels))
	return ch, nil
}

// Lookup returns the live channel for id
func (r *Registry) Lookup(id string) (*Channel, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	ch, ok := r.channels[id]
	if !ok || ch.IsClosed() {
		return nil, false
	}
	return ch, true
}

// Unregister closes and forgets the channel for id. Unknown ids are ignored.
func (r *Registry) Unregister(id string) {
	r.mutex.Lock()
	ch, ok := r.channels[id]
	if ok {
		delete(r.channels, id)
	}
	r.mutex.Unlock()

	if ok {
		r.closeChannel(ch)
	}
}

// Remove unregisters ch only if it is still the channel registered for its id,
// so a stale disconnect cannot tear down a newer connection.
func (r *Registry) Remove(ch *Channel) {
	r.mutex.Lock()
	current, ok := r.channels[ch.ID()]
	if ok && current == ch {
		delete(r.channels, ch.ID())
	}
	r.mutex.Unlock()

	r.closeChannel(ch)
}

// Len returns the number of registered channels
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.channels)
}

// CloseAll closes every channel, used on shutdown
func (r *Registry) CloseAll() {
	r.mutex.Lock()
	channels := r.channels
	r.channels = make(map[string]*Channel)
	r.mutex.Unlock()

	for _, ch := range channels {
		r.closeChannel(ch)
	}
}

func (r *Registry) closeChannel(ch *Channel) {
	if err := ch.Close(); err != nil {
		r.logger.Debug("closing session transport", "session_id", ch.ID(), "error", err)
		return
	}
	r.logger.Debug("session unregistered", "session_id", ch.ID())
}
