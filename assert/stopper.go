package assert

import "sync"

// Stopper is the host termination hook invoked when an Error-level
// assertion fails and the quit flag is set.
//
// Stop is a fire-and-forget request: the evaluator does not wait for the
// host to act on it, and the failure error propagates regardless of whether
// the host honors the request.
type Stopper interface {
	Stop()
}

// StopperFunc adapts a function to the Stopper interface.
type StopperFunc func()

// Stop calls f.
func (f StopperFunc) Stop() {
	f()
}

// ChannelStopper signals termination by closing a channel. It suits hosts
// that drain a shutdown channel in their main loop.
//
// Stop is idempotent; the channel is closed at most once.
type ChannelStopper struct {
	once sync.Once
	done chan struct{}
}

// NewChannelStopper creates a ChannelStopper with an open Done channel.
func NewChannelStopper() *ChannelStopper {
	return &ChannelStopper{
		done: make(chan struct{}),
	}
}

// Stop closes the Done channel. Subsequent calls are no-ops.
func (s *ChannelStopper) Stop() {
	if s == nil {
		return
	}

	s.once.Do(func() {
		close(s.done)
	})
}

// Done returns the channel closed by Stop.
func (s *ChannelStopper) Done() <-chan struct{} {
	if s == nil {
		return nil
	}

	return s.done
}
