// Package progress carries one-way liveness notifications out of long
// running wiki operations. Senders never wait for a receiver and never learn
// whether a message was seen.
package progress

import (
	"sync"

	"github.com/rs/zerolog"
)

// Phase identifies a checkpoint of an operation
type Phase string

const (
	PhaseStart     Phase = "start"
	PhaseStructure Phase = "structure"
	PhaseCloning   Phase = "cloning"
	PhaseLinking   Phase = "linking"
	PhaseTagging   Phase = "tagging"
	PhaseRemoving  Phase = "removing"
	PhaseWarning   Phase = "warning"
	PhaseCompleted Phase = "completed"
)

// Message is a single notification
type Message struct {
	Message string `json:"message" yaml:"message"`
	Phase   Phase  `json:"phase" yaml:"phase"`
}

// Sink receives notifications. Notify must not block the caller for long.
type Sink interface {
	Notify(msg Message)
}

// NopSink drops everything
type NopSink struct{}

func (NopSink) Notify(Message) {}

// FuncSink adapts a function to Sink
type FuncSink func(Message)

func (f FuncSink) Notify(msg Message) { f(msg) }

// ChannelSink forwards messages to a buffered channel. When the buffer is
// full the message is dropped.
type ChannelSink struct {
	ch chan Message
}

// NewChannelSink creates a ChannelSink with the given buffer size
func NewChannelSink(buffer int) *ChannelSink {
	return &ChannelSink{ch: make(chan Message, buffer)}
}

func (c *ChannelSink) Notify(msg Message) {
	select {
	case c.ch <- msg:
	default:
	}
}

// C returns the receiving end
func (c *ChannelSink) C() <-chan Message {
	return c.ch
}

// Close closes the channel. Notify must not be called afterwards.
func (c *ChannelSink) Close() {
	close(c.ch)
}

// LogSink writes messages to a zerolog logger at info level, warnings at
// warn level
type LogSink struct {
	Logger zerolog.Logger
}

func (l LogSink) Notify(msg Message) {
	ev := l.Logger.Info()
	if msg.Phase == PhaseWarning {
		ev = l.Logger.Warn()
	}
	ev.Str("phase", string(msg.Phase)).Msg(msg.Message)
}

// Multi fans out to several sinks in order
type Multi []Sink

func (m Multi) Notify(msg Message) {
	for _, s := range m {
		if s != nil {
			s.Notify(msg)
		}
	}
}

// Recorder keeps every message, mostly for tests
type Recorder struct {
	mu       sync.Mutex
	messages []Message
}

func (r *Recorder) Notify(msg Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

// Messages returns a copy of what was recorded
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Phases returns the phase of every recorded message, in order
func (r *Recorder) Phases() []Phase {
	msgs := r.Messages()
	phases := make([]Phase, len(msgs))
	for i, m := range msgs {
		phases[i] = m.Phase
	}
	return phases
}

// Reset forgets every recorded message
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
}
