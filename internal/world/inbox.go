package world

import (
	"errors"
	"sort"
	"sync/atomic"
)

// ErrChannelEmpty means no new input arrived this tick. It is not a failure.
var ErrChannelEmpty = errors.New("no pending input")

// Message is one named value sent by a background listener.
type Message struct {
	Name string
	Val  Val
}

// Inbox hands messages from one listener goroutine to the frame loop.
type Inbox struct {
	ch      chan Message
	dropped atomic.Uint64
}

// NewInbox creates an inbox holding up to size pending messages.
func NewInbox(size int) *Inbox {
	if size < 1 {
		size = 1
	}
	return &Inbox{ch: make(chan Message, size)}
}

// Push enqueues m without blocking. When the inbox is full the message is
// dropped and false is returned.
func (b *Inbox) Push(m Message) bool {
	select {
	case b.ch <- m:
		return true
	default:
		b.dropped.Add(1)
		return false
	}
}

// TryRecv returns the next pending message or ErrChannelEmpty.
func (b *Inbox) TryRecv() (Message, error) {
	select {
	case m := <-b.ch:
		return m, nil
	default:
		return Message{}, ErrChannelEmpty
	}
}

// Drain receives at most max pending messages without blocking.
func (b *Inbox) Drain(max int) []Message {
	var out []Message
	for len(out) < max {
		m, err := b.TryRecv()
		if err != nil {
			break
		}
		out = append(out, m)
	}
	return out
}

// Dropped counts messages lost to a full inbox.
func (b *Inbox) Dropped() uint64 { return b.dropped.Load() }

// InboxSource exposes the latest value received for every name as
// {prefix}_{name}. Values persist until overwritten.
type InboxSource struct {
	name       string
	prefix     string
	inbox      *Inbox
	maxPerTick int
	latest     map[string]Val
}

// NewInboxSource creates a source named name that drains at most maxPerTick
// messages from inbox per frame.
func NewInboxSource(name, prefix string, inbox *Inbox, maxPerTick int) *InboxSource {
	if maxPerTick < 1 {
		maxPerTick = 1
	}
	return &InboxSource{
		name:       name,
		prefix:     prefix,
		inbox:      inbox,
		maxPerTick: maxPerTick,
		latest:     make(map[string]Val),
	}
}

func (s *InboxSource) Name() string { return s.name }

func (s *InboxSource) Update(FrameInput) {
	for _, m := range s.inbox.Drain(s.maxPerTick) {
		s.latest[m.Name] = m.Val
	}
}

func (s *InboxSource) ExecFuncs() []ExprValue {
	names := make([]string, 0, len(s.latest))
	for k := range s.latest {
		names = append(names, k)
	}
	sort.Strings(names)

	vals := make([]ExprValue, 0, len(names))
	for _, k := range names {
		vals = append(vals, ExprValue{Name: s.prefix + "_" + k, Val: s.latest[k]})
	}
	return vals
}
