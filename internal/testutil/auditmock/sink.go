package auditmock

import (
	"context"
	"sync"
)

// Sink records audit calls for assertions.
type Sink struct {
	mu      sync.Mutex
	Entries []Entry
}

type Entry struct {
	Actor  string
	Action string
	Detail string
}

func (s *Sink) Log(ctx context.Context, actor, action, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Entries = append(s.Entries, Entry{Actor: actor, Action: action, Detail: detail})
}

func (s *Sink) Actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		out = append(out, e.Action)
	}
	return out
}
