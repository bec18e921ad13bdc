package searchmenu

import (
	"context"
	"sync"
	"time"
)

// Typewriter reveals a tool result one character at a time on a fixed
// per-character delay. Starting a new text fully restarts the reveal and
// cancels the one in flight; Stop cancels without replacement. The effect
// is display only, nothing observable happens beyond the emit callbacks.
type Typewriter struct {
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewTypewriter(interval time.Duration) *Typewriter {
	return &Typewriter{interval: interval}
}

// Start begins revealing text, emitting the cumulative prefix after each
// character. A reveal already in flight is cancelled first and never
// interleaves with the new one. The returned channel closes when the
// reveal finishes, is cancelled or ctx ends.
func (t *Typewriter) Start(ctx context.Context, text string, emit func(revealed string)) <-chan struct{} {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
		<-t.done
	}
	t.cancel = cancel
	t.done = done
	t.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()

		runes := []rune(text)
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for i := 1; i <= len(runes); i++ {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				emit(string(runes[:i]))
			}
		}
	}()
	return done
}

// Stop cancels the reveal in flight, if any, and waits for it to wind
// down. Safe to call repeatedly and on a Typewriter that never started.
func (t *Typewriter) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		<-t.done
		t.cancel = nil
		t.done = nil
	}
}
