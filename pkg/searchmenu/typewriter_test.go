package searchmenu

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recorder struct {
	mu       sync.Mutex
	revealed []string
}

func (r *recorder) emit(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revealed = append(r.revealed, s)
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.revealed...)
}

func TestTypewriterRevealsAllCharacters(t *testing.T) {
	defer goleak.VerifyNone(t)

	tw := NewTypewriter(time.Millisecond)
	rec := &recorder{}

	done := tw.Start(context.Background(), "abc", rec.emit)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("typewriter did not finish")
	}

	assert.Equal(t, []string{"a", "ab", "abc"}, rec.all())
}

func TestTypewriterHandlesMultibyteRunes(t *testing.T) {
	defer goleak.VerifyNone(t)

	tw := NewTypewriter(time.Millisecond)
	rec := &recorder{}

	<-tw.Start(context.Background(), "héllo", rec.emit)

	all := rec.all()
	require.Len(t, all, 5)
	assert.Equal(t, "hé", all[1])
	assert.Equal(t, "héllo", all[4])
}

func TestTypewriterRestartCancelsPreviousRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	tw := NewTypewriter(time.Millisecond)
	first := &recorder{}
	second := &recorder{}

	firstDone := tw.Start(context.Background(), "a long tool result", first.emit)
	secondDone := tw.Start(context.Background(), "xy", second.emit)

	select {
	case <-firstDone:
	case <-time.After(5 * time.Second):
		t.Fatal("first run did not stop")
	}
	select {
	case <-secondDone:
	case <-time.After(5 * time.Second):
		t.Fatal("second run did not finish")
	}

	assert.Equal(t, []string{"x", "xy"}, second.all())
}

func TestTypewriterStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	tw := NewTypewriter(50 * time.Millisecond)
	rec := &recorder{}

	done := tw.Start(context.Background(), "never finishes in time", rec.emit)
	tw.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stop did not cancel the run")
	}

	// idempotent
	tw.Stop()
}

func TestTypewriterContextCancellation(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	tw := NewTypewriter(50 * time.Millisecond)

	done := tw.Start(ctx, "teardown cancels implicitly", func(string) {})
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("context cancellation did not stop the run")
	}
}

func TestTypewriterEmptyText(t *testing.T) {
	defer goleak.VerifyNone(t)

	tw := NewTypewriter(time.Millisecond)
	rec := &recorder{}

	<-tw.Start(context.Background(), "", rec.emit)
	assert.Empty(t, rec.all())
}
