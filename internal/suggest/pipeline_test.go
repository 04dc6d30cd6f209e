package suggest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type providerCall struct {
	title string
	text  string
}

type fakeProvider struct {
	mu         sync.Mutex
	calls      []providerCall
	suggestion string
	err        error
	delay      time.Duration
}

func (f *fakeProvider) Generate(ctx context.Context, topic string) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeProvider) Suggest(ctx context.Context, title, text string) (string, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	f.calls = append(f.calls, providerCall{title: title, text: text})
	f.mu.Unlock()
	return f.suggestion, f.err
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeProvider) lastCall() providerCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

const testQuiet = 50 * time.Millisecond

// settle waits long enough for a scheduled fetch to fire and finish.
func settle() {
	time.Sleep(testQuiet * 4)
}

func TestPipeline_Preconditions(t *testing.T) {
	tests := []struct {
		name  string
		title string
		text  string
	}{
		{"empty title", "", "long enough text here"},
		{"whitespace title", "   ", "long enough text here"},
		{"empty text", "My Title", ""},
		{"whitespace text", "My Title", "             "},
		{"text below minimum length", "My Title", "123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{suggestion: "a continuation"}
			p := NewPipeline(provider, zap.NewNop(), testQuiet)
			defer p.Close()

			p.TextChanged(tt.title, tt.text)
			settle()

			assert.Zero(t, provider.callCount(), "provider must not be called")
			assert.False(t, p.Snapshot().Visible)
		})
	}
}

func TestPipeline_DebounceBurst(t *testing.T) {
	provider := &fakeProvider{suggestion: "a continuation"}
	p := NewPipeline(provider, zap.NewNop(), testQuiet)
	defer p.Close()

	// Three events inside one quiet window: only the last fires.
	p.TextChanged("My Title", "the quick brown fox one")
	time.Sleep(testQuiet / 4)
	p.TextChanged("My Title", "the quick brown fox two")
	time.Sleep(testQuiet / 4)
	p.TextChanged("My Title", "the quick brown fox three")
	settle()

	require.Equal(t, 1, provider.callCount())
	assert.Equal(t, "the quick brown fox three", provider.lastCall().text)
	assert.Equal(t, "My Title", provider.lastCall().title)

	state := p.Snapshot()
	assert.True(t, state.Visible)
	assert.Equal(t, "a continuation", state.Suggestion)
}

func TestPipeline_InputChangeHidesSuggestion(t *testing.T) {
	provider := &fakeProvider{suggestion: "a continuation"}
	p := NewPipeline(provider, zap.NewNop(), testQuiet)
	defer p.Close()

	p.TextChanged("My Title", "the quick brown fox jumps")
	settle()
	require.True(t, p.Snapshot().Visible)

	p.TextChanged("My Title", "the quick brown fox jumps!")
	assert.False(t, p.Snapshot().Visible, "any keystroke hides the suggestion immediately")
}

func TestPipeline_StaleResponseDiscarded(t *testing.T) {
	provider := &fakeProvider{suggestion: "stale continuation", delay: testQuiet * 2}
	p := NewPipeline(provider, zap.NewNop(), testQuiet)
	defer p.Close()

	p.TextChanged("My Title", "the quick brown fox jumps")
	// Let the fetch get sent, then invalidate it mid-flight.
	time.Sleep(testQuiet + testQuiet/2)
	p.TextChanged("My Title", "short")
	settle()

	assert.False(t, p.Snapshot().Visible, "in-flight result for superseded input must be dropped")
}

func TestPipeline_FailuresAreSilent(t *testing.T) {
	t.Run("provider error", func(t *testing.T) {
		provider := &fakeProvider{err: errors.New("boom")}
		p := NewPipeline(provider, zap.NewNop(), testQuiet)
		defer p.Close()

		p.TextChanged("My Title", "the quick brown fox jumps")
		settle()

		assert.False(t, p.Snapshot().Visible)
	})

	t.Run("blank suggestion", func(t *testing.T) {
		provider := &fakeProvider{suggestion: "   "}
		p := NewPipeline(provider, zap.NewNop(), testQuiet)
		defer p.Close()

		p.TextChanged("My Title", "the quick brown fox jumps")
		settle()

		assert.False(t, p.Snapshot().Visible)
	})
}

func TestPipeline_AcceptAndReject(t *testing.T) {
	newVisible := func(t *testing.T) (*Pipeline, *fakeProvider) {
		t.Helper()
		provider := &fakeProvider{suggestion: "and then some more"}
		p := NewPipeline(provider, zap.NewNop(), testQuiet)
		t.Cleanup(p.Close)
		p.TextChanged("My Title", "the quick brown fox jumps")
		settle()
		require.True(t, p.Snapshot().Visible)
		return p, provider
	}

	t.Run("accept joins text and suggestion with a space", func(t *testing.T) {
		p, _ := newVisible(t)

		text, ok := p.Accept()
		assert.True(t, ok)
		assert.Equal(t, "the quick brown fox jumps and then some more", text)

		state := p.Snapshot()
		assert.False(t, state.Visible)
		assert.Empty(t, state.Suggestion)
	})

	t.Run("reject clears without touching text", func(t *testing.T) {
		p, _ := newVisible(t)

		p.Reject()
		state := p.Snapshot()
		assert.False(t, state.Visible)
		assert.Equal(t, "the quick brown fox jumps", state.Text)
	})

	t.Run("accept with nothing visible is a no-op", func(t *testing.T) {
		provider := &fakeProvider{}
		p := NewPipeline(provider, zap.NewNop(), testQuiet)
		defer p.Close()

		text, ok := p.Accept()
		assert.False(t, ok)
		assert.Empty(t, text)
	})
}

func TestPipeline_KeyboardContract(t *testing.T) {
	t.Run("tab accepts when visible", func(t *testing.T) {
		provider := &fakeProvider{suggestion: "more words"}
		p := NewPipeline(provider, zap.NewNop(), testQuiet)
		defer p.Close()

		p.TextChanged("My Title", "the quick brown fox jumps")
		settle()

		assert.True(t, p.HandleKey("Tab"))
		assert.Equal(t, "the quick brown fox jumps more words", p.Snapshot().Text)
	})

	t.Run("escape rejects when visible", func(t *testing.T) {
		provider := &fakeProvider{suggestion: "more words"}
		p := NewPipeline(provider, zap.NewNop(), testQuiet)
		defer p.Close()

		p.TextChanged("My Title", "the quick brown fox jumps")
		settle()

		assert.True(t, p.HandleKey("Escape"))
		assert.False(t, p.Snapshot().Visible)
		assert.Equal(t, "the quick brown fox jumps", p.Snapshot().Text)
	})

	t.Run("keys pass through when nothing is visible", func(t *testing.T) {
		p := NewPipeline(&fakeProvider{}, zap.NewNop(), testQuiet)
		defer p.Close()

		assert.False(t, p.HandleKey("Tab"))
		assert.False(t, p.HandleKey("Escape"))
	})
}
