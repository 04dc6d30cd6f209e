// Package suggest implements the debounced inline-suggestion pipeline.
// Each writing session owns its own Pipeline; the debounce timer is
// never shared between sessions.
package suggest

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/adhikariaashish/gemini-blog/internal/ai"
)

const (
	// DefaultQuietPeriod is how long input must stay unchanged before
	// a suggestion is fetched.
	DefaultQuietPeriod = 1000 * time.Millisecond

	// MinTextLength is the minimum raw (untrimmed) text length that
	// qualifies for a suggestion.
	MinTextLength = 10
)

// State is a snapshot of the pipeline for rendering.
type State struct {
	Text       string
	Suggestion string
	Visible    bool
}

// Pipeline debounces "text changed" events and fetches a short
// continuation after the quiet period. Trailing edge: only the last
// event of a burst fires, with that event's text. An already-sent
// provider call is not canceled; its result is discarded if the input
// changed while it was in flight.
type Pipeline struct {
	provider ai.Provider
	logger   *zap.Logger
	quiet    time.Duration

	mu         sync.Mutex
	timer      *time.Timer
	gen        uint64
	title      string
	text       string
	suggestion string
	visible    bool
}

// NewPipeline creates a pipeline for one writing session. A zero
// quiet period selects DefaultQuietPeriod.
func NewPipeline(provider ai.Provider, logger *zap.Logger, quiet time.Duration) *Pipeline {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Pipeline{
		provider: provider,
		logger:   logger,
		quiet:    quiet,
	}
}

// TextChanged records a keystroke. Any visible suggestion is hidden
// immediately. If the inputs qualify, a fetch is scheduled after the
// quiet period, canceling and replacing any previously scheduled one.
func (p *Pipeline) TextChanged(title, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.gen++
	p.title = title
	p.text = text
	p.suggestion = ""
	p.visible = false

	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}

	if strings.TrimSpace(title) == "" || strings.TrimSpace(text) == "" || len(text) < MinTextLength {
		return
	}

	gen := p.gen
	p.timer = time.AfterFunc(p.quiet, func() {
		p.fetch(gen)
	})
}

// fetch runs once the quiet period elapses. gen guards against input
// that changed after scheduling or while the request was in flight.
func (p *Pipeline) fetch(gen uint64) {
	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		return
	}
	title, text := p.title, p.text
	p.mu.Unlock()

	suggestion, err := p.provider.Suggest(context.Background(), title, text)
	if err != nil {
		// Suggestion failures are silent to the user.
		p.logger.Debug("suggestion fetch failed", zap.Error(err))
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		return
	}
	if strings.TrimSpace(suggestion) == "" {
		return
	}
	p.suggestion = suggestion
	p.visible = true
}

// Accept commits the visible suggestion into the text and clears it.
// It returns the new authoritative text and whether anything changed.
func (p *Pipeline) Accept() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.visible || p.suggestion == "" {
		return p.text, false
	}

	p.text = p.text + " " + p.suggestion
	p.suggestion = ""
	p.visible = false
	p.gen++
	return p.text, true
}

// Reject clears the visible suggestion without touching the text.
func (p *Pipeline) Reject() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.suggestion = ""
	p.visible = false
}

// HandleKey applies the keyboard contract: Tab accepts, Escape
// rejects. It reports whether the key was consumed (the caller should
// suppress default handling only then).
func (p *Pipeline) HandleKey(key string) bool {
	p.mu.Lock()
	visible := p.visible && p.suggestion != ""
	p.mu.Unlock()

	if !visible {
		return false
	}

	switch key {
	case "Tab":
		p.Accept()
		return true
	case "Escape":
		p.Reject()
		return true
	}
	return false
}

// Snapshot returns the current pipeline state for rendering.
func (p *Pipeline) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return State{
		Text:       p.text,
		Suggestion: p.suggestion,
		Visible:    p.visible,
	}
}

// Close cancels any pending fetch. In-flight provider calls are left
// to finish and discard themselves.
func (p *Pipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}
