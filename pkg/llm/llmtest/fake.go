// Package llmtest provides a scripted llm.ChatModel for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/muhammedkado/find-job-with-ai/pkg/llm"
)

// Call records one Ask invocation.
type Call struct {
	System string
	User   string
	Opts   llm.Options
}

// Fake answers Ask with Respond, or with Reply/Err when Respond is nil.
type Fake struct {
	Reply   string
	Err     error
	Respond func(n int, userPrompt string) (string, error)

	mu    sync.Mutex
	calls []Call
}

var _ llm.ChatModel = (*Fake)(nil)

func (f *Fake) Ask(_ context.Context, systemPrompt, userPrompt string, opts llm.Options) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{System: systemPrompt, User: userPrompt, Opts: opts})
	n := len(f.calls)
	f.mu.Unlock()
	if f.Respond != nil {
		return f.Respond(n, userPrompt)
	}
	return f.Reply, f.Err
}

func (f *Fake) Name() string { return "fake" }

func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}
