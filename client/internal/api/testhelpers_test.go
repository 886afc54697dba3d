package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/miracles123-max/echo-tutor/client/internal/keyqueue"
	"github.com/miracles123-max/echo-tutor/client/internal/types"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, fmt.Errorf("connection refused")
}

// mockExec records submitted keys and runs jobs inline, settling them the
// way the shard executor does.
type mockExec struct {
	mu    sync.Mutex
	calls []string
}

func (m *mockExec) Submit(ctx context.Context, key string, job keyqueue.Job) error {
	m.mu.Lock()
	m.calls = append(m.calls, key)
	m.mu.Unlock()
	err := job.Run(ctx)
	if s, ok := job.(keyqueue.Settler); ok {
		s.Settle(err)
	}
	return nil
}

func (m *mockExec) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// failingExec implements types.Executor and always fails Submit.
type failingExec struct{}

func (f *failingExec) Submit(context.Context, string, keyqueue.Job) error {
	return keyqueue.ErrExecutorClosed
}

// newRest mirrors the client's resty configuration against baseURL.
func newRest(baseURL string) *resty.Client {
	return resty.New().SetBaseURL(baseURL + "/api/v1")
}

// await resolves p with a test-friendly deadline.
func await(p *types.Pending) (*types.Response, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return p.Await(ctx)
}
