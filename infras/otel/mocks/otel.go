package mocks

import (
	"context"
	"scams/infras/otel"
	"sync"
)

// Otel is an in-memory tracer. It records span names and traced errors so tests
// can check that failures reach the trace.
type Otel struct {
	mu     sync.Mutex
	Spans  []string
	Errors []error
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	o.Spans = append(o.Spans, spanName)
	o.mu.Unlock()

	return ctx, &scope{parent: o}
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

func (o *Otel) record(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.Errors = append(o.Errors, err)
}

func NewOtel() *Otel {
	return &Otel{}
}
