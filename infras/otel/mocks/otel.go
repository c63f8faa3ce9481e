// Package mocks provides an in-process otel.Otel that keeps what was traced
// so tests can assert on it.
package mocks

import (
	"context"
	"sync"

	"risecheckout/infras/otel"
)

// Span is what a Recorder kept of one scope.
type Span struct {
	Scope      string
	Name       string
	Events     []string
	Attributes map[string]any
	Errors     []error
	Ended      bool
}

type Recorder struct {
	mu    sync.Mutex
	spans []*Span
}

func (r *Recorder) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	span := &Span{Scope: scopeName, Name: spanName, Attributes: map[string]any{}}

	r.mu.Lock()
	r.spans = append(r.spans, span)
	r.mu.Unlock()

	return ctx, &scope{recorder: r, span: span}
}

func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Spans returns a copy of every span started so far, in start order.
func (r *Recorder) Spans() []Span {
	r.mu.Lock()
	defer r.mu.Unlock()

	spans := make([]Span, len(r.spans))
	for idx, span := range r.spans {
		spans[idx] = *span
	}

	return spans
}

// Errors returns the errors traced on spans named name.
func (r *Recorder) Errors(name string) []error {
	var errs []error

	for _, span := range r.Spans() {
		if span.Name == name {
			errs = append(errs, span.Errors...)
		}
	}

	return errs
}

type scope struct {
	recorder *Recorder
	span     *Span
}

func (s *scope) End() {
	s.recorder.mu.Lock()
	s.span.Ended = true
	s.recorder.mu.Unlock()
}

func (s *scope) TraceError(err error) {
	s.recorder.mu.Lock()
	s.span.Errors = append(s.span.Errors, err)
	s.recorder.mu.Unlock()
}

func (s *scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scope) AddEvent(name string) {
	s.recorder.mu.Lock()
	s.span.Events = append(s.span.Events, name)
	s.recorder.mu.Unlock()
}

func (s *scope) SetAttribute(key string, value any) {
	s.recorder.mu.Lock()
	s.span.Attributes[key] = value
	s.recorder.mu.Unlock()
}

func (s *scope) SetAttributes(attributes map[string]any) {
	s.recorder.mu.Lock()
	for key, value := range attributes {
		s.span.Attributes[key] = value
	}
	s.recorder.mu.Unlock()
}

// NewRecorder is NewOtel with its concrete type, for tests that read spans back.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func NewOtel() otel.Otel {
	return NewRecorder()
}
