package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls one attribute out of a context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type stepKey struct{}

// WithStep marks ctx with the index of the UI event being handled. Records
// logged with that context carry it under "step".
func WithStep(ctx context.Context, step int) context.Context {
	return context.WithValue(ctx, stepKey{}, step)
}

func stepFromContext(ctx context.Context) (slog.Attr, bool) {
	step, ok := ctx.Value(stepKey{}).(int)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.Int("step", step), true
}

// LogHandlerDecorator adds context attributes to each record before handing
// it to the wrapped handler. The event step is always extracted.
type LogHandlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
}

func NewLogHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	all := make([]ContextExtractor, 0, len(extractors)+1)
	all = append(all, stepFromContext)
	for _, extract := range extractors {
		if extract != nil {
			all = append(all, extract)
		}
	}
	return &LogHandlerDecorator{next: next, extractors: all}
}

func (h *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	if ctx != nil {
		for _, extract := range h.extractors {
			if attr, ok := extract(ctx); ok {
				rec.AddAttrs(attr)
			}
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.wrap(h.next.WithAttrs(attrs))
}

func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return h.wrap(h.next.WithGroup(name))
}

func (h *LogHandlerDecorator) wrap(next slog.Handler) *LogHandlerDecorator {
	return &LogHandlerDecorator{next: next, extractors: h.extractors}
}
