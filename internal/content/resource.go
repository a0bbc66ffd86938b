// Package content loads each page section from the content store, falling back to
// fixed defaults when the store has nothing or cannot be reached.
package content

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Fetcher runs a read-only query and decodes the result into out. A null result
// must leave out untouched.
type Fetcher interface {
	Fetch(ctx context.Context, query string, out any) error
}

type Source int

const (
	SourceRemote Source = iota
	// SourceEmpty means the store answered with no matching documents.
	SourceEmpty
	// SourceError means the query failed. It renders the same as SourceEmpty.
	SourceError
)

func (s Source) String() string {
	switch s {
	case SourceRemote:
		return "remote"
	case SourceEmpty:
		return "default (empty)"
	case SourceError:
		return "default (error)"
	default:
		return "unknown"
	}
}

// Resolution is the value a section renders from and where it came from.
type Resolution[T any] struct {
	Value  T
	Source Source
	Err    error
}

func (r Resolution[T]) Defaulted() bool {
	return r.Source != SourceRemote
}

// Resource is one query plus the value used in its place when the result is
// empty or the query fails. Default must return a fresh value on every call.
type Resource[T any] struct {
	Name    string
	Query   string
	Empty   func(T) bool
	Default func() T
}

func (r Resource[T]) fetch(ctx context.Context, f Fetcher) (T, error) {
	var v T
	err := f.Fetch(ctx, r.Query, &v)
	return v, err
}

func (r Resource[T]) fallback(src Source, err error) Resolution[T] {
	return Resolution[T]{Value: r.Default(), Source: src, Err: err}
}

func (r Resource[T]) resolve(v T, err error) Resolution[T] {
	if err != nil {
		slog.Warn("Failed to fetch content, using defaults",
			slog.String("section", r.Name),
			slog.String("query", r.Query),
			slog.Any("error", err),
		)
		return r.fallback(SourceError, err)
	}
	if r.Empty(v) {
		slog.Debug("No content in store, using defaults", slog.String("section", r.Name))
		return r.fallback(SourceEmpty, nil)
	}
	return Resolution[T]{Value: v, Source: SourceRemote}
}

// Load runs the query once. It never returns an error: failures resolve to the
// default value and are only logged.
func (r Resource[T]) Load(ctx context.Context, f Fetcher) Resolution[T] {
	return r.resolve(r.fetch(ctx, f))
}

// Join runs both queries concurrently and waits for both. If either fails, both
// resolve to their defaults.
func Join[A, B any](ctx context.Context, f Fetcher, a Resource[A], b Resource[B]) (Resolution[A], Resolution[B]) {
	var (
		va A
		vb B
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		va, err = a.fetch(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		vb, err = b.fetch(gctx, f)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Warn("Failed to fetch content, using defaults",
			slog.String("section", a.Name+"+"+b.Name),
			slog.Any("error", err),
		)
		return a.fallback(SourceError, err), b.fallback(SourceError, err)
	}
	return a.resolve(va, nil), b.resolve(vb, nil)
}
