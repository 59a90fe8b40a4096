// Copyright (c) 2025 Neomantra Corp

package eventlog

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Replay drives deterministic, ordered iteration over every
// partition file belonging to one (source, symbol) stream. Files are
// assumed to already be in chronological (and therefore seq) order,
// per spec.md's explicit non-goal of cross-file global ordering:
// Replay only orders within a single stream, never across streams.
type Replay struct {
	Source string
	Symbol string
	Files  []string

	readers []*Reader
	active  int
}

// NewReplay returns a Replay over files, which must already be sorted
// ascending by date (Partitioner.ListFiles returns them in this order).
func NewReplay(source, symbol string, files []string) *Replay {
	return &Replay{Source: source, Symbol: symbol, Files: files}
}

// Open opens every file's footer concurrently, at most eight at a
// time, so a long replay doesn't pay for N sequential file opens
// before the first event is available. If any open fails, Open waits
// for the remaining opens to finish, closes every reader that did
// open, and returns the first error.
func (r *Replay) Open(ctx context.Context) error {
	readers := make([]*Reader, len(r.Files))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxReplayOpenConcurrency())

	for i, path := range r.Files {
		i, path := i, path
		g.Go(func() error {
			rd, err := OpenReader(path)
			if err != nil {
				return err
			}
			readers[i] = rd
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, rd := range readers {
			if rd != nil {
				rd.Close()
			}
		}
		return err
	}
	r.readers = readers
	r.active = 0
	return nil
}

func maxReplayOpenConcurrency() int {
	return 8
}

// Next returns the next event across the stream's files in
// chronological, strictly-increasing-seq order, advancing past
// exhausted files automatically.
func (r *Replay) Next() (Event, bool, error) {
	for r.active < len(r.readers) {
		e, ok, err := r.readers[r.active].Next()
		if err != nil {
			return Event{}, false, err
		}
		if ok {
			return e, true, nil
		}
		r.active++
	}
	return Event{}, false, nil
}

// Close releases every opened reader.
func (r *Replay) Close() error {
	var firstErr error
	for _, rd := range r.readers {
		if rd == nil {
			continue
		}
		if err := rd.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
