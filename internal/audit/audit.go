// Package audit records one entry per extraction after the response has been
// sent. Recording never blocks or fails the request that produced it.
package audit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Record describes one extraction attempt.
type Record struct {
	ID             string
	URL            string
	UpstreamStatus int
	Found          bool
	At             time.Time
}

// NewRecord stamps a record with an id and the current time.
func NewRecord(target string, upstreamStatus int, found bool) Record {
	return Record{
		ID:             uuid.NewString(),
		URL:            target,
		UpstreamStatus: upstreamStatus,
		Found:          found,
		At:             time.Now().UTC(),
	}
}

// Sink stores or forwards records.
type Sink interface {
	Write(ctx context.Context, rec Record) error
}

// Dispatcher fans records out to its sinks on a detached goroutine.
type Dispatcher struct {
	sinks   []Sink
	timeout time.Duration
	logger  zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a dispatcher. timeout bounds each sink write.
func NewDispatcher(logger zerolog.Logger, timeout time.Duration, sinks ...Sink) *Dispatcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dispatcher{sinks: sinks, timeout: timeout, logger: logger}
}

// Dispatch schedules rec for writing and returns immediately. ctx is only
// used for its values; its cancellation is ignored.
func (d *Dispatcher) Dispatch(ctx context.Context, rec Record) {
	if d == nil || len(d.sinks) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for _, sink := range d.sinks {
			d.write(ctx, sink, rec)
		}
	}()
}

func (d *Dispatcher) write(ctx context.Context, sink Sink, rec Record) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error().Str("record_id", rec.ID).Str("panic", fmt.Sprint(r)).Msg("audit sink panicked")
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := sink.Write(ctx, rec); err != nil {
		d.logger.Warn().Err(err).Str("record_id", rec.ID).Msg("audit sink write failed")
	}
}

// Wait blocks until every dispatched record has been handled.
func (d *Dispatcher) Wait() {
	if d == nil {
		return
	}
	d.wg.Wait()
}
