// Copyright (c) 2026 The InfluxLog Authors.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/influxlogging/influxlog/model"
)

// BufferedHandler is the asynchronous delivery path: points accumulate in
// a bounded buffer and are flushed as a single batch when the buffer
// reaches capacity or the flush interval elapses, whichever comes first.
//
// Emit never blocks on store I/O: a capacity-triggered flush is signaled
// to the background loop rather than performed inline. A failed batch is
// reported through the diagnostics logger and dropped, never re-queued.
// BufferedHandler is safe for concurrent use.
type BufferedHandler struct {
	core
	writer   PointWriter
	capacity int
	interval time.Duration

	mu     sync.Mutex
	buffer []model.Point
	closed bool

	flushCh  chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	loopDone sync.WaitGroup
}

// NewBufferedHandler creates a buffering handler and starts its
// background flush loop. The handler owns the loop goroutine; Close stops
// it.
func NewBufferedHandler(writer PointWriter, opts ...Option) *BufferedHandler {
	o := Options.apply(opts...)
	b := &BufferedHandler{
		core:     newCore(o),
		writer:   writer,
		capacity: o.capacity,
		interval: o.flushInterval,
		buffer:   make([]model.Point, 0, o.capacity),
		flushCh:  make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
	}
	b.loopDone.Add(1)
	go b.flushLoop()
	return b
}

// Emit classifies the record and appends the resulting points to the
// buffer. Reaching capacity signals an asynchronous flush. Records
// emitted after Close are dropped.
func (b *BufferedHandler) Emit(record model.Record) {
	pts := b.points(record)
	if len(pts) == 0 {
		return
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		b.metrics.PointsDropped.Inc(int64(len(pts)))
		return
	}
	b.buffer = append(b.buffer, pts...)
	full := len(b.buffer) >= b.capacity
	b.mu.Unlock()
	b.metrics.PointsEmitted.Inc(int64(len(pts)))

	if full {
		select {
		case b.flushCh <- struct{}{}:
		default:
			// a flush signal is already pending
		}
	}
}

// Flush atomically swaps the buffer for an empty one and writes the
// swapped-out batch to the store in one request. New emits during the
// write land in the fresh buffer. Returns the delivery error, if any; the
// failed batch is dropped either way.
func (b *BufferedHandler) Flush() error {
	b.mu.Lock()
	batch := b.buffer
	b.buffer = make([]model.Point, 0, b.capacity)
	b.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}
	// The store write happens outside the lock so producers are never
	// blocked on network I/O.
	if err := b.writer.WritePoints(context.Background(), batch); err != nil {
		delivery := &model.DeliveryError{}
		if !errors.As(err, &delivery) {
			delivery = &model.DeliveryError{Points: len(batch), Err: err}
		}
		b.metrics.FlushFailures.Inc(1)
		b.metrics.PointsDropped.Inc(int64(len(batch)))
		b.logger.Error("Failed to flush points", zap.Int("points", len(batch)), zap.Error(err))
		return delivery
	}
	b.metrics.BatchesFlushed.Inc(1)
	return nil
}

// flushLoop drives timer- and capacity-triggered flushes until Close.
func (b *BufferedHandler) flushLoop() {
	defer b.loopDone.Done()
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			b.Flush()
		case <-b.flushCh:
			b.Flush()
			// the interval restarts after every flush
			ticker.Reset(b.interval)
		case <-b.stopCh:
			return
		}
	}
}

// Close stops the background flush loop, then flushes any remaining
// buffered points synchronously. Emits after Close are dropped. Safe to
// call more than once.
func (b *BufferedHandler) Close() error {
	b.stopOnce.Do(func() {
		close(b.stopCh)
	})
	b.loopDone.Wait()

	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	return b.Flush()
}
