// Copyright (c) 2026 The InfluxLog Authors.
// SPDX-License-Identifier: Apache-2.0

// Package handler turns structured log records into time-series points
// and delivers them to a point store, either synchronously (Handler) or
// through a bounded buffer with timer/capacity flushing (BufferedHandler).
package handler

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/influxlogging/influxlog/model"
)

// PointWriter writes one batch of points to the store.
type PointWriter interface {
	WritePoints(ctx context.Context, points []model.Point) error
}

// core holds the record-to-points pipeline shared by both delivery paths.
type core struct {
	classifier  *Classifier
	logger      *zap.Logger
	metrics     *handlerMetrics
	backpop     bool
	measurement string
}

func newCore(o options) core {
	return core{
		classifier:  newClassifier(o),
		logger:      o.logger,
		metrics:     newHandlerMetrics(o.metricsFactory),
		backpop:     o.backpop,
		measurement: o.measurement,
	}
}

// points classifies one record and expands it into the point batch to be
// delivered. Returns nil if the record produced no usable point.
func (c *core) points(record model.Record) []model.Point {
	cls := c.classifier.Classify(record)
	for _, err := range cls.Skipped {
		c.metrics.AttributesSkipped.Inc(1)
		c.logger.Debug("Skipping record attribute", zap.Error(err))
	}

	pt, err := model.Build(cls.Measurement, cls.Tags, cls.Fields, cls.Timestamp)
	if err != nil {
		c.metrics.PointsDropped.Inc(1)
		c.logger.Error("Dropping malformed point", zap.Error(err))
		return nil
	}

	pts := []model.Point{pt}
	// Ancestor expansion is skipped when a fixed measurement overrides
	// the logger-derived name: there is no hierarchy to walk.
	if c.backpop && c.measurement == "" {
		for _, ancestor := range model.Ancestors(pt.Measurement) {
			pts = append(pts, pt.WithMeasurement(ancestor))
		}
	}
	return pts
}

// Handler is the immediate delivery path: every record is written to the
// store as a single-point batch (plus backpop expansions) before Emit
// returns. Handler is safe for concurrent use.
type Handler struct {
	core
	writer      PointWriter
	connect     func() (PointWriter, error)
	connectOnce sync.Once
	closed      atomic.Bool
}

// NewHandler creates an immediate handler on top of an established store
// writer.
func NewHandler(writer PointWriter, opts ...Option) *Handler {
	h := &Handler{core: newCore(Options.apply(opts...))}
	h.writer = writer
	return h
}

// NewLazyHandler creates an immediate handler that defers store
// connection setup until the first Emit. The connect function is called
// at most once; if it fails, all subsequent records are dropped and the
// failure is reported through the diagnostics logger.
func NewLazyHandler(connect func() (PointWriter, error), opts ...Option) *Handler {
	h := &Handler{core: newCore(Options.apply(opts...))}
	h.connect = connect
	return h
}

// Emit classifies the record and writes the resulting points to the store
// synchronously. Failures are reported via the logger and the record is
// dropped; Emit never returns an error to the caller.
func (h *Handler) Emit(record model.Record) {
	pts := h.points(record)
	if len(pts) == 0 {
		return
	}
	if h.closed.Load() {
		h.metrics.PointsDropped.Inc(int64(len(pts)))
		return
	}
	h.metrics.PointsEmitted.Inc(int64(len(pts)))

	w := h.storeWriter()
	if w == nil {
		h.metrics.PointsDropped.Inc(int64(len(pts)))
		return
	}
	if err := w.WritePoints(context.Background(), pts); err != nil {
		h.metrics.FlushFailures.Inc(1)
		h.metrics.PointsDropped.Inc(int64(len(pts)))
		h.logger.Error("Failed to write points", zap.Int("points", len(pts)), zap.Error(err))
		return
	}
	h.metrics.BatchesFlushed.Inc(1)
}

func (h *Handler) storeWriter() PointWriter {
	if h.connect != nil {
		h.connectOnce.Do(func() {
			w, err := h.connect()
			if err != nil {
				h.logger.Error("Failed to connect to point store", zap.Error(err))
				return
			}
			h.writer = w
		})
	}
	return h.writer
}

// Close marks the handler closed. Records emitted after Close are
// dropped. The store writer is owned by its factory and is not closed
// here.
func (h *Handler) Close() error {
	h.closed.Store(true)
	return nil
}
