// Copyright (c) 2026 The InfluxLog Authors.
// SPDX-License-Identifier: Apache-2.0

package handler

import "github.com/uber/jaeger-lib/metrics"

// handlerMetrics are counters shared by both delivery paths.
type handlerMetrics struct {
	// PointsEmitted counts points accepted for delivery, including
	// backpop expansions. Points dropped by the closed check are counted
	// in PointsDropped only.
	PointsEmitted metrics.Counter
	// PointsDropped counts points lost to delivery failures or emits
	// after Close.
	PointsDropped metrics.Counter
	// BatchesFlushed counts successful batch writes to the store.
	BatchesFlushed metrics.Counter
	// FlushFailures counts failed batch writes.
	FlushFailures metrics.Counter
	// AttributesSkipped counts record attributes dropped by
	// classification errors.
	AttributesSkipped metrics.Counter
}

func newHandlerMetrics(factory metrics.Factory) *handlerMetrics {
	return &handlerMetrics{
		PointsEmitted:     factory.Counter(metrics.Options{Name: "points_emitted"}),
		PointsDropped:     factory.Counter(metrics.Options{Name: "points_dropped"}),
		BatchesFlushed:    factory.Counter(metrics.Options{Name: "batches_flushed"}),
		FlushFailures:     factory.Counter(metrics.Options{Name: "flush_failures"}),
		AttributesSkipped: factory.Counter(metrics.Options{Name: "attributes_skipped"}),
	}
}
