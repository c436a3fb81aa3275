// Copyright (c) 2026 The InfluxLog Authors.
// SPDX-License-Identifier: Apache-2.0

package influxstore

import (
	"context"

	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/uber/jaeger-lib/metrics"
	"go.uber.org/zap"

	"github.com/influxlogging/influxlog/model"
)

type writerMetrics struct {
	PointsWrittenSuccess metrics.Counter
	PointsWrittenFailure metrics.Counter
}

// Writer writes point batches to InfluxDB. Implements handler.PointWriter.
type Writer struct {
	api     api.WriteAPIBlocking
	metrics writerMetrics
	logger  *zap.Logger
}

// NewWriter creates a Writer on top of a blocking write API.
func NewWriter(writeAPI api.WriteAPIBlocking, factory metrics.Factory, logger *zap.Logger) *Writer {
	return &Writer{
		api: writeAPI,
		metrics: writerMetrics{
			PointsWrittenSuccess: factory.Counter(metrics.Options{Name: "influx_points_written", Tags: map[string]string{"status": "success"}}),
			PointsWrittenFailure: factory.Counter(metrics.Options{Name: "influx_points_written", Tags: map[string]string{"status": "failure"}}),
		},
		logger: logger,
	}
}

// WritePoints writes one batch of points in a single request.
func (w *Writer) WritePoints(ctx context.Context, points []model.Point) error {
	wpts := make([]*write.Point, 0, len(points))
	for _, p := range points {
		wpts = append(wpts, write.NewPoint(p.Measurement, p.Tags, p.Fields, p.Timestamp))
	}
	if err := w.api.WritePoint(ctx, wpts...); err != nil {
		w.metrics.PointsWrittenFailure.Inc(int64(len(points)))
		return &model.DeliveryError{Points: len(points), Err: err}
	}
	w.metrics.PointsWrittenSuccess.Inc(int64(len(points)))
	return nil
}
