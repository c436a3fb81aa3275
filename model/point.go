// Copyright (c) 2026 The InfluxLog Authors.
// SPDX-License-Identifier: Apache-2.0

package model

import "time"

// Point is one timestamped observation: measurement + tag set + field set
// + timestamp. Points are immutable once built; callers must not mutate
// the Tags or Fields maps.
type Point struct {
	Measurement string
	Tags        map[string]string
	Fields      map[string]any
	Timestamp   time.Time
}

// Build assembles a classified record into a Point. It fails with a
// MalformedPointError if the tag and field key sets collide, which the
// classifier's precedence rules are supposed to make impossible.
func Build(measurement string, tags map[string]string, fields map[string]any, ts time.Time) (Point, error) {
	for k := range tags {
		if _, ok := fields[k]; ok {
			return Point{}, &MalformedPointError{Measurement: measurement, Key: k}
		}
	}
	return Point{
		Measurement: measurement,
		Tags:        tags,
		Fields:      fields,
		Timestamp:   ts,
	}, nil
}

// WithMeasurement returns a copy of the point attributed to a different
// measurement, sharing the tag and field sets. Used for backpop expansion
// across ancestor logger scopes.
func (p Point) WithMeasurement(measurement string) Point {
	p.Measurement = measurement
	return p
}
