// Copyright (c) 2026 The InfluxLog Authors.
// SPDX-License-Identifier: Apache-2.0

// Package model contains the domain types of the delivery pipeline: log
// records as received from the host logging framework, and the
// time-series points they are transformed into.
package model

import (
	"strings"
	"time"
)

const (
	// LoggerSeparator delimits segments of a hierarchical logger name.
	LoggerSeparator = "."
	// MeasurementSeparator replaces LoggerSeparator in measurement names,
	// because the store reserves "." as a name separator.
	MeasurementSeparator = ":"

	// RootMeasurement is used when a record carries an empty logger name.
	RootMeasurement = "root"
)

// Attribute is one caller-supplied key/value pair attached to a record.
// Attributes are kept as an ordered slice, not a map, so that
// classification output is deterministic.
type Attribute struct {
	Key   string
	Value any
}

// Caller identifies the code location that produced a record.
// The zero value means the location is unknown.
type Caller struct {
	File     string
	Line     int
	Function string
}

// Defined reports whether the caller location is known.
func (c Caller) Defined() bool {
	return c.File != ""
}

// Record is one log record as received from the host logging framework,
// adapted at the boundary into this explicit shape. Records are treated
// as immutable once constructed.
type Record struct {
	// Logger is the hierarchical logger name, segments separated by
	// LoggerSeparator, e.g. "api.billing.retry".
	Logger   string
	Severity Severity
	Message  string
	// Stack is the rendered exception / stack trace, if any.
	Stack      string
	Attributes []Attribute
	Caller     Caller
	PID        int
	// Time is the record's creation time, never the write time.
	Time time.Time
}

// MeasurementName derives the store-safe measurement name from a logger
// name by rewriting the hierarchy separator.
func MeasurementName(logger string) string {
	if logger == "" {
		return RootMeasurement
	}
	return strings.ReplaceAll(logger, LoggerSeparator, MeasurementSeparator)
}

// Ancestors returns the ordered ancestor prefixes of a measurement name,
// nearest first: "a:b:c" -> ["a:b", "a"]. A single-segment name has no
// ancestors.
func Ancestors(measurement string) []string {
	var ancestors []string
	for {
		i := strings.LastIndex(measurement, MeasurementSeparator)
		if i < 0 {
			return ancestors
		}
		measurement = measurement[:i]
		ancestors = append(ancestors, measurement)
	}
}
