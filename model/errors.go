// Copyright (c) 2026 The InfluxLog Authors.
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"errors"
	"fmt"
)

// ErrClosed is returned when points are submitted to a handler after
// Close.
var ErrClosed = errors.New("handler is closed")

// ClassificationError marks a record attribute that could not be turned
// into a tag or field value. The affected attribute is skipped; the rest
// of the record is still delivered.
type ClassificationError struct {
	Attribute string
	Err       error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("cannot classify attribute %q: %v", e.Attribute, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

// MalformedPointError reports a tag/field key collision. It indicates a
// broken classification invariant, not a recoverable runtime condition;
// the affected point is logged and dropped.
type MalformedPointError struct {
	Measurement string
	Key         string
}

func (e *MalformedPointError) Error() string {
	return fmt.Sprintf("point %q has key %q as both tag and field", e.Measurement, e.Key)
}

// DeliveryError wraps a store write failure. The affected points are
// dropped; the error is only surfaced through the diagnostics logger.
type DeliveryError struct {
	Points int
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to deliver %d point(s): %v", e.Points, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
