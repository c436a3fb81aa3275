// Copyright (c) 2026 The InfluxLog Authors.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"time"

	"github.com/uber/jaeger-lib/metrics"
	"go.uber.org/zap"
)

const (
	// DefaultCapacity is the number of points a BufferedHandler
	// accumulates before triggering a flush.
	DefaultCapacity = 64
	// DefaultFlushInterval is the maximum time buffered points wait
	// before being flushed.
	DefaultFlushInterval = 5 * time.Second
)

type options struct {
	logger         *zap.Logger
	metricsFactory metrics.Factory

	measurement       string
	localname         string
	includeTags       map[string]string
	includeFields     map[string]string
	excludeTags       map[string]bool
	excludeFields     map[string]bool
	extraTags         bool
	extraFields       bool
	includeStacktrace bool
	debuggingFields   bool
	levelNames        bool
	backpop           bool

	capacity      int
	flushInterval time.Duration
}

// Option is a function that sets some option on a handler.
type Option func(o *options)

// Options is a factory for all available Option's.
var Options options

// Logger creates an Option that sets the diagnostics logger. Delivery and
// classification failures are reported through it, never to the caller.
func (options) Logger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Metrics creates an Option that sets the metrics factory.
func (options) Metrics(factory metrics.Factory) Option {
	return func(o *options) {
		o.metricsFactory = factory
	}
}

// Measurement creates an Option that overrides the measurement name for
// all points. When unset, the measurement is derived from the logger name.
func (options) Measurement(measurement string) Option {
	return func(o *options) {
		o.measurement = measurement
	}
}

// Localname creates an Option that sets the source host name, emitted as
// the "host" field on every point.
func (options) Localname(localname string) Option {
	return func(o *options) {
		o.localname = localname
	}
}

// IncludeTags creates an Option that marks record attributes to be
// emitted as tags, keyed by attribute name with the tag name as value.
func (options) IncludeTags(includeTags map[string]string) Option {
	return func(o *options) {
		o.includeTags = includeTags
	}
}

// IncludeFields creates an Option that marks record attributes to be
// emitted as fields, keyed by attribute name with the field name as value.
func (options) IncludeFields(includeFields map[string]string) Option {
	return func(o *options) {
		o.includeFields = includeFields
	}
}

// ExcludeTags creates an Option that suppresses tag classification for
// the named attributes.
func (options) ExcludeTags(excludeTags map[string]bool) Option {
	return func(o *options) {
		o.excludeTags = excludeTags
	}
}

// ExcludeFields creates an Option that suppresses field classification
// for the named attributes.
func (options) ExcludeFields(excludeFields map[string]bool) Option {
	return func(o *options) {
		o.excludeFields = excludeFields
	}
}

// ExtraTags creates an Option that controls whether attributes not
// explicitly classified are emitted as tags. Off by default: tags are
// indexed, so only explicitly chosen attributes should carry unbounded
// values into the index.
func (options) ExtraTags(extraTags bool) Option {
	return func(o *options) {
		o.extraTags = extraTags
	}
}

// ExtraFields creates an Option that controls whether attributes not
// explicitly classified are emitted as fields. On by default.
func (options) ExtraFields(extraFields bool) Option {
	return func(o *options) {
		o.extraFields = extraFields
	}
}

// IncludeStacktrace creates an Option that controls the "full_message"
// field carrying the record's stack trace.
func (options) IncludeStacktrace(includeStacktrace bool) Option {
	return func(o *options) {
		o.includeStacktrace = includeStacktrace
	}
}

// DebuggingFields creates an Option that controls the "file", "line",
// "function" and "pid" fields.
func (options) DebuggingFields(debuggingFields bool) Option {
	return func(o *options) {
		o.debuggingFields = debuggingFields
	}
}

// LevelNames creates an Option that renders the "level" tag as the
// symbolic severity name instead of the numeric syslog code.
func (options) LevelNames(levelNames bool) Option {
	return func(o *options) {
		o.levelNames = levelNames
	}
}

// Backpop creates an Option that controls ancestor expansion: when
// enabled, each record additionally produces one point per ancestor level
// of the logger name hierarchy.
func (options) Backpop(backpop bool) Option {
	return func(o *options) {
		o.backpop = backpop
	}
}

// Capacity creates an Option that sets the buffer capacity of a
// BufferedHandler. Ignored by the immediate Handler.
func (options) Capacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// FlushInterval creates an Option that sets the maximum time between
// flushes of a BufferedHandler. Ignored by the immediate Handler.
func (options) FlushInterval(flushInterval time.Duration) Option {
	return func(o *options) {
		o.flushInterval = flushInterval
	}
}

func (options) apply(opts ...Option) options {
	o := options{
		extraFields:       true,
		includeStacktrace: true,
		debuggingFields:   true,
		backpop:           true,
		capacity:          DefaultCapacity,
		flushInterval:     DefaultFlushInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.metricsFactory == nil {
		o.metricsFactory = metrics.NullFactory
	}
	if o.capacity <= 0 {
		o.capacity = DefaultCapacity
	}
	if o.flushInterval <= 0 {
		o.flushInterval = DefaultFlushInterval
	}
	return o
}
