// Copyright (c) 2026 The InfluxLog Authors.
// SPDX-License-Identifier: Apache-2.0

// Package zapbridge feeds zap log entries into a point-delivery handler.
// The logger's Named chain ("a.b.c") becomes the hierarchical logger name
// that measurements and backpop expansion derive from.
package zapbridge

import (
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/influxlogging/influxlog/model"
)

// Emitter accepts one log record. Both handler.Handler and
// handler.BufferedHandler satisfy it.
type Emitter interface {
	Emit(record model.Record)
}

// flusher is implemented by buffering emitters.
type flusher interface {
	Flush() error
}

// Core is a zapcore.Core that adapts entries at the boundary into
// model.Record and hands them to an Emitter.
type Core struct {
	zapcore.LevelEnabler
	emitter Emitter
	fields  []zapcore.Field
	pid     int
}

var _ zapcore.Core = (*Core)(nil)

// NewCore creates a Core delivering entries at or above the enabled
// level.
func NewCore(emitter Emitter, enab zapcore.LevelEnabler) *Core {
	return &Core{
		LevelEnabler: enab,
		emitter:      emitter,
		pid:          os.Getpid(),
	}
}

// With adds structured context carried by every subsequent entry.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return &clone
}

// Check determines whether the entry should be logged through this core.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the entry into a record and emits it. Delivery failures
// are handled inside the handler; Write never reports them back to zap.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	record := model.Record{
		Logger:     ent.LoggerName,
		Severity:   severity(ent.Level),
		Message:    ent.Message,
		Stack:      ent.Stack,
		Attributes: c.attributes(fields),
		PID:        c.pid,
		Time:       ent.Time,
	}
	if ent.Caller.Defined {
		record.Caller = model.Caller{
			File:     ent.Caller.File,
			Line:     ent.Caller.Line,
			Function: ent.Caller.Function,
		}
	}
	c.emitter.Emit(record)
	return nil
}

// Sync flushes the emitter if it buffers.
func (c *Core) Sync() error {
	if f, ok := c.emitter.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// attributes renders context plus entry fields as an ordered attribute
// list. Later fields win on duplicate keys, matching zap's encoders.
func (c *Core) attributes(fields []zapcore.Field) []model.Attribute {
	all := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	all = append(all, c.fields...)
	all = append(all, fields...)
	if len(all) == 0 {
		return nil
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range all {
		f.AddTo(enc)
	}
	attrs := make([]model.Attribute, 0, len(all))
	seen := make(map[string]bool, len(all))
	for _, f := range all {
		if seen[f.Key] {
			continue
		}
		seen[f.Key] = true
		attrs = append(attrs, model.Attribute{Key: f.Key, Value: enc.Fields[f.Key]})
	}
	return attrs
}

func severity(level zapcore.Level) model.Severity {
	switch level {
	case zapcore.DebugLevel:
		return model.Debug
	case zapcore.InfoLevel:
		return model.Info
	case zapcore.WarnLevel:
		return model.Warning
	case zapcore.ErrorLevel:
		return model.Error
	default:
		// DPanic, Panic and Fatal all map to the highest severity.
		return model.Critical
	}
}
