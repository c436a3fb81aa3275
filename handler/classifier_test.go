// Copyright (c) 2026 The InfluxLog Authors.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/influxlogging/influxlog/model"
)

func testRecord() model.Record {
	return model.Record{
		Logger:   "api.billing.retry",
		Severity: model.Error,
		Message:  "charge failed",
		Time:     time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func TestClassifyMeasurementFromLoggerName(t *testing.T) {
	c := NewClassifier()
	cls := c.Classify(testRecord())
	assert.Equal(t, "api:billing:retry", cls.Measurement)
	assert.Equal(t, testRecord().Time, cls.Timestamp)
}

func TestClassifyMeasurementOverride(t *testing.T) {
	c := NewClassifier(Options.Measurement("applog"))
	cls := c.Classify(testRecord())
	assert.Equal(t, "applog", cls.Measurement)
}

func TestClassifyEmptyLoggerName(t *testing.T) {
	c := NewClassifier()
	record := testRecord()
	record.Logger = ""
	assert.Equal(t, "root", c.Classify(record).Measurement)
}

func TestClassifyLevelRendering(t *testing.T) {
	record := testRecord()

	numeric := NewClassifier().Classify(record)
	assert.Equal(t, "3", numeric.Tags["level"])
	assert.Equal(t, "ERROR", numeric.Fields["level_name"])

	symbolic := NewClassifier(Options.LevelNames(true)).Classify(record)
	assert.Equal(t, "ERROR", symbolic.Tags["level"])
}

func TestClassifyShortMessage(t *testing.T) {
	cls := NewClassifier().Classify(testRecord())
	assert.Equal(t, "charge failed", cls.Fields["short_message"])
}

func TestClassifyStacktrace(t *testing.T) {
	record := testRecord()
	record.Stack = "goroutine 1 [running]:\nmain.main()"

	cls := NewClassifier().Classify(record)
	assert.Equal(t, record.Stack, cls.Fields["full_message"])

	// no trace attached: falls back to the message, never errors
	cls = NewClassifier().Classify(testRecord())
	assert.Equal(t, "charge failed", cls.Fields["full_message"])

	cls = NewClassifier(Options.IncludeStacktrace(false)).Classify(record)
	assert.NotContains(t, cls.Fields, "full_message")
}

func TestClassifyLocalname(t *testing.T) {
	c := NewClassifier(Options.Localname("web-42"))
	cls := c.Classify(testRecord())
	assert.Equal(t, "web-42", cls.Fields["host"])

	assert.NotContains(t, NewClassifier().Classify(testRecord()).Fields, "host")
}

func TestClassifyDebuggingFields(t *testing.T) {
	record := testRecord()
	record.Caller = model.Caller{File: "billing/charge.go", Line: 87, Function: "billing.Charge"}
	record.PID = 4242

	cls := NewClassifier().Classify(record)
	assert.Equal(t, "billing/charge.go", cls.Fields["file"])
	assert.Equal(t, int64(87), cls.Fields["line"])
	assert.Equal(t, "billing.Charge", cls.Fields["function"])
	assert.Equal(t, int64(4242), cls.Fields["pid"])

	cls = NewClassifier(Options.DebuggingFields(false)).Classify(record)
	assert.NotContains(t, cls.Fields, "file")
	assert.NotContains(t, cls.Fields, "pid")
}

func TestClassifyExtrasDefaultToFields(t *testing.T) {
	// unbounded values must never reach the index unless explicitly
	// promoted, so an unmentioned attribute defaults to a field
	record := testRecord()
	record.Attributes = []model.Attribute{
		{Key: "request_id", Value: "r-8f3a91c2"},
		{Key: "attempt", Value: 3},
	}
	cls := NewClassifier().Classify(record)
	assert.Equal(t, "r-8f3a91c2", cls.Fields["request_id"])
	assert.Equal(t, int64(3), cls.Fields["attempt"])
	assert.NotContains(t, cls.Tags, "request_id")
	assert.NotContains(t, cls.Tags, "attempt")
	assert.Equal(t, map[string]string{"level": "3"}, cls.Tags)
}

func TestClassifyExtrasAsTags(t *testing.T) {
	record := testRecord()
	record.Attributes = []model.Attribute{{Key: "region", Value: "eu-1"}}
	cls := NewClassifier(Options.ExtraTags(true)).Classify(record)
	assert.Equal(t, "eu-1", cls.Tags["region"])
	assert.NotContains(t, cls.Fields, "region")
}

func TestClassifyExplicitIncludeWins(t *testing.T) {
	record := testRecord()
	record.Attributes = []model.Attribute{{Key: "region", Value: "eu-1"}}

	// an attribute present in both an include-tag map and an
	// exclude-field set is emitted as a tag only
	c := NewClassifier(
		Options.IncludeTags(map[string]string{"region": "region"}),
		Options.ExcludeFields(map[string]bool{"region": true}),
	)
	cls := c.Classify(record)
	assert.Equal(t, "eu-1", cls.Tags["region"])
	assert.NotContains(t, cls.Fields, "region")
}

func TestClassifyIncludeTagRenames(t *testing.T) {
	record := testRecord()
	record.Attributes = []model.Attribute{{Key: "req_id", Value: "r-1"}}
	c := NewClassifier(
		Options.IncludeTags(map[string]string{"req_id": "request"}),
		Options.ExtraFields(false),
	)
	cls := c.Classify(record)
	assert.Equal(t, "r-1", cls.Tags["request"])
	assert.NotContains(t, cls.Fields, "req_id")
}

func TestClassifyExcludeSuppresses(t *testing.T) {
	record := testRecord()
	record.Attributes = []model.Attribute{{Key: "token", Value: "secret"}}

	// excluded as tag even under extra-tags, still admitted as field
	c := NewClassifier(
		Options.ExtraTags(true),
		Options.ExcludeTags(map[string]bool{"token": true}),
	)
	cls := c.Classify(record)
	assert.NotContains(t, cls.Tags, "token")
	assert.Equal(t, "secret", cls.Fields["token"])

	// excluded in both classifications: never emitted, regardless of
	// auto-inclusion flags
	c = NewClassifier(
		Options.ExcludeTags(map[string]bool{"token": true}),
		Options.ExcludeFields(map[string]bool{"token": true}),
	)
	cls = c.Classify(record)
	assert.NotContains(t, cls.Tags, "token")
	assert.NotContains(t, cls.Fields, "token")
}

func TestClassifyExtrasDropped(t *testing.T) {
	record := testRecord()
	record.Attributes = []model.Attribute{{Key: "attempt", Value: 3}}
	c := NewClassifier(Options.ExtraFields(false))
	cls := c.Classify(record)
	assert.NotContains(t, cls.Tags, "attempt")
	assert.NotContains(t, cls.Fields, "attempt")
}

func TestClassifyBuiltinPromotedToTag(t *testing.T) {
	c := NewClassifier(
		Options.Localname("web-42"),
		Options.IncludeTags(map[string]string{"host": "host"}),
	)
	cls := c.Classify(testRecord())
	assert.Equal(t, "web-42", cls.Tags["host"])
	assert.NotContains(t, cls.Fields, "host")
}

func TestClassifyBuiltinExcluded(t *testing.T) {
	c := NewClassifier(Options.ExcludeFields(map[string]bool{"level_name": true}))
	cls := c.Classify(testRecord())
	assert.NotContains(t, cls.Fields, "level_name")
}

func TestClassifyUnsupportedValueSkipped(t *testing.T) {
	record := testRecord()
	record.Attributes = []model.Attribute{
		{Key: "payload", Value: struct{ X int }{1}},
		{Key: "ok", Value: "yes"},
	}
	c := NewClassifier()
	cls := c.Classify(record)
	assert.NotContains(t, cls.Fields, "payload")
	assert.Equal(t, "yes", cls.Fields["ok"])
	require.Len(t, cls.Skipped, 1)
	classification := &model.ClassificationError{}
	require.ErrorAs(t, cls.Skipped[0], &classification)
	assert.Equal(t, "payload", classification.Attribute)
}

func TestClassifyTagFieldKeysDisjoint(t *testing.T) {
	record := testRecord()
	record.Stack = "trace"
	record.Caller = model.Caller{File: "f.go", Line: 1, Function: "f"}
	record.PID = 1
	record.Attributes = []model.Attribute{
		{Key: "region", Value: "eu-1"},
		{Key: "user_id", Value: "u-1"},
		{Key: "level", Value: "shadow"},
		{Key: "short_message", Value: "shadow"},
	}
	configs := [][]Option{
		nil,
		{Options.ExtraTags(true)},
		{Options.ExtraFields(false)},
		{Options.ExtraTags(true), Options.ExtraFields(false)},
		{Options.LevelNames(true), Options.Localname("h")},
		{Options.IncludeTags(map[string]string{"user_id": "user"})},
		{Options.IncludeFields(map[string]string{"region": "zone"}), Options.ExtraTags(true)},
	}
	for _, opts := range configs {
		cls := NewClassifier(opts...).Classify(record)
		for k := range cls.Tags {
			assert.NotContains(t, cls.Fields, k, "key %q classified both ways", k)
		}
	}
}

func TestClassifyIdempotent(t *testing.T) {
	record := testRecord()
	record.Stack = "trace"
	record.Attributes = []model.Attribute{
		{Key: "region", Value: "eu-1"},
		{Key: "attempt", Value: 3},
	}
	c := NewClassifier(Options.Localname("web-42"))
	first := c.Classify(record)
	second := c.Classify(record)
	assert.Equal(t, first, second)
}
