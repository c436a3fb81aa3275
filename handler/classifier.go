// Copyright (c) 2026 The InfluxLog Authors.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/influxlogging/influxlog/model"
)

// Reserved classifications: "level" is always a tag, the rest are always
// fields unless explicitly promoted to tags.
const (
	levelTagKey       = "level"
	shortMessageKey   = "short_message"
	fullMessageKey    = "full_message"
	levelNameFieldKey = "level_name"
	hostFieldKey      = "host"
	fileFieldKey      = "file"
	lineFieldKey      = "line"
	functionFieldKey  = "function"
	pidFieldKey       = "pid"
)

// Classifier decides which record attributes become tags (low-cardinality,
// indexed) vs fields (arbitrary values) vs are dropped, and derives the
// measurement name and timestamp. Classification is a pure function of the
// record and the configuration captured at construction.
type Classifier struct {
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
}

// Classification is the result of classifying one record. Tag and field
// key sets are disjoint by construction.
type Classification struct {
	Measurement string
	Tags        map[string]string
	Fields      map[string]any
	Timestamp   time.Time
	// Skipped collects per-attribute classification errors. The affected
	// attributes are omitted; the classification is otherwise usable.
	Skipped []error
}

// NewClassifier builds a Classifier from handler options.
func NewClassifier(opts ...Option) *Classifier {
	return newClassifier(Options.apply(opts...))
}

func newClassifier(o options) *Classifier {
	return &Classifier{
		measurement:       o.measurement,
		localname:         o.localname,
		includeTags:       o.includeTags,
		includeFields:     o.includeFields,
		excludeTags:       o.excludeTags,
		excludeFields:     o.excludeFields,
		extraTags:         o.extraTags,
		extraFields:       o.extraFields,
		includeStacktrace: o.includeStacktrace,
		debuggingFields:   o.debuggingFields,
		levelNames:        o.levelNames,
	}
}

// Classify derives the measurement, tag set, field set and timestamp for
// a record. It never fails; attributes that cannot be represented are
// reported in Skipped and omitted.
func (c *Classifier) Classify(record model.Record) Classification {
	out := Classification{
		Measurement: c.measurement,
		Tags:        map[string]string{},
		Fields:      map[string]any{},
		Timestamp:   record.Time,
	}
	if out.Measurement == "" {
		out.Measurement = model.MeasurementName(record.Logger)
	}

	if c.levelNames {
		out.Tags[levelTagKey] = record.Severity.Name()
	} else {
		out.Tags[levelTagKey] = strconv.Itoa(record.Severity.Code())
	}
	out.Fields[shortMessageKey] = record.Message

	c.builtin(&out, levelNameFieldKey, record.Severity.Name())
	if c.localname != "" {
		c.builtin(&out, hostFieldKey, c.localname)
	}
	if c.includeStacktrace {
		// Fall back to the message when no trace is attached, so the
		// field is always present and queryable.
		full := record.Stack
		if full == "" {
			full = record.Message
		}
		c.builtin(&out, fullMessageKey, full)
	}
	if c.debuggingFields {
		if record.Caller.Defined() {
			c.builtin(&out, fileFieldKey, record.Caller.File)
			c.builtin(&out, lineFieldKey, int64(record.Caller.Line))
			c.builtin(&out, functionFieldKey, record.Caller.Function)
		}
		if record.PID > 0 {
			c.builtin(&out, pidFieldKey, int64(record.PID))
		}
	}

	for _, attr := range record.Attributes {
		c.extra(&out, attr)
	}
	return out
}

// builtin places a handler-supplied attribute. Builtins default to fields
// but honor explicit reclassification: an include-tag entry promotes them
// to tags, an exclude entry suppresses them.
func (c *Classifier) builtin(out *Classification, name string, value any) {
	if tagName, ok := c.includeTags[name]; ok && !c.excludeTags[name] && !reserved(tagName) {
		if s, err := tagValue(value); err == nil {
			out.Tags[tagName] = s
			delete(out.Fields, tagName)
			return
		}
	}
	if c.excludeFields[name] {
		return
	}
	c.setField(out, name, name, value)
}

// extra classifies a caller-supplied attribute: explicit include lists
// always win, exclude lists always suppress, and the extra-tags /
// extra-fields flags control the default for anything not explicitly
// mentioned. Tag classification takes precedence over field
// classification for the same attribute.
func (c *Classifier) extra(out *Classification, attr model.Attribute) {
	// "level" and "short_message" belong to the handler; an attribute
	// reusing them would silently shadow the severity or the message.
	if reserved(attr.Key) {
		out.Skipped = append(out.Skipped, &model.ClassificationError{Attribute: attr.Key, Err: errReservedName})
		return
	}

	if !c.excludeTags[attr.Key] {
		tagName, explicit := c.includeTags[attr.Key]
		if !explicit && c.extraTags {
			tagName = attr.Key
		}
		if tagName != "" && !reserved(tagName) {
			s, err := tagValue(attr.Value)
			if err != nil {
				out.Skipped = append(out.Skipped, &model.ClassificationError{Attribute: attr.Key, Err: err})
				return
			}
			out.Tags[tagName] = s
			delete(out.Fields, tagName)
			return
		}
	}

	if c.excludeFields[attr.Key] {
		return
	}
	fieldName, explicit := c.includeFields[attr.Key]
	if !explicit {
		if !c.extraFields {
			return
		}
		fieldName = attr.Key
	}
	c.setField(out, attr.Key, fieldName, attr.Value)
}

func (c *Classifier) setField(out *Classification, attrName, fieldName string, value any) {
	if reserved(fieldName) {
		return
	}
	// A name already claimed as a tag stays a tag.
	if _, ok := out.Tags[fieldName]; ok {
		return
	}
	v, err := fieldValue(value)
	if err != nil {
		out.Skipped = append(out.Skipped, &model.ClassificationError{Attribute: attrName, Err: err})
		return
	}
	out.Fields[fieldName] = v
}

var errReservedName = errors.New("reserved attribute name")

func reserved(name string) bool {
	return name == levelTagKey || name == shortMessageKey
}

// tagValue renders an attribute value as a tag string.
func tagValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case fmt.Stringer:
		return v.String(), nil
	case error:
		return v.Error(), nil
	case nil:
		return "", fmt.Errorf("nil value")
	default:
		return "", fmt.Errorf("unsupported tag value type %T", value)
	}
}

// fieldValue normalizes an attribute value to one of the scalar types the
// store accepts.
func fieldValue(value any) (any, error) {
	switch v := value.(type) {
	case string, bool, int64, uint64, float64:
		return v, nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case float32:
		return float64(v), nil
	case time.Duration:
		return v.Seconds(), nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case fmt.Stringer:
		return v.String(), nil
	case error:
		return v.Error(), nil
	case nil:
		return nil, fmt.Errorf("nil value")
	default:
		return nil, fmt.Errorf("unsupported field value type %T", value)
	}
}
