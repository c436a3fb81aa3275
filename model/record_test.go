// Copyright (c) 2026 The InfluxLog Authors.
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasurementName(t *testing.T) {
	testCases := []struct {
		logger      string
		measurement string
	}{
		{"a.b.c", "a:b:c"},
		{"a", "a"},
		{"", "root"},
		{"api.billing", "api:billing"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.measurement, MeasurementName(tc.logger), "logger %q", tc.logger)
	}
}

func TestAncestors(t *testing.T) {
	testCases := []struct {
		measurement string
		ancestors   []string
	}{
		{"a:b:c", []string{"a:b", "a"}},
		{"a:b", []string{"a"}},
		{"a", nil},
		{"root", nil},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.ancestors, Ancestors(tc.measurement), "measurement %q", tc.measurement)
	}
}

func TestCallerDefined(t *testing.T) {
	assert.False(t, Caller{}.Defined())
	assert.True(t, Caller{File: "main.go", Line: 42}.Defined())
}
