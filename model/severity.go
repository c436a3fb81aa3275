// Copyright (c) 2026 The InfluxLog Authors.
// SPDX-License-Identifier: Apache-2.0

package model

import "fmt"

// Severity is the level of a log record.
type Severity int8

const (
	Debug Severity = iota
	Info
	Warning
	Error
	Critical
)

// Syslog-style numeric codes, matching the wire values emitted for the
// "level" tag when symbolic names are disabled.
var severityCodes = map[Severity]int{
	Debug:    7,
	Info:     6,
	Warning:  4,
	Error:    3,
	Critical: 2,
}

var severityNames = map[Severity]string{
	Debug:    "DEBUG",
	Info:     "INFO",
	Warning:  "WARNING",
	Error:    "ERROR",
	Critical: "CRITICAL",
}

// clamp maps out-of-range severities onto the defined set so that both
// renderings stay total functions.
func (s Severity) clamp() Severity {
	if s < Debug {
		return Debug
	}
	if s > Critical {
		return Critical
	}
	return s
}

// Code returns the syslog-style numeric code for the severity.
func (s Severity) Code() int {
	return severityCodes[s.clamp()]
}

// Name returns the symbolic name for the severity, e.g. "ERROR".
func (s Severity) Name() string {
	return severityNames[s.clamp()]
}

func (s Severity) String() string {
	return s.Name()
}

// SeverityFromCode is the inverse of Code. It returns an error for codes
// outside the defined set.
func SeverityFromCode(code int) (Severity, error) {
	for s, c := range severityCodes {
		if c == code {
			return s, nil
		}
	}
	return Info, fmt.Errorf("unknown severity code %d", code)
}
