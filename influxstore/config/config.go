// Copyright (c) 2026 The InfluxLog Authors.
// SPDX-License-Identifier: Apache-2.0

// Package config holds the connection configuration for the InfluxDB
// point store.
package config

import (
	"errors"
	"fmt"
)

// Configuration describes how to reach the store. It is passed through to
// the client opaquely; the delivery pipeline never interprets it beyond
// validation.
type Configuration struct {
	// Host and Port locate the InfluxDB HTTP endpoint.
	Host string
	Port int
	// Token authenticates against InfluxDB 2.x. When empty, Username and
	// Password are combined into a 1.8-compatible token.
	Token    string
	Username string
	Password string
	// Organization is required by InfluxDB 2.x; leave empty for 1.8.
	Organization string
	// Database receives the log points. On InfluxDB 2.x this is the
	// bucket name.
	Database string
	// RetentionPolicy optionally scopes writes on InfluxDB 1.8.
	RetentionPolicy string
	// TLS switches the endpoint scheme to https.
	TLS bool
}

// ApplyDefaults fills unset connection fields.
func (c *Configuration) ApplyDefaults() {
	if c.Host == "" {
		c.Host = "127.0.0.1"
	}
	if c.Port == 0 {
		c.Port = 8086
	}
}

// Validate rejects configurations that cannot produce a usable writer.
func (c *Configuration) Validate() error {
	if c.Database == "" {
		return errors.New("influx store: database must be specified")
	}
	return nil
}

// ServerURL returns the HTTP endpoint of the store.
func (c *Configuration) ServerURL() string {
	scheme := "http"
	if c.TLS {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.Host, c.Port)
}

// AuthToken returns the token for the client. Username/password
// credentials are rendered in the "user:pass" form InfluxDB 1.8 expects.
func (c *Configuration) AuthToken() string {
	if c.Token != "" {
		return c.Token
	}
	if c.Username != "" {
		return c.Username + ":" + c.Password
	}
	return ""
}

// Bucket returns the write destination, including the retention policy
// qualifier when one is configured.
func (c *Configuration) Bucket() string {
	if c.RetentionPolicy != "" {
		return c.Database + "/" + c.RetentionPolicy
	}
	return c.Database
}
