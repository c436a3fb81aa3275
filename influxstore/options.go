// Copyright (c) 2026 The InfluxLog Authors.
// SPDX-License-Identifier: Apache-2.0

package influxstore

import (
	"flag"

	"github.com/spf13/viper"

	"github.com/influxlogging/influxlog/influxstore/config"
)

const (
	configPrefix          = "influx"
	suffixHost            = ".host"
	suffixPort            = ".port"
	suffixToken           = ".token"
	suffixUsername        = ".username"
	suffixPassword        = ".password"
	suffixOrganization    = ".organization"
	suffixDatabase        = ".database"
	suffixRetentionPolicy = ".retention-policy"
	suffixTLS             = ".tls"

	defaultHost = "127.0.0.1"
	defaultPort = 8086
)

// Options stores the configuration options for the InfluxDB store.
type Options struct {
	Configuration config.Configuration
}

// AddFlags adds flags for Options.
func (*Options) AddFlags(flagSet *flag.FlagSet) {
	flagSet.String(
		configPrefix+suffixHost,
		defaultHost,
		"The host of the InfluxDB server")
	flagSet.Int(
		configPrefix+suffixPort,
		defaultPort,
		"The port of the InfluxDB server")
	flagSet.String(
		configPrefix+suffixToken,
		"",
		"The authentication token for InfluxDB 2.x")
	flagSet.String(
		configPrefix+suffixUsername,
		"",
		"The username to connect with, for InfluxDB 1.8")
	flagSet.String(
		configPrefix+suffixPassword,
		"",
		"The password to connect with, for InfluxDB 1.8")
	flagSet.String(
		configPrefix+suffixOrganization,
		"",
		"The InfluxDB 2.x organization; leave empty for 1.8")
	flagSet.String(
		configPrefix+suffixDatabase,
		"",
		"The database (bucket) log points are written to")
	flagSet.String(
		configPrefix+suffixRetentionPolicy,
		"",
		"The retention policy qualifying writes, for InfluxDB 1.8")
	flagSet.Bool(
		configPrefix+suffixTLS,
		false,
		"Connect to the InfluxDB server over https")
}

// InitFromViper initializes Options with properties from viper.
func (opt *Options) InitFromViper(v *viper.Viper) {
	opt.Configuration = config.Configuration{
		Host:            v.GetString(configPrefix + suffixHost),
		Port:            v.GetInt(configPrefix + suffixPort),
		Token:           v.GetString(configPrefix + suffixToken),
		Username:        v.GetString(configPrefix + suffixUsername),
		Password:        v.GetString(configPrefix + suffixPassword),
		Organization:    v.GetString(configPrefix + suffixOrganization),
		Database:        v.GetString(configPrefix + suffixDatabase),
		RetentionPolicy: v.GetString(configPrefix + suffixRetentionPolicy),
		TLS:             v.GetBool(configPrefix + suffixTLS),
	}
	opt.Configuration.ApplyDefaults()
}
