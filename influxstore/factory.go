// Copyright (c) 2026 The InfluxLog Authors.
// SPDX-License-Identifier: Apache-2.0

// Package influxstore is the write-only InfluxDB backend of the delivery
// pipeline.
package influxstore

import (
	"errors"
	"flag"
	"fmt"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/spf13/viper"
	"github.com/uber/jaeger-lib/metrics"
	"go.uber.org/zap"

	"github.com/influxlogging/influxlog/handler"
	"github.com/influxlogging/influxlog/influxstore/config"
)

// Factory creates write-only storage components backed by InfluxDB.
type Factory struct {
	options        Options
	metricsFactory metrics.Factory
	logger         *zap.Logger

	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewFactoryWithConfig creates a Factory from an assembled configuration,
// bypassing the flag/viper surface.
func NewFactoryWithConfig(cfg config.Configuration) *Factory {
	cfg.ApplyDefaults()
	return &Factory{options: Options{Configuration: cfg}}
}

// AddFlags implements plugin.Configurable.
func (f *Factory) AddFlags(flagSet *flag.FlagSet) {
	f.options.AddFlags(flagSet)
}

// InitFromViper implements plugin.Configurable.
func (f *Factory) InitFromViper(v *viper.Viper) {
	f.options.InitFromViper(v)
}

// Initialize validates the configuration and establishes the store
// client.
func (f *Factory) Initialize(metricsFactory metrics.Factory, logger *zap.Logger) error {
	f.metricsFactory, f.logger = metricsFactory, logger

	cfg := f.options.Configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	f.client = influxdb2.NewClient(cfg.ServerURL(), cfg.AuthToken())
	f.writeAPI = f.client.WriteAPIBlocking(cfg.Organization, cfg.Bucket())
	return nil
}

// CreatePointWriter returns a writer delivering point batches to the
// configured database.
func (f *Factory) CreatePointWriter() (handler.PointWriter, error) {
	if f.writeAPI == nil {
		return nil, errors.New("factory is not initialized")
	}
	return NewWriter(f.writeAPI, f.metricsFactory, f.logger), nil
}

// Close releases the underlying client.
func (f *Factory) Close() error {
	if f.client != nil {
		f.client.Close()
	}
	return nil
}
