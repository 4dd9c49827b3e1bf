/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/presentproof/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	go func() {
		if err := pp.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics HTTP server", log.WithError(err))
		}
	}()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		return pp.httpServer.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the presentproof service.
type PromMetrics struct {
	createPresentationTime    prometheus.Histogram
	createRevocationStateTime prometheus.Histogram
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		createPresentationTime:    newCreatePresentationTime(),
		createRevocationStateTime: newCreateRevocationStateTime(),
	}

	registerMetrics(pm)

	return pm
}

// CreatePresentationTime records the time for a full presentation build.
func (pm *PromMetrics) CreatePresentationTime(value time.Duration) {
	pm.createPresentationTime.Observe(value.Seconds())

	logger.Debug("CreatePresentation service call time", log.WithDuration(value))
}

// CreateRevocationStateTime records the time for one revocation state build.
func (pm *PromMetrics) CreateRevocationStateTime(value time.Duration) {
	pm.createRevocationStateTime.Observe(value.Seconds())

	logger.Debug("CreateRevocationState holder call time", log.WithDuration(value))
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.createPresentationTime, pm.createRevocationStateTime,
	)
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newCreatePresentationTime() prometheus.Histogram {
	return newHistogram(
		metrics.Service, metrics.CreatePresentationMetric,
		"The time (in seconds) it takes to execute CreatePresentation service call.",
		nil,
	)
}

func newCreateRevocationStateTime() prometheus.Histogram {
	return newHistogram(
		metrics.Service, metrics.CreateRevocationStateMetric,
		"The time (in seconds) it takes to execute CreateRevocationState holder call.",
		nil,
	)
}
