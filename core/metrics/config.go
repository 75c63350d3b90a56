package metrics

import "github.com/kilianp07/releasepilot/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
	// PrometheusPort, when set, exposes /metrics on the given address
	// (e.g. ":9090") for the lifetime of the service.
	PrometheusPort string `json:"prometheus_port"`
}
