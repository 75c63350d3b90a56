// Package metrics defines interfaces and event records for collecting
// planning metrics. Sinks like the Prometheus and InfluxDB implementations
// under infra/metrics record plan results, overflow tickets, conflicts and
// utilization snapshots, and can be combined with a MultiSink. The factory
// helpers return a MultiSink automatically when multiple sinks are
// configured.
package metrics
