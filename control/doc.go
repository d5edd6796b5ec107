// Package control is the configuration and telemetry layer over the
// memory subsystem.
//
// It provides:
//   - YAML-loadable runtime tunables (pool retention, log level)
//   - A Prometheus collector over every shared pool's accounting
//
// Nothing here sits on an allocation hot path; geometry code interacts
// with the subsystem only through the facade.
package control
