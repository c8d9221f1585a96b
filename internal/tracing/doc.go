// Package tracing configures the OpenTelemetry trace pipeline.
//
// It registers a global tracer provider exporting spans over OTLP/HTTP when
// tracing is enabled in the configuration, and stays a no-op otherwise.
package tracing
