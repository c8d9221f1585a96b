// Package server wires and runs the application's HTTP server.
//
// It provides lifecycle orchestration for the inbound transport, including
// startup, signal handling, and graceful shutdown.
package server
