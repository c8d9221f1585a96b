// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's execution and is expected to return quickly,
// spawning goroutines internally. Stop halts a started worker and blocks
// until its in-flight work has finished.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run() {
//	    // start background processing
//	}
//
//	func (w *MyWorker) Stop() {
//	    // signal the goroutine and wait for it
//	}
type Worker interface {
	Run()
	Stop()
}
