// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker's goroutine and returns immediately; the worker
// runs until ctx is cancelled or Stop is called. Stop blocks until the
// goroutine has exited and is a no-op for a worker that is not running.
//
// Example implementation:
//
//	type MyWorker struct{ ... }
//
//	func (w *MyWorker) Start(ctx context.Context) { go w.loop(ctx) }
//	func (w *MyWorker) Stop()                     { w.cancel(); w.wg.Wait() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Clipboard is the system clipboard as seen by the workers.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}
