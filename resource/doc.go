// Package resource limits what a process running many tasks may consume.
//
//   - Memory: scratch buffers of a task are reserved up front (non-blocking,
//     fail-fast). A task that does not fit fails with ErrMemoryLimitExceeded.
//   - Tasks: a weighted semaphore bounds how many tasks run at once.
//   - IO: a token bucket throttles reads of task inputs and writes of results.
//
// A nil *Controller imposes no limits.
package resource
