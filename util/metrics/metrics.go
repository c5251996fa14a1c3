// Package metrics holds process-wide usage counters shown on the admin status
// page and logged by the hourly stats job.
package metrics

import (
	"go.uber.org/atomic"
)

var (
	// RequestsServed counts completed HTTP requests.
	RequestsServed atomic.Int64

	// LoginsSucceeded and LoginsFailed count authorization outcomes.
	LoginsSucceeded atomic.Int64
	LoginsFailed    atomic.Int64

	// PostsCreated and NotesCreated count successful content inserts.
	PostsCreated atomic.Int64
	NotesCreated atomic.Int64
)

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	RequestsServed  int64
	LoginsSucceeded int64
	LoginsFailed    int64
	PostsCreated    int64
	NotesCreated    int64
}

func Collect() Snapshot {
	return Snapshot{
		RequestsServed:  RequestsServed.Load(),
		LoginsSucceeded: LoginsSucceeded.Load(),
		LoginsFailed:    LoginsFailed.Load(),
		PostsCreated:    PostsCreated.Load(),
		NotesCreated:    NotesCreated.Load(),
	}
}
