package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs into the backend's queue.
type JobStorage interface {
	// AddJob enqueues a new job. It is atomic with respect to a surrounding
	// transaction when the backend supports it. The boolean is false when the
	// job was skipped as a duplicate of a unique job. Backends without a queue
	// return ErrNoQueue.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
