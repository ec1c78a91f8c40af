package jobboard

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RefreshArgs contains the arguments for a feed refresh job submitted to River.
type RefreshArgs struct {
	// Source is the provider to import. It is marked as unique so River keeps a
	// single outstanding refresh per provider.
	Source string `json:"source" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which a job with the
	// same source is considered a duplicate.
	uniqueJobPeriod time.Duration
}

// NewRefreshArgs returns args for refreshing source.
func NewRefreshArgs(source string, maxAttempts int, uniqueJobPeriod time.Duration) RefreshArgs {
	return RefreshArgs{Source: source, maxAttempts: maxAttempts, uniqueJobPeriod: uniqueJobPeriod}
}

// Kind returns the River job kind used to register and dispatch the refresh worker.
func (args RefreshArgs) Kind() string { return "RefreshJobFeed" }

// InsertOpts returns the River options that control how the job is enqueued.
// Completed jobs are not part of the uniqueness states so a finished refresh
// never blocks the next one.
func (args RefreshArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
