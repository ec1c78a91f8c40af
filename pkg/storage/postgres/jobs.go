package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job. Inside a transaction the job is inserted with
// InsertTx and becomes visible on commit. It reports false when a unique job
// with the same args already exists.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	switch db := p.DB.(type) {
	case *sql.Tx:
		// an insert-only client needs no pool of its own
		client, cerr := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if cerr != nil {
			return false, fmt.Errorf("could not create river queue client: %w", cerr)
		}
		res, err = client.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		client, cerr := river.NewClient(riverdatabasesql.New(db), &river.Config{})
		if cerr != nil {
			return false, fmt.Errorf("could not create river queue client: %w", cerr)
		}
		res, err = client.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("unsupported database handle %T", p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
