// Package careerguide embeds the assets shipped with the service binary: the
// SQL migrations, the default career dataset and the mock job feed.
package careerguide

import "embed"

// Migrations holds the goose migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// DefaultDataset is the career dataset used when no dataset path or bucket is
// configured.
//
//go:embed data/careermap.json
var DefaultDataset []byte

// DefaultDatasetName is the name DefaultDataset is decoded under.
const DefaultDatasetName = "careermap.json"

// MockJobFeed is the payload of the static job feed provider.
//
//go:embed data/jobs.json
var MockJobFeed []byte
