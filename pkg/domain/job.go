package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobID uniquely identifies a stored job listing.
type JobID uuid.UUID

// JobType is the employment type of a listing.
type JobType string

const (
	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeInternship JobType = "internship"
	JobTypeContract   JobType = "contract"
	JobTypeRemote     JobType = "remote"
)

// Valid reports whether t is one of the known job types.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeContract, JobTypeRemote:
		return true
	default:
		return false
	}
}

// JobListing is a job imported from a feed provider.
type JobListing struct {
	ID JobID `json:"id"`
	// Source names the feed provider the listing came from.
	Source string `json:"source"`
	// ExternalID is the provider's identifier, unique per Source.
	ExternalID  string   `json:"external_id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Type        JobType  `json:"type"`
	Category    string   `json:"category"`
	Salary      string   `json:"salary,omitempty"`
	Description string   `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	URL         string   `json:"url,omitempty"`

	PostedAt  time.Time `json:"posted_at"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// FeedEvent is published after a feed import finished.
type FeedEvent struct {
	Source   string    `json:"source"`
	Imported int       `json:"imported"`
	Pruned   int64     `json:"pruned"`
	At       time.Time `json:"at"`
}
