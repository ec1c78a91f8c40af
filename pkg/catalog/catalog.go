// Package catalog loads the hand-authored career dataset and keeps the
// current version of it in memory. The dataset is read once at startup from a
// Source and may be swapped atomically later (admin reload or file watch).
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"careerguide/pkg/domain"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// Dataset is the static configuration the guide is driven by.
type Dataset struct {
	Stages  []domain.Stage  `json:"stages"  yaml:"stages"`
	Goals   []domain.Goal   `json:"goals"   yaml:"goals"`
	Rules   []domain.Rule   `json:"rules"   yaml:"rules"`
	Careers []domain.Career `json:"careers" yaml:"careers"`
	// InterestStreams maps an interest ID to the streams it points toward.
	InterestStreams map[string][]string       `json:"interest_to_stream" yaml:"interest_to_stream"`
	Interests       []domain.InterestCategory `json:"interests"          yaml:"interests"`
	BusinessIdeas   []domain.BusinessIdea     `json:"business_ideas"     yaml:"business_ideas"`
}

// Decode parses a dataset payload. Names ending in .yaml or .yml are decoded
// as YAML, everything else as JSON. Unknown JSON fields are rejected so typos
// in hand-authored files surface early.
func Decode(name string, data []byte) (*Dataset, error) {
	var ds Dataset

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&ds); err != nil {
			return nil, fmt.Errorf("could not decode yaml dataset %s: %w", name, err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&ds); err != nil {
			return nil, fmt.Errorf("could not decode json dataset %s: %w", name, err)
		}
	}
	ds.Normalize()

	return &ds, nil
}

// Version fingerprints a raw dataset payload.
func Version(data []byte) string {
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}

// Snapshot is an immutable loaded dataset. Callers must not modify it.
type Snapshot struct {
	Dataset *Dataset
	// Version changes whenever the raw payload changes; it is part of every
	// cache key derived from the dataset.
	Version string
	// Source describes where the payload was read from.
	Source   string
	LoadedAt time.Time

	stages  map[domain.StageID]domain.Stage
	goals   map[domain.GoalID]domain.Goal
	careers map[string]domain.Career
	ideas   map[string]domain.BusinessIdea
}

// NewSnapshot indexes ds for lookups.
func NewSnapshot(ds *Dataset, version, source string) *Snapshot {
	s := &Snapshot{
		Dataset:  ds,
		Version:  version,
		Source:   source,
		LoadedAt: time.Now().UTC(),
		stages:   make(map[domain.StageID]domain.Stage, len(ds.Stages)),
		goals:    make(map[domain.GoalID]domain.Goal, len(ds.Goals)),
		careers:  make(map[string]domain.Career, len(ds.Careers)),
		ideas:    make(map[string]domain.BusinessIdea, len(ds.BusinessIdeas)),
	}
	for _, st := range ds.Stages {
		s.stages[st.ID] = st
	}
	for _, g := range ds.Goals {
		s.goals[g.ID] = g
	}
	for _, c := range ds.Careers {
		if _, dup := s.careers[c.ID]; !dup {
			s.careers[c.ID] = c
		}
	}
	for _, i := range ds.BusinessIdeas {
		if _, dup := s.ideas[i.ID]; !dup {
			s.ideas[i.ID] = i
		}
	}

	return s
}

// Stage returns the stage with the given ID.
func (s *Snapshot) Stage(id domain.StageID) (domain.Stage, bool) {
	st, ok := s.stages[id]

	return st, ok
}

// Goal returns the goal with the given ID.
func (s *Snapshot) Goal(id domain.GoalID) (domain.Goal, bool) {
	g, ok := s.goals[id]

	return g, ok
}

// Career returns the first career with the given ID.
func (s *Snapshot) Career(id string) (domain.Career, bool) {
	c, ok := s.careers[id]

	return c, ok
}

// Idea returns the first business idea with the given ID.
func (s *Snapshot) Idea(id string) (domain.BusinessIdea, bool) {
	i, ok := s.ideas[id]

	return i, ok
}

// StageLabel returns the label of a stage, falling back to its ID.
func (s *Snapshot) StageLabel(id domain.StageID) string {
	if st, ok := s.stages[id]; ok && st.Label != "" {
		return st.Label
	}

	return string(id)
}

// Store holds the current snapshot. The zero value is an empty store.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore returns a store holding snap, which may be nil.
func NewStore(snap *Snapshot) *Store {
	s := &Store{}
	if snap != nil {
		s.current.Store(snap)
	}

	return s
}

// Current returns the loaded snapshot or nil when nothing was loaded.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Swap replaces the current snapshot and returns the previous one.
func (s *Store) Swap(snap *Snapshot) *Snapshot {
	return s.current.Swap(snap)
}
