package v1handler

import (
	"io"
	"net/http"
	"time"

	"careerguide/pkg/domain"
	"careerguide/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 64 << 10

func writeJSON(w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// respond encodes body with fn and writes it with status.
func respond(w http.ResponseWriter, status int, fn func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	fn(e)
	writeJSON(w, status, e)
}

// items wraps n elements written by fn in {"items":[...]}.
func items(n int, fn func(e *jx.Encoder, i int)) func(e *jx.Encoder) {
	return func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("items", func(e *jx.Encoder) {
				e.ArrStart()
				for i := range n {
					fn(e, i)
				}
				e.ArrEnd()
			})
		})
	}
}

func strField(e *jx.Encoder, name, v string) {
	e.Field(name, func(e *jx.Encoder) { e.Str(v) })
}

// optStrField omits empty values.
func optStrField(e *jx.Encoder, name, v string) {
	if v != "" {
		strField(e, name, v)
	}
}

func intField(e *jx.Encoder, name string, v int) {
	e.Field(name, func(e *jx.Encoder) { e.Int(v) })
}

func timeField(e *jx.Encoder, name string, v time.Time) {
	strField(e, name, v.UTC().Format(time.RFC3339))
}

func strsField(e *jx.Encoder, name string, v []string) {
	e.Field(name, func(e *jx.Encoder) {
		e.ArrStart()
		for _, s := range v {
			e.Str(s)
		}
		e.ArrEnd()
	})
}

func encodeStage(e *jx.Encoder, s domain.Stage) {
	e.Obj(func(e *jx.Encoder) {
		strField(e, "id", string(s.ID))
		strField(e, "label", s.Label)
		optStrField(e, "description", s.Description)
	})
}

func encodeGoal(e *jx.Encoder, g domain.Goal) {
	e.Obj(func(e *jx.Encoder) {
		strField(e, "id", string(g.ID))
		strField(e, "label", g.Label)
		optStrField(e, "description", g.Description)
	})
}

func encodeInterestCategory(e *jx.Encoder, c domain.InterestCategory) {
	e.Obj(func(e *jx.Encoder) {
		strField(e, "id", c.ID)
		strField(e, "label", c.Label)
		e.Field("interests", func(e *jx.Encoder) {
			e.ArrStart()
			for _, i := range c.Interests {
				e.Obj(func(e *jx.Encoder) {
					strField(e, "id", i.ID)
					strField(e, "label", i.Label)
				})
			}
			e.ArrEnd()
		})
	})
}

func encodeCareer(e *jx.Encoder, c domain.Career) {
	e.Obj(func(e *jx.Encoder) {
		strField(e, "id", c.ID)
		strField(e, "name", c.Name)
		strField(e, "stream", c.Stream)
		optStrField(e, "description", c.Description)
		optStrField(e, "goal", string(c.Goal))
		strsField(e, "interests", c.Interests)
		strsField(e, "skills", c.Skills)
		optStrField(e, "salary_range", c.SalaryRange)
	})
}

func encodeCareerMatch(e *jx.Encoder, m domain.CareerMatch) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("career", func(e *jx.Encoder) { encodeCareer(e, m.Career) })
		intField(e, "score", m.Score)
		strsField(e, "matched_interests", m.MatchedInterests)
	})
}

func encodePath(e *jx.Encoder, p *domain.CareerPath) {
	e.Obj(func(e *jx.Encoder) {
		strField(e, "start", string(p.Start))
		strField(e, "goal", string(p.Goal))
		strField(e, "final", string(p.Final))
		e.Field("cycle_detected", func(e *jx.Encoder) { e.Bool(p.CycleDetected) })
		e.Field("steps", func(e *jx.Encoder) {
			e.ArrStart()
			for _, s := range p.Steps {
				e.Obj(func(e *jx.Encoder) {
					intField(e, "order", s.Order)
					strField(e, "from", string(s.From))
					strField(e, "from_label", s.FromLabel)
					strField(e, "to", string(s.To))
					strField(e, "to_label", s.ToLabel)
					optStrField(e, "action", s.Action)
					optStrField(e, "duration", s.Duration)
					strsField(e, "exams", s.Exams)
				})
			}
			e.ArrEnd()
		})
	})
}

func encodeIdea(e *jx.Encoder, i domain.BusinessIdea) {
	e.Obj(func(e *jx.Encoder) {
		strField(e, "id", i.ID)
		strField(e, "title", i.Title)
		strField(e, "category", i.Category)
		optStrField(e, "description", i.Description)
		strField(e, "investment", string(i.Investment))
		intField(e, "min_investment", i.MinInvestment)
		strsField(e, "interests", i.Interests)
		strsField(e, "skills", i.Skills)
	})
}

func encodeIdeaMatch(e *jx.Encoder, m domain.IdeaMatch) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("idea", func(e *jx.Encoder) { encodeIdea(e, m.Idea) })
		intField(e, "score", m.Score)
		strsField(e, "matched_interests", m.MatchedInterests)
	})
}

func encodeListing(e *jx.Encoder, l domain.JobListing) {
	e.Obj(func(e *jx.Encoder) {
		strField(e, "id", uuid.UUID(l.ID).String())
		strField(e, "source", l.Source)
		strField(e, "external_id", l.ExternalID)
		strField(e, "title", l.Title)
		strField(e, "company", l.Company)
		strField(e, "location", l.Location)
		strField(e, "type", string(l.Type))
		strField(e, "category", l.Category)
		optStrField(e, "salary", l.Salary)
		optStrField(e, "description", l.Description)
		strsField(e, "skills", l.Skills)
		optStrField(e, "url", l.URL)
		timeField(e, "posted_at", l.PostedAt)
	})
}

func encodeSavedItem(e *jx.Encoder, it domain.SavedItem) {
	e.Obj(func(e *jx.Encoder) {
		strField(e, "id", uuid.UUID(it.ID).String())
		strField(e, "kind", string(it.Kind))
		strField(e, "ref", it.Ref)
		optStrField(e, "note", it.Note)
		timeField(e, "created_at", it.CreatedAt)
	})
}

// readBody reads a JSON request body of at most MaxBodyBytes.
func readBody(w http.ResponseWriter, r *http.Request) (*jx.Decoder, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}
	if len(data) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "request body is required")
	}

	return jx.DecodeBytes(data), nil
}

func decodeStrings(d *jx.Decoder) ([]string, error) {
	var out []string
	if err := d.Arr(func(d *jx.Decoder) error {
		s, err := d.Str()
		if err != nil {
			return err
		}
		out = append(out, s)

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "string array")
	}

	return out, nil
}

// MatchRequest is the body of POST /v1/careers/match.
type MatchRequest struct {
	Interests []string
	Limit     int
}

// Decode reads a MatchRequest. Unknown fields are ignored.
func (m *MatchRequest) Decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "interests":
			v, err := decodeStrings(d)
			if err != nil {
				return errors.Wrap(err, "interests")
			}
			m.Interests = v
		case "limit":
			v, err := d.Int()
			if err != nil {
				return errors.Wrap(err, "limit")
			}
			m.Limit = v
		default:
			return d.Skip()
		}

		return nil
	})
}

// SaveRequest is the body of POST /v1/saved.
type SaveRequest struct {
	Kind string
	Ref  string
	Note string
}

// Decode reads a SaveRequest. Unknown fields are ignored.
func (s *SaveRequest) Decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var (
			v   string
			err error
		)
		switch key {
		case "kind":
			v, err = d.Str()
			s.Kind = v
		case "ref":
			v, err = d.Str()
			s.Ref = v
		case "note":
			v, err = d.Str()
			s.Note = v
		default:
			return d.Skip()
		}

		return errors.Wrap(err, key)
	})
}
