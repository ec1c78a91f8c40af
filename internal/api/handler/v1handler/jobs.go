package v1handler

import (
	"net/http"

	"careerguide/pkg/domain"
	"careerguide/pkg/serrors"
	"careerguide/pkg/storage"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// ListJobs returns a page of job listings.
func (h Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := queryInt(r, "limit")
	if err != nil {
		h.fail(w, r, err)

		return
	}

	listings, next, err := h.deps.Board.Search(r.Context(), storage.ListingFilter{
		Query:    q.Get("q"),
		Location: q.Get("location"),
		Type:     domain.JobType(q.Get("type")),
		Category: q.Get("category"),
		Source:   q.Get("source"),
	}, q.Get("cursor"), uint(limit)) //nolint: gosec
	if err != nil {
		h.fail(w, r, err)

		return
	}

	respond(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("items", func(e *jx.Encoder) {
				e.ArrStart()
				for _, l := range listings {
					encodeListing(e, l)
				}
				e.ArrEnd()
			})
			e.Field("next_cursor", func(e *jx.Encoder) {
				if next == "" {
					e.Null()

					return
				}
				e.Str(next)
			})
		})
	})
}

func (h Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.fail(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid job id"))

		return
	}

	listing, err := h.deps.Board.Listing(r.Context(), domain.JobID(id))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	respond(w, http.StatusOK, func(e *jx.Encoder) { encodeListing(e, *listing) })
}
