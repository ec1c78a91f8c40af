package v1handler

import (
	"net/http"

	"careerguide/pkg/serrors"

	"github.com/go-faster/jx"
)

// ReloadCatalog reloads the career dataset from its source.
func (h Handler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	if h.deps.Reloader == nil {
		h.fail(w, r, serrors.With(serrors.ErrUnavailable, "dataset reload is not configured"))

		return
	}

	snap, err := h.deps.Reloader.Reload(r.Context())
	if err != nil {
		h.fail(w, r, serrors.Wrap(serrors.ErrUnavailable, err, "could not reload dataset"))

		return
	}

	respond(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			strField(e, "version", snap.Version)
			strField(e, "source", snap.Source)
			timeField(e, "loaded_at", snap.LoadedAt)
			intField(e, "rules", len(snap.Dataset.Rules))
			intField(e, "careers", len(snap.Dataset.Careers))
		})
	})
}

// RefreshJobs refreshes ?source=, or every job feed when it is empty.
func (h Handler) RefreshJobs(w http.ResponseWriter, r *http.Request) {
	results, err := h.deps.Board.Refresh(r.Context(), r.URL.Query().Get("source"))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	respond(w, http.StatusAccepted, items(len(results), func(e *jx.Encoder, i int) {
		res := results[i]
		e.Obj(func(e *jx.Encoder) {
			strField(e, "source", res.Source)
			e.Field("queued", func(e *jx.Encoder) { e.Bool(res.Queued) })
			if res.Event != nil {
				intField(e, "imported", res.Event.Imported)
				e.Field("pruned", func(e *jx.Encoder) { e.Int64(res.Event.Pruned) })
			}
		})
	}))
}
