package v1handler

import (
	"net/http"

	"careerguide/pkg/domain"
	"careerguide/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// ListSaved returns the caller's saved items, optionally of one ?kind=.
func (h Handler) ListSaved(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.deps.Saved.List(ctx, GetUserIDFromContext(ctx), domain.SavedKind(r.URL.Query().Get("kind")))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	respond(w, http.StatusOK, items(len(list), func(e *jx.Encoder, i int) { encodeSavedItem(e, list[i]) }))
}

// CreateSaved saves {"kind","ref","note"} for the caller.
func (h Handler) CreateSaved(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	d, err := readBody(w, r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	var req SaveRequest
	if err := req.Decode(d); err != nil {
		h.fail(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid saved item"))

		return
	}

	item, err := h.deps.Saved.Save(ctx, GetUserIDFromContext(ctx), domain.SavedKind(req.Kind), req.Ref, req.Note)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	respond(w, http.StatusCreated, func(e *jx.Encoder) { encodeSavedItem(e, *item) })
}

func (h Handler) DeleteSaved(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.fail(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid saved item id"))

		return
	}

	if err := h.deps.Saved.Delete(ctx, GetUserIDFromContext(ctx), domain.SavedItemID(id)); err != nil {
		h.fail(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
