package v1handler

import (
	"net/http"

	"careerguide/internal/careermap"
	"careerguide/pkg/domain"
	"careerguide/pkg/serrors"

	"github.com/go-faster/jx"
)

// ListStages returns every stage of the dataset.
func (h Handler) ListStages(w http.ResponseWriter, r *http.Request) {
	stages, err := h.deps.Guide.Stages(r.Context())
	if err != nil {
		h.fail(w, r, err)

		return
	}

	respond(w, http.StatusOK, items(len(stages), func(e *jx.Encoder, i int) { encodeStage(e, stages[i]) }))
}

// ListGoals returns every goal of the dataset.
func (h Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.deps.Guide.Goals(r.Context())
	if err != nil {
		h.fail(w, r, err)

		return
	}

	respond(w, http.StatusOK, items(len(goals), func(e *jx.Encoder, i int) { encodeGoal(e, goals[i]) }))
}

// ListInterests returns the interest taxonomy.
func (h Handler) ListInterests(w http.ResponseWriter, r *http.Request) {
	cats, err := h.deps.Guide.Interests(r.Context())
	if err != nil {
		h.fail(w, r, err)

		return
	}

	respond(w, http.StatusOK, items(len(cats), func(e *jx.Encoder, i int) { encodeInterestCategory(e, cats[i]) }))
}

// GeneratePath walks the rule table from ?stage= toward ?goal=.
func (h Handler) GeneratePath(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	path, err := h.deps.Guide.GeneratePath(r.Context(), domain.StageID(q.Get("stage")), domain.GoalID(q.Get("goal")))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	respond(w, http.StatusOK, func(e *jx.Encoder) { encodePath(e, path) })
}

// PathToCareer walks from ?stage= toward the goal of the career.
func (h Handler) PathToCareer(w http.ResponseWriter, r *http.Request) {
	path, err := h.deps.Guide.PathToCareer(r.Context(),
		domain.StageID(r.URL.Query().Get("stage")),
		r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	respond(w, http.StatusOK, func(e *jx.Encoder) { encodePath(e, path) })
}

func (h Handler) ListCareers(w http.ResponseWriter, r *http.Request) {
	careers, err := h.deps.Guide.Careers(r.Context(), r.URL.Query().Get("stream"))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	respond(w, http.StatusOK, items(len(careers), func(e *jx.Encoder, i int) { encodeCareer(e, careers[i]) }))
}

func (h Handler) GetCareer(w http.ResponseWriter, r *http.Request) {
	career, err := h.deps.Guide.Career(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	respond(w, http.StatusOK, func(e *jx.Encoder) { encodeCareer(e, *career) })
}

// MatchCareersQuery scores careers against repeated ?interest= parameters.
func (h Handler) MatchCareersQuery(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.matchCareers(w, r, r.URL.Query()["interest"], limit)
}

// MatchCareers scores careers against {"interests":[...],"limit":n}.
func (h Handler) MatchCareers(w http.ResponseWriter, r *http.Request) {
	d, err := readBody(w, r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	var req MatchRequest
	if err := req.Decode(d); err != nil {
		h.fail(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid match request"))

		return
	}
	if req.Limit < 0 {
		h.fail(w, r, serrors.With(serrors.ErrBadRequest, "limit must be a non-negative integer"))

		return
	}

	h.matchCareers(w, r, req.Interests, req.Limit)
}

func (h Handler) matchCareers(w http.ResponseWriter, r *http.Request, interests []string, limit int) {
	matches, err := h.deps.Guide.FindCareersByInterests(r.Context(), interests, limit)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	respond(w, http.StatusOK, items(len(matches), func(e *jx.Encoder, i int) { encodeCareerMatch(e, matches[i]) }))
}

// ListIdeas filters business ideas by ?category=, ?maxInvestment= and
// repeated ?interest= parameters.
func (h Handler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	investment, err := careermap.ParseInvestment(q.Get("maxInvestment"))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	ideas, err := h.deps.Guide.BusinessIdeas(r.Context(), careermap.IdeaFilter{
		Category:      q.Get("category"),
		MaxInvestment: investment,
		Interests:     q["interest"],
	})
	if err != nil {
		h.fail(w, r, err)

		return
	}

	respond(w, http.StatusOK, items(len(ideas), func(e *jx.Encoder, i int) { encodeIdeaMatch(e, ideas[i]) }))
}

func (h Handler) GetIdea(w http.ResponseWriter, r *http.Request) {
	idea, err := h.deps.Guide.Idea(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	respond(w, http.StatusOK, func(e *jx.Encoder) { encodeIdea(e, *idea) })
}
