package v1handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"careerguide/internal/api/handler/v1handler"
	"careerguide/internal/careermap"
	mockcareermap "careerguide/internal/careermap/mock"
	"careerguide/internal/jobboard"
	mockjobboard "careerguide/internal/jobboard/mock"
	mocksaved "careerguide/internal/saved/mock"
	"careerguide/pkg/catalog"
	"careerguide/pkg/domain"
	"careerguide/pkg/serrors"
	"careerguide/pkg/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	guide  *mockcareermap.MockGuide
	board  *mockjobboard.MockBoard
	saved  *mocksaved.MockService
	mux    *http.ServeMux
	user   domain.UserID
	token  string
	admin  string
	reload *fakeReloader
}

type fakeReloader struct {
	snap *catalog.Snapshot
	err  error
}

func (f *fakeReloader) Reload(context.Context) (*catalog.Snapshot, error) {
	return f.snap, f.err
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	priv, pubPEM := genRSAKeys(t)
	sec := newSecHandlerForTest(t, pubPEM)

	f := &fixture{
		guide:  mockcareermap.NewMockGuide(ctrl),
		board:  mockjobboard.NewMockBoard(ctrl),
		saved:  mocksaved.NewMockService(ctrl),
		mux:    http.NewServeMux(),
		user:   domain.UserID(uuid.New()),
		reload: &fakeReloader{},
	}

	now := time.Now()
	registered := jwt.RegisteredClaims{
		Subject:   uuid.UUID(f.user).String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	f.token = signClaims(t, priv, v1handler.Claims{RegisteredClaims: registered})
	f.admin = signClaims(t, priv, v1handler.Claims{RegisteredClaims: registered, Admin: true})

	h := v1handler.New(v1handler.Deps{Guide: f.guide, Board: f.board, Saved: f.saved, Reloader: f.reload})
	h.Routes(f.mux, sec)

	return f
}

func (f *fixture) do(method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)

	return rec
}

func TestRoutes_Stages(t *testing.T) {
	f := newFixture(t)

	f.guide.EXPECT().Stages(gomock.Any()).Return([]domain.Stage{
		{ID: "class_10_below", Label: "Class 10 or below"},
		{ID: "graduate", Label: "Graduate", Description: "Bachelor's degree"},
	}, nil)

	rec := f.do(http.MethodGet, "/v1/stages", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"items":[
		{"id":"class_10_below","label":"Class 10 or below"},
		{"id":"graduate","label":"Graduate","description":"Bachelor's degree"}
	]}`, rec.Body.String())
}

func TestRoutes_GeneratePath(t *testing.T) {
	f := newFixture(t)

	f.guide.EXPECT().GeneratePath(gomock.Any(), domain.StageID("class_12_science"), domain.GoalID("engineering")).
		Return(&domain.CareerPath{
			Start: "class_12_science",
			Goal:  "engineering",
			Final: "btech",
			Steps: []domain.PathStep{{
				Order: 1, From: "class_12_science", FromLabel: "Class 12 (Science)",
				To: "btech", ToLabel: "B.Tech", Action: "Clear JEE", Exams: []string{"JEE Main"},
			}},
		}, nil)

	rec := f.do(http.MethodGet, "/v1/paths?stage=class_12_science&goal=engineering", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"start":"class_12_science","goal":"engineering","final":"btech","cycle_detected":false,
		"steps":[{"order":1,"from":"class_12_science","from_label":"Class 12 (Science)",
			"to":"btech","to_label":"B.Tech","action":"Clear JEE","exams":["JEE Main"]}]
	}`, rec.Body.String())
}

func TestRoutes_GeneratePath_NotFound(t *testing.T) {
	f := newFixture(t)

	f.guide.EXPECT().GeneratePath(gomock.Any(), domain.StageID("phd"), domain.GoalID("medicine")).
		Return(nil, serrors.With(serrors.ErrNotFound, "rule not found"))

	rec := f.do(http.MethodGet, "/v1/paths?stage=phd&goal=medicine", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"code":"NOT_FOUND","message":"rule not found"}`, rec.Body.String())
}

func TestRoutes_CareerAndPath(t *testing.T) {
	f := newFixture(t)

	f.guide.EXPECT().Career(gomock.Any(), "software_engineer").
		Return(&domain.Career{ID: "software_engineer", Name: "Software Engineer", Stream: "Science"}, nil)
	f.guide.EXPECT().PathToCareer(gomock.Any(), domain.StageID("graduate"), "software_engineer").
		Return(&domain.CareerPath{Start: "graduate", Goal: "engineering", Final: "graduate"}, nil)

	rec := f.do(http.MethodGet, "/v1/careers/software_engineer", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"id":"software_engineer","name":"Software Engineer","stream":"Science",
		"interests":[],"skills":[]}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/v1/careers/software_engineer/path?stage=graduate", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"final":"graduate"`)
}

func TestRoutes_MatchCareers(t *testing.T) {
	f := newFixture(t)

	match := []domain.CareerMatch{{
		Career:           domain.Career{ID: "data_scientist", Name: "Data Scientist", Stream: "Science"},
		Score:            2,
		MatchedInterests: []string{"coding", "maths"},
	}}
	f.guide.EXPECT().FindCareersByInterests(gomock.Any(), []string{"coding", "maths"}, 3).Return(match, nil).Times(2)

	expected := `{"items":[{"career":{"id":"data_scientist","name":"Data Scientist","stream":"Science",
		"interests":[],"skills":[]},"score":2,"matched_interests":["coding","maths"]}]}`

	rec := f.do(http.MethodPost, "/v1/careers/match", `{"interests":["coding","maths"],"limit":3,"extra":{"x":1}}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, expected, rec.Body.String())

	rec = f.do(http.MethodGet, "/v1/careers/match?interest=coding&interest=maths&limit=3", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, expected, rec.Body.String())
}

func TestRoutes_MatchCareers_BadRequests(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"empty body", http.MethodPost, "/v1/careers/match", ""},
		{"malformed body", http.MethodPost, "/v1/careers/match", `{"interests":"coding"}`},
		{"negative limit", http.MethodPost, "/v1/careers/match", `{"interests":["coding"],"limit":-1}`},
		{"bad query limit", http.MethodGet, "/v1/careers/match?interest=coding&limit=abc", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(tt.method, tt.target, tt.body, "")
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, rec.Body.String(), `"code":"BAD_REQUEST"`)
		})
	}
}

func TestRoutes_Ideas(t *testing.T) {
	f := newFixture(t)

	f.guide.EXPECT().BusinessIdeas(gomock.Any(), careermap.IdeaFilter{
		Category:      "food",
		MaxInvestment: domain.InvestmentMedium,
		Interests:     []string{"cooking"},
	}).Return([]domain.IdeaMatch{{
		Idea: domain.BusinessIdea{
			ID: "cloud_kitchen", Title: "Cloud Kitchen", Category: "food",
			Investment: domain.InvestmentMedium, MinInvestment: 200000,
		},
		Score:            1,
		MatchedInterests: []string{"cooking"},
	}}, nil)

	rec := f.do(http.MethodGet, "/v1/ideas?category=food&maxInvestment=medium&interest=cooking", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"items":[{"idea":{"id":"cloud_kitchen","title":"Cloud Kitchen","category":"food",
		"investment":"medium","min_investment":200000,"interests":[],"skills":[]},
		"score":1,"matched_interests":["cooking"]}]}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/v1/ideas?maxInvestment=huge", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_Jobs(t *testing.T) {
	f := newFixture(t)

	id := uuid.New()
	posted := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	cursor := "2026-03-09T08:00:00Z_" + id.String()
	listing := domain.JobListing{
		ID: domain.JobID(id), Source: "static", ExternalID: "job-1", Title: "Backend Developer",
		Company: "Acme", Location: "Pune", Type: domain.JobTypeFullTime, Category: "IT",
		PostedAt: posted,
	}

	f.board.EXPECT().Search(gomock.Any(), storage.ListingFilter{Query: "go", Type: domain.JobTypeFullTime}, "", uint(1)).
		Return([]domain.JobListing{listing}, cursor, nil)
	f.board.EXPECT().Search(gomock.Any(), storage.ListingFilter{}, cursor, uint(0)).
		Return(nil, "", nil)
	f.board.EXPECT().Listing(gomock.Any(), domain.JobID(id)).Return(&listing, nil)

	rec := f.do(http.MethodGet, "/v1/jobs?q=go&type=full_time&limit=1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"items":[{"id":"`+id.String()+`","source":"static","external_id":"job-1",
		"title":"Backend Developer","company":"Acme","location":"Pune","type":"full_time","category":"IT",
		"skills":[],"posted_at":"2026-03-09T08:00:00Z"}],"next_cursor":"`+cursor+`"}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/v1/jobs?cursor="+cursor, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"items":[],"next_cursor":null}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/v1/jobs/"+id.String(), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"title":"Backend Developer"`)

	rec = f.do(http.MethodGet, "/v1/jobs/not-a-uuid", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_Saved(t *testing.T) {
	f := newFixture(t)

	itemID := uuid.New()
	created := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	item := domain.SavedItem{
		ID: domain.SavedItemID(itemID), UserID: f.user, Kind: domain.SavedKindCareer,
		Ref: "doctor", Note: "ask about NEET", CreatedAt: created,
	}

	rec := f.do(http.MethodGet, "/v1/saved", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	f.saved.EXPECT().Save(gomock.Any(), f.user, domain.SavedKindCareer, "doctor", "ask about NEET").Return(&item, nil)
	rec = f.do(http.MethodPost, "/v1/saved", `{"kind":"career","ref":"doctor","note":"ask about NEET"}`, f.token)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"id":"`+itemID.String()+`","kind":"career","ref":"doctor","note":"ask about NEET",
		"created_at":"2026-03-10T12:00:00Z"}`, rec.Body.String())

	f.saved.EXPECT().Save(gomock.Any(), f.user, domain.SavedKindCareer, "doctor", "").
		Return(nil, serrors.With(serrors.ErrConflict, "item already saved"))
	rec = f.do(http.MethodPost, "/v1/saved", `{"kind":"career","ref":"doctor"}`, f.token)
	require.Equal(t, http.StatusConflict, rec.Code)

	f.saved.EXPECT().List(gomock.Any(), f.user, domain.SavedKind("career")).Return([]domain.SavedItem{item}, nil)
	rec = f.do(http.MethodGet, "/v1/saved?kind=career", "", f.token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), itemID.String())

	f.saved.EXPECT().Delete(gomock.Any(), f.user, domain.SavedItemID(itemID)).Return(nil)
	rec = f.do(http.MethodDelete, "/v1/saved/"+itemID.String(), "", f.token)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestRoutes_Admin(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/v1/admin/jobs/refresh", "", f.token)
	require.Equal(t, http.StatusForbidden, rec.Code)

	f.board.EXPECT().Refresh(gomock.Any(), "").Return([]jobboard.RefreshResult{
		{Source: "static", Event: &domain.FeedEvent{Source: "static", Imported: 12, Pruned: 2}},
		{Source: "mirror", Queued: true},
	}, nil)
	rec = f.do(http.MethodPost, "/v1/admin/jobs/refresh", "", f.admin)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.JSONEq(t, `{"items":[
		{"source":"static","queued":false,"imported":12,"pruned":2},
		{"source":"mirror","queued":true}
	]}`, rec.Body.String())

	loaded := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f.reload.snap = &catalog.Snapshot{
		Dataset:  &catalog.Dataset{Rules: make([]domain.Rule, 3), Careers: make([]domain.Career, 2)},
		Version:  "abc123",
		Source:   "embedded",
		LoadedAt: loaded,
	}
	rec = f.do(http.MethodPost, "/v1/admin/catalog/reload", "", f.admin)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"version":"abc123","source":"embedded","loaded_at":"2026-03-10T12:00:00Z",
		"rules":3,"careers":2}`, rec.Body.String())
}
