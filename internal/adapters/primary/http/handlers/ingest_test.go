package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsfeed-service/internal/core/domain"
	"newsfeed-service/internal/core/ports/output"
)

func adminToken(t *testing.T, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"name": "ops",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestListRuns(t *testing.T) {
	m, r := setupRouter("secret")

	finished := time.Now()
	runs := []*domain.IngestRun{
		{
			ID:         uuid.New(),
			Source:     "all",
			Section:    "arts",
			Status:     domain.RunStatusSucceeded,
			StartedAt:  finished.Add(-time.Minute),
			FinishedAt: &finished,
			Fetched:    10,
			Inserted:   4,
		},
	}
	m.runs.On("List", mock.Anything, mock.AnythingOfType("ports.RunListFilter")).Return(runs, 1, nil)

	req, _ := http.NewRequest("GET", "/api/v1/newsfeed/runs?status=SUCCEEDED", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fetched":10`)
}

func TestGetRun_NotFound(t *testing.T) {
	m, r := setupRouter("secret")

	id := uuid.New()
	m.runs.On("GetByID", mock.Anything, id).Return(nil, domain.ErrRunNotFound)

	req, _ := http.NewRequest("GET", "/api/v1/newsfeed/runs/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTriggerIngest(t *testing.T) {
	m, r := setupRouter("secret")

	m.wire.On("Content", mock.Anything, "all", "arts", 100, 0).Return([]ports.WireArticle{}, nil)
	m.runs.On("Create", mock.Anything, mock.AnythingOfType("*domain.IngestRun")).Return(nil)
	m.runs.On("Update", mock.Anything, mock.AnythingOfType("*domain.IngestRun")).Return(nil)

	body := bytes.NewBufferString(`{"source":"all","sections":["arts"]}`)
	req, _ := http.NewRequest("POST", "/api/v1/newsfeed/runs", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "secret"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"SUCCEEDED"`)
}

func TestTriggerIngest_Unauthorized(t *testing.T) {
	_, r := setupRouter("secret")

	body := bytes.NewBufferString(`{"source":"all"}`)
	req, _ := http.NewRequest("POST", "/api/v1/newsfeed/runs", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTriggerIngest_InvalidSource(t *testing.T) {
	_, r := setupRouter("secret")

	body := bytes.NewBufferString(`{"source":"reuters","sections":["arts"]}`)
	req, _ := http.NewRequest("POST", "/api/v1/newsfeed/runs", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "secret"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSyncSections_RequiresAuth(t *testing.T) {
	_, r := setupRouter("secret")

	req, _ := http.NewRequest("POST", "/api/v1/newsfeed/sections/sync", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSyncSections(t *testing.T) {
	m, r := setupRouter("secret")

	m.wire.On("SectionList", mock.Anything).Return([]ports.WireSection{
		{Section: "arts", DisplayName: "Arts"},
	}, nil)
	m.sections.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Section")).Return(nil)

	req, _ := http.NewRequest("POST", "/api/v1/newsfeed/sections/sync", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "secret"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"synced":1`)
}

func TestGetPopular(t *testing.T) {
	m, r := setupRouter("secret")

	m.wire.On("MostPopular", mock.Anything, "viewed", 7).Return([]domain.PopularArticle{
		{Title: "p1", URL: "https://example.com", Section: "us"},
	}, nil)

	req, _ := http.NewRequest("GET", "/api/v1/newsfeed/popular/viewed", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "p1")
}

func TestGetPopular_InvalidPeriod(t *testing.T) {
	_, r := setupRouter("secret")

	req, _ := http.NewRequest("GET", "/api/v1/newsfeed/popular/viewed?period=3", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
