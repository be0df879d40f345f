package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/config"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/events"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/repo"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/search"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/services"
)

func testConfig() config.Config {
	return config.Config{
		APIBasePath: "/api/v1",
		RateRPS:     1000,
		RateBurst:   1000,
		Security:    config.SecurityConfig{EnableHSTS: false, HSTSMaxAge: 180 * 24 * time.Hour},
		KB: config.KnowledgeBaseConfig{
			TablePrefix:        "kb_",
			VersioningEnabled:  true,
			FeedbackEnabled:    true,
			TrackViews:         true,
			DefaultVisibility:  "public",
			SearchEngine:       search.EngineDatabase,
			SearchResultsLimit: 20,
		},
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	cfg := testConfig()
	eng, err := search.New(cfg.KB.SearchEngine, cfg.KB.SearchResultsLimit)
	if err != nil {
		t.Fatalf("search engine: %v", err)
	}
	svc := &services.KnowledgeBaseService{DB: db, KB: cfg.KB, Bus: events.NewBus(), Engine: eng}

	r := gin.New()
	RegisterRoutes(r, svc, cfg)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, actor bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if actor {
		req.Header.Set("X-Actor-Type", "user")
		req.Header.Set("X-Actor-ID", "42")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestHealthAndFallbacks(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("health: %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing X-Request-ID header")
	}

	w = doJSON(t, r, http.MethodGet, "/nope", nil, false)
	if w.Code != http.StatusNotFound {
		t.Fatalf("no route: %d", w.Code)
	}
	var envelope struct {
		Code string `json:"code"`
	}
	decode(t, w, &envelope)
	if envelope.Code != "not_found" {
		t.Fatalf("fallback envelope: %+v", envelope)
	}
}

func TestArticleLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	// Category first.
	w := doJSON(t, r, http.MethodPost, "/api/v1/categories", gin.H{"name": "Guides"}, false)
	if w.Code != http.StatusCreated {
		t.Fatalf("create category: %d %s", w.Code, w.Body.String())
	}
	var cat struct {
		ID   uint   `json:"id"`
		Slug string `json:"slug"`
	}
	decode(t, w, &cat)
	if cat.Slug != "guides" {
		t.Fatalf("category slug: %q", cat.Slug)
	}

	// Create requires an actor.
	w = doJSON(t, r, http.MethodPost, "/api/v1/articles", gin.H{
		"category_id": cat.ID, "title": "Getting Started", "content": "Step one.",
	}, false)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing actor should be 400: %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/articles", gin.H{
		"category_id": cat.ID, "title": "Getting Started", "content": "Step one.",
	}, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("create article: %d %s", w.Code, w.Body.String())
	}
	var art struct {
		ID     uint   `json:"id"`
		Slug   string `json:"slug"`
		Status string `json:"status"`
	}
	decode(t, w, &art)
	if art.Slug != "getting-started" || art.Status != "draft" {
		t.Fatalf("article defaults: %+v", art)
	}

	// Duplicate slug conflicts.
	w = doJSON(t, r, http.MethodPost, "/api/v1/articles", gin.H{
		"category_id": cat.ID, "title": "Getting Started", "content": "Again.",
	}, true)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate slug: %d", w.Code)
	}

	// Update appends a version.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/v1/articles/%d", art.ID), gin.H{
		"title": "Getting Started Fast", "change_notes": "tightened intro",
	}, true)
	if w.Code != http.StatusOK {
		t.Fatalf("update article: %d %s", w.Code, w.Body.String())
	}
	var updated struct {
		CurrentVersion int `json:"current_version"`
	}
	decode(t, w, &updated)
	if updated.CurrentVersion != 2 {
		t.Fatalf("current_version after update: %d", updated.CurrentVersion)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/articles/%d/versions", art.ID), nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("list versions: %d", w.Code)
	}
	var versions []struct {
		VersionNumber int     `json:"version_number"`
		ChangeNotes   *string `json:"change_notes"`
	}
	decode(t, w, &versions)
	if len(versions) != 2 || versions[0].VersionNumber != 1 || versions[1].VersionNumber != 2 {
		t.Fatalf("versions: %+v", versions)
	}
	if versions[1].ChangeNotes == nil || *versions[1].ChangeNotes != "tightened intro" {
		t.Fatalf("change notes: %+v", versions[1])
	}

	// Publish then archive.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/articles/%d/publish", art.ID), nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("publish: %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/articles/%d/archive", art.ID), nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("archive: %d", w.Code)
	}

	// Delete, then 404 on fetch.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/articles/%d", art.ID), nil, false)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/articles/%d", art.ID), nil, false)
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleted article fetch: %d", w.Code)
	}
}

func TestFeedbackAndSearchOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/categories", gin.H{"name": "Billing"}, false)
	var cat struct {
		ID uint `json:"id"`
	}
	decode(t, w, &cat)

	w = doJSON(t, r, http.MethodPost, "/api/v1/articles", gin.H{
		"category_id": cat.ID, "title": "Refund policy", "content": "Payments are refundable.",
	}, true)
	var art struct {
		ID   uint   `json:"id"`
		Slug string `json:"slug"`
	}
	decode(t, w, &art)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/articles/%d/publish", art.ID), nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("publish: %d", w.Code)
	}

	// Anonymous feedback.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/articles/%d/feedback", art.ID), gin.H{
		"is_helpful": true,
	}, false)
	if w.Code != http.StatusCreated {
		t.Fatalf("feedback: %d %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/articles/%d/feedback", art.ID), gin.H{
		"is_helpful": false, "comment": "outdated",
	}, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("feedback: %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/articles/%d", art.ID), nil, false)
	var counters struct {
		HelpfulCount    int64 `json:"helpful_count"`
		NotHelpfulCount int64 `json:"not_helpful_count"`
	}
	decode(t, w, &counters)
	if counters.HelpfulCount != 1 || counters.NotHelpfulCount != 1 {
		t.Fatalf("counters: %+v", counters)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/articles/%d/feedback", art.ID), nil, false)
	var entries []json.RawMessage
	decode(t, w, &entries)
	if len(entries) != 2 {
		t.Fatalf("feedback entries: %d", len(entries))
	}

	// Search finds the published article; drafts are excluded elsewhere.
	w = doJSON(t, r, http.MethodGet, "/api/v1/search?q=refund", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("search: %d", w.Code)
	}
	var results []struct {
		Slug string `json:"slug"`
	}
	decode(t, w, &results)
	if len(results) != 1 || results[0].Slug != art.Slug {
		t.Fatalf("search results: %+v", results)
	}

	// Blank query is empty, not an error.
	w = doJSON(t, r, http.MethodGet, "/api/v1/search?q=", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("blank search: %d", w.Code)
	}
	decode(t, w, &results)
	if len(results) != 0 {
		t.Fatalf("blank query results: %+v", results)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/search?q=refund&visibility=secret", nil, false)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad visibility filter: %d", w.Code)
	}
}

func TestRelationsOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/categories", gin.H{"name": "Guides"}, false)
	var cat struct {
		ID uint `json:"id"`
	}
	decode(t, w, &cat)

	ids := make([]uint, 0, 2)
	for _, title := range []string{"Alpha", "Beta"} {
		w = doJSON(t, r, http.MethodPost, "/api/v1/articles", gin.H{
			"category_id": cat.ID, "title": title, "content": "body",
		}, true)
		var a struct {
			ID uint `json:"id"`
		}
		decode(t, w, &a)
		ids = append(ids, a.ID)
	}

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/articles/%d/related", ids[0]), gin.H{
		"related_article_id": ids[1],
	}, false)
	if w.Code != http.StatusCreated {
		t.Fatalf("relate: %d %s", w.Code, w.Body.String())
	}
	// Self relation is rejected.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/articles/%d/related", ids[0]), gin.H{
		"related_article_id": ids[0],
	}, false)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("self relation: %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/articles/%d/related", ids[0]), nil, false)
	var related []struct {
		ID uint `json:"id"`
	}
	decode(t, w, &related)
	if len(related) != 1 || related[0].ID != ids[1] {
		t.Fatalf("related list: %+v", related)
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/articles/%d/related/%d", ids[0], ids[1]), nil, false)
	if w.Code != http.StatusNoContent {
		t.Fatalf("unrelate: %d", w.Code)
	}
}

func TestCategoryTreeOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/categories", gin.H{"name": "Root", "sort_order": 1}, false)
	var root struct {
		ID uint `json:"id"`
	}
	decode(t, w, &root)

	w = doJSON(t, r, http.MethodPost, "/api/v1/categories", gin.H{
		"name": "Child", "parent_id": root.ID, "sort_order": 1,
	}, false)
	if w.Code != http.StatusCreated {
		t.Fatalf("child: %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/categories", nil, false)
	var roots []struct {
		Slug string `json:"slug"`
	}
	decode(t, w, &roots)
	if len(roots) != 1 || roots[0].Slug != "root" {
		t.Fatalf("roots: %+v", roots)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/categories/%d/children", root.ID), nil, false)
	var children []struct {
		Slug string `json:"slug"`
	}
	decode(t, w, &children)
	if len(children) != 1 || children[0].Slug != "child" {
		t.Fatalf("children: %+v", children)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/categories/slug/child", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("by slug: %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/categories/%d", root.ID), nil, false)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/categories/%d", root.ID), nil, false)
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleted category fetch: %d", w.Code)
	}
}
