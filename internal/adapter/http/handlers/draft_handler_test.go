package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"studio_orders/internal/adapter/http/handlers/mocks"
	"studio_orders/internal/catalog"
	"studio_orders/internal/domain/entities"
	"studio_orders/internal/draft"
	"studio_orders/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type memDraftStore struct {
	mu     sync.Mutex
	drafts map[string]*draft.Draft
}

func newMemDraftStore() *memDraftStore {
	return &memDraftStore{drafts: map[string]*draft.Draft{}}
}

func (s *memDraftStore) Save(_ context.Context, d *draft.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *d
	s.drafts[d.ID] = &cp
	return nil
}

func (s *memDraftStore) Get(_ context.Context, id string) (*draft.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, draft.ErrDraftNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *memDraftStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}

func newDraftRouter(store IDraftStore, submission usecase.IOrderSubmissionUseCase) *gin.Engine {
	h := NewDraftHandler(store, catalog.New(), submission)
	r := gin.New()
	drafts := r.Group("/drafts")
	{
		drafts.POST("", h.CreateDraft)
		drafts.GET("/:id", h.GetDraft)
		drafts.DELETE("/:id", h.DeleteDraft)
		drafts.POST("/:id/services", h.ToggleService)
		drafts.PATCH("/:id/services/priority", h.SetServicePriority)
		drafts.PUT("/:id/project", h.UpdateProjectSection)
		drafts.PUT("/:id/contact", h.UpdateContactSection)
		drafts.PUT("/:id/technical", h.UpdateTechnicalSection)
		drafts.PUT("/:id/review", h.UpdateReviewSection)
		drafts.POST("/:id/advance", h.Advance)
		drafts.POST("/:id/step", h.GoToStep)
		drafts.POST("/:id/reset", h.ResetDraft)
		drafts.POST("/:id/submit", h.SubmitDraft)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBuffer(nil)
	} else {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createDraftID(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/drafts", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	id, _ := body["id"].(string)
	if id == "" {
		t.Fatalf("expected draft id in %s", w.Body.String())
	}
	return id
}

func TestDraftHandler_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get missing draft", func(t *testing.T) {
		r := newDraftRouter(newMemDraftStore(), nil)
		w := doJSON(t, r, http.MethodGet, "/drafts/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("toggle unknown service", func(t *testing.T) {
		r := newDraftRouter(newMemDraftStore(), nil)
		id := createDraftID(t, r)

		w := doJSON(t, r, http.MethodPost, "/drafts/"+id+"/services", `{"serviceId":"nope"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("toggle updates total and toggles back", func(t *testing.T) {
		r := newDraftRouter(newMemDraftStore(), nil)
		id := createDraftID(t, r)

		w := doJSON(t, r, http.MethodPost, "/drafts/"+id+"/services", `{"serviceId":"tech-audit"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		total := body["estimatedTotal"].(map[string]any)
		if total["min"] != 150.0 || total["max"] != 150.0 {
			t.Fatalf("unexpected total: %v", total)
		}

		w = doJSON(t, r, http.MethodPost, "/drafts/"+id+"/services", `{"serviceId":"tech-audit"}`)
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		total = body["estimatedTotal"].(map[string]any)
		if total["min"] != 0.0 || total["max"] != 0.0 {
			t.Fatalf("expected empty total after second toggle, got %v", total)
		}
	})

	t.Run("advance blocked by empty selection", func(t *testing.T) {
		r := newDraftRouter(newMemDraftStore(), nil)
		id := createDraftID(t, r)

		w := doJSON(t, r, http.MethodPost, "/drafts/"+id+"/advance", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["step"] != "services" {
			t.Fatalf("expected services step in error, got %s", w.Body.String())
		}
		fields := body["fields"].(map[string]any)
		if _, ok := fields["selectedServices"]; !ok {
			t.Fatalf("expected selectedServices field failure, got %s", w.Body.String())
		}
	})

	t.Run("forward jump validates intermediate steps", func(t *testing.T) {
		r := newDraftRouter(newMemDraftStore(), nil)
		id := createDraftID(t, r)

		doJSON(t, r, http.MethodPost, "/drafts/"+id+"/services", `{"serviceId":"tech-audit"}`)

		// Project step is still empty, so jumping to contact must fail.
		w := doJSON(t, r, http.MethodPost, "/drafts/"+id+"/step", `{"step":"contact"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}

		w = doJSON(t, r, http.MethodPost, "/drafts/"+id+"/step", `{"step":"services"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("backward jump should be free, got %d", w.Code)
		}
	})

	t.Run("full walk and submit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		submission := mocks.NewMockIOrderSubmissionUseCase(ctrl)
		store := newMemDraftStore()
		r := newDraftRouter(store, submission)
		id := createDraftID(t, r)

		steps := []struct {
			method, path, body string
		}{
			{http.MethodPost, "/services", `{"serviceId":"tech-audit"}`},
			{http.MethodPut, "/project", `{"projectDetails":{"title":"Audit","description":"Review the platform"}}`},
			{http.MethodPut, "/contact", `{"contactInfo":{"firstName":"Dana","lastName":"Reyes","email":"dana@example.com","timezone":"Europe/Lisbon"}}`},
			{http.MethodPut, "/review", `{"agreesToTerms":true,"estimatedBudget":"enterprise"}`},
		}
		for _, s := range steps {
			if w := doJSON(t, r, s.method, "/drafts/"+id+s.path, s.body); w.Code != http.StatusOK {
				t.Fatalf("%s %s: expected 200, got %d: %s", s.method, s.path, w.Code, w.Body.String())
			}
		}
		for i := 0; i < 4; i++ {
			if w := doJSON(t, r, http.MethodPost, "/drafts/"+id+"/advance", ""); w.Code != http.StatusOK {
				t.Fatalf("advance %d: expected 200, got %d: %s", i, w.Code, w.Body.String())
			}
		}

		submission.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, data entities.OrderData, _ entities.TrackingMetadata) (usecase.SubmissionResult, error) {
				if len(data.SelectedServices) != 1 || data.SelectedServices[0].ServiceID != "tech-audit" {
					t.Fatalf("unexpected selections: %+v", data.SelectedServices)
				}
				if !data.AgreesToTerms {
					t.Fatalf("review section must carry into submission")
				}
				return usecase.SubmissionResult{Order: entities.Order{ID: "ORD-20260830-AAAAAA"}}, nil
			})

		w := doJSON(t, r, http.MethodPost, "/drafts/"+id+"/submit", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "ORD-20260830-AAAAAA") {
			t.Fatalf("expected order id in body: %s", w.Body.String())
		}

		// Successful submission discards the session.
		if w := doJSON(t, r, http.MethodGet, "/drafts/"+id, ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected draft to be gone, got %d", w.Code)
		}
	})

	t.Run("reset clears data but keeps the session", func(t *testing.T) {
		r := newDraftRouter(newMemDraftStore(), nil)
		id := createDraftID(t, r)

		doJSON(t, r, http.MethodPost, "/drafts/"+id+"/services", `{"serviceId":"tech-audit"}`)
		w := doJSON(t, r, http.MethodPost, "/drafts/"+id+"/reset", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != id || body["step"] != "services" {
			t.Fatalf("unexpected reset response: %s", w.Body.String())
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		r := newDraftRouter(newMemDraftStore(), nil)
		id := createDraftID(t, r)

		if w := doJSON(t, r, http.MethodDelete, "/drafts/"+id, ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w := doJSON(t, r, http.MethodDelete, "/drafts/"+id, ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204 on repeat delete, got %d", w.Code)
		}
	})
}
