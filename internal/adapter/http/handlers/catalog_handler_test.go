package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"studio_orders/internal/catalog"

	"github.com/gin-gonic/gin"
)

func newCatalogRouter() *gin.Engine {
	h := NewCatalogHandler(catalog.New())
	r := gin.New()
	cat := r.Group("/catalog")
	{
		cat.GET("/categories", h.ListCategories)
		cat.GET("/services", h.ListServices)
		cat.GET("/services/search", h.SearchServices)
		cat.GET("/services/:id", h.GetService)
		cat.POST("/services/filter", h.FilterServices)
		cat.POST("/quote", h.Quote)
	}
	return r
}

func TestCatalogHandler_Categories(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newCatalogRouter()

	w := doJSON(t, r, http.MethodGet, "/catalog/categories", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) == 0 {
		t.Fatalf("expected categories")
	}
	if body[0]["name"] == "" {
		t.Fatalf("expected localized name, got %v", body[0])
	}

	// Russian locale flattens to the ru strings.
	w = doJSON(t, r, http.MethodGet, "/catalog/categories?locale=ru", "")
	var ru []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &ru)
	if ru[0]["name"] == body[0]["name"] {
		t.Fatalf("expected ru names to differ from en")
	}
}

func TestCatalogHandler_Services(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newCatalogRouter()

	t.Run("all active services", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/catalog/services", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "legacy-migration") {
			t.Fatalf("inactive services must not be listed")
		}
	})

	t.Run("by category", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/catalog/services?category_id=consulting", "")
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		for _, s := range body {
			if s["categoryId"] != "consulting" {
				t.Fatalf("unexpected category: %v", s["categoryId"])
			}
		}
	})

	t.Run("by id with price display", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/catalog/services/tech-audit", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["priceDisplay"] == "" {
			t.Fatalf("expected formatted price, got %s", w.Body.String())
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/catalog/services/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("search requires query", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/catalog/services/search", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("search", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/catalog/services/search?q=audit", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "tech-audit") {
			t.Fatalf("expected tech-audit in results: %s", w.Body.String())
		}
	})

	t.Run("filter", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/catalog/services/filter", `{"categoryIds":["consulting"],"priceMax":200}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		for _, s := range body {
			if s["categoryId"] != "consulting" {
				t.Fatalf("filter leaked category %v", s["categoryId"])
			}
		}
	})
}

func TestCatalogHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newCatalogRouter()

	t.Run("prices a selection", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/catalog/quote", `{"selectedServices":[{"serviceId":"tech-audit"}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		total := body["total"].(map[string]any)
		if total["min"] != 150.0 || total["max"] != 150.0 || total["currency"] != "USD" {
			t.Fatalf("unexpected total: %v", total)
		}
		if body["totalDisplay"] == "" {
			t.Fatalf("expected formatted total")
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/catalog/quote", `{"selectedServices":[{"serviceId":"nope"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
