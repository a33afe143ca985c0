package handlers

import (
	"errors"
	"net/http"

	request "studio_orders/internal/adapter/http/dto/request"
	response "studio_orders/internal/adapter/http/dto/response"
	"studio_orders/internal/catalog"
	"studio_orders/internal/domain/entities"
	"studio_orders/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the read-only service catalog. The catalog is
// immutable reference data, so every endpoint here is side-effect free.

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	locale := c.DefaultQuery("locale", entities.LocaleEN)
	c.JSON(http.StatusOK, response.FromCategories(h.catalog.Categories(), locale))
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	locale := c.DefaultQuery("locale", entities.LocaleEN)

	var services []entities.Service
	if categoryID := c.Query("category_id"); categoryID != "" {
		services = h.catalog.ServicesByCategory(categoryID)
	} else {
		services = h.catalog.Services()
	}

	c.JSON(http.StatusOK, response.FromServices(services, locale, h.catalog.FormatPriceRange))
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	locale := c.DefaultQuery("locale", entities.LocaleEN)

	svc, ok := h.catalog.ServiceByID(c.Param("id"))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(svc, locale, h.catalog.FormatPriceRange))
}

func (h *CatalogHandler) SearchServices(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query parameter q is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	locale := c.DefaultQuery("locale", entities.LocaleEN)

	c.JSON(http.StatusOK, response.FromServices(h.catalog.Search(query, locale), locale, h.catalog.FormatPriceRange))
}

func (h *CatalogHandler) FilterServices(c *gin.Context) {
	var payload request.FilterServicesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	locale := c.DefaultQuery("locale", entities.LocaleEN)

	complexities := make([]entities.ComplexityTier, 0, len(payload.Complexities))
	for _, v := range payload.Complexities {
		complexities = append(complexities, entities.ComplexityTier(v))
	}

	services := h.catalog.Filter(catalog.ServiceFilter{
		CategoryIDs:  payload.CategoryIDs,
		Complexities: complexities,
		Tags:         payload.Tags,
		PriceMin:     payload.PriceMin,
		PriceMax:     payload.PriceMax,
	})

	c.JSON(http.StatusOK, response.FromServices(services, locale, h.catalog.FormatPriceRange))
}

// Quote prices a selection set without creating a draft or an order.
func (h *CatalogHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	total, err := h.catalog.TotalPrice(payload.ToSelections())
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownService) {
			appErr := pkg.NewDomainErrorSimple("UNKNOWN_SERVICE", err.Error(), http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	locale := payload.Locale
	if locale == "" {
		locale = entities.LocaleEN
	}
	c.JSON(http.StatusOK, response.QuoteResponse{
		Total:        total,
		TotalDisplay: h.catalog.FormatPriceRange(total, locale),
	})
}
