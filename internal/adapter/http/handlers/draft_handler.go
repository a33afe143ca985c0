package handlers

import (
	"context"
	"errors"
	"net/http"

	request "studio_orders/internal/adapter/http/dto/request"
	response "studio_orders/internal/adapter/http/dto/response"
	"studio_orders/internal/catalog"
	"studio_orders/internal/domain/entities"
	"studio_orders/internal/draft"
	"studio_orders/internal/usecase"
	"studio_orders/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IDraftStore is the session store consumed by the wizard surface.
type IDraftStore interface {
	Save(ctx context.Context, d *draft.Draft) error
	Get(ctx context.Context, id string) (*draft.Draft, error)
	Delete(ctx context.Context, id string) error
}

// DraftHandler exposes the order wizard as resumable server-side sessions.
// Every mutation loads the draft, applies one transition and saves it back,
// refreshing the session TTL.

type DraftHandler struct {
	store      IDraftStore
	catalog    *catalog.Catalog
	submission usecase.IOrderSubmissionUseCase
}

func NewDraftHandler(store IDraftStore, cat *catalog.Catalog, submission usecase.IOrderSubmissionUseCase) *DraftHandler {
	return &DraftHandler{store: store, catalog: cat, submission: submission}
}

func (h *DraftHandler) CreateDraft(c *gin.Context) {
	d := draft.New(uuid.NewString())
	if err := h.store.Save(c.Request.Context(), d); err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, h.toResponse(d))
}

func (h *DraftHandler) GetDraft(c *gin.Context) {
	d, ok := h.loadDraft(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.toResponse(d))
}

func (h *DraftHandler) ToggleService(c *gin.Context) {
	var payload request.ToggleServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	h.mutateDraft(c, func(d *draft.Draft) error {
		return d.ToggleService(h.catalog, payload.ServiceID)
	})
}

func (h *DraftHandler) SetServicePriority(c *gin.Context) {
	var payload request.ServicePriorityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	h.mutateDraft(c, func(d *draft.Draft) error {
		return d.SetServicePriority(payload.ServiceID, entities.ServicePriority(payload.Priority))
	})
}

func (h *DraftHandler) UpdateProjectSection(c *gin.Context) {
	var payload request.ProjectSectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	h.mutateDraft(c, func(d *draft.Draft) error {
		d.SetProjectDetails(payload.ProjectDetails)
		return nil
	})
}

func (h *DraftHandler) UpdateContactSection(c *gin.Context) {
	var payload request.ContactSectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	h.mutateDraft(c, func(d *draft.Draft) error {
		d.SetContactInfo(payload.ContactInfo)
		return nil
	})
}

func (h *DraftHandler) UpdateTechnicalSection(c *gin.Context) {
	var payload request.TechnicalSectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	h.mutateDraft(c, func(d *draft.Draft) error {
		d.SetTechnicalInfo(payload.TechnicalInfo)
		return nil
	})
}

func (h *DraftHandler) UpdateReviewSection(c *gin.Context) {
	var payload request.ReviewSectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	h.mutateDraft(c, func(d *draft.Draft) error {
		d.SetReviewInfo(draft.ReviewInfo{
			AgreesToTerms:          payload.AgreesToTerms,
			MarketingOptIn:         payload.MarketingOptIn,
			PreferredCommunication: payload.PreferredCommunication,
			EstimatedBudget:        payload.EstimatedBudget,
			Timeline:               payload.Timeline,
			AdditionalRequirements: payload.AdditionalRequirements,
		})
		return nil
	})
}

func (h *DraftHandler) Advance(c *gin.Context) {
	h.mutateDraft(c, func(d *draft.Draft) error {
		return d.Advance()
	})
}

func (h *DraftHandler) GoToStep(c *gin.Context) {
	var payload request.GoToStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidRequest(c)
		return
	}

	step, err := draft.ParseStep(payload.Step)
	if err != nil {
		respondInvalidRequest(c)
		return
	}

	h.mutateDraft(c, func(d *draft.Draft) error {
		return d.GoTo(step)
	})
}

func (h *DraftHandler) ResetDraft(c *gin.Context) {
	h.mutateDraft(c, func(d *draft.Draft) error {
		d.Reset()
		return nil
	})
}

func (h *DraftHandler) DeleteDraft(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitDraft runs the draft through the submission pipeline and discards
// the session on success.
func (h *DraftHandler) SubmitDraft(c *gin.Context) {
	d, ok := h.loadDraft(c)
	if !ok {
		return
	}

	meta := entities.TrackingMetadata{
		ClientIP:  valueOrUnknown(c.ClientIP()),
		UserAgent: valueOrUnknown(c.Request.UserAgent()),
	}

	result, err := h.submission.Submit(c.Request.Context(), d.Data, meta)
	if err != nil {
		var ve *usecase.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, response.OrderErrorResponse{
				Success: false,
				Error:   "Invalid order data",
				Details: ve.Details,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, response.OrderErrorResponse{
			Success: false,
			Error:   "Failed to submit order",
			Message: err.Error(),
		})
		return
	}

	// Best effort: an expired session cleanup failure does not undo the order.
	_ = h.store.Delete(c.Request.Context(), d.ID)

	c.JSON(http.StatusOK, response.FromSubmittedOrder(result.Order))
}

func (h *DraftHandler) loadDraft(c *gin.Context) (*draft.Draft, bool) {
	d, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, draft.ErrDraftNotFound) {
			appErr := pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return nil, false
		}
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return nil, false
	}
	return d, true
}

func (h *DraftHandler) mutateDraft(c *gin.Context, mutate func(d *draft.Draft) error) {
	d, ok := h.loadDraft(c)
	if !ok {
		return
	}

	if err := mutate(d); err != nil {
		var se *draft.StepError
		switch {
		case errors.As(err, &se):
			c.JSON(http.StatusUnprocessableEntity, response.FromStepError(se))
		case errors.Is(err, catalog.ErrUnknownService):
			appErr := pkg.NewDomainErrorSimple("UNKNOWN_SERVICE", err.Error(), http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		case errors.Is(err, draft.ErrAtFinalStep), errors.Is(err, draft.ErrInvalidStep):
			appErr := pkg.NewDomainErrorSimple("INVALID_STEP", err.Error(), http.StatusConflict)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		default:
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return
	}

	if err := h.store.Save(c.Request.Context(), d); err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, h.toResponse(d))
}

func (h *DraftHandler) toResponse(d *draft.Draft) response.DraftResponse {
	// An in-progress draft may reference only known services, so the total
	// never fails here.
	total, err := d.TotalPrice(h.catalog)
	if err != nil {
		total = entities.PriceRange{Currency: h.catalog.Currency()}
	}
	return response.FromDraft(d, total)
}

func respondInvalidRequest(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
