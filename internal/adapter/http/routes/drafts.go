package routes

import (
	"studio_orders/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathDrafts = "/drafts"

func addDraftRoutes(rg *gin.RouterGroup, draftHandler *handlers.DraftHandler) {
	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", draftHandler.CreateDraft)
		drafts.GET("/:id", draftHandler.GetDraft)
		drafts.DELETE("/:id", draftHandler.DeleteDraft)
		drafts.POST("/:id/services", draftHandler.ToggleService)
		drafts.PATCH("/:id/services/priority", draftHandler.SetServicePriority)
		drafts.PUT("/:id/project", draftHandler.UpdateProjectSection)
		drafts.PUT("/:id/contact", draftHandler.UpdateContactSection)
		drafts.PUT("/:id/technical", draftHandler.UpdateTechnicalSection)
		drafts.PUT("/:id/review", draftHandler.UpdateReviewSection)
		drafts.POST("/:id/advance", draftHandler.Advance)
		drafts.POST("/:id/step", draftHandler.GoToStep)
		drafts.POST("/:id/reset", draftHandler.ResetDraft)
		drafts.POST("/:id/submit", draftHandler.SubmitDraft)
	}
}
