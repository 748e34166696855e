package routes

import (
	"convoyage/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWizardSessions = "/wizard/sessions"
	PathWizardDrafts   = "/wizard/drafts"
)

func addWizardRoutes(rg *gin.RouterGroup, wizardHandler *handlers.WizardHandler) {
	sessions := rg.Group(PathWizardSessions)
	{
		sessions.POST("", wizardHandler.StartSession)
		sessions.GET("/:id", wizardHandler.GetSession)
		sessions.PATCH("/:id/values", wizardHandler.SetValues)
		sessions.POST("/:id/next", wizardHandler.Next)
		sessions.POST("/:id/prev", wizardHandler.Prev)
		sessions.POST("/:id/jump", wizardHandler.JumpTo)
		sessions.POST("/:id/submit", wizardHandler.Submit)
		sessions.POST("/:id/close", wizardHandler.Close)
	}

	drafts := rg.Group(PathWizardDrafts)
	{
		drafts.DELETE("/:kind", wizardHandler.ClearDraft)
	}
}
