package routes

import (
	"convoyage/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathMissions = "/missions"

func addMissionRoutes(rg *gin.RouterGroup, missionHandler *handlers.MissionHandler) {
	missions := rg.Group(PathMissions)
	{
		missions.GET("", missionHandler.ListByOwner)
		missions.GET("/:id", missionHandler.GetByID)
		missions.PATCH("/:id/assign", missionHandler.Assign)
		missions.PATCH("/:id/start", missionHandler.Start)
		missions.PATCH("/:id/deliver", missionHandler.Deliver)
		missions.PATCH("/:id/cancel", missionHandler.Cancel)
		missions.GET("/:id/sheet", missionHandler.RenderSheet)
	}
}
