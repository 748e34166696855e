package handlers

import (
	"context"
	"errors"
	"net/http"

	response "convoyage/internal/adapter/http/dto/response"
	"convoyage/internal/domain/entities"
	"convoyage/internal/usecase"
	"convoyage/pkg"

	"github.com/gin-gonic/gin"
)

type MissionHandler struct {
	usecase usecase.IMissionUseCase
	export  usecase.IDocumentExportUseCase
}

func NewMissionHandler(uc usecase.IMissionUseCase, export usecase.IDocumentExportUseCase) *MissionHandler {
	return &MissionHandler{usecase: uc, export: export}
}

func (h *MissionHandler) GetByID(c *gin.Context) {
	m, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMission(m))
}

func (h *MissionHandler) ListByOwner(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	missions, err := h.usecase.ListByOwnerID(c.Request.Context(), owner)
	if err != nil {
		appErr := mapMissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	out := make([]response.MissionResponse, 0, len(missions))
	for _, m := range missions {
		out = append(out, response.FromMission(m))
	}
	c.JSON(http.StatusOK, out)
}

func (h *MissionHandler) Assign(c *gin.Context) {
	h.transition(c, h.usecase.Assign)
}

func (h *MissionHandler) Start(c *gin.Context) {
	h.transition(c, h.usecase.Start)
}

func (h *MissionHandler) Deliver(c *gin.Context) {
	h.transition(c, h.usecase.Deliver)
}

func (h *MissionHandler) Cancel(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

// RenderSheet returns the printable mission sheet inline.
func (h *MissionHandler) RenderSheet(c *gin.Context) {
	markup, err := h.export.RenderMissionSheet(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(markup))
}

func (h *MissionHandler) transition(c *gin.Context, op func(ctx context.Context, id string) (entities.Mission, error)) {
	m, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMission(m))
}

func mapMissionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMissionID), errors.Is(err, usecase.ErrInvalidOwnerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissionNotFound):
		return pkg.NewDomainErrorSimple("MISSION_NOT_FOUND", "Mission not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExportFailed):
		return pkg.NewDomainErrorSimple("EXPORT_FAILED", "Mission sheet rendering failed", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
