package handlers

import (
	"errors"
	"net/http"

	request "convoyage/internal/adapter/http/dto/request"
	response "convoyage/internal/adapter/http/dto/response"
	"convoyage/internal/usecase"
	"convoyage/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWizardPayload = pkg.NewDomainErrorSimple("INVALID_WIZARD_INPUT", "Invalid wizard payload", http.StatusBadRequest)

// WizardHandler drives wizard sessions over HTTP: one session per
// creation flow, transitions as explicit POSTs.

type WizardHandler struct {
	usecase usecase.IWizardUseCase
}

func NewWizardHandler(uc usecase.IWizardUseCase) *WizardHandler {
	return &WizardHandler{usecase: uc}
}

func (h *WizardHandler) StartSession(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var payload request.WizardStartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	st, err := h.usecase.Start(c.Request.Context(), usecase.WizardKind(payload.ResolveKind()), owner, payload.Initial)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWizardState(st))
}

func (h *WizardHandler) GetSession(c *gin.Context) {
	st, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWizardState(st))
}

func (h *WizardHandler) SetValues(c *gin.Context) {
	var payload request.WizardValuesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	st, err := h.usecase.SetValues(c.Request.Context(), c.Param("id"), payload.Values)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWizardState(st))
}

func (h *WizardHandler) Next(c *gin.Context) {
	st, err := h.usecase.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWizardState(st))
}

func (h *WizardHandler) Prev(c *gin.Context) {
	st, err := h.usecase.Prev(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWizardState(st))
}

func (h *WizardHandler) JumpTo(c *gin.Context) {
	var payload request.WizardJumpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	st, err := h.usecase.JumpTo(c.Request.Context(), c.Param("id"), payload.Step)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWizardState(st))
}

func (h *WizardHandler) Submit(c *gin.Context) {
	res, err := h.usecase.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSubmitResult(res))
}

func (h *WizardHandler) Close(c *gin.Context) {
	var payload request.WizardCloseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		// An empty body means close without confirmation.
		payload = request.WizardCloseRequest{}
	}
	closed, err := h.usecase.Close(c.Request.Context(), c.Param("id"), payload.Confirm)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"closed": closed})
}

func (h *WizardHandler) ClearDraft(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	if err := h.usecase.ClearDraft(c.Request.Context(), usecase.WizardKind(c.Param("kind")), owner); err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownWizardKind), errors.Is(err, usecase.ErrInvalidOwnerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStepNotNavigable), errors.Is(err, usecase.ErrAlreadyFirstStep):
		return pkg.NewDomainErrorSimple("STEP_NOT_NAVIGABLE", "Step not navigable", http.StatusConflict)
	case errors.Is(err, usecase.ErrStepIncomplete):
		return pkg.NewDomainErrorSimple("STEP_INCOMPLETE", "Required fields missing for this step", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNotLastStep), errors.Is(err, usecase.ErrValuesInvalid), errors.Is(err, usecase.ErrNoLineItems):
		return pkg.NewDomainErrorSimple("SUBMIT_BLOCKED", "Submission blocked by validation", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSubmitInFlight):
		return pkg.NewDomainErrorSimple("SUBMIT_IN_FLIGHT", "Submission already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrCloseNeedsConfirm):
		return pkg.NewDomainErrorSimple("CLOSE_NEEDS_CONFIRM", "Unsaved changes, pass confirm=true to close", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
