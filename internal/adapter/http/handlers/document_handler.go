package handlers

import (
	"context"
	"errors"
	"net/http"

	request "convoyage/internal/adapter/http/dto/request"
	response "convoyage/internal/adapter/http/dto/response"
	"convoyage/internal/domain/entities"
	"convoyage/internal/usecase"
	"convoyage/pkg"

	"github.com/gin-gonic/gin"
)

// DocumentHandler covers quotes and invoices: direct quote creation,
// lifecycle transitions, conversion, and rendered/exported output.

type DocumentHandler struct {
	usecase usecase.IBillingDocumentUseCase
	export  usecase.IDocumentExportUseCase
}

func NewDocumentHandler(uc usecase.IBillingDocumentUseCase, export usecase.IDocumentExportUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc, export: export}
}

func (h *DocumentHandler) CreateQuote(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var payload request.QuoteCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	items, err := payload.ResolveItems()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("NO_LINE_ITEMS", "A quote requires at least one line item", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	doc, err := h.usecase.CreateQuote(c.Request.Context(), owner, payload.ResolveClient(), items, payload.ResolveTaxRate(), payload.Notes)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDocument(doc))
}

func (h *DocumentHandler) GetByID(c *gin.Context) {
	doc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

func (h *DocumentHandler) ListByOwner(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	docs, err := h.usecase.ListByOwnerID(c.Request.Context(), owner)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	out := make([]response.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, response.FromDocument(d))
	}
	c.JSON(http.StatusOK, out)
}

func (h *DocumentHandler) AcceptQuote(c *gin.Context) {
	h.transition(c, h.usecase.AcceptQuote)
}

func (h *DocumentHandler) DeclineQuote(c *gin.Context) {
	h.transition(c, h.usecase.DeclineQuote)
}

func (h *DocumentHandler) MarkInvoicePaid(c *gin.Context) {
	h.transition(c, h.usecase.MarkInvoicePaid)
}

func (h *DocumentHandler) VoidInvoice(c *gin.Context) {
	h.transition(c, h.usecase.VoidInvoice)
}

func (h *DocumentHandler) ConvertQuote(c *gin.Context) {
	inv, err := h.usecase.ConvertQuoteToInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDocument(inv))
}

// Render returns the printable HTML inline.
func (h *DocumentHandler) Render(c *gin.Context) {
	markup, err := h.export.RenderDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(markup))
}

// Export uploads the rendered document and returns a signed URL.
func (h *DocumentHandler) Export(c *gin.Context) {
	res, err := h.export.ExportDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromExportResult(res))
}

func (h *DocumentHandler) transition(c *gin.Context, op func(ctx context.Context, id string) (entities.BillingDocument, error)) {
	doc, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDocumentID), errors.Is(err, usecase.ErrInvalidOwnerID),
		errors.Is(err, usecase.ErrInvalidClient), errors.Is(err, usecase.ErrNoLineItems):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotAQuote), errors.Is(err, usecase.ErrNotAnInvoice):
		return pkg.NewDomainErrorSimple("WRONG_DOCUMENT_KIND", "Operation not valid for this document kind", http.StatusConflict)
	case errors.Is(err, usecase.ErrDocumentNotTransitional):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Document status does not allow this transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ACCEPTED", "Quote must be accepted before conversion", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyConverted):
		return pkg.NewDomainErrorSimple("ALREADY_CONVERTED", "Quote already converted to an invoice", http.StatusConflict)
	case errors.Is(err, usecase.ErrExportFailed):
		return pkg.NewDomainErrorSimple("EXPORT_FAILED", "Document export failed", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
