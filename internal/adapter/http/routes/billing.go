package routes

import (
	"convoyage/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDocuments = "/documents"
	PathPayments  = "/payments"
)

func addBillingRoutes(rg *gin.RouterGroup, documentHandler *handlers.DocumentHandler, paymentHandler *handlers.PaymentHandler) {
	documents := rg.Group(PathDocuments)
	{
		documents.POST("/quotes", documentHandler.CreateQuote)
		documents.GET("", documentHandler.ListByOwner)
		documents.GET("/:id", documentHandler.GetByID)
		documents.PATCH("/:id/accept", documentHandler.AcceptQuote)
		documents.PATCH("/:id/decline", documentHandler.DeclineQuote)
		documents.PATCH("/:id/paid", documentHandler.MarkInvoicePaid)
		documents.PATCH("/:id/void", documentHandler.VoidInvoice)
		documents.POST("/:id/convert", documentHandler.ConvertQuote)
		documents.GET("/:id/render", documentHandler.Render)
		documents.POST("/:id/export", documentHandler.Export)

		documents.POST("/:id/payments", paymentHandler.Create)
		documents.GET("/:id/payments", paymentHandler.ListByDocument)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:paymentId", paymentHandler.GetByID)
	}
}
