package response

import (
	"time"

	"convoyage/internal/domain/billing"
	"convoyage/internal/domain/entities"
	"convoyage/internal/usecase"
)

type LineItemResponse struct {
	Description    string `json:"description"`
	Quantity       int64  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	LineTotalCents int64  `json:"line_total_cents"`
	UnitPrice      string `json:"unit_price"`
	LineTotal      string `json:"line_total"`
}

type DocumentResponse struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Kind    string `json:"kind"`
	Number  string `json:"number"`

	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`

	Items   []LineItemResponse `json:"items"`
	TaxRate int64              `json:"tax_rate_percent"`
	Totals  TotalsResponse     `json:"totals"`

	Notes         string `json:"notes,omitempty"`
	SourceQuoteID string `json:"source_quote_id,omitempty"`

	Status    string    `json:"status"`
	IssuedAt  time.Time `json:"issued_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromDocument(d entities.BillingDocument) DocumentResponse {
	items := make([]LineItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, LineItemResponse{
			Description:    it.Description,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			LineTotalCents: it.LineTotalCents,
			UnitPrice:      billing.FormatCents(it.UnitPriceCents),
			LineTotal:      billing.FormatCents(it.LineTotalCents),
		})
	}
	return DocumentResponse{
		ID:      d.ID,
		OwnerID: d.OwnerID,
		Kind:    string(d.Kind),
		Number:  d.Number,

		ClientName:  d.ClientName,
		ClientEmail: d.ClientEmail,
		ClientPhone: d.ClientPhone,

		Items:   items,
		TaxRate: d.TaxRatePercent,
		Totals: FromTotals(billing.Totals{
			SubtotalCents: d.SubtotalCents,
			TaxCents:      d.TaxCents,
			TotalCents:    d.TotalCents,
		}),

		Notes:         d.Notes,
		SourceQuoteID: d.SourceQuoteID,

		Status:    string(d.Status),
		IssuedAt:  d.IssuedAt,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type ExportResponse struct {
	Key       string `json:"key"`
	SignedURL string `json:"signed_url"`
	PublicURL string `json:"public_url"`
}

func FromExportResult(r usecase.ExportResult) ExportResponse {
	return ExportResponse{Key: r.Key, SignedURL: r.SignedURL, PublicURL: r.PublicURL}
}
