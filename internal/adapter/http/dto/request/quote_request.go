package request

import (
	"errors"
	"strings"

	"convoyage/internal/domain/form"
)

var ErrNoQuoteItems = errors.New("quote requires at least one item")

// QuoteLineItemRequest is one billable line as submitted by the client.
// The line total is never accepted: it is always derived server-side.
type QuoteLineItemRequest struct {
	Description string `json:"description" binding:"required"`
	Quantity    int64  `json:"quantity" binding:"required"`
	UnitPrice   string `json:"unit_price" binding:"required"`
}

// QuoteCreateRequest issues a quote directly, outside the wizard.
type QuoteCreateRequest struct {
	ClientName  string                 `json:"client_name" binding:"required"`
	ClientEmail string                 `json:"client_email"`
	ClientPhone string                 `json:"client_phone"`
	Items       []QuoteLineItemRequest `json:"items" binding:"required"`
	TaxRate     int64                  `json:"tax_rate"`
	Notes       string                 `json:"notes"`
}

func (r QuoteCreateRequest) ResolveClient() form.ContactGroup {
	return form.ContactGroup{
		Name:  strings.TrimSpace(r.ClientName),
		Email: strings.TrimSpace(r.ClientEmail),
		Phone: strings.TrimSpace(r.ClientPhone),
	}
}

func (r QuoteCreateRequest) ResolveItems() ([]form.LineItemInput, error) {
	if len(r.Items) == 0 {
		return nil, ErrNoQuoteItems
	}
	items := make([]form.LineItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, form.LineItemInput{
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   strings.TrimSpace(it.UnitPrice),
		})
	}
	return items, nil
}

func (r QuoteCreateRequest) ResolveTaxRate() int64 {
	if r.TaxRate <= 0 {
		return form.DefaultTaxRatePercent
	}
	return r.TaxRate
}
