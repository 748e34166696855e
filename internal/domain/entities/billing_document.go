package entities

import "time"

// DocumentKind distinguishes quotes (devis) from invoices (factures).

type DocumentKind string

const (
	DocumentKindQuote   DocumentKind = "quote"
	DocumentKindInvoice DocumentKind = "invoice"
)

// DocumentStatus represents the billing document lifecycle.
//
// Quotes move draft → issued → accepted/declined; invoices move
// draft → issued → paid/void. Conversion from an accepted quote issues a
// brand-new invoice with its own number.

type DocumentStatus string

const (
	DocumentStatusDraft    DocumentStatus = "draft"
	DocumentStatusIssued   DocumentStatus = "issued"
	DocumentStatusAccepted DocumentStatus = "accepted"
	DocumentStatusDeclined DocumentStatus = "declined"
	DocumentStatusPaid     DocumentStatus = "paid"
	DocumentStatusVoid     DocumentStatus = "void"
)

// LineItem is one billable line of a document. Amounts are integer cents.
// LineTotalCents is always derived from Quantity × UnitPriceCents; it is
// never accepted from callers as an independent value.
type LineItem struct {
	Description    string `json:"description"`
	Quantity       int64  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	LineTotalCents int64  `json:"line_total_cents"`
}

// BillingDocument is the quote/invoice persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id
//
// Monetary representation:
//   - All amounts are integer cents; the totals block is a snapshot taken
//     at issue time and is not recomputed afterwards.
type BillingDocument struct {
	ID      string       `json:"id"`
	OwnerID string       `json:"owner_id"`
	Kind    DocumentKind `json:"kind"`
	Number  string       `json:"number"`

	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`

	Items          []LineItem `json:"items"`
	TaxRatePercent int64      `json:"tax_rate_percent"`
	SubtotalCents  int64      `json:"subtotal_cents"`
	TaxCents       int64      `json:"tax_cents"`
	TotalCents     int64      `json:"total_cents"`

	Notes string `json:"notes,omitempty"`

	SourceQuoteID string `json:"source_quote_id,omitempty"`

	Status    DocumentStatus `json:"status"`
	IssuedAt  time.Time      `json:"issued_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
