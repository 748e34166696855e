package render

import (
	"strings"
	"testing"
	"time"

	"convoyage/internal/domain/entities"
)

var testIssuer = Issuer{
	Name:    "Convoyage Express",
	Address: "12 rue des Acacias, 69003 Lyon",
	Email:   "contact@convoyage.example",
	Phone:   "+33 4 00 00 00 00",
	SIRET:   "123 456 789 00010",
	VATID:   "FR12345678901",
}

func TestDocument(t *testing.T) {
	doc := entities.BillingDocument{
		Kind:        entities.DocumentKindInvoice,
		Number:      "FAC-2026-0007",
		ClientName:  "Dupont",
		ClientEmail: "dupont@example.fr",
		Items: []entities.LineItem{
			{Description: "Convoyage Lyon-Marseille", Quantity: 1, UnitPriceCents: 45000, LineTotalCents: 45000},
		},
		TaxRatePercent: 20,
		SubtotalCents:  45000,
		TaxCents:       9000,
		TotalCents:     54000,
		Notes:          "Paiement sous 30 jours",
		IssuedAt:       time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	markup, err := Document(doc, testIssuer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Facture FAC-2026-0007",
		"10/03/2026",
		"Convoyage Express",
		"FR12345678901",
		"Dupont",
		"Convoyage Lyon-Marseille",
		"Total HT", "450.00",
		"TVA (20 %)", "90.00",
		"Total TTC", "540.00",
		"Paiement sous 30 jours",
	} {
		if !strings.Contains(markup, want) {
			t.Fatalf("markup missing %q", want)
		}
	}
}

func TestDocument_QuoteTitle(t *testing.T) {
	doc := entities.BillingDocument{Kind: entities.DocumentKindQuote, Number: "DEV-2026-0001"}
	markup, err := Document(doc, testIssuer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(markup, "Devis DEV-2026-0001") {
		t.Fatalf("expected quote title, got:\n%s", markup)
	}
	if strings.Contains(markup, "Total TTC") {
		t.Fatalf("expected totals block omitted without lines")
	}
}

func TestDocument_EscapesClientInput(t *testing.T) {
	doc := entities.BillingDocument{
		Kind:       entities.DocumentKindInvoice,
		Number:     "FAC-2026-0001",
		ClientName: "<script>alert(1)</script>",
	}
	markup, err := Document(doc, testIssuer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(markup, "<script>alert(1)</script>") {
		t.Fatalf("client input rendered unescaped")
	}
}

func TestMissionSheet(t *testing.T) {
	m := entities.Mission{
		ID:           "m-1",
		ClientName:   "Dupont",
		VehicleBrand: "Renault",
		VehicleModel: "Kangoo",
		LicensePlate: "AB-123-CD",
		Departure:    entities.Leg{Street: "1 rue de la Gare", City: "Lyon", PostalCode: "69003", Date: "2026-09-01"},
		Arrival:      entities.Leg{Street: "4 avenue du Port", City: "Marseille", PostalCode: "13002", Date: "2026-09-02"},
		CreatedAt:    time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	markup, err := MissionSheet(m, testIssuer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Ordre de mission", "Renault Kangoo", "AB-123-CD", "Lyon", "Marseille"} {
		if !strings.Contains(markup, want) {
			t.Fatalf("markup missing %q", want)
		}
	}
}
