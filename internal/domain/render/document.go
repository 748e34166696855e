// Package render builds the printable HTML representation of finalized
// records (invoices, quotes, missions). The output is a self-contained
// document: inline styles, no external assets, ready for a print sheet or
// an export upload.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"convoyage/internal/domain/billing"
	"convoyage/internal/domain/entities"
)

// Issuer identifies the party at the top of every document.
type Issuer struct {
	Name    string
	Address string
	Email   string
	Phone   string
	SIRET   string
	VATID   string
}

type documentLine struct {
	Description string
	Quantity    int64
	UnitPrice   string
	LineTotal   string
}

type documentData struct {
	Title     string
	Number    string
	IssuedAt  string
	Issuer    Issuer
	Recipient []string
	Lines     []documentLine
	Subtotal  string
	TaxRate   int64
	TaxAmount string
	Total     string
	Notes     string
	Footer    string
}

const legalFooter = "Document généré par Convoyage. TVA acquittée sur les encaissements. " +
	"En cas de retard de paiement, indemnité forfaitaire pour frais de recouvrement : 40 €."

var documentTmpl = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>{{.Title}} {{.Number}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 2rem; color: #1a1a1a; }
header { display: flex; justify-content: space-between; margin-bottom: 2rem; }
h1 { font-size: 1.4rem; margin: 0 0 .5rem; }
table { width: 100%; border-collapse: collapse; margin: 1.5rem 0; }
th, td { border-bottom: 1px solid #ddd; padding: .5rem; text-align: left; }
td.num, th.num { text-align: right; }
.totals { width: 40%; margin-left: auto; }
.totals td { border: none; padding: .25rem .5rem; }
.totals tr.grand td { border-top: 2px solid #1a1a1a; font-weight: bold; }
footer { margin-top: 3rem; font-size: .75rem; color: #666; }
</style>
</head>
<body>
<header>
<div>
<h1>{{.Title}} {{.Number}}</h1>
<p>Émis le {{.IssuedAt}}</p>
</div>
<div>
<strong>{{.Issuer.Name}}</strong><br>
{{.Issuer.Address}}<br>
{{.Issuer.Email}} — {{.Issuer.Phone}}<br>
SIRET {{.Issuer.SIRET}}{{if .Issuer.VATID}} — TVA {{.Issuer.VATID}}{{end}}
</div>
</header>
<section>
<strong>Destinataire</strong><br>
{{range .Recipient}}{{.}}<br>{{end}}
</section>
{{if .Lines}}
<table>
<thead><tr><th>Désignation</th><th class="num">Qté</th><th class="num">PU HT</th><th class="num">Total HT</th></tr></thead>
<tbody>
{{range .Lines}}<tr><td>{{.Description}}</td><td class="num">{{.Quantity}}</td><td class="num">{{.UnitPrice}} €</td><td class="num">{{.LineTotal}} €</td></tr>
{{end}}</tbody>
</table>
<table class="totals">
<tr><td>Total HT</td><td class="num">{{.Subtotal}} €</td></tr>
<tr><td>TVA ({{.TaxRate}} %)</td><td class="num">{{.TaxAmount}} €</td></tr>
<tr class="grand"><td>Total TTC</td><td class="num">{{.Total}} €</td></tr>
</table>
{{end}}
{{if .Notes}}<section><strong>Notes</strong><p>{{.Notes}}</p></section>{{end}}
<footer>{{.Footer}}</footer>
</body>
</html>
`))

// Document renders a billing document against the issuer identity and
// returns the markup. Pure function; rendering failures surface as errors
// and leave nothing half-written.
func Document(doc entities.BillingDocument, issuer Issuer) (string, error) {
	title := "Facture"
	if doc.Kind == entities.DocumentKindQuote {
		title = "Devis"
	}
	lines := make([]documentLine, 0, len(doc.Items))
	for _, it := range doc.Items {
		lines = append(lines, documentLine{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   billing.FormatCents(it.UnitPriceCents),
			LineTotal:   billing.FormatCents(it.LineTotalCents),
		})
	}
	data := documentData{
		Title:    title,
		Number:   doc.Number,
		IssuedAt: doc.IssuedAt.Format("02/01/2006"),
		Issuer:   issuer,
		Recipient: []string{
			doc.ClientName,
			doc.ClientEmail,
			doc.ClientPhone,
		},
		Lines:     lines,
		Subtotal:  billing.FormatCents(doc.SubtotalCents),
		TaxRate:   doc.TaxRatePercent,
		TaxAmount: billing.FormatCents(doc.TaxCents),
		Total:     billing.FormatCents(doc.TotalCents),
		Notes:     doc.Notes,
		Footer:    legalFooter,
	}
	var buf bytes.Buffer
	if err := documentTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MissionSheet renders the printable summary of a mission (ordre de
// mission) handed to the driver.
func MissionSheet(m entities.Mission, issuer Issuer) (string, error) {
	data := documentData{
		Title:    "Ordre de mission",
		Number:   m.ID,
		IssuedAt: m.CreatedAt.Format("02/01/2006"),
		Issuer:   issuer,
		Recipient: []string{
			m.ClientName,
			m.ClientEmail,
			m.ClientPhone,
			fmt.Sprintf("%s %s — %s", m.VehicleBrand, m.VehicleModel, m.LicensePlate),
			fmt.Sprintf("Départ : %s, %s (%s) le %s %s", m.Departure.Street, m.Departure.City, m.Departure.PostalCode, m.Departure.Date, m.Departure.TimeWindow),
			fmt.Sprintf("Arrivée : %s, %s (%s) le %s %s", m.Arrival.Street, m.Arrival.City, m.Arrival.PostalCode, m.Arrival.Date, m.Arrival.TimeWindow),
		},
		Notes:  m.Notes,
		Footer: legalFooter,
	}
	var buf bytes.Buffer
	if err := documentTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
