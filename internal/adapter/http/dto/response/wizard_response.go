package response

import (
	"convoyage/internal/domain/billing"
	"convoyage/internal/domain/form"
	"convoyage/internal/usecase"
)

type TotalsResponse struct {
	SubtotalCents int64  `json:"subtotal_cents"`
	TaxCents      int64  `json:"tax_cents"`
	TotalCents    int64  `json:"total_cents"`
	Subtotal      string `json:"subtotal"`
	TaxAmount     string `json:"tax_amount"`
	Total         string `json:"total"`
}

func FromTotals(t billing.Totals) TotalsResponse {
	return TotalsResponse{
		SubtotalCents: t.SubtotalCents,
		TaxCents:      t.TaxCents,
		TotalCents:    t.TotalCents,
		Subtotal:      billing.FormatCents(t.SubtotalCents),
		TaxAmount:     billing.FormatCents(t.TaxCents),
		Total:         billing.FormatCents(t.TotalCents),
	}
}

type WizardStateResponse struct {
	SessionID      string                         `json:"session_id"`
	Kind           string                         `json:"kind"`
	Step           int                            `json:"step"`
	HighestVisited int                            `json:"highest_visited_step"`
	TotalSteps     int                            `json:"total_steps"`
	Values         form.Values                    `json:"values"`
	StepMeta       []form.StepMeta                `json:"step_meta"`
	FieldErrors    map[string]form.FieldError     `json:"field_errors"`
	Totals         TotalsResponse                 `json:"totals"`
	Dirty          bool                           `json:"dirty"`
	DraftRestored  bool                           `json:"draft_restored"`
}

func FromWizardState(st usecase.WizardState) WizardStateResponse {
	return WizardStateResponse{
		SessionID:      st.SessionID,
		Kind:           string(st.Kind),
		Step:           st.Step,
		HighestVisited: st.HighestVisited,
		TotalSteps:     st.TotalSteps,
		Values:         st.Values,
		StepMeta:       st.StepMeta,
		FieldErrors:    st.FieldErrors,
		Totals:         FromTotals(st.Totals),
		Dirty:          st.Dirty,
		DraftRestored:  st.DraftRestored,
	}
}

type SubmitResponse struct {
	MissionID      string `json:"mission_id,omitempty"`
	DocumentID     string `json:"document_id,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
}

func FromSubmitResult(r usecase.SubmitResult) SubmitResponse {
	return SubmitResponse{
		MissionID:      r.MissionID,
		DocumentID:     r.DocumentID,
		DocumentNumber: r.DocumentNumber,
	}
}
