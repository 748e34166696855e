package request

import (
	"strings"

	"convoyage/internal/domain/form"
)

// WizardStartRequest opens a wizard session. Initial carries optional
// pre-assigned values (JSON map shape) merged over the defaults.
type WizardStartRequest struct {
	Kind    string                 `json:"kind" binding:"required"`
	Initial map[string]interface{} `json:"initial"`
}

func (r WizardStartRequest) ResolveKind() string {
	return strings.ToLower(strings.TrimSpace(r.Kind))
}

// WizardValuesRequest replaces the session's working record.
type WizardValuesRequest struct {
	Values form.Values `json:"values" binding:"required"`
}

// WizardJumpRequest targets a step for sidebar navigation.
type WizardJumpRequest struct {
	Step int `json:"step" binding:"required"`
}

// WizardCloseRequest closes a session; Confirm acknowledges the loss of
// unsaved in-memory changes.
type WizardCloseRequest struct {
	Confirm bool `json:"confirm"`
}
