// Package form holds the wizard's working record and its derived state:
// the fully-defaulted FormValues shape, the field-path walker, the
// declarative validation schema, and the per-step completeness gate.
package form

import "encoding/json"

// ContactGroup is the client identity block of the wizard.
type ContactGroup struct {
	Name  string `json:"name" validate:"omitempty,min=2"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,min=6"`
}

// VehicleGroup describes the vehicle being convoyed.
type VehicleGroup struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	LicensePlate string `json:"licensePlate" validate:"omitempty,plate"`
	VIN          string `json:"vin"`
}

// AddressGroup is a postal address leaf group.
type AddressGroup struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// StopGroup is one endpoint of the route (departure or arrival).
type StopGroup struct {
	Address     AddressGroup `json:"address"`
	ContactName string       `json:"contactName"`
	Date        string       `json:"date"`
	TimeWindow  string       `json:"timeWindow" validate:"omitempty,timewindow"`
}

// OptionsGroup carries the named boolean options of a mission.
type OptionsGroup struct {
	Insurance bool `json:"insurance"`
	RoundTrip bool `json:"roundTrip"`
	Express   bool `json:"express"`
}

// LineItemInput is the line item as edited in the invoice wizard. The
// unit price is a decimal string as typed; it is parsed to cents when
// totals are computed or the document is submitted.
type LineItemInput struct {
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

// Values is the wizard's working record. Every leaf has a default value:
// the structure is always fully shaped, a leaf is only ever empty, never
// absent. Consumers emptiness-check, they never null-check.
type Values struct {
	Client    ContactGroup    `json:"client"`
	Vehicle   VehicleGroup    `json:"vehicle"`
	Departure StopGroup       `json:"departure"`
	Arrival   StopGroup       `json:"arrival"`
	Options   OptionsGroup    `json:"options"`
	Items     []LineItemInput `json:"items"`
	TaxRate   int64           `json:"taxRate"`
	Notes     string          `json:"notes"`

	Attachments []string `json:"attachments"`
	Priority    string   `json:"priority"`
}

const (
	DefaultTaxRatePercent = 20
	DefaultCountry        = "France"
	DefaultPriority       = "normal"
)

// Defaults builds a fully-populated Values with every leaf set to its
// default. All wizard sessions start from here.
func Defaults() Values {
	return Values{
		Departure:   StopGroup{Address: AddressGroup{Country: DefaultCountry}},
		Arrival:     StopGroup{Address: AddressGroup{Country: DefaultCountry}},
		Items:       []LineItemInput{},
		TaxRate:     DefaultTaxRatePercent,
		Attachments: []string{},
		Priority:    DefaultPriority,
	}
}

// Clone returns a deep copy obtained through serialization. The wizard
// controller owns the live Values; everything handed outward is a copy so
// no caller can alias back into session state.
func (v Values) Clone() Values {
	b, err := json.Marshal(v)
	if err != nil {
		return Defaults()
	}
	out := Defaults()
	if err := json.Unmarshal(b, &out); err != nil {
		return Defaults()
	}
	return out
}

// Merge overlays caller-supplied partial values (JSON map shape) onto the
// base. Unknown keys are ignored; the result stays fully shaped. Used at
// session start for pre-assigned fields such as a client name.
func Merge(base Values, overlay map[string]interface{}) Values {
	if len(overlay) == 0 {
		return base
	}
	merged := deepMerge(base.AsMap(), overlay)
	b, err := json.Marshal(merged)
	if err != nil {
		return base
	}
	out := base
	if err := json.Unmarshal(b, &out); err != nil {
		return base
	}
	return out
}

func deepMerge(dst, src map[string]interface{}) map[string]interface{} {
	for k, v := range src {
		if sub, ok := v.(map[string]interface{}); ok {
			if cur, ok := dst[k].(map[string]interface{}); ok {
				dst[k] = deepMerge(cur, sub)
				continue
			}
		}
		dst[k] = v
	}
	return dst
}

// AsMap converts the values into their JSON map shape for path walking.
func (v Values) AsMap() map[string]interface{} {
	b, err := json.Marshal(v)
	if err != nil {
		return map[string]interface{}{}
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]interface{}{}
	}
	return m
}
