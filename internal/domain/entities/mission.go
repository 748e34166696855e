package entities

import "time"

// MissionStatus represents the lifecycle of a convoy mission.
//
// Domain notes:
//   - A mission is created by the wizard submission and then driven by
//     dispatch actions (assign, start, deliver, cancel).

type MissionStatus string

const (
	MissionStatusPending    MissionStatus = "pending"
	MissionStatusAssigned   MissionStatus = "assigned"
	MissionStatusInProgress MissionStatus = "in_progress"
	MissionStatusDelivered  MissionStatus = "delivered"
	MissionStatusCancelled  MissionStatus = "cancelled"
)

// MissionPriority is the urgency of a mission chosen in the wizard.

type MissionPriority string

const (
	MissionPriorityNormal MissionPriority = "normal"
	MissionPriorityHigh   MissionPriority = "high"
	MissionPriorityUrgent MissionPriority = "urgent"
)

// Leg is one endpoint of the mission route (pickup or delivery).
type Leg struct {
	Street      string `json:"street"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
	ContactName string `json:"contact_name"`
	Date        string `json:"date"`
	TimeWindow  string `json:"time_window"`
}

// Mission is the convoy mission persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id
type Mission struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`

	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`

	VehicleBrand string `json:"vehicle_brand"`
	VehicleModel string `json:"vehicle_model"`
	LicensePlate string `json:"license_plate"`
	VIN          string `json:"vin,omitempty"`

	Departure Leg `json:"departure"`
	Arrival   Leg `json:"arrival"`

	Insurance bool `json:"insurance"`
	RoundTrip bool `json:"round_trip"`
	Express   bool `json:"express"`

	Priority    MissionPriority `json:"priority"`
	Notes       string          `json:"notes,omitempty"`
	Attachments []string        `json:"attachments,omitempty"`

	Status    MissionStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
