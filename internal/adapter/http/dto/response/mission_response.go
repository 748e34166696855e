package response

import (
	"time"

	"convoyage/internal/domain/entities"
)

type LegResponse struct {
	Street      string `json:"street"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
	ContactName string `json:"contact_name"`
	Date        string `json:"date"`
	TimeWindow  string `json:"time_window"`
}

type MissionResponse struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`

	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`

	VehicleBrand string `json:"vehicle_brand"`
	VehicleModel string `json:"vehicle_model"`
	LicensePlate string `json:"license_plate"`
	VIN          string `json:"vin,omitempty"`

	Departure LegResponse `json:"departure"`
	Arrival   LegResponse `json:"arrival"`

	Insurance bool `json:"insurance"`
	RoundTrip bool `json:"round_trip"`
	Express   bool `json:"express"`

	Priority    string   `json:"priority"`
	Notes       string   `json:"notes,omitempty"`
	Attachments []string `json:"attachments,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromMission(m entities.Mission) MissionResponse {
	return MissionResponse{
		ID:      m.ID,
		OwnerID: m.OwnerID,

		ClientName:  m.ClientName,
		ClientEmail: m.ClientEmail,
		ClientPhone: m.ClientPhone,

		VehicleBrand: m.VehicleBrand,
		VehicleModel: m.VehicleModel,
		LicensePlate: m.LicensePlate,
		VIN:          m.VIN,

		Departure: LegResponse(m.Departure),
		Arrival:   LegResponse(m.Arrival),

		Insurance: m.Insurance,
		RoundTrip: m.RoundTrip,
		Express:   m.Express,

		Priority:    string(m.Priority),
		Notes:       m.Notes,
		Attachments: m.Attachments,

		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
