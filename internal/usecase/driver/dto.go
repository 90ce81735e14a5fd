package driver

import (
	"time"

	"freight-marketplace/internal/domain/fleet"
)

type RegisterRequest struct {
	DriverName    string `json:"driverName" validate:"required"`
	PhoneNumber   string `json:"phoneNumber" validate:"required,indian_mobile"`
	VehicleNumber string `json:"vehicleNumber"`
	Aadhaar       string `json:"aadhaar" validate:"required,aadhaar"`
	License       string `json:"license" validate:"required"`

	// Photo is populated from the multipart form, not the JSON body.
	PhotoName    string `json:"-"`
	PhotoContent []byte `json:"-"`
}

type Response struct {
	ID              uint      `json:"id"`
	DriverName      string    `json:"driverName"`
	PhoneNumber     string    `json:"phoneNumber"`
	TransporterID   uint      `json:"transporterId"`
	TransporterName string    `json:"transporterName"`
	VehicleNumber   string    `json:"vehicleNumber,omitempty"`
	Aadhaar         string    `json:"aadhaar"`
	License         string    `json:"license"`
	PhotoURL        string    `json:"photoUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func ToResponse(d *fleet.Driver) *Response {
	if d == nil {
		return nil
	}
	return &Response{
		ID:              d.ID,
		DriverName:      d.DriverName,
		PhoneNumber:     d.PhoneNumber,
		TransporterID:   d.TransporterID,
		TransporterName: d.TransporterName,
		VehicleNumber:   d.VehicleNumber,
		Aadhaar:         d.Aadhaar,
		License:         d.License,
		PhotoURL:        d.PhotoURL,
		CreatedAt:       d.CreatedAt,
	}
}
