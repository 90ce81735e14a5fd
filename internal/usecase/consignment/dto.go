package consignment

import (
	"time"

	domainShipment "freight-marketplace/internal/domain/shipment"
)

type CreateRequest struct {
	ShipmentID   uint   `json:"shipmentId"`
	Source       string `json:"source"`
	Destination  string `json:"destination"`
	PickupDate   string `json:"pickupDate"`
	DeliveryDate string `json:"deliveryDate"`
}

type Response struct {
	ID              uint       `json:"id"`
	ShipmentID      uint       `json:"shipmentId"`
	TransporterID   uint       `json:"transporterId"`
	Status          string     `json:"status"`
	Source          string     `json:"source"`
	Destination     string     `json:"destination"`
	PickupDate      *time.Time `json:"pickupDate,omitempty"`
	DeliveryDate    *time.Time `json:"deliveryDate,omitempty"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func ToResponse(c *domainShipment.Consignment) *Response {
	if c == nil {
		return nil
	}
	return &Response{
		ID:              c.ID,
		ShipmentID:      c.ShipmentID,
		TransporterID:   c.TransporterID,
		Status:          string(c.Status),
		Source:          c.Source,
		Destination:     c.Destination,
		PickupDate:      c.PickupDate,
		DeliveryDate:    c.DeliveryDate,
		RejectionReason: c.RejectionReason,
		CreatedAt:       c.CreatedAt,
	}
}
