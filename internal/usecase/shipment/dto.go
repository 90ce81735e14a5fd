package shipment

import (
	"time"

	domainShipment "freight-marketplace/internal/domain/shipment"
)

type CreateRequest struct {
	PickupLocation        string  `json:"pickupLocation"`
	DropLocation          string  `json:"dropLocation"`
	MaterialType          string  `json:"materialType"`
	CoolingType           string  `json:"coolingType"`
	WeightKg              float64 `json:"weight"`
	LengthFt              float64 `json:"length"`
	WidthFt               float64 `json:"width"`
	HeightFt              float64 `json:"height"`
	EstimatedDeliveryDate string  `json:"estimatedDeliveryDate"`
	ValueINR              float64 `json:"value"`
	ShipmentType          string  `json:"shipmentType"`
}

type Response struct {
	ID                    uint      `json:"id"`
	ShipperID             uint      `json:"shipperId"`
	PickupLocation        string    `json:"pickupLocation"`
	DropLocation          string    `json:"dropLocation"`
	MaterialType          string    `json:"materialType"`
	CoolingType           string    `json:"coolingType,omitempty"`
	WeightKg              float64   `json:"weight"`
	LengthFt              float64   `json:"length"`
	WidthFt               float64   `json:"width"`
	HeightFt              float64   `json:"height"`
	EstimatedDeliveryDate time.Time `json:"estimatedDeliveryDate"`
	ValueINR              float64   `json:"value"`
	ShipmentType          string    `json:"shipmentType"`
	EBayBillURL           string    `json:"ebayBillUrl,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}

func ToResponse(s *domainShipment.Shipment) *Response {
	if s == nil {
		return nil
	}
	return &Response{
		ID:                    s.ID,
		ShipperID:             s.ShipperID,
		PickupLocation:        s.PickupLocation,
		DropLocation:          s.DropLocation,
		MaterialType:          s.MaterialType,
		CoolingType:           s.CoolingType,
		WeightKg:              s.WeightKg,
		LengthFt:              s.LengthFt,
		WidthFt:               s.WidthFt,
		HeightFt:              s.HeightFt,
		EstimatedDeliveryDate: s.EstimatedDeliveryDate,
		ValueINR:              s.ValueINR,
		ShipmentType:          string(s.ShipmentType),
		EBayBillURL:           s.EBayBillURL,
		CreatedAt:             s.CreatedAt,
	}
}
