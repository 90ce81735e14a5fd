package shipment

import "time"

type ShipmentType string

const (
	FullTruckLoad ShipmentType = "full_truck_load"
	PartTruckLoad ShipmentType = "part_truck_load"
)

func ValidShipmentType(s string) bool {
	switch ShipmentType(s) {
	case FullTruckLoad, PartTruckLoad:
		return true
	}
	return false
}

// Shipment is a shipper's transport demand.
type Shipment struct {
	ID                    uint
	ShipperID             uint
	PickupLocation        string
	DropLocation          string
	MaterialType          string
	CoolingType           string
	WeightKg              float64
	LengthFt              float64
	WidthFt               float64
	HeightFt              float64
	EstimatedDeliveryDate time.Time
	ValueINR              float64
	ShipmentType          ShipmentType
	EBayBillURL           string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type ConsignmentStatus string

const (
	StatusPending   ConsignmentStatus = "Pending"
	StatusAccepted  ConsignmentStatus = "Accepted"
	StatusRejected  ConsignmentStatus = "Rejected"
	StatusLive      ConsignmentStatus = "Live"
	StatusCompleted ConsignmentStatus = "Completed"
)

// ConsignmentStatuses lists the allowed values in display order.
var ConsignmentStatuses = []ConsignmentStatus{
	StatusPending, StatusAccepted, StatusRejected, StatusLive, StatusCompleted,
}

func ParseConsignmentStatus(s string) (ConsignmentStatus, error) {
	for _, status := range ConsignmentStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", ErrInvalidStatus
}

// Consignment links a shipment to the transporter carrying it. At most one
// consignment exists per shipment.
type Consignment struct {
	ID              uint
	ShipmentID      uint
	TransporterID   uint
	Status          ConsignmentStatus
	Source          string
	Destination     string
	PickupDate      *time.Time
	DeliveryDate    *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
