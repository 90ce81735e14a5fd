package models

import (
	"time"

	"freight-marketplace/internal/domain/shipment"
)

type ConsignmentModel struct {
	ID              uint       `gorm:"primaryKey;autoIncrement"`
	ShipmentID      uint       `gorm:"column:shipment_id;not null;uniqueIndex"`
	TransporterID   uint       `gorm:"column:transporter_id;not null;index"`
	Status          string     `gorm:"column:status;not null;default:Pending"`
	Source          string     `gorm:"column:source;not null"`
	Destination     string     `gorm:"column:destination;not null"`
	PickupDate      *time.Time `gorm:"column:pickup_date"`
	DeliveryDate    *time.Time `gorm:"column:delivery_date"`
	RejectionReason *string    `gorm:"column:rejection_reason;type:text"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`

	Shipment    *ShipmentModel    `gorm:"foreignKey:ShipmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Transporter *TransporterModel `gorm:"foreignKey:TransporterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (ConsignmentModel) TableName() string {
	return "consignments"
}

func ToConsignmentModel(c *shipment.Consignment) *ConsignmentModel {
	return &ConsignmentModel{
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
		UpdatedAt:       c.UpdatedAt,
	}
}

func ToConsignmentEntity(m *ConsignmentModel) *shipment.Consignment {
	return &shipment.Consignment{
		ID:              m.ID,
		ShipmentID:      m.ShipmentID,
		TransporterID:   m.TransporterID,
		Status:          shipment.ConsignmentStatus(m.Status),
		Source:          m.Source,
		Destination:     m.Destination,
		PickupDate:      m.PickupDate,
		DeliveryDate:    m.DeliveryDate,
		RejectionReason: m.RejectionReason,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
