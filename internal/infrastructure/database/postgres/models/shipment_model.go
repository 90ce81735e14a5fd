package models

import (
	"time"

	"freight-marketplace/internal/domain/shipment"
)

type ShipmentModel struct {
	ID                    uint      `gorm:"primaryKey;autoIncrement"`
	ShipperID             uint      `gorm:"column:shipper_id;not null;index"`
	PickupLocation        string    `gorm:"column:pickup_location;not null"`
	DropLocation          string    `gorm:"column:drop_location;not null"`
	MaterialType          string    `gorm:"column:material_type;not null"`
	CoolingType           string    `gorm:"column:cooling_type;not null"`
	WeightKg              float64   `gorm:"column:weight_kg;not null"`
	LengthFt              float64   `gorm:"column:length_ft;not null"`
	WidthFt               float64   `gorm:"column:width_ft;not null"`
	HeightFt              float64   `gorm:"column:height_ft;not null"`
	EstimatedDeliveryDate time.Time `gorm:"column:estimated_delivery_date;not null"`
	ValueINR              float64   `gorm:"column:value_inr;not null"`
	ShipmentType          string    `gorm:"column:shipment_type;not null"`
	EBayBillURL           string    `gorm:"column:ebay_bill_url;not null"`
	CreatedAt             time.Time `gorm:"column:created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at"`

	Shipper *ShipperModel `gorm:"foreignKey:ShipperID"`
}

func (ShipmentModel) TableName() string {
	return "shipments"
}

func ToShipmentModel(s *shipment.Shipment) *ShipmentModel {
	return &ShipmentModel{
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
		UpdatedAt:             s.UpdatedAt,
	}
}

func ToShipmentEntity(m *ShipmentModel) *shipment.Shipment {
	return &shipment.Shipment{
		ID:                    m.ID,
		ShipperID:             m.ShipperID,
		PickupLocation:        m.PickupLocation,
		DropLocation:          m.DropLocation,
		MaterialType:          m.MaterialType,
		CoolingType:           m.CoolingType,
		WeightKg:              m.WeightKg,
		LengthFt:              m.LengthFt,
		WidthFt:               m.WidthFt,
		HeightFt:              m.HeightFt,
		EstimatedDeliveryDate: m.EstimatedDeliveryDate,
		ValueINR:              m.ValueINR,
		ShipmentType:          shipment.ShipmentType(m.ShipmentType),
		EBayBillURL:           m.EBayBillURL,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}
