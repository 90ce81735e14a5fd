package models

import (
	"time"

	"freight-marketplace/internal/domain/fleet"
)

type DriverModel struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	DriverName      string    `gorm:"column:driver_name;not null"`
	PhoneNumber     string    `gorm:"column:phone_number;not null;uniqueIndex"`
	TransporterID   uint      `gorm:"column:transporter_id;not null;index"`
	TransporterName string    `gorm:"column:transporter_name;not null"`
	VehicleNumber   string    `gorm:"column:vehicle_number;not null"`
	Aadhaar         string    `gorm:"column:aadhaar;not null"`
	License         string    `gorm:"column:license;not null"`
	PhotoURL        string    `gorm:"column:photo_url"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`

	Transporter *TransporterModel `gorm:"foreignKey:TransporterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (DriverModel) TableName() string {
	return "drivers"
}

func ToDriverModel(d *fleet.Driver) *DriverModel {
	return &DriverModel{
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
		UpdatedAt:       d.UpdatedAt,
	}
}

func ToDriverEntity(m *DriverModel) *fleet.Driver {
	return &fleet.Driver{
		ID:              m.ID,
		DriverName:      m.DriverName,
		PhoneNumber:     m.PhoneNumber,
		TransporterID:   m.TransporterID,
		TransporterName: m.TransporterName,
		VehicleNumber:   m.VehicleNumber,
		Aadhaar:         m.Aadhaar,
		License:         m.License,
		PhotoURL:        m.PhotoURL,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
