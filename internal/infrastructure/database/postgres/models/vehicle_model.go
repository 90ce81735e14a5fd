package models

import (
	"encoding/json"
	"time"

	"freight-marketplace/internal/domain/fleet"
)

type VehicleModel struct {
	ID                      uint      `gorm:"primaryKey;autoIncrement"`
	VehicleName             string    `gorm:"column:vehicle_name;not null"`
	VehicleNumber           string    `gorm:"column:vehicle_number;not null;uniqueIndex"`
	VehicleType             string    `gorm:"column:vehicle_type;not null"`
	BodyType                string    `gorm:"column:body_type;not null"`
	Dimension               string    `gorm:"column:dimension;not null"`
	Capacity                float64   `gorm:"column:capacity;not null"`
	IsRefrigerated          bool      `gorm:"column:is_refrigerated;not null"`
	RCURL                   string    `gorm:"column:rc_url"`
	RoadPermitURL           string    `gorm:"column:road_permit_url"`
	PollutionCertificateURL string    `gorm:"column:pollution_certificate_url"`
	TransporterID           uint      `gorm:"column:transporter_id;not null;index"`
	TransporterName         string    `gorm:"column:transporter_name;not null"`
	CreatedAt               time.Time `gorm:"column:created_at"`
	UpdatedAt               time.Time `gorm:"column:updated_at"`

	Transporter *TransporterModel `gorm:"foreignKey:TransporterID"`
}

func (VehicleModel) TableName() string {
	return "vehicles"
}

func ToVehicleModel(v *fleet.Vehicle) (*VehicleModel, error) {
	dimension, err := json.Marshal(v.Dimension)
	if err != nil {
		return nil, err
	}

	return &VehicleModel{
		ID:                      v.ID,
		VehicleName:             v.VehicleName,
		VehicleNumber:           v.VehicleNumber,
		VehicleType:             string(v.VehicleType),
		BodyType:                string(v.BodyType),
		Dimension:               string(dimension),
		Capacity:                v.Capacity,
		IsRefrigerated:          v.IsRefrigerated,
		RCURL:                   v.RCURL,
		RoadPermitURL:           v.RoadPermitURL,
		PollutionCertificateURL: v.PollutionCertificateURL,
		TransporterID:           v.TransporterID,
		TransporterName:         v.TransporterName,
		CreatedAt:               v.CreatedAt,
		UpdatedAt:               v.UpdatedAt,
	}, nil
}

func ToVehicleEntity(m *VehicleModel) *fleet.Vehicle {
	var dimension fleet.Dimension
	_ = json.Unmarshal([]byte(m.Dimension), &dimension)

	return &fleet.Vehicle{
		ID:                      m.ID,
		VehicleName:             m.VehicleName,
		VehicleNumber:           m.VehicleNumber,
		VehicleType:             fleet.VehicleType(m.VehicleType),
		BodyType:                fleet.BodyType(m.BodyType),
		Dimension:               dimension,
		Capacity:                m.Capacity,
		IsRefrigerated:          m.IsRefrigerated,
		RCURL:                   m.RCURL,
		RoadPermitURL:           m.RoadPermitURL,
		PollutionCertificateURL: m.PollutionCertificateURL,
		TransporterID:           m.TransporterID,
		TransporterName:         m.TransporterName,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
}
