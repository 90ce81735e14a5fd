package models

import (
	"time"

	"freight-marketplace/internal/domain/account"
)

type TransporterModel struct {
	ID                    uint      `gorm:"primaryKey;autoIncrement"`
	Name                  string    `gorm:"column:name"`
	MobileNumber          string    `gorm:"column:mobile_number;uniqueIndex"`
	Designation           string    `gorm:"column:designation"`
	CompanyName           string    `gorm:"column:company_name;not null"`
	CompanyAddress        string    `gorm:"column:company_address;type:text"`
	Email                 string    `gorm:"column:email;uniqueIndex"`
	EmailVerified         bool      `gorm:"column:email_verified;not null;default:false"`
	Password              string    `gorm:"column:password;not null"`
	CustomerServiceNumber string    `gorm:"column:customer_service_number"`
	GSTNumber             string    `gorm:"column:gst_number;uniqueIndex"`
	CINNumber             string    `gorm:"column:cin_number"`
	OwnerName             string    `gorm:"column:owner_name"`
	OwnerContactNumber    string    `gorm:"column:owner_contact_number"`
	FleetCount            int       `gorm:"column:fleet_count;default:0"`
	ServiceArea           string    `gorm:"column:service_area"`
	Pincode               string    `gorm:"column:pincode"`
	DistrictCityRates     string    `gorm:"column:district_city_rates;type:text"`
	ServiceType           string    `gorm:"column:service_type"`
	ETDDetails            string    `gorm:"column:etd_details;type:text"`
	CreatedAt             time.Time `gorm:"column:created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at"`
}

func (TransporterModel) TableName() string {
	return "transporters"
}

func ToTransporterModel(t *account.Transporter) *TransporterModel {
	return &TransporterModel{
		ID:                    t.ID,
		Name:                  t.Name,
		MobileNumber:          t.MobileNumber,
		Designation:           t.Designation,
		CompanyName:           t.CompanyName,
		CompanyAddress:        t.CompanyAddress,
		Email:                 t.Email,
		EmailVerified:         t.EmailVerified,
		Password:              t.PasswordHash,
		CustomerServiceNumber: t.CustomerServiceNumber,
		GSTNumber:             t.GSTNumber,
		CINNumber:             t.CINNumber,
		OwnerName:             t.OwnerName,
		OwnerContactNumber:    t.OwnerContactNumber,
		FleetCount:            t.FleetCount,
		ServiceArea:           string(t.ServiceArea),
		Pincode:               t.Pincode,
		DistrictCityRates:     t.DistrictCityRates,
		ServiceType:           string(t.ServiceType),
		ETDDetails:            t.ETDDetails,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
	}
}

func ToTransporterEntity(m *TransporterModel) *account.Transporter {
	return &account.Transporter{
		ID:                    m.ID,
		Name:                  m.Name,
		MobileNumber:          m.MobileNumber,
		Designation:           m.Designation,
		CompanyName:           m.CompanyName,
		CompanyAddress:        m.CompanyAddress,
		Email:                 m.Email,
		EmailVerified:         m.EmailVerified,
		PasswordHash:          m.Password,
		CustomerServiceNumber: m.CustomerServiceNumber,
		GSTNumber:             m.GSTNumber,
		CINNumber:             m.CINNumber,
		OwnerName:             m.OwnerName,
		OwnerContactNumber:    m.OwnerContactNumber,
		FleetCount:            m.FleetCount,
		ServiceArea:           account.ServiceArea(m.ServiceArea),
		Pincode:               m.Pincode,
		DistrictCityRates:     m.DistrictCityRates,
		ServiceType:           account.ServiceType(m.ServiceType),
		ETDDetails:            m.ETDDetails,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}
