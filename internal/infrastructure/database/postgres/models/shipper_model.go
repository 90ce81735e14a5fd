package models

import (
	"time"

	"freight-marketplace/internal/domain/account"
)

type ShipperModel struct {
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
	POCName               string    `gorm:"column:poc_name;size:255"`
	POCEmail              string    `gorm:"column:poc_email"`
	POCDesignation        string    `gorm:"column:poc_designation;size:255"`
	POCContactNumber      string    `gorm:"column:poc_contact_number"`
	CreatedAt             time.Time `gorm:"column:created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at"`
}

func (ShipperModel) TableName() string {
	return "shippers"
}

func ToShipperModel(s *account.Shipper) *ShipperModel {
	return &ShipperModel{
		ID:                    s.ID,
		Name:                  s.Name,
		MobileNumber:          s.MobileNumber,
		Designation:           s.Designation,
		CompanyName:           s.CompanyName,
		CompanyAddress:        s.CompanyAddress,
		Email:                 s.Email,
		EmailVerified:         s.EmailVerified,
		Password:              s.PasswordHash,
		CustomerServiceNumber: s.CustomerServiceNumber,
		GSTNumber:             s.GSTNumber,
		CINNumber:             s.CINNumber,
		OwnerName:             s.OwnerName,
		OwnerContactNumber:    s.OwnerContactNumber,
		POCName:               s.POCName,
		POCEmail:              s.POCEmail,
		POCDesignation:        s.POCDesignation,
		POCContactNumber:      s.POCContactNumber,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

func ToShipperEntity(m *ShipperModel) *account.Shipper {
	return &account.Shipper{
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
		POCName:               m.POCName,
		POCEmail:              m.POCEmail,
		POCDesignation:        m.POCDesignation,
		POCContactNumber:      m.POCContactNumber,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}
