package account

import (
	"time"

	domainAccount "freight-marketplace/internal/domain/account"
)

// RegisterRequest carries the profile fields of both roles; the transporter
// fleet metadata is ignored for shipper registrations.
type RegisterRequest struct {
	Name               string `json:"name"`
	Designation        string `json:"designation"`
	OwnerName          string `json:"ownerName" validate:"required"`
	OwnerContactNumber string `json:"ownerContactNumber" validate:"required,indian_mobile"`
	Email              string `json:"email" validate:"required"`
	PhoneNumber        string `json:"phoneNumber" validate:"required,indian_mobile"`
	Password           string `json:"password" validate:"required"`
	CompanyName        string `json:"companyName" validate:"required"`
	CompanyAddress     string `json:"companyAddress" validate:"required"`
	GSTNumber          string `json:"gstNumber" validate:"required,gst"`
	CINNumber          string `json:"cinNumber"`

	CustomerServiceNumber string `json:"customerServiceNumber"`
	POCName               string `json:"pocName"`
	POCEmail              string `json:"pocEmail"`
	POCDesignation        string `json:"pocDesignation"`
	POCContactNumber      string `json:"pocContactNumber"`

	FleetCount        int    `json:"fleetCount"`
	ServiceArea       string `json:"serviceArea"`
	Pincode           string `json:"pincode"`
	DistrictCityRates string `json:"districtCityRates"`
	ServiceType       string `json:"serviceType"`
	ETDDetails        string `json:"etdDetails"`
}

type LoginRequest struct {
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password"`
}

// ProfileResponse is an account record with the password stripped.
type ProfileResponse struct {
	ID                    uint      `json:"id"`
	Name                  string    `json:"name,omitempty"`
	MobileNumber          string    `json:"mobileNumber,omitempty"`
	Designation           string    `json:"designation,omitempty"`
	CompanyName           string    `json:"companyName"`
	CompanyAddress        string    `json:"companyAddress,omitempty"`
	Email                 string    `json:"email"`
	IsEmailVerified       bool      `json:"isEmailVerified"`
	CustomerServiceNumber string    `json:"customerServiceNumber,omitempty"`
	GSTNumber             string    `json:"gstNumber,omitempty"`
	CINNumber             string    `json:"cinNumber,omitempty"`
	OwnerName             string    `json:"ownerName,omitempty"`
	OwnerContactNumber    string    `json:"ownerContactNumber,omitempty"`
	POCName               string    `json:"pocName,omitempty"`
	POCEmail              string    `json:"pocEmail,omitempty"`
	POCDesignation        string    `json:"pocDesignation,omitempty"`
	POCContactNumber      string    `json:"pocContactNumber,omitempty"`
	FleetCount            int       `json:"fleetCount,omitempty"`
	ServiceArea           string    `json:"serviceArea,omitempty"`
	Pincode               string    `json:"pincode,omitempty"`
	DistrictCityRates     string    `json:"districtCityRates,omitempty"`
	ServiceType           string    `json:"serviceType,omitempty"`
	ETDDetails            string    `json:"etdDetails,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// LoginResponse carries the signed session plus a short profile summary.
type LoginResponse struct {
	Token string       `json:"token"`
	Data  LoginProfile `json:"data"`
}

type LoginProfile struct {
	ID           uint   `json:"id"`
	CompanyName  string `json:"companyName"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
}

func ToShipperResponse(s *domainAccount.Shipper) *ProfileResponse {
	if s == nil {
		return nil
	}
	return &ProfileResponse{
		ID:                    s.ID,
		Name:                  s.Name,
		MobileNumber:          s.MobileNumber,
		Designation:           s.Designation,
		CompanyName:           s.CompanyName,
		CompanyAddress:        s.CompanyAddress,
		Email:                 s.Email,
		IsEmailVerified:       s.EmailVerified,
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

func ToTransporterResponse(t *domainAccount.Transporter) *ProfileResponse {
	if t == nil {
		return nil
	}
	return &ProfileResponse{
		ID:                    t.ID,
		Name:                  t.Name,
		MobileNumber:          t.MobileNumber,
		Designation:           t.Designation,
		CompanyName:           t.CompanyName,
		CompanyAddress:        t.CompanyAddress,
		Email:                 t.Email,
		IsEmailVerified:       t.EmailVerified,
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
