package account

import (
	"time"

	appErrors "freight-marketplace/pkg/errors"
)

// Role distinguishes the two account kinds of the marketplace.
type Role string

const (
	RoleShipper     Role = "shipper"
	RoleTransporter Role = "transporter"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleShipper:
		return RoleShipper, nil
	case RoleTransporter:
		return RoleTransporter, nil
	default:
		return "", appErrors.ErrInvalidUserType
	}
}

func (r Role) String() string {
	return string(r)
}

type ServiceArea string

const (
	ServiceAreaDistrict ServiceArea = "district"
	ServiceAreaCities   ServiceArea = "cities"
	ServiceAreaAllIndia ServiceArea = "all_india"
)

type ServiceType string

const (
	ServiceTypeGodownToGodown ServiceType = "godown_to_godown"
	ServiceTypeDoorToDoor     ServiceType = "door_to_door"
	ServiceTypeBoth           ServiceType = "both"
)

// Shipper is a cargo owner requesting transport.
type Shipper struct {
	ID                    uint
	Name                  string
	MobileNumber          string
	Designation           string
	CompanyName           string
	CompanyAddress        string
	Email                 string
	EmailVerified         bool
	PasswordHash          string
	CustomerServiceNumber string
	GSTNumber             string
	CINNumber             string
	OwnerName             string
	OwnerContactNumber    string
	POCName               string
	POCEmail              string
	POCDesignation        string
	POCContactNumber      string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Transporter is a carrier fulfilling transport. Shares the company profile
// shape of Shipper and adds fleet metadata.
type Transporter struct {
	ID                    uint
	Name                  string
	MobileNumber          string
	Designation           string
	CompanyName           string
	CompanyAddress        string
	Email                 string
	EmailVerified         bool
	PasswordHash          string
	CustomerServiceNumber string
	GSTNumber             string
	CINNumber             string
	OwnerName             string
	OwnerContactNumber    string
	FleetCount            int
	ServiceArea           ServiceArea
	Pincode               string
	DistrictCityRates     string
	ServiceType           ServiceType
	ETDDetails            string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Credential is the role-independent view the verification flows operate on.
type Credential struct {
	ID            uint
	Email         string
	MobileNumber  string
	CompanyName   string
	GSTNumber     string
	EmailVerified bool
}
