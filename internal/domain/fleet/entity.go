package fleet

import "time"

type VehicleType string

const (
	VehicleTypeTruck     VehicleType = "truck"
	VehicleTypeTrailer   VehicleType = "trailer"
	VehicleTypeContainer VehicleType = "container"
	VehicleTypeTank      VehicleType = "tank"
	VehicleTypeOther     VehicleType = "other"
)

func ValidVehicleType(s string) bool {
	switch VehicleType(s) {
	case VehicleTypeTruck, VehicleTypeTrailer, VehicleTypeContainer, VehicleTypeTank, VehicleTypeOther:
		return true
	}
	return false
}

type BodyType string

const (
	BodyTypeOpen   BodyType = "open"
	BodyTypeClosed BodyType = "closed"
)

func ValidBodyType(s string) bool {
	switch BodyType(s) {
	case BodyTypeOpen, BodyTypeClosed:
		return true
	}
	return false
}

type DimensionUnit string

const (
	UnitFeet   DimensionUnit = "feet"
	UnitMeters DimensionUnit = "meters"
)

func ValidDimensionUnit(s string) bool {
	switch DimensionUnit(s) {
	case UnitFeet, UnitMeters:
		return true
	}
	return false
}

// Dimension describes the cargo bed of a vehicle.
type Dimension struct {
	Length float64       `json:"length"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Unit   DimensionUnit `json:"unit"`
}

// Vehicle is owned by exactly one transporter.
type Vehicle struct {
	ID                      uint
	VehicleName             string
	VehicleNumber           string
	VehicleType             VehicleType
	BodyType                BodyType
	Dimension               Dimension
	Capacity                float64
	IsRefrigerated          bool
	RCURL                   string
	RoadPermitURL           string
	PollutionCertificateURL string
	TransporterID           uint
	TransporterName         string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// Driver is owned by exactly one transporter.
type Driver struct {
	ID              uint
	DriverName      string
	PhoneNumber     string
	TransporterID   uint
	TransporterName string
	VehicleNumber   string
	Aadhaar         string
	License         string
	PhotoURL        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
