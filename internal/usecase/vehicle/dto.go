package vehicle

import (
	"time"

	"freight-marketplace/internal/domain/fleet"
)

type RegisterRequest struct {
	VehicleName    string         `json:"vehicleName" validate:"required"`
	VehicleNumber  string         `json:"vehicleNumber" validate:"required,vehicle_plate"`
	VehicleType    string         `json:"vehicleType"`
	BodyType       string         `json:"bodyType"`
	Dimension      DimensionInput `json:"dimension"`
	Capacity       float64        `json:"capacity"`
	IsRefrigerated bool           `json:"isRefrigerated"`
}

type DimensionInput struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

type Response struct {
	ID                      uint            `json:"id"`
	VehicleName             string          `json:"vehicleName"`
	VehicleNumber           string          `json:"vehicleNumber"`
	VehicleType             string          `json:"vehicleType"`
	BodyType                string          `json:"bodyType"`
	Dimension               fleet.Dimension `json:"dimension"`
	Capacity                float64         `json:"capacity"`
	IsRefrigerated          bool            `json:"isRefrigerated"`
	RCURL                   string          `json:"rcUrl,omitempty"`
	RoadPermitURL           string          `json:"roadPermitUrl,omitempty"`
	PollutionCertificateURL string          `json:"pollutionCertificateUrl,omitempty"`
	TransporterID           uint            `json:"transporterId"`
	TransporterName         string          `json:"transporterName"`
	CreatedAt               time.Time       `json:"createdAt"`
}

func ToResponse(v *fleet.Vehicle) *Response {
	if v == nil {
		return nil
	}
	return &Response{
		ID:                      v.ID,
		VehicleName:             v.VehicleName,
		VehicleNumber:           v.VehicleNumber,
		VehicleType:             string(v.VehicleType),
		BodyType:                string(v.BodyType),
		Dimension:               v.Dimension,
		Capacity:                v.Capacity,
		IsRefrigerated:          v.IsRefrigerated,
		RCURL:                   v.RCURL,
		RoadPermitURL:           v.RoadPermitURL,
		PollutionCertificateURL: v.PollutionCertificateURL,
		TransporterID:           v.TransporterID,
		TransporterName:         v.TransporterName,
		CreatedAt:               v.CreatedAt,
	}
}
