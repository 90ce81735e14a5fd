package shipment

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	domainShipment "freight-marketplace/internal/domain/shipment"
	"freight-marketplace/internal/infrastructure/storage"
	"freight-marketplace/internal/logger"
	appErrors "freight-marketplace/pkg/errors"
)

type Service struct {
	shipments domainShipment.ShipmentRepository
	uploader  storage.Uploader
}

func NewService(shipments domainShipment.ShipmentRepository, uploader storage.Uploader) *Service {
	return &Service{
		shipments: shipments,
		uploader:  uploader,
	}
}

func (s *Service) Create(ctx context.Context, shipperID uint, req *CreateRequest) (*Response, error) {
	violations, deliveryDate := creationViolations(req)
	if len(violations) > 0 {
		return nil, appErrors.NewValidationError(violations...)
	}

	billURL, err := s.uploader.Upload(ctx, fmt.Sprintf("shipments/%d/ebay-bill", shipperID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to store e-way bill: %w", err)
	}

	shipment := &domainShipment.Shipment{
		ShipperID:             shipperID,
		PickupLocation:        req.PickupLocation,
		DropLocation:          req.DropLocation,
		MaterialType:          req.MaterialType,
		CoolingType:           req.CoolingType,
		WeightKg:              req.WeightKg,
		LengthFt:              req.LengthFt,
		WidthFt:               req.WidthFt,
		HeightFt:              req.HeightFt,
		EstimatedDeliveryDate: deliveryDate,
		ValueINR:              req.ValueINR,
		ShipmentType:          domainShipment.ShipmentType(req.ShipmentType),
		EBayBillURL:           billURL,
	}
	if err := s.shipments.Create(ctx, shipment); err != nil {
		return nil, err
	}

	logger.Info("shipment created",
		zap.String("event", "shipment_created"),
		zap.Uint("shipperId", shipperID),
		zap.Uint("shipmentId", shipment.ID))

	return ToResponse(shipment), nil
}

func (s *Service) ListByShipper(ctx context.Context, shipperID uint) ([]*Response, error) {
	shipments, err := s.shipments.ListByShipper(ctx, shipperID)
	if err != nil {
		return nil, err
	}

	responses := make([]*Response, 0, len(shipments))
	for _, shp := range shipments {
		responses = append(responses, ToResponse(shp))
	}

	return responses, nil
}

func creationViolations(req *CreateRequest) ([]string, time.Time) {
	var violations []string

	if req.PickupLocation == "" {
		violations = append(violations, "pickupLocation is required")
	}
	if req.DropLocation == "" {
		violations = append(violations, "dropLocation is required")
	}
	if req.MaterialType == "" {
		violations = append(violations, "materialType is required")
	}
	if req.WeightKg <= 0 {
		violations = append(violations, "weight must be a positive number")
	}
	if req.LengthFt <= 0 || req.WidthFt <= 0 || req.HeightFt <= 0 {
		violations = append(violations, "length, width and height must be positive numbers")
	}
	if req.ValueINR <= 0 {
		violations = append(violations, "value must be a positive number")
	}
	if req.ShipmentType == "" {
		violations = append(violations, "shipmentType is required")
	} else if !domainShipment.ValidShipmentType(req.ShipmentType) {
		violations = append(violations, "shipmentType must be one of full_truck_load, part_truck_load")
	}

	var deliveryDate time.Time
	if req.EstimatedDeliveryDate == "" {
		violations = append(violations, "estimatedDeliveryDate is required")
	} else {
		var err error
		deliveryDate, err = time.Parse("2006-01-02", req.EstimatedDeliveryDate)
		if err != nil {
			deliveryDate, err = time.Parse(time.RFC3339, req.EstimatedDeliveryDate)
		}
		if err != nil {
			violations = append(violations, "estimatedDeliveryDate must be a date in YYYY-MM-DD format")
		}
	}

	return violations, deliveryDate
}
