package consignment

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	domainShipment "freight-marketplace/internal/domain/shipment"
	"freight-marketplace/internal/logger"
	appErrors "freight-marketplace/pkg/errors"
)

type Service struct {
	consignments domainShipment.ConsignmentRepository
	shipments    domainShipment.ShipmentRepository
}

func NewService(consignments domainShipment.ConsignmentRepository, shipments domainShipment.ShipmentRepository) *Service {
	return &Service{
		consignments: consignments,
		shipments:    shipments,
	}
}

// Create attaches a consignment to a shipment. The pre-check gives a clean
// error in the common case; the unique index on shipment_id is what actually
// holds the one-per-shipment invariant under concurrent requests.
func (s *Service) Create(ctx context.Context, transporterID uint, req *CreateRequest) (*Response, error) {
	violations, pickupDate, deliveryDate := creationViolations(req)
	if len(violations) > 0 {
		return nil, appErrors.NewValidationError(violations...)
	}

	shipment, err := s.shipments.GetByID(ctx, req.ShipmentID)
	if err != nil {
		return nil, err
	}

	if _, err := s.consignments.GetByShipmentID(ctx, req.ShipmentID); err == nil {
		return nil, domainShipment.ErrDuplicateConsignment
	} else if !errors.Is(err, domainShipment.ErrConsignmentNotFound) {
		return nil, err
	}

	source := req.Source
	if source == "" {
		source = shipment.PickupLocation
	}
	destination := req.Destination
	if destination == "" {
		destination = shipment.DropLocation
	}

	consignment := &domainShipment.Consignment{
		ShipmentID:    shipment.ID,
		TransporterID: transporterID,
		Status:        domainShipment.StatusPending,
		Source:        source,
		Destination:   destination,
		PickupDate:    pickupDate,
		DeliveryDate:  deliveryDate,
	}
	if err := s.consignments.Create(ctx, consignment); err != nil {
		return nil, err
	}

	logger.Info("consignment created",
		zap.String("event", "consignment_created"),
		zap.Uint("shipmentId", shipment.ID),
		zap.Uint("transporterId", transporterID))

	return ToResponse(consignment), nil
}

func (s *Service) All(ctx context.Context) ([]*Response, error) {
	consignments, err := s.consignments.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(consignments), nil
}

func (s *Service) ByStatus(ctx context.Context, status string) ([]*Response, error) {
	parsed, err := domainShipment.ParseConsignmentStatus(status)
	if err != nil {
		return nil, err
	}

	consignments, err := s.consignments.ListByStatus(ctx, parsed)
	if err != nil {
		return nil, err
	}
	return toResponses(consignments), nil
}

func toResponses(consignments []*domainShipment.Consignment) []*Response {
	responses := make([]*Response, 0, len(consignments))
	for _, c := range consignments {
		responses = append(responses, ToResponse(c))
	}
	return responses
}

func creationViolations(req *CreateRequest) (violations []string, pickupDate, deliveryDate *time.Time) {
	if req.ShipmentID == 0 {
		violations = append(violations, "shipmentId is required")
	}

	parseDate := func(field, value string) *time.Time {
		if value == "" {
			return nil
		}
		parsed, err := time.Parse("2006-01-02", value)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, value)
		}
		if err != nil {
			violations = append(violations, field+" must be a date in YYYY-MM-DD format")
			return nil
		}
		return &parsed
	}

	pickupDate = parseDate("pickupDate", req.PickupDate)
	deliveryDate = parseDate("deliveryDate", req.DeliveryDate)

	return violations, pickupDate, deliveryDate
}
