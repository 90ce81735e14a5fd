package vehicle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domainAccount "freight-marketplace/internal/domain/account"
	"freight-marketplace/internal/domain/fleet"
	"freight-marketplace/internal/infrastructure/storage"
	"freight-marketplace/internal/logger"
	appErrors "freight-marketplace/pkg/errors"
	"freight-marketplace/pkg/utils"
)

type Service struct {
	vehicles     fleet.VehicleRepository
	transporters domainAccount.TransporterRepository
	uploader     storage.Uploader
}

func NewService(vehicles fleet.VehicleRepository, transporters domainAccount.TransporterRepository, uploader storage.Uploader) *Service {
	return &Service{
		vehicles:     vehicles,
		transporters: transporters,
		uploader:     uploader,
	}
}

// Register onboards a vehicle for the transporter identified by the session.
// The session's company name must match the stored record so a stale token
// minted before a rename cannot attach vehicles to the wrong fleet.
func (s *Service) Register(ctx context.Context, transporterID uint, claimedCompanyName string, req *RegisterRequest) (*Response, error) {
	req.VehicleNumber = strings.ToUpper(utils.SanitizeString(req.VehicleNumber))

	violations := registrationViolations(req)
	if len(violations) > 0 {
		return nil, appErrors.NewValidationError(violations...)
	}

	transporter, err := s.transporters.GetByID(ctx, transporterID)
	if err != nil {
		return nil, err
	}
	if transporter.CompanyName != claimedCompanyName {
		return nil, appErrors.ErrInsufficientPermissions
	}

	if _, err := s.vehicles.GetByNumber(ctx, req.VehicleNumber); err == nil {
		return nil, fleet.ErrDuplicateVehicleNumber
	} else if !errors.Is(err, fleet.ErrVehicleNotFound) {
		return nil, err
	}

	rcURL, err := s.uploader.Upload(ctx, fmt.Sprintf("vehicles/%s/rc", req.VehicleNumber), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to store RC document: %w", err)
	}
	roadPermitURL, err := s.uploader.Upload(ctx, fmt.Sprintf("vehicles/%s/road-permit", req.VehicleNumber), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to store road permit: %w", err)
	}
	pollutionURL, err := s.uploader.Upload(ctx, fmt.Sprintf("vehicles/%s/pollution-certificate", req.VehicleNumber), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to store pollution certificate: %w", err)
	}

	vehicle := &fleet.Vehicle{
		VehicleName:   req.VehicleName,
		VehicleNumber: req.VehicleNumber,
		VehicleType:   fleet.VehicleType(req.VehicleType),
		BodyType:      fleet.BodyType(req.BodyType),
		Dimension: fleet.Dimension{
			Length: req.Dimension.Length,
			Width:  req.Dimension.Width,
			Height: req.Dimension.Height,
			Unit:   fleet.DimensionUnit(req.Dimension.Unit),
		},
		Capacity:                req.Capacity,
		IsRefrigerated:          req.IsRefrigerated,
		RCURL:                   rcURL,
		RoadPermitURL:           roadPermitURL,
		PollutionCertificateURL: pollutionURL,
		TransporterID:           transporter.ID,
		TransporterName:         transporter.CompanyName,
	}
	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	logger.Info("vehicle registered",
		zap.String("event", "vehicle_registered"),
		zap.Uint("transporterId", transporter.ID),
		zap.String("vehicleNumber", vehicle.VehicleNumber))

	return ToResponse(vehicle), nil
}

func (s *Service) ListByTransporter(ctx context.Context, transporterID uint) ([]*Response, error) {
	vehicles, err := s.vehicles.ListByTransporter(ctx, transporterID)
	if err != nil {
		return nil, err
	}

	responses := make([]*Response, 0, len(vehicles))
	for _, v := range vehicles {
		responses = append(responses, ToResponse(v))
	}

	return responses, nil
}

// registrationViolations covers the tagged fields through the shared
// validator; the enum and dimension rules carry wording the generic messages
// cannot express.
func registrationViolations(req *RegisterRequest) []string {
	violations := utils.ViolationMessages(utils.ValidateStruct(req))

	if req.VehicleType == "" {
		violations = append(violations, "vehicleType is required")
	} else if !fleet.ValidVehicleType(req.VehicleType) {
		violations = append(violations, "vehicleType must be one of truck, trailer, container, tank, other")
	}
	if req.BodyType == "" {
		violations = append(violations, "bodyType is required")
	} else if !fleet.ValidBodyType(req.BodyType) {
		violations = append(violations, "bodyType must be one of open, closed")
	}
	if req.Capacity <= 0 {
		violations = append(violations, "capacity must be a positive number")
	}
	if req.Dimension.Length <= 0 || req.Dimension.Width <= 0 || req.Dimension.Height <= 0 {
		violations = append(violations, "dimension must have positive length, width and height")
	}
	if !fleet.ValidDimensionUnit(req.Dimension.Unit) {
		violations = append(violations, "dimension unit must be one of feet, meters")
	}

	return violations
}
