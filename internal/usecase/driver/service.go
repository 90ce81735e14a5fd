package driver

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
	drivers      fleet.DriverRepository
	transporters domainAccount.TransporterRepository
	uploader     storage.Uploader
}

func NewService(drivers fleet.DriverRepository, transporters domainAccount.TransporterRepository, uploader storage.Uploader) *Service {
	return &Service{
		drivers:      drivers,
		transporters: transporters,
		uploader:     uploader,
	}
}

func (s *Service) Register(ctx context.Context, transporterID uint, claimedCompanyName string, req *RegisterRequest) (*Response, error) {
	req.PhoneNumber = utils.SanitizePhone(req.PhoneNumber)
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

	if _, err := s.drivers.GetByPhone(ctx, req.PhoneNumber); err == nil {
		return nil, fleet.ErrDuplicateDriverPhone
	} else if !errors.Is(err, fleet.ErrDriverNotFound) {
		return nil, err
	}

	var photoURL string
	if len(req.PhotoContent) > 0 {
		photoURL, err = s.uploader.Upload(ctx, fmt.Sprintf("drivers/%s/%s", req.PhoneNumber, req.PhotoName), req.PhotoContent)
		if err != nil {
			return nil, fmt.Errorf("failed to store driver photo: %w", err)
		}
	}

	driver := &fleet.Driver{
		DriverName:      req.DriverName,
		PhoneNumber:     req.PhoneNumber,
		TransporterID:   transporter.ID,
		TransporterName: transporter.CompanyName,
		VehicleNumber:   req.VehicleNumber,
		Aadhaar:         req.Aadhaar,
		License:         req.License,
		PhotoURL:        photoURL,
	}
	if err := s.drivers.Create(ctx, driver); err != nil {
		return nil, err
	}

	logger.Info("driver registered",
		zap.String("event", "driver_registered"),
		zap.Uint("transporterId", transporter.ID),
		zap.Uint("driverId", driver.ID))

	return ToResponse(driver), nil
}

func (s *Service) ListByTransporter(ctx context.Context, transporterID uint) ([]*Response, error) {
	drivers, err := s.drivers.ListByTransporter(ctx, transporterID)
	if err != nil {
		return nil, err
	}

	responses := make([]*Response, 0, len(drivers))
	for _, d := range drivers {
		responses = append(responses, ToResponse(d))
	}

	return responses, nil
}

func registrationViolations(req *RegisterRequest) []string {
	return utils.ViolationMessages(utils.ValidateStruct(req))
}
