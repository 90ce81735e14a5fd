package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"freight-marketplace/internal/config"
	domainAccount "freight-marketplace/internal/domain/account"
	"freight-marketplace/internal/logger"
	appErrors "freight-marketplace/pkg/errors"
	"freight-marketplace/pkg/utils"
)

// Service owns registration, login and profile reads for both roles.
type Service struct {
	shippers     domainAccount.ShipperRepository
	transporters domainAccount.TransporterRepository
	jwtConfig    *config.JWTConfig
}

func NewService(shippers domainAccount.ShipperRepository, transporters domainAccount.TransporterRepository, jwtConfig *config.JWTConfig) *Service {
	return &Service{
		shippers:     shippers,
		transporters: transporters,
		jwtConfig:    jwtConfig,
	}
}

func (s *Service) Register(ctx context.Context, role domainAccount.Role, req *RegisterRequest) (*ProfileResponse, error) {
	req.Email = utils.SanitizeEmail(req.Email)
	req.PhoneNumber = utils.SanitizePhone(req.PhoneNumber)
	req.GSTNumber = utils.SanitizeString(req.GSTNumber)

	violations := registrationViolations(req)
	if role == domainAccount.RoleTransporter {
		violations = append(violations, transporterViolations(req)...)
	}
	violations = append(violations, s.uniquenessViolations(ctx, role, req)...)
	if len(violations) > 0 {
		return nil, appErrors.NewValidationError(violations...)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var resp *ProfileResponse
	switch role {
	case domainAccount.RoleShipper:
		shipper := &domainAccount.Shipper{
			Name:                  req.Name,
			MobileNumber:          req.PhoneNumber,
			Designation:           req.Designation,
			CompanyName:           req.CompanyName,
			CompanyAddress:        req.CompanyAddress,
			Email:                 req.Email,
			PasswordHash:          passwordHash,
			CustomerServiceNumber: req.CustomerServiceNumber,
			GSTNumber:             req.GSTNumber,
			CINNumber:             req.CINNumber,
			OwnerName:             req.OwnerName,
			OwnerContactNumber:    req.OwnerContactNumber,
			POCName:               req.POCName,
			POCEmail:              req.POCEmail,
			POCDesignation:        req.POCDesignation,
			POCContactNumber:      req.POCContactNumber,
		}
		if err := s.shippers.Create(ctx, shipper); err != nil {
			return nil, err
		}
		resp = ToShipperResponse(shipper)
	case domainAccount.RoleTransporter:
		transporter := &domainAccount.Transporter{
			Name:                  req.Name,
			MobileNumber:          req.PhoneNumber,
			Designation:           req.Designation,
			CompanyName:           req.CompanyName,
			CompanyAddress:        req.CompanyAddress,
			Email:                 req.Email,
			PasswordHash:          passwordHash,
			CustomerServiceNumber: req.CustomerServiceNumber,
			GSTNumber:             req.GSTNumber,
			CINNumber:             req.CINNumber,
			OwnerName:             req.OwnerName,
			OwnerContactNumber:    req.OwnerContactNumber,
			FleetCount:            req.FleetCount,
			ServiceArea:           domainAccount.ServiceArea(req.ServiceArea),
			Pincode:               req.Pincode,
			DistrictCityRates:     req.DistrictCityRates,
			ServiceType:           domainAccount.ServiceType(req.ServiceType),
			ETDDetails:            req.ETDDetails,
		}
		if err := s.transporters.Create(ctx, transporter); err != nil {
			return nil, err
		}
		resp = ToTransporterResponse(transporter)
	default:
		return nil, appErrors.ErrInvalidUserType
	}

	logger.Info("account registered",
		zap.String("event", "account_registered"),
		zap.String("userType", role.String()),
		zap.Uint("id", resp.ID))

	return resp, nil
}

// uniquenessViolations reports identifiers already taken by another account of
// the same role. The database unique indexes remain the final arbiter; these
// checks exist to fold duplicates into the same response as the format rules.
func (s *Service) uniquenessViolations(ctx context.Context, role domainAccount.Role, req *RegisterRequest) []string {
	var violations []string

	check := func(field string, lookup func() error) {
		err := lookup()
		switch {
		case err == nil:
			violations = append(violations, fmt.Sprintf("%s is already registered, please login", field))
		case errors.Is(err, domainAccount.ErrNotFound):
		default:
			logger.Warn("uniqueness lookup failed",
				zap.String("event", "registration_lookup_failed"),
				zap.String("field", field),
				zap.Error(err))
		}
	}

	switch role {
	case domainAccount.RoleShipper:
		if req.Email != "" {
			check("email", func() error { _, err := s.shippers.GetByEmail(ctx, req.Email); return err })
		}
		if req.PhoneNumber != "" {
			check("phoneNumber", func() error { _, err := s.shippers.GetByMobile(ctx, req.PhoneNumber); return err })
		}
		if req.GSTNumber != "" {
			check("gstNumber", func() error { _, err := s.shippers.GetByGSTNumber(ctx, req.GSTNumber); return err })
		}
	case domainAccount.RoleTransporter:
		if req.Email != "" {
			check("email", func() error { _, err := s.transporters.GetByEmail(ctx, req.Email); return err })
		}
		if req.PhoneNumber != "" {
			check("phoneNumber", func() error { _, err := s.transporters.GetByMobile(ctx, req.PhoneNumber); return err })
		}
		if req.GSTNumber != "" {
			check("gstNumber", func() error { _, err := s.transporters.GetByGSTNumber(ctx, req.GSTNumber); return err })
		}
	}

	return violations
}

func transporterViolations(req *RegisterRequest) []string {
	var violations []string

	if req.ServiceArea != "" {
		switch domainAccount.ServiceArea(req.ServiceArea) {
		case domainAccount.ServiceAreaDistrict, domainAccount.ServiceAreaCities, domainAccount.ServiceAreaAllIndia:
		default:
			violations = append(violations, "serviceArea must be one of district, cities, all_india")
		}
	}
	if req.ServiceType != "" {
		switch domainAccount.ServiceType(req.ServiceType) {
		case domainAccount.ServiceTypeGodownToGodown, domainAccount.ServiceTypeDoorToDoor, domainAccount.ServiceTypeBoth:
		default:
			violations = append(violations, "serviceType must be one of godown_to_godown, door_to_door, both")
		}
	}

	return violations
}

// Login authenticates by email or mobile number. When both identifiers are
// present the email is used. Lookup misses and password mismatches collapse
// into the same error so callers cannot probe which accounts exist.
func (s *Service) Login(ctx context.Context, role domainAccount.Role, req *LoginRequest) (*LoginResponse, error) {
	req.Email = utils.SanitizeEmail(req.Email)
	req.MobileNumber = utils.SanitizePhone(req.MobileNumber)

	if req.Password == "" || (req.Email == "" && req.MobileNumber == "") {
		return nil, appErrors.NewValidationError("email or mobileNumber, and password are required")
	}

	var (
		id           uint
		email        string
		mobileNumber string
		companyName  string
		passwordHash string
		err          error
	)

	switch role {
	case domainAccount.RoleShipper:
		var shipper *domainAccount.Shipper
		if req.Email != "" {
			shipper, err = s.shippers.GetByEmail(ctx, req.Email)
		} else {
			shipper, err = s.shippers.GetByMobile(ctx, req.MobileNumber)
		}
		if shipper != nil {
			id, email, mobileNumber, companyName, passwordHash = shipper.ID, shipper.Email, shipper.MobileNumber, shipper.CompanyName, shipper.PasswordHash
		}
	case domainAccount.RoleTransporter:
		var transporter *domainAccount.Transporter
		if req.Email != "" {
			transporter, err = s.transporters.GetByEmail(ctx, req.Email)
		} else {
			transporter, err = s.transporters.GetByMobile(ctx, req.MobileNumber)
		}
		if transporter != nil {
			id, email, mobileNumber, companyName, passwordHash = transporter.ID, transporter.Email, transporter.MobileNumber, transporter.CompanyName, transporter.PasswordHash
		}
	default:
		return nil, appErrors.ErrInvalidUserType
	}
	if err != nil {
		if errors.Is(err, domainAccount.ErrNotFound) {
			logger.Info("login rejected",
				zap.String("event", "login_unknown_account"),
				zap.String("userType", role.String()))
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(passwordHash, req.Password) {
		logger.Info("login rejected",
			zap.String("event", "login_bad_password"),
			zap.String("userType", role.String()),
			zap.Uint("id", id))
		return nil, appErrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(&utils.SessionClaims{
		UserID:       id,
		Email:        email,
		MobileNumber: mobileNumber,
		CompanyName:  companyName,
		UserType:     role.String(),
	}, s.jwtConfig.Secret, time.Duration(s.jwtConfig.ExpiryHours)*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	logger.Info("login succeeded",
		zap.String("event", "login_succeeded"),
		zap.String("userType", role.String()),
		zap.Uint("id", id))

	return &LoginResponse{
		Token: token,
		Data: LoginProfile{
			ID:           id,
			CompanyName:  companyName,
			Email:        email,
			MobileNumber: mobileNumber,
		},
	}, nil
}

func (s *Service) Profile(ctx context.Context, role domainAccount.Role, id uint) (*ProfileResponse, error) {
	switch role {
	case domainAccount.RoleShipper:
		shipper, err := s.shippers.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return ToShipperResponse(shipper), nil
	case domainAccount.RoleTransporter:
		transporter, err := s.transporters.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return ToTransporterResponse(transporter), nil
	default:
		return nil, appErrors.ErrInvalidUserType
	}
}

func (s *Service) AllTransporters(ctx context.Context) ([]*ProfileResponse, error) {
	transporters, err := s.transporters.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*ProfileResponse, 0, len(transporters))
	for _, t := range transporters {
		responses = append(responses, ToTransporterResponse(t))
	}

	return responses, nil
}
