package account

import "context"

type ShipperRepository interface {
	Create(ctx context.Context, s *Shipper) error
	GetByID(ctx context.Context, id uint) (*Shipper, error)
	GetByEmail(ctx context.Context, email string) (*Shipper, error)
	GetByMobile(ctx context.Context, mobileNumber string) (*Shipper, error)
	GetByGSTNumber(ctx context.Context, gstNumber string) (*Shipper, error)
	GetByEmailAndGST(ctx context.Context, email, gstNumber string) (*Shipper, error)
	SetEmailVerified(ctx context.Context, id uint) error
}

type TransporterRepository interface {
	Create(ctx context.Context, t *Transporter) error
	GetByID(ctx context.Context, id uint) (*Transporter, error)
	GetByEmail(ctx context.Context, email string) (*Transporter, error)
	GetByMobile(ctx context.Context, mobileNumber string) (*Transporter, error)
	GetByGSTNumber(ctx context.Context, gstNumber string) (*Transporter, error)
	GetByEmailAndGST(ctx context.Context, email, gstNumber string) (*Transporter, error)
	SetEmailVerified(ctx context.Context, id uint) error
	GetAll(ctx context.Context) ([]*Transporter, error)
}

// CredentialRepository is the slice of an account repository the verification
// service needs, independent of the concrete role.
type CredentialRepository interface {
	FindCredential(ctx context.Context, email, gstNumber string) (*Credential, error)
	SetEmailVerified(ctx context.Context, id uint) error
}

// Directory resolves a role to the repository that owns its records. Invalid
// roles surface as a typed error rather than a panic.
type Directory struct {
	Shippers     ShipperRepository
	Transporters TransporterRepository
}

func (d *Directory) ForRole(role Role) (CredentialRepository, error) {
	switch role {
	case RoleShipper:
		return shipperCredentials{d.Shippers}, nil
	case RoleTransporter:
		return transporterCredentials{d.Transporters}, nil
	default:
		_, err := ParseRole(string(role))
		return nil, err
	}
}

type shipperCredentials struct {
	repo ShipperRepository
}

func (s shipperCredentials) FindCredential(ctx context.Context, email, gstNumber string) (*Credential, error) {
	shipper, err := s.repo.GetByEmailAndGST(ctx, email, gstNumber)
	if err != nil {
		return nil, err
	}
	return &Credential{
		ID:            shipper.ID,
		Email:         shipper.Email,
		MobileNumber:  shipper.MobileNumber,
		CompanyName:   shipper.CompanyName,
		GSTNumber:     shipper.GSTNumber,
		EmailVerified: shipper.EmailVerified,
	}, nil
}

func (s shipperCredentials) SetEmailVerified(ctx context.Context, id uint) error {
	return s.repo.SetEmailVerified(ctx, id)
}

type transporterCredentials struct {
	repo TransporterRepository
}

func (t transporterCredentials) FindCredential(ctx context.Context, email, gstNumber string) (*Credential, error) {
	transporter, err := t.repo.GetByEmailAndGST(ctx, email, gstNumber)
	if err != nil {
		return nil, err
	}
	return &Credential{
		ID:            transporter.ID,
		Email:         transporter.Email,
		MobileNumber:  transporter.MobileNumber,
		CompanyName:   transporter.CompanyName,
		GSTNumber:     transporter.GSTNumber,
		EmailVerified: transporter.EmailVerified,
	}, nil
}

func (t transporterCredentials) SetEmailVerified(ctx context.Context, id uint) error {
	return t.repo.SetEmailVerified(ctx, id)
}
