package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-marketplace/internal/config"
	domainAccount "freight-marketplace/internal/domain/account"
	appErrors "freight-marketplace/pkg/errors"
	"freight-marketplace/pkg/utils"
)

type fakeShipperRepo struct {
	shippers []*domainAccount.Shipper
	nextID   uint
}

func (f *fakeShipperRepo) Create(_ context.Context, s *domainAccount.Shipper) error {
	for _, existing := range f.shippers {
		if existing.Email == s.Email {
			return domainAccount.ErrDuplicateEmail
		}
		if existing.MobileNumber == s.MobileNumber {
			return domainAccount.ErrDuplicateMobile
		}
		if existing.GSTNumber == s.GSTNumber {
			return domainAccount.ErrDuplicateGSTNumber
		}
	}
	f.nextID++
	s.ID = f.nextID
	f.shippers = append(f.shippers, s)
	return nil
}

func (f *fakeShipperRepo) GetByID(_ context.Context, id uint) (*domainAccount.Shipper, error) {
	for _, s := range f.shippers {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domainAccount.ErrNotFound
}

func (f *fakeShipperRepo) GetByEmail(_ context.Context, email string) (*domainAccount.Shipper, error) {
	for _, s := range f.shippers {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, domainAccount.ErrNotFound
}

func (f *fakeShipperRepo) GetByMobile(_ context.Context, mobileNumber string) (*domainAccount.Shipper, error) {
	for _, s := range f.shippers {
		if s.MobileNumber == mobileNumber {
			return s, nil
		}
	}
	return nil, domainAccount.ErrNotFound
}

func (f *fakeShipperRepo) GetByGSTNumber(_ context.Context, gstNumber string) (*domainAccount.Shipper, error) {
	for _, s := range f.shippers {
		if s.GSTNumber == gstNumber {
			return s, nil
		}
	}
	return nil, domainAccount.ErrNotFound
}

func (f *fakeShipperRepo) GetByEmailAndGST(_ context.Context, email, gstNumber string) (*domainAccount.Shipper, error) {
	for _, s := range f.shippers {
		if s.Email == email && s.GSTNumber == gstNumber {
			return s, nil
		}
	}
	return nil, domainAccount.ErrNotFound
}

func (f *fakeShipperRepo) SetEmailVerified(_ context.Context, id uint) error {
	for _, s := range f.shippers {
		if s.ID == id {
			s.EmailVerified = true
			return nil
		}
	}
	return domainAccount.ErrNotFound
}

type fakeTransporterRepo struct {
	transporters []*domainAccount.Transporter
	nextID       uint
}

func (f *fakeTransporterRepo) Create(_ context.Context, t *domainAccount.Transporter) error {
	for _, existing := range f.transporters {
		if existing.Email == t.Email {
			return domainAccount.ErrDuplicateEmail
		}
	}
	f.nextID++
	t.ID = f.nextID
	f.transporters = append(f.transporters, t)
	return nil
}

func (f *fakeTransporterRepo) GetByID(_ context.Context, id uint) (*domainAccount.Transporter, error) {
	for _, t := range f.transporters {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainAccount.ErrNotFound
}

func (f *fakeTransporterRepo) GetByEmail(_ context.Context, email string) (*domainAccount.Transporter, error) {
	for _, t := range f.transporters {
		if t.Email == email {
			return t, nil
		}
	}
	return nil, domainAccount.ErrNotFound
}

func (f *fakeTransporterRepo) GetByMobile(_ context.Context, mobileNumber string) (*domainAccount.Transporter, error) {
	for _, t := range f.transporters {
		if t.MobileNumber == mobileNumber {
			return t, nil
		}
	}
	return nil, domainAccount.ErrNotFound
}

func (f *fakeTransporterRepo) GetByGSTNumber(_ context.Context, gstNumber string) (*domainAccount.Transporter, error) {
	for _, t := range f.transporters {
		if t.GSTNumber == gstNumber {
			return t, nil
		}
	}
	return nil, domainAccount.ErrNotFound
}

func (f *fakeTransporterRepo) GetByEmailAndGST(_ context.Context, email, gstNumber string) (*domainAccount.Transporter, error) {
	for _, t := range f.transporters {
		if t.Email == email && t.GSTNumber == gstNumber {
			return t, nil
		}
	}
	return nil, domainAccount.ErrNotFound
}

func (f *fakeTransporterRepo) SetEmailVerified(_ context.Context, id uint) error {
	for _, t := range f.transporters {
		if t.ID == id {
			t.EmailVerified = true
			return nil
		}
	}
	return domainAccount.ErrNotFound
}

func (f *fakeTransporterRepo) GetAll(_ context.Context) ([]*domainAccount.Transporter, error) {
	return f.transporters, nil
}

func newTestService() (*Service, *fakeShipperRepo, *fakeTransporterRepo) {
	shippers := &fakeShipperRepo{}
	transporters := &fakeTransporterRepo{}
	svc := NewService(shippers, transporters, &config.JWTConfig{Secret: "test-secret", ExpiryHours: 1})
	return svc, shippers, transporters
}

func validShipperRequest() *RegisterRequest {
	return &RegisterRequest{
		Name:               "Ravi",
		OwnerName:          "Ravi Kumar",
		OwnerContactNumber: "9876543210",
		Email:              "ravi@acme.example",
		PhoneNumber:        "9876543210",
		Password:           "s3cret-pass",
		CompanyName:        "Acme Freight",
		CompanyAddress:     "12 MG Road, Pune",
		GSTNumber:          "27AAPFU0939F1ZV",
	}
}

func TestRegisterShipper(t *testing.T) {
	svc, shippers, _ := newTestService()

	resp, err := svc.Register(context.Background(), domainAccount.RoleShipper, validShipperRequest())
	require.NoError(t, err)

	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "ravi@acme.example", resp.Email)
	assert.Equal(t, "Acme Freight", resp.CompanyName)
	assert.False(t, resp.IsEmailVerified)

	stored, err := shippers.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.True(t, utils.CheckPassword(stored.PasswordHash, "s3cret-pass"))
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _, _ := newTestService()

	req := validShipperRequest()
	req.Password = ""
	req.GSTNumber = ""

	_, err := svc.Register(context.Background(), domainAccount.RoleShipper, req)
	var validationErr *appErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "password is required")
	assert.Contains(t, validationErr.Violations, "gstNumber is required")
}

func TestRegisterInvalidGSTNumber(t *testing.T) {
	svc, _, _ := newTestService()

	req := validShipperRequest()
	req.GSTNumber = "NOT-A-GST"

	_, err := svc.Register(context.Background(), domainAccount.RoleShipper, req)
	var validationErr *appErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "gstNumber is not a valid GST number")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), domainAccount.RoleShipper, validShipperRequest())
	require.NoError(t, err)

	dup := validShipperRequest()
	dup.PhoneNumber = "9123456789"
	dup.OwnerContactNumber = "9123456789"
	dup.GSTNumber = "29AAPFU0939F1ZV"

	_, err = svc.Register(context.Background(), domainAccount.RoleShipper, dup)
	var validationErr *appErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "email is already registered, please login")
}

func TestRegisterTransporterInvalidServiceArea(t *testing.T) {
	svc, _, _ := newTestService()

	req := validShipperRequest()
	req.ServiceArea = "galaxy"

	_, err := svc.Register(context.Background(), domainAccount.RoleTransporter, req)
	var validationErr *appErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "serviceArea must be one of district, cities, all_india")
}

func TestLoginWithEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), domainAccount.RoleShipper, validShipperRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), domainAccount.RoleShipper, &LoginRequest{
		Email:    "ravi@acme.example",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, uint(1), resp.Data.ID)

	claims, err := utils.ValidateSessionToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "shipper", claims.UserType)
	assert.Equal(t, "Acme Freight", claims.CompanyName)
}

func TestLoginPrefersEmailOverMobile(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), domainAccount.RoleShipper, validShipperRequest())
	require.NoError(t, err)

	// Mobile belongs to nobody; the email lookup must win.
	resp, err := svc.Login(context.Background(), domainAccount.RoleShipper, &LoginRequest{
		Email:        "ravi@acme.example",
		MobileNumber: "0000000000",
		Password:     "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.Data.ID)
}

func TestLoginUnknownAccount(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), domainAccount.RoleShipper, &LoginRequest{
		Email:    "nobody@acme.example",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), domainAccount.RoleShipper, validShipperRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), domainAccount.RoleShipper, &LoginRequest{
		Email:    "ravi@acme.example",
		Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestLoginMissingIdentifier(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), domainAccount.RoleShipper, &LoginRequest{Password: "pass"})
	var validationErr *appErrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestAllTransporters(t *testing.T) {
	svc, _, transporters := newTestService()

	transporters.transporters = []*domainAccount.Transporter{
		{ID: 1, CompanyName: "Fast Haul", Email: "ops@fasthaul.example"},
		{ID: 2, CompanyName: "Steady Cargo", Email: "ops@steady.example"},
	}

	list, err := svc.AllTransporters(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Fast Haul", list[0].CompanyName)
}
