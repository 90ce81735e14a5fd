package driver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainAccount "freight-marketplace/internal/domain/account"
	"freight-marketplace/internal/domain/fleet"
	"freight-marketplace/internal/infrastructure/storage"
	appErrors "freight-marketplace/pkg/errors"
)

type fakeDriverRepo struct {
	drivers []*fleet.Driver
	nextID  uint
}

func (f *fakeDriverRepo) Create(_ context.Context, d *fleet.Driver) error {
	for _, existing := range f.drivers {
		if existing.PhoneNumber == d.PhoneNumber {
			return fleet.ErrDuplicateDriverPhone
		}
	}
	f.nextID++
	d.ID = f.nextID
	f.drivers = append(f.drivers, d)
	return nil
}

func (f *fakeDriverRepo) GetByPhone(_ context.Context, phoneNumber string) (*fleet.Driver, error) {
	for _, d := range f.drivers {
		if d.PhoneNumber == phoneNumber {
			return d, nil
		}
	}
	return nil, fleet.ErrDriverNotFound
}

func (f *fakeDriverRepo) ListByTransporter(_ context.Context, transporterID uint) ([]*fleet.Driver, error) {
	var out []*fleet.Driver
	for _, d := range f.drivers {
		if d.TransporterID == transporterID {
			out = append(out, d)
		}
	}
	return out, nil
}

type stubTransporterRepo struct {
	transporter *domainAccount.Transporter
}

func (s *stubTransporterRepo) Create(context.Context, *domainAccount.Transporter) error { return nil }

func (s *stubTransporterRepo) GetByID(_ context.Context, id uint) (*domainAccount.Transporter, error) {
	if s.transporter == nil || s.transporter.ID != id {
		return nil, domainAccount.ErrNotFound
	}
	return s.transporter, nil
}

func (s *stubTransporterRepo) GetByEmail(context.Context, string) (*domainAccount.Transporter, error) {
	return nil, domainAccount.ErrNotFound
}

func (s *stubTransporterRepo) GetByMobile(context.Context, string) (*domainAccount.Transporter, error) {
	return nil, domainAccount.ErrNotFound
}

func (s *stubTransporterRepo) GetByGSTNumber(context.Context, string) (*domainAccount.Transporter, error) {
	return nil, domainAccount.ErrNotFound
}

func (s *stubTransporterRepo) GetByEmailAndGST(context.Context, string, string) (*domainAccount.Transporter, error) {
	return nil, domainAccount.ErrNotFound
}

func (s *stubTransporterRepo) SetEmailVerified(context.Context, uint) error { return nil }

func (s *stubTransporterRepo) GetAll(context.Context) ([]*domainAccount.Transporter, error) {
	return nil, nil
}

func newTestService() (*Service, *fakeDriverRepo) {
	drivers := &fakeDriverRepo{}
	transporters := &stubTransporterRepo{
		transporter: &domainAccount.Transporter{ID: 3, CompanyName: "Fast Haul"},
	}
	svc := NewService(drivers, transporters, storage.NewPlaceholder("https://files.example"))
	return svc, drivers
}

func validRequest() *RegisterRequest {
	return &RegisterRequest{
		DriverName:    "Suresh",
		PhoneNumber:   "9123456789",
		VehicleNumber: "mh12ab1234",
		Aadhaar:       "123412341234",
		License:       "MH12 20200012345",
		PhotoName:     "photo.jpg",
		PhotoContent:  []byte("jpeg-bytes"),
	}
}

func TestRegisterDriver(t *testing.T) {
	svc, drivers := newTestService()

	resp, err := svc.Register(context.Background(), 3, "Fast Haul", validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Suresh", resp.DriverName)
	assert.Equal(t, "MH12AB1234", resp.VehicleNumber)
	assert.Equal(t, "Fast Haul", resp.TransporterName)
	assert.Equal(t, "https://files.example/drivers/9123456789/photo.jpg", resp.PhotoURL)
	require.Len(t, drivers.drivers, 1)
}

func TestRegisterDriverWithoutPhoto(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.PhotoName = ""
	req.PhotoContent = nil

	resp, err := svc.Register(context.Background(), 3, "Fast Haul", req)
	require.NoError(t, err)
	assert.Empty(t, resp.PhotoURL)
}

func TestRegisterDriverInvalidNumbers(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.PhoneNumber = "12345"
	req.Aadhaar = "9999"

	_, err := svc.Register(context.Background(), 3, "Fast Haul", req)
	var validationErr *appErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "phoneNumber must be a 10 digit mobile number")
	assert.Contains(t, validationErr.Violations, "aadhaar must be a 12 digit number")
}

func TestRegisterDriverDuplicatePhone(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), 3, "Fast Haul", validRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), 3, "Fast Haul", validRequest())
	assert.ErrorIs(t, err, fleet.ErrDuplicateDriverPhone)
}

func TestRegisterDriverCompanyMismatch(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), 3, "Another Company", validRequest())
	assert.ErrorIs(t, err, appErrors.ErrInsufficientPermissions)
}
